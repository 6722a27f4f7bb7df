package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
)

// Window is the settings form for the three period lengths.
type Window struct {
	window     fyne.Window
	durations  model.Durations
	onSave     func(model.DurationInput) error
	pomodoro   *widget.Entry
	shortBreak *widget.Entry
	longBreak  *widget.Entry
	errorLabel *widget.Label
}

// New creates a settings window. onSave receives the raw field text and
// reports whether it was accepted.
func New(app fyne.App, durations model.Durations, onSave func(model.DurationInput) error) *Window {
	window := app.NewWindow("Settings")

	pomodoro := widget.NewEntry()
	shortBreak := widget.NewEntry()
	longBreak := widget.NewEntry()

	errorLabel := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Italic: true})
	errorLabel.Importance = widget.DangerImportance
	errorLabel.Hide()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer lengths", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		row(model.ModePomodoro.Label(), pomodoro),
		row(model.ModeShortBreak.Label(), shortBreak),
		row(model.ModeLongBreak.Label(), longBreak),
		errorLabel,
	)

	saveButton := widget.NewButton("Save", nil)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(320, 240))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		pomodoro:   pomodoro,
		shortBreak: shortBreak,
		longBreak:  longBreak,
		errorLabel: errorLabel,
	}
	prefs.UpdateDurations(durations)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = prefs.Hide

	return prefs
}

// Show opens the window with the last accepted values.
func (prefs *Window) Show() {
	prefs.UpdateDurations(prefs.durations)
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Hide closes the window without saving.
func (prefs *Window) Hide() {
	prefs.errorLabel.Hide()
	prefs.window.Hide()
}

// UpdateDurations replaces the field values.
func (prefs *Window) UpdateDurations(durations model.Durations) {
	prefs.durations = durations
	input := durations.Input()
	prefs.pomodoro.SetText(input.Pomodoro)
	prefs.shortBreak.SetText(input.ShortBreak)
	prefs.longBreak.SetText(input.LongBreak)
}

// Input returns the current field text.
func (prefs *Window) Input() model.DurationInput {
	return model.DurationInput{
		Pomodoro:   prefs.pomodoro.Text,
		ShortBreak: prefs.shortBreak.Text,
		LongBreak:  prefs.longBreak.Text,
	}
}

// ErrorMessage returns the validation message currently shown, if any.
func (prefs *Window) ErrorMessage() string {
	if !prefs.errorLabel.Visible() {
		return ""
	}
	return prefs.errorLabel.Text
}

func (prefs *Window) handleSave() {
	input := prefs.Input()
	if prefs.onSave != nil {
		if err := prefs.onSave(input); err != nil {
			prefs.errorLabel.SetText(model.InvalidDurationsMessage)
			prefs.errorLabel.Show()
			return
		}
	}
	if durations, err := model.ParseDurations(input); err == nil {
		prefs.durations = durations
	}
	prefs.Hide()
}

func row(label string, entry *widget.Entry) fyne.CanvasObject {
	entry.SetPlaceHolder("minutes")
	return container.NewBorder(nil, nil, widget.NewLabel(label), widget.NewLabel("min"), entry)
}
