// Package mainwindow is the primary pomodoro window: the clock, the mode
// buttons, the controls and the playfield.
package mainwindow

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/session"
	"pomodoro/internal/ui/appearance"
	"pomodoro/internal/ui/playfield"
)

const clockTextSize = 64

// Callbacks defines the window's action handlers.
type Callbacks struct {
	OnToggle      func()
	OnSwitchMode  func(model.Mode)
	OnReset       func()
	OnSettings    func()
	OnToggleTheme func()
	OnCatch       func()
}

// Window manages the main window.
type Window struct {
	window      fyne.Window
	clock       *canvas.Text
	progress    *widget.ProgressBar
	modeButtons map[model.Mode]*widget.Button
	toggle      *widget.Button
	reset       *widget.Button
	settings    *widget.Button
	themeToggle *widget.Button
	cycles      *widget.Label
	playfield   *playfield.Playfield
}

// New fills window with the pomodoro layout for snapshot. It is not shown.
func New(window fyne.Window, snapshot session.Snapshot, callbacks Callbacks) *Window {
	mainWindow := &Window{
		window:      window,
		modeButtons: make(map[model.Mode]*widget.Button, len(model.Modes())),
	}

	mainWindow.clock = canvas.NewText(snapshot.Clock, theme.Color(theme.ColorNameForeground))
	mainWindow.clock.Alignment = fyne.TextAlignCenter
	mainWindow.clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	mainWindow.clock.TextSize = clockTextSize

	mainWindow.progress = widget.NewProgressBar()
	mainWindow.progress.TextFormatter = func() string { return "" }

	modes := container.NewGridWithColumns(len(model.Modes()))
	for _, mode := range model.Modes() {
		button := widget.NewButton(mode.Label(), func() {
			if callbacks.OnSwitchMode != nil {
				callbacks.OnSwitchMode(mode)
			}
		})
		mainWindow.modeButtons[mode] = button
		modes.Add(button)
	}

	mainWindow.toggle = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), invoke(callbacks.OnToggle))
	mainWindow.toggle.Importance = widget.HighImportance
	mainWindow.reset = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), invoke(callbacks.OnReset))
	mainWindow.settings = widget.NewButtonWithIcon("", theme.SettingsIcon(), invoke(callbacks.OnSettings))
	mainWindow.themeToggle = widget.NewButtonWithIcon("", appearance.ToggleIcon(snapshot.Theme), invoke(callbacks.OnToggleTheme))

	mainWindow.cycles = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	mainWindow.playfield = playfield.New(snapshot.Game, invoke(callbacks.OnCatch))

	header := container.NewHBox(layout.NewSpacer(), mainWindow.settings, mainWindow.themeToggle)
	controls := container.NewCenter(container.NewHBox(mainWindow.toggle, mainWindow.reset))
	content := container.NewVBox(
		header,
		modes,
		mainWindow.clock,
		mainWindow.progress,
		controls,
		mainWindow.cycles,
		widget.NewSeparator(),
		container.NewCenter(mainWindow.playfield.Content()),
	)

	window.SetContent(container.NewPadded(content))
	mainWindow.Render(snapshot)
	return mainWindow
}

// Window returns the underlying fyne window.
func (mainWindow *Window) Window() fyne.Window {
	return mainWindow.window
}

// Show brings the window to the front.
func (mainWindow *Window) Show() {
	mainWindow.window.Show()
	mainWindow.window.RequestFocus()
}

// Render updates every widget from snapshot. It must run on the fyne goroutine.
func (mainWindow *Window) Render(snapshot session.Snapshot) {
	mainWindow.window.SetTitle(snapshot.Title())

	mainWindow.clock.Text = snapshot.Clock
	mainWindow.clock.Color = theme.Color(theme.ColorNameForeground)
	mainWindow.clock.Refresh()
	mainWindow.progress.SetValue(snapshot.Progress)

	for mode, button := range mainWindow.modeButtons {
		if mode == snapshot.Mode {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.MediumImportance
		}
		button.Refresh()
	}

	if snapshot.Running {
		mainWindow.toggle.SetText("Pause")
		mainWindow.toggle.SetIcon(theme.MediaPauseIcon())
	} else {
		mainWindow.toggle.SetText("Start")
		mainWindow.toggle.SetIcon(theme.MediaPlayIcon())
	}

	mainWindow.themeToggle.SetIcon(appearance.ToggleIcon(snapshot.Theme))
	mainWindow.cycles.SetText(cyclesText(snapshot.Cycles))
	mainWindow.playfield.Render(snapshot.Game)
}

// Clock returns the displayed clock text.
func (mainWindow *Window) Clock() string {
	return mainWindow.clock.Text
}

// ToggleLabel returns the start/pause button text.
func (mainWindow *Window) ToggleLabel() string {
	return mainWindow.toggle.Text
}

// ActiveMode returns the mode whose button is highlighted.
func (mainWindow *Window) ActiveMode() (model.Mode, bool) {
	for mode, button := range mainWindow.modeButtons {
		if button.Importance == widget.HighImportance {
			return mode, true
		}
	}
	return "", false
}

func invoke(fn func()) func() {
	return func() {
		if fn != nil {
			fn()
		}
	}
}

func cyclesText(cycles int) string {
	if cycles == 1 {
		return "1 pomodoro completed"
	}
	return fmt.Sprintf("%d pomodoros completed", cycles)
}
