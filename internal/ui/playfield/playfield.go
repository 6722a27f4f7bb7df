// Package playfield draws the catch-the-pig game area.
package playfield

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/session"
	"pomodoro/resources"
)

const (
	idleHint    = "Catch the pig while the timer is paused!"
	runningHint = "Focus! The pig comes back when you pause."
)

// Playfield renders the game state. It must be used on the fyne goroutine.
type Playfield struct {
	content    fyne.CanvasObject
	background *canvas.Rectangle
	arena      *fyne.Container
	pig        *widget.Button
	score      *widget.Label
	hint       *canvas.Text
	onCatch    func()
}

// New creates a playfield sized to area. onCatch runs when the pig is tapped.
func New(state session.GameState, onCatch func()) *Playfield {
	size := fyne.NewSize(state.Area.Width, state.Area.Height)

	background := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	background.CornerRadius = theme.Size(theme.SizeNameInputRadius)
	background.SetMinSize(size)

	field := &Playfield{
		background: background,
		score:      widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		hint:       canvas.NewText("", theme.Color(theme.ColorNamePlaceHolder)),
		onCatch:    onCatch,
	}
	field.hint.Alignment = fyne.TextAlignCenter
	field.hint.TextSize = theme.TextSize() * 0.9

	field.pig = widget.NewButtonWithIcon("", resources.MustIcon(resources.Pig), field.catch)
	field.pig.Importance = widget.LowImportance
	field.pig.Resize(fyne.NewSize(state.Area.TargetSize, state.Area.TargetSize))
	field.pig.Hide()

	field.arena = container.NewWithoutLayout(field.pig)
	field.arena.Resize(size)

	board := container.NewStack(background, field.arena, container.NewCenter(field.hint))
	field.content = container.NewVBox(field.score, board)

	field.Render(state)
	return field
}

// Content returns the canvas object to embed in a window.
func (field *Playfield) Content() fyne.CanvasObject {
	return field.content
}

// Render updates the pig and the score from state.
func (field *Playfield) Render(state session.GameState) {
	field.score.SetText(fmt.Sprintf("Score: %d", state.Score))

	if !state.Active {
		field.pig.Hide()
		field.hint.Text = runningHint
		field.hint.Show()
		field.hint.Refresh()
		return
	}

	if state.Score == 0 && !state.TargetVisible {
		field.hint.Text = idleHint
		field.hint.Show()
	} else {
		field.hint.Hide()
	}
	field.hint.Refresh()

	if !state.TargetVisible {
		field.pig.Hide()
		return
	}
	field.pig.Move(fyne.NewPos(state.Target.X, state.Target.Y))
	field.pig.Show()
}

// PigVisible reports whether the pig is currently drawn.
func (field *Playfield) PigVisible() bool {
	return field.pig.Visible()
}

// PigPosition returns where the pig is drawn.
func (field *Playfield) PigPosition() fyne.Position {
	return field.pig.Position()
}

// Score returns the score label text.
func (field *Playfield) Score() string {
	return field.score.Text
}

func (field *Playfield) catch() {
	if field.onCatch != nil {
		field.onCatch()
	}
}
