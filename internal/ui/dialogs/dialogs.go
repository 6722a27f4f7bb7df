// Package dialogs provides blocking fyne dialogs for the session controller.
package dialogs

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Dialogs shows modal dialogs on a parent window and waits for the user.
// Its methods must not be called from the fyne event goroutine.
type Dialogs struct {
	app    fyne.App
	parent fyne.Window

	closeOnce sync.Once
	closing   chan struct{}
}

// New creates dialogs bound to parent.
func New(app fyne.App, parent fyne.Window) *Dialogs {
	return &Dialogs{
		app:     app,
		parent:  parent,
		closing: make(chan struct{}),
	}
}

// Notify sends a desktop notification, shows message and blocks until it is dismissed.
func (dialogs *Dialogs) Notify(title, message string) {
	dismissed := make(chan struct{})
	fyne.Do(func() {
		dialogs.app.SendNotification(fyne.NewNotification(title, message))
		info := dialog.NewInformation(title, message, dialogs.parent)
		info.SetOnClosed(func() {
			close(dismissed)
		})
		dialogs.parent.Show()
		dialogs.parent.RequestFocus()
		info.Show()
	})
	dialogs.wait(dismissed)
}

// Confirm asks a yes/no question and blocks for the answer.
// It answers no when the application shuts down first.
func (dialogs *Dialogs) Confirm(title, message string) bool {
	answer := make(chan bool, 1)
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, func(ok bool) {
			answer <- ok
		}, dialogs.parent)
	})
	select {
	case ok := <-answer:
		return ok
	case <-dialogs.closing:
		return false
	}
}

// Close releases every goroutine blocked in Notify or Confirm.
func (dialogs *Dialogs) Close() {
	dialogs.closeOnce.Do(func() {
		close(dialogs.closing)
	})
}

func (dialogs *Dialogs) wait(done chan struct{}) {
	select {
	case <-done:
	case <-dialogs.closing:
	}
}
