// Package timekeeper holds the countdown for the active Pomodoro mode.
package timekeeper

import (
	"fmt"

	"pomodoro/internal/core/model"
)

// Countdown tracks the active mode and the seconds left in it.
// It is not safe for concurrent use; the session controller serializes access.
type Countdown struct {
	durations model.Durations
	mode      model.Mode
	remaining int
}

// New creates a countdown in pomodoro mode with a full period left.
func New(durations model.Durations) *Countdown {
	countdown := &Countdown{
		durations: durations,
		mode:      model.ModePomodoro,
	}
	countdown.Refill()
	return countdown
}

// Mode returns the active mode.
func (countdown *Countdown) Mode() model.Mode {
	return countdown.mode
}

// Remaining returns the seconds left in the active period.
func (countdown *Countdown) Remaining() int {
	return countdown.remaining
}

// Durations returns the configured durations.
func (countdown *Countdown) Durations() model.Durations {
	return countdown.durations
}

// SetDurations replaces the configured durations without touching the remaining time.
func (countdown *Countdown) SetDurations(durations model.Durations) {
	countdown.durations = durations
}

// SwitchMode activates mode and refills the remaining time from its duration.
// Unknown modes are ignored.
func (countdown *Countdown) SwitchMode(mode model.Mode) bool {
	if !mode.Valid() {
		return false
	}
	countdown.mode = mode
	countdown.Refill()
	return true
}

// Refill resets the remaining time to the full duration of the active mode.
func (countdown *Countdown) Refill() {
	countdown.remaining = countdown.durations.Seconds(countdown.mode)
}

// Decrement removes one second and reports whether the period has run out.
func (countdown *Countdown) Decrement() bool {
	countdown.remaining--
	if countdown.remaining <= 0 {
		countdown.remaining = 0
		return true
	}
	return false
}

// Progress returns the elapsed fraction of the active period.
func (countdown *Countdown) Progress() float64 {
	total := countdown.durations.Seconds(countdown.mode)
	if total <= 0 {
		return 1
	}
	progress := float64(total-countdown.remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// FormatClock renders seconds as mm:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
