package timekeeper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pomodoro/internal/core/model"
)

func TestNewStartsInPomodoro(t *testing.T) {
	countdown := New(model.DefaultDurations())

	assert.Equal(t, model.ModePomodoro, countdown.Mode())
	assert.Equal(t, 1500, countdown.Remaining())
	assert.Zero(t, countdown.Progress())
}

func TestSwitchModeRefills(t *testing.T) {
	durations := model.Durations{Pomodoro: 40, ShortBreak: 8, LongBreak: 22}
	countdown := New(durations)

	for _, mode := range model.Modes() {
		countdown.Decrement()
		assert.True(t, countdown.SwitchMode(mode))
		assert.Equal(t, durations.Seconds(mode), countdown.Remaining(), mode)
	}

	assert.False(t, countdown.SwitchMode("nap"))
	assert.Equal(t, model.ModeLongBreak, countdown.Mode())
}

func TestDecrementReachesZeroOnce(t *testing.T) {
	countdown := New(model.Durations{Pomodoro: 1, ShortBreak: 1, LongBreak: 1})

	finished := 0
	for i := 0; i < 60; i++ {
		if countdown.Decrement() {
			finished++
		}
	}

	assert.Equal(t, 1, finished)
	assert.Zero(t, countdown.Remaining())
	assert.Equal(t, 1.0, countdown.Progress())
}

func TestSetDurationsKeepsRemaining(t *testing.T) {
	countdown := New(model.DefaultDurations())
	countdown.Decrement()

	countdown.SetDurations(model.Durations{Pomodoro: 50, ShortBreak: 10, LongBreak: 20})
	assert.Equal(t, 1499, countdown.Remaining())

	countdown.Refill()
	assert.Equal(t, 3000, countdown.Remaining())
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "25:00", FormatClock(1500))
	assert.Equal(t, "04:09", FormatClock(249))
	assert.Equal(t, "00:00", FormatClock(-3))
	assert.Equal(t, "120:00", FormatClock(7200))
}
