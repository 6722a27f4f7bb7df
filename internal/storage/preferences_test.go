package storage

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
)

func TestPreferencesBackend(t *testing.T) {
	app := test.NewTempApp(t)
	prefs := NewPreferences(app.Preferences())

	_, ok := prefs.Get(KeyTheme)
	assert.False(t, ok)

	settings := NewSettings(prefs, nil)
	require.NoError(t, settings.SaveTheme(model.ThemeDark))
	require.NoError(t, settings.SaveDurations(model.Durations{Pomodoro: 20, ShortBreak: 4, LongBreak: 10}))

	assert.Equal(t, "dark", app.Preferences().String(KeyTheme))
	durations, theme := NewSettings(NewPreferences(app.Preferences()), nil).Load()
	assert.Equal(t, model.ThemeDark, theme)
	assert.Equal(t, 20, durations.Pomodoro)
}
