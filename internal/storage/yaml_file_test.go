package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
)

func TestYAMLFileMissing(t *testing.T) {
	file, err := OpenYAMLFile(filepath.Join(t.TempDir(), "nested"))
	require.NoError(t, err)

	_, ok := file.Get(KeyTheme)
	assert.False(t, ok)
}

func TestYAMLFilePersists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Pomodoro")
	file, err := OpenYAMLFile(dir)
	require.NoError(t, err)

	settings := NewSettings(file, nil)
	require.NoError(t, settings.SaveTheme(model.ThemeDark))
	require.NoError(t, settings.SaveCycles(2))

	reopened, err := OpenYAMLFile(dir)
	require.NoError(t, err)
	reloaded := NewSettings(reopened, nil)
	assert.Equal(t, model.ThemeDark, reloaded.LoadTheme())
	assert.Equal(t, 2, reloaded.LoadCycles())
}

func TestYAMLFileHandEdited(t *testing.T) {
	dir := t.TempDir()
	content := "pomodoroSettings: '{\"pomodoro\":50,\"shortBreak\":10,\"longBreak\":30}'\ntheme: dark\npomodoroCycles: 7\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte(content), 0o644))

	file, err := OpenYAMLFile(dir)
	require.NoError(t, err)

	settings := NewSettings(file, nil)
	durations, theme := settings.Load()
	assert.Equal(t, model.Durations{Pomodoro: 50, ShortBreak: 10, LongBreak: 30}, durations)
	assert.Equal(t, model.ThemeDark, theme)
	assert.Equal(t, 7, settings.LoadCycles())
}

func TestYAMLFileCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte("theme: [dark\n"), 0o644))

	file, err := OpenYAMLFile(dir)
	require.Error(t, err)
	require.NotNil(t, file)

	assert.Equal(t, model.ThemeLight, NewSettings(file, nil).LoadTheme())
}

func TestYAMLFileReload(t *testing.T) {
	dir := t.TempDir()
	file, err := OpenYAMLFile(dir)
	require.NoError(t, err)
	require.NoError(t, file.Set(KeyTheme, "light"))

	require.NoError(t, os.WriteFile(file.Path(), []byte("theme: dark\n"), 0o644))
	require.NoError(t, file.Reload())

	value, ok := file.Get(KeyTheme)
	require.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestYAMLFileReloadCorruptKeepsValues(t *testing.T) {
	dir := t.TempDir()
	file, err := OpenYAMLFile(dir)
	require.NoError(t, err)
	settings := NewSettings(file, nil)
	durations := model.Durations{Pomodoro: 40, ShortBreak: 8, LongBreak: 20}
	require.NoError(t, settings.SaveDurations(durations))
	require.NoError(t, settings.SaveTheme(model.ThemeDark))

	require.NoError(t, os.WriteFile(file.Path(), []byte("theme: [dark\n"), 0o644))
	require.Error(t, file.Reload())
	require.NoError(t, settings.SaveCycles(3))

	reopened, err := OpenYAMLFile(dir)
	require.NoError(t, err)
	reloaded := NewSettings(reopened, nil)
	got, theme := reloaded.Load()
	assert.Equal(t, durations, got)
	assert.Equal(t, model.ThemeDark, theme)
	assert.Equal(t, 3, reloaded.LoadCycles())
}
