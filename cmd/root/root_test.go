package root

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStatusDefaults(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "status", "--config-dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Pomodoro: 25 min")
	assert.Contains(t, out, "Short Break: 5 min")
	assert.Contains(t, out, "Long Break: 15 min")
	assert.Contains(t, out, "Theme: light")
	assert.Contains(t, out, "Completed pomodoros: 0")
	assert.Contains(t, out, filepath.Join(dir, "settings.yaml"))
}

func TestStatusReadsSettingsFile(t *testing.T) {
	dir := t.TempDir()
	content := "pomodoroSettings: '{\"pomodoro\":50,\"shortBreak\":10,\"longBreak\":30}'\n" +
		"theme: dark\n" +
		"pomodoroCycles: \"7\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(content), 0o600))

	out, err := run(t, "status", "--config-dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Pomodoro: 50 min")
	assert.Contains(t, out, "Theme: dark")
	assert.Contains(t, out, "Completed pomodoros: 7")
}

func TestResetCyclesRequiresConfirmation(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "reset-cycles", "--config-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
	assert.NoFileExists(t, filepath.Join(dir, "settings.yaml"))
}

func TestResetCycles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte("pomodoroCycles: \"3\"\ntheme: dark\n"), 0o600))

	out, err := run(t, "reset-cycles", "--yes", "--config-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "reset to 0")

	out, err = run(t, "status", "--config-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Completed pomodoros: 0")
	assert.Contains(t, out, "Theme: dark")
}

func TestUnknownStore(t *testing.T) {
	_, err := run(t, "status", "--store", "sqlite", "--config-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store")
}

func TestFyneStoreNeedsDesktopApp(t *testing.T) {
	_, err := run(t, "status", "--store", "fyne")
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	logger, err = newLogger(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))
}
