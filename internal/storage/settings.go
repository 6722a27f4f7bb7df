// Package storage persists durations, theme and completed cycles.
package storage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"pomodoro/internal/core/model"
)

// Keys of the persisted records.
const (
	KeyDurations = "pomodoroSettings"
	KeyTheme     = "theme"
	KeyCycles    = "pomodoroCycles"
)

// Settings reads and writes typed records over a KV.
// Absent or malformed records decode to defaults.
type Settings struct {
	kv     KV
	logger *zap.Logger
}

// NewSettings creates a settings store on top of kv.
func NewSettings(kv KV, logger *zap.Logger) *Settings {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Settings{kv: kv, logger: logger}
}

// Load returns the stored durations and theme.
func (settings *Settings) Load() (model.Durations, model.Theme) {
	return settings.LoadDurations(), settings.LoadTheme()
}

// LoadDurations decodes the durations record.
// Each field that is missing or out of range falls back to its default.
func (settings *Settings) LoadDurations() model.Durations {
	durations := model.DefaultDurations()
	raw, ok := settings.kv.Get(KeyDurations)
	if !ok {
		return durations
	}

	var stored model.Durations
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		settings.logger.Debug("ignoring malformed durations", zap.String("value", raw), zap.Error(err))
		return durations
	}

	if model.ValidMinutes(stored.Pomodoro) {
		durations.Pomodoro = stored.Pomodoro
	}
	if model.ValidMinutes(stored.ShortBreak) {
		durations.ShortBreak = stored.ShortBreak
	}
	if model.ValidMinutes(stored.LongBreak) {
		durations.LongBreak = stored.LongBreak
	}
	return durations
}

// SaveDurations validates and stores durations.
func (settings *Settings) SaveDurations(durations model.Durations) error {
	if err := durations.Validate(); err != nil {
		return err
	}
	encoded, err := json.Marshal(durations)
	if err != nil {
		return fmt.Errorf("encode durations: %w", err)
	}
	if err := settings.kv.Set(KeyDurations, string(encoded)); err != nil {
		return fmt.Errorf("save durations: %w", err)
	}
	return nil
}

// LoadTheme decodes the theme record, defaulting to light.
func (settings *Settings) LoadTheme() model.Theme {
	raw, ok := settings.kv.Get(KeyTheme)
	if !ok {
		return model.ThemeLight
	}
	theme, ok := model.ParseTheme(strings.TrimSpace(raw))
	if !ok {
		settings.logger.Debug("ignoring unknown theme", zap.String("value", raw))
	}
	return theme
}

// SaveTheme stores theme.
func (settings *Settings) SaveTheme(theme model.Theme) error {
	if err := settings.kv.Set(KeyTheme, string(theme)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// LoadCycles decodes the completed cycle count, defaulting to zero.
func (settings *Settings) LoadCycles() int {
	raw, ok := settings.kv.Get(KeyCycles)
	if !ok {
		return 0
	}
	cycles, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || cycles < 0 {
		settings.logger.Debug("ignoring malformed cycle count", zap.String("value", raw))
		return 0
	}
	return cycles
}

// SaveCycles stores the completed cycle count.
func (settings *Settings) SaveCycles(cycles int) error {
	if cycles < 0 {
		cycles = 0
	}
	if err := settings.kv.Set(KeyCycles, strconv.Itoa(cycles)); err != nil {
		return fmt.Errorf("save cycles: %w", err)
	}
	return nil
}
