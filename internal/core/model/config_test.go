package model

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeNext(t *testing.T) {
	assert.Equal(t, ModeShortBreak, ModePomodoro.Next())
	assert.Equal(t, ModePomodoro, ModeShortBreak.Next())
	assert.Equal(t, ModePomodoro, ModeLongBreak.Next())
}

func TestModeValid(t *testing.T) {
	for _, mode := range Modes() {
		assert.True(t, mode.Valid(), mode)
	}
	assert.False(t, Mode("lunch").Valid())
}

func TestDurationsLookup(t *testing.T) {
	durations := Durations{Pomodoro: 50, ShortBreak: 10, LongBreak: 30}

	assert.Equal(t, 3000, durations.Seconds(ModePomodoro))
	assert.Equal(t, 600, durations.Seconds(ModeShortBreak))
	assert.Equal(t, 30*time.Minute, durations.Duration(ModeLongBreak))
}

func TestParseDurations(t *testing.T) {
	tests := []struct {
		name    string
		input   DurationInput
		want    Durations
		wantErr bool
	}{
		{
			name:  "valid",
			input: DurationInput{Pomodoro: "30", ShortBreak: " 7 ", LongBreak: "20"},
			want:  Durations{Pomodoro: 30, ShortBreak: 7, LongBreak: 20},
		},
		{
			name:    "negative",
			input:   DurationInput{Pomodoro: "-1", ShortBreak: "5", LongBreak: "15"},
			wantErr: true,
		},
		{
			name:    "zero",
			input:   DurationInput{Pomodoro: "25", ShortBreak: "0", LongBreak: "15"},
			wantErr: true,
		},
		{
			name:    "not a number",
			input:   DurationInput{Pomodoro: "25", ShortBreak: "5", LongBreak: "soon"},
			wantErr: true,
		},
		{
			name:    "empty",
			input:   DurationInput{},
			wantErr: true,
		},
		{
			name:    "too long",
			input:   DurationInput{Pomodoro: "99999999999999999", ShortBreak: "5", LongBreak: "15"},
			wantErr: true,
		},
		{
			name:    "one past the limit",
			input:   DurationInput{Pomodoro: "25", ShortBreak: "5", LongBreak: strconv.Itoa(MaxMinutes + 1)},
			wantErr: true,
		},
		{
			name:  "at the limit",
			input: DurationInput{Pomodoro: strconv.Itoa(MaxMinutes), ShortBreak: "5", LongBreak: "15"},
			want:  Durations{Pomodoro: MaxMinutes, ShortBreak: 5, LongBreak: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDurations(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDurations)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, got.Validate())
		})
	}
}

func TestLongestDurationDoesNotOverflow(t *testing.T) {
	durations := Durations{Pomodoro: MaxMinutes, ShortBreak: 1, LongBreak: 1}

	require.NoError(t, durations.Validate())
	assert.Positive(t, durations.Seconds(ModePomodoro))
	assert.Positive(t, durations.Duration(ModePomodoro))
	assert.ErrorIs(t, Durations{Pomodoro: MaxMinutes + 1, ShortBreak: 1, LongBreak: 1}.Validate(), ErrInvalidDurations)
}

func TestDurationsInput(t *testing.T) {
	parsed, err := ParseDurations(DefaultDurations().Input())
	require.NoError(t, err)
	assert.Equal(t, DefaultDurations(), parsed)
}

func TestThemeToggle(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())

	theme, ok := ParseTheme("dark")
	assert.True(t, ok)
	assert.Equal(t, ThemeDark, theme)

	theme, ok = ParseTheme("sepia")
	assert.False(t, ok)
	assert.Equal(t, ThemeLight, theme)
}
