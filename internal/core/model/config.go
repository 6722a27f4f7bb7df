package model

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// Mode identifies one of the countdown modes.
type Mode string

const (
	ModePomodoro   Mode = "pomodoro"
	ModeShortBreak Mode = "shortBreak"
	ModeLongBreak  Mode = "longBreak"
)

// ErrInvalidDurations is returned when a duration candidate is not a positive integer.
var ErrInvalidDurations = errors.New("durations must be positive numbers")

// InvalidDurationsMessage is shown to the user when the settings form is rejected.
const InvalidDurationsMessage = "Durations must be positive numbers."

// Modes returns every mode in display order.
func Modes() []Mode {
	return []Mode{ModePomodoro, ModeShortBreak, ModeLongBreak}
}

// Valid reports whether mode is a known mode.
func (mode Mode) Valid() bool {
	switch mode {
	case ModePomodoro, ModeShortBreak, ModeLongBreak:
		return true
	default:
		return false
	}
}

// Label returns the human readable mode name.
func (mode Mode) Label() string {
	switch mode {
	case ModePomodoro:
		return "Pomodoro"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return string(mode)
	}
}

// Next returns the mode entered after a countdown in mode completes.
func (mode Mode) Next() Mode {
	if mode == ModePomodoro {
		return ModeShortBreak
	}
	return ModePomodoro
}

// MaxMinutes is the longest accepted period. Longer values would overflow
// the seconds count.
const MaxMinutes = math.MaxInt32 / 60

// ValidMinutes reports whether minutes is a usable period length.
func ValidMinutes(minutes int) bool {
	return minutes > 0 && minutes <= MaxMinutes
}

// Durations holds the configured length of every mode, in minutes.
type Durations struct {
	Pomodoro   int `json:"pomodoro"`
	ShortBreak int `json:"shortBreak"`
	LongBreak  int `json:"longBreak"`
}

// DurationInput carries the raw text of the settings form.
type DurationInput struct {
	Pomodoro   string
	ShortBreak string
	LongBreak  string
}

// DefaultDurations returns the classic 25/5/15 split.
func DefaultDurations() Durations {
	return Durations{
		Pomodoro:   25,
		ShortBreak: 5,
		LongBreak:  15,
	}
}

// Minutes returns the configured minutes for mode.
func (durations Durations) Minutes(mode Mode) int {
	switch mode {
	case ModeShortBreak:
		return durations.ShortBreak
	case ModeLongBreak:
		return durations.LongBreak
	default:
		return durations.Pomodoro
	}
}

// Seconds returns the configured length of mode in seconds.
func (durations Durations) Seconds(mode Mode) int {
	return durations.Minutes(mode) * 60
}

// Duration returns the configured length of mode.
func (durations Durations) Duration(mode Mode) time.Duration {
	return time.Duration(durations.Minutes(mode)) * time.Minute
}

// Validate reports ErrInvalidDurations unless every value is positive and at most MaxMinutes.
func (durations Durations) Validate() error {
	if !ValidMinutes(durations.Pomodoro) || !ValidMinutes(durations.ShortBreak) || !ValidMinutes(durations.LongBreak) {
		return ErrInvalidDurations
	}
	return nil
}

// Input renders durations back into form text.
func (durations Durations) Input() DurationInput {
	return DurationInput{
		Pomodoro:   strconv.Itoa(durations.Pomodoro),
		ShortBreak: strconv.Itoa(durations.ShortBreak),
		LongBreak:  strconv.Itoa(durations.LongBreak),
	}
}

// ParseDurations converts form text into Durations.
// Every field must hold a positive integer, otherwise ErrInvalidDurations is returned.
func ParseDurations(input DurationInput) (Durations, error) {
	pomodoro, ok := parsePositiveInt(input.Pomodoro)
	if !ok {
		return Durations{}, ErrInvalidDurations
	}
	shortBreak, ok := parsePositiveInt(input.ShortBreak)
	if !ok {
		return Durations{}, ErrInvalidDurations
	}
	longBreak, ok := parsePositiveInt(input.LongBreak)
	if !ok {
		return Durations{}, ErrInvalidDurations
	}
	return Durations{
		Pomodoro:   pomodoro,
		ShortBreak: shortBreak,
		LongBreak:  longBreak,
	}, nil
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || !ValidMinutes(parsed) {
		return 0, false
	}
	return parsed, true
}
