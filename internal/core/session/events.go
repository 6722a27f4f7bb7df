package session

import (
	"fmt"
	"time"

	"pomodoro/internal/core/game"
	"pomodoro/internal/core/model"
)

// Phase is the mutually exclusive activity of the session.
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseTimerRunning Phase = "timer_running"
	PhaseGameActive   Phase = "game_active"
)

// EventType defines the type of session event.
type EventType string

const (
	EventTick           EventType = "tick"
	EventRunning        EventType = "running"
	EventModeChange     EventType = "mode_change"
	EventPeriodComplete EventType = "period_complete"
	EventCycles         EventType = "cycles"
	EventGame           EventType = "game"
	EventTheme          EventType = "theme"
	EventSettings       EventType = "settings"
)

// GameState is the observable state of the reward game.
type GameState struct {
	Active        bool
	Score         int
	Target        game.Position
	TargetVisible bool
	Area          game.Area
}

// Snapshot is the complete observable state of the session.
type Snapshot struct {
	Phase     Phase
	Mode      model.Mode
	Remaining int
	Clock     string
	Progress  float64
	Running   bool
	Cycles    int
	Durations model.Durations
	Theme     model.Theme
	Game      GameState
}

// Title renders the window title for the snapshot.
func (snapshot Snapshot) Title() string {
	return fmt.Sprintf("(%s) 🌸 Pomodoro", snapshot.Clock)
}

// Event represents a session update for observers.
type Event struct {
	Type    EventType
	State   Snapshot
	Message string
	At      time.Time
}
