// Package game implements the "catch the pig" reward game played during breaks.
package game

import (
	"math/rand"
	"time"
)

const (
	// DwellTime is how long an uncaught target stays before it moves.
	DwellTime = 1500 * time.Millisecond
	// RespawnDelay is the quicker respawn that follows a catch.
	RespawnDelay = 500 * time.Millisecond
)

// Area is the bounded play area and the size of the target inside it.
type Area struct {
	Width      float32
	Height     float32
	TargetSize float32
}

// DefaultArea returns the play area used by the desktop window.
func DefaultArea() Area {
	return Area{
		Width:      400,
		Height:     240,
		TargetSize: 64,
	}
}

// Position is the top-left corner of the target inside the area.
type Position struct {
	X float32
	Y float32
}

// Game holds the score and the current target.
// It is not safe for concurrent use; the session controller serializes access.
type Game struct {
	area    Area
	rng     *rand.Rand
	active  bool
	score   int
	target  Position
	visible bool
}

// New creates an inactive game. A nil rng is seeded from the clock.
func New(area Area, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{area: area, rng: rng}
}

// Area returns the play area.
func (game *Game) Area() Area {
	return game.area
}

// Active reports whether the game is running.
func (game *Game) Active() bool {
	return game.active
}

// Score returns the number of catches since the last activation.
func (game *Game) Score() int {
	return game.score
}

// Target returns the target position and whether a target is showing.
func (game *Game) Target() (Position, bool) {
	return game.target, game.visible
}

// Activate starts a fresh round with a zero score.
// It returns false when the game was already active.
func (game *Game) Activate() bool {
	if game.active {
		return false
	}
	game.active = true
	game.score = 0
	game.visible = false
	return true
}

// Deactivate stops the game and clears the target.
func (game *Game) Deactivate() {
	game.active = false
	game.visible = false
}

// Spawn places a target at a random position that keeps it fully inside the area.
func (game *Game) Spawn() (Position, bool) {
	if !game.active {
		return Position{}, false
	}
	game.target = Position{
		X: randomOffset(game.rng, game.area.Width-game.area.TargetSize),
		Y: randomOffset(game.rng, game.area.Height-game.area.TargetSize),
	}
	game.visible = true
	return game.target, true
}

// Despawn removes the current target without scoring.
func (game *Game) Despawn() {
	game.visible = false
}

// Catch scores the current target and removes it.
// It returns false when no target is showing.
func (game *Game) Catch() bool {
	if !game.active || !game.visible {
		return false
	}
	game.score++
	game.visible = false
	return true
}

func randomOffset(rng *rand.Rand, span float32) float32 {
	if span <= 0 {
		return 0
	}
	return rng.Float32() * span
}
