package core

import "math/rand"

// Rand is the random source consumed by the simulations.
// *rand.Rand satisfies it; tests inject scripted sequences.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded pseudo-random source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // gameplay randomness
}

// RuntimeConfig contains configuration passed to games at Reset.
type RuntimeConfig struct {
	Seed int64 // RNG seed for deterministic gameplay
	Rand Rand  // Optional override; when nil a source is built from Seed
}

// Source returns the configured random source.
func (c RuntimeConfig) Source() Rand {
	if c.Rand != nil {
		return c.Rand
	}
	return NewRand(c.Seed)
}

// Status is the top-level state of a simulation.
type Status int

const (
	StatusRunning Status = iota
	StatusTerminated
)

func (s Status) String() string {
	if s == StatusTerminated {
		return "terminated"
	}
	return "running"
}

// Cause explains why a simulation reached its terminal state.
type Cause string

const (
	CauseNone        Cause = ""
	CauseWall        Cause = "wall"
	CauseSelf        Cause = "self"
	CauseBoardFull   Cause = "board_full"
	CauseOutOfLives  Cause = "out_of_lives"
	CauseInvaded     Cause = "invaded"
	CauseCleared     Cause = "cleared"
	CausePlayerWon   Cause = "player_won"
	CauseOpponentWon Cause = "opponent_won"
)

// Victory reports whether the cause is a win for the player.
func (c Cause) Victory() bool {
	return c == CauseCleared || c == CausePlayerWon
}

// GameState is the summary a host needs each tick.
type GameState struct {
	Score  int
	Status Status
	Cause  Cause
}

// Over reports whether the game has terminated.
func (s GameState) Over() bool {
	return s.Status == StatusTerminated
}

// Event is a lifecycle signal emitted by a simulation step.
type Event interface {
	lifecycleEvent()
}

// ScoreChanged is emitted whenever the score changes.
// Opponent is only meaningful for two-sided games (Pong).
type ScoreChanged struct {
	Score    int
	Opponent int
}

func (ScoreChanged) lifecycleEvent() {}

// GameOver is emitted exactly once, on the transition to Terminated.
type GameOver struct {
	Cause Cause
}

func (GameOver) lifecycleEvent() {}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Snapshot is a read-only, serializable copy of a game's state.
type Snapshot interface {
	GameID() string
}
