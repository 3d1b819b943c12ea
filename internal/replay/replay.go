// Package replay journals the intents of a session against the tick they
// arrived at, so that a round can be re-simulated deterministically from
// its seed.
package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// ErrMismatch is returned by Verify when re-simulation disagrees with
// the recorded outcome.
var ErrMismatch = errors.New("replay: result mismatch")

// Entry is one intent applied before the step with index Tick.
type Entry struct {
	Tick   int         `json:"tick"`
	Intent core.Intent `json:"intent"`
}

// Log is a complete journal of one round.
type Log struct {
	ID        string        `json:"id"`
	Game      string        `json:"game"`
	Seed      int64         `json:"seed"`
	Config    config.Arcade `json:"config"`
	Ticks     int           `json:"ticks"`
	Entries   []Entry       `json:"entries"`
	Score     int           `json:"score"`
	Cause     core.Cause    `json:"cause,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	EndedAt   time.Time     `json:"ended_at"`
}

// Completed reports whether the round reached a terminal state rather
// than being abandoned.
func (l Log) Completed() bool {
	return l.Cause != core.CauseNone
}

// Duration returns the wall-clock length of the round.
func (l Log) Duration() time.Duration {
	return l.EndedAt.Sub(l.StartedAt)
}

// Recorder accumulates a Log while a round is played.
type Recorder struct {
	log Log
	now func() time.Time
}

// NewRecorder starts a journal with a fresh ID.
func NewRecorder(game string, seed int64, cfg config.Arcade) *Recorder {
	r := &Recorder{now: time.Now}
	r.log = Log{
		ID:        uuid.NewString(),
		Game:      game,
		Seed:      seed,
		Config:    cfg,
		StartedAt: r.now(),
	}
	return r
}

// ID returns the journal ID.
func (r *Recorder) ID() string {
	return r.log.ID
}

// Record appends an intent that arrived after tick steps.
func (r *Recorder) Record(tick int, in core.Intent) {
	r.log.Entries = append(r.log.Entries, Entry{Tick: tick, Intent: in})
}

// Finish closes the journal with the final outcome.
func (r *Recorder) Finish(ticks int, st core.GameState) Log {
	r.log.Ticks = ticks
	r.log.Score = st.Score
	r.log.Cause = st.Cause
	r.log.EndedAt = r.now()
	return r.log
}

// Result is the outcome of a re-simulation.
type Result struct {
	State    core.GameState
	Snapshot core.Snapshot
}

// Play re-simulates a journal: every entry is applied before the step
// whose index matches its tick, and entries recorded after the last
// step are applied at the end.
func Play(l Log) (Result, error) {
	g, err := registry.Create(l.Game, l.Config)
	if err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}
	g.Reset(core.RuntimeConfig{Seed: l.Seed})

	next := 0
	for tick := 0; tick < l.Ticks; tick++ {
		for next < len(l.Entries) && l.Entries[next].Tick <= tick {
			g.Apply(l.Entries[next].Intent)
			next++
		}
		g.Step()
	}
	for ; next < len(l.Entries); next++ {
		g.Apply(l.Entries[next].Intent)
	}

	return Result{State: g.State(), Snapshot: g.Snapshot()}, nil
}

// Verify re-simulates a journal and checks score and cause against the
// recorded outcome.
func Verify(l Log) (Result, error) {
	res, err := Play(l)
	if err != nil {
		return res, err
	}
	if res.State.Score != l.Score || res.State.Cause != l.Cause {
		return res, fmt.Errorf("%w: replayed score %d (%s), recorded %d (%s)",
			ErrMismatch, res.State.Score, causeText(res.State.Cause), l.Score, causeText(l.Cause))
	}
	return res, nil
}

func causeText(c core.Cause) string {
	if c == core.CauseNone {
		return "unfinished"
	}
	return string(c)
}
