package snake

import (
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Point is a grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p moved by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// State is the complete serializable Snake simulation state.
type State struct {
	TileCount int         `json:"tile_count"`
	Segments  []Point     `json:"segments"` // Head at index 0
	Food      Point       `json:"food"`
	DX        int         `json:"dx"`
	DY        int         `json:"dy"`
	Score     int         `json:"score"`
	Ticks     int         `json:"ticks"`
	Status    core.Status `json:"status"`
	Cause     core.Cause  `json:"cause,omitempty"`
}

// GameID implements core.Snapshot.
func (State) GameID() string { return ID }

// NewState spawns a one-segment snake at the configured start, idle,
// with food at a random cell.
func NewState(cfg config.SnakeConfig, rng core.Rand) State {
	return State{
		TileCount: cfg.TileCount,
		Segments:  []Point{{X: cfg.StartX, Y: cfg.StartY}},
		Food:      randomCell(cfg.TileCount, rng),
		Status:    core.StatusRunning,
	}
}

// Head returns the head segment.
func (s *State) Head() Point {
	return s.Segments[0]
}

// Len returns the number of segments.
func (s *State) Len() int {
	return len(s.Segments)
}

// Clone returns a deep copy of the state.
func (s *State) Clone() State {
	c := *s
	c.Segments = append([]Point(nil), s.Segments...)
	return c
}

// Idle reports whether the snake has not been given a heading yet.
func (s *State) Idle() bool {
	return s.DX == 0 && s.DY == 0
}

// Turn changes the heading immediately. A reversal of the current
// non-zero heading is rejected and reported as false.
func Turn(s *State, d core.Direction) bool {
	if s.Status != core.StatusRunning {
		return false
	}
	dx, dy := d.Delta()
	if dx == 0 && dy == 0 {
		return false
	}
	if (dx != 0 && dx == -s.DX) || (dy != 0 && dy == -s.DY) {
		return false
	}
	s.DX, s.DY = dx, dy
	return true
}

// Step advances the snake one cell along its heading.
func Step(s *State, cfg config.SnakeConfig, rng core.Rand) core.StepResult {
	if s.Status != core.StatusRunning {
		return core.StepResult{State: s.gameState()}
	}
	s.Ticks++
	if s.Idle() {
		return core.StepResult{State: s.gameState()}
	}

	head := s.Head().Add(s.DX, s.DY)

	if head.X < 0 || head.X >= s.TileCount || head.Y < 0 || head.Y >= s.TileCount {
		return s.terminate(core.CauseWall)
	}

	// The tail has not moved yet, so it counts as body.
	for _, seg := range s.Segments[1:] {
		if seg == head {
			return s.terminate(core.CauseSelf)
		}
	}

	s.Segments = append([]Point{head}, s.Segments...)

	var events []core.Event
	if head == s.Food {
		s.Score += cfg.FoodPoints
		// Food may land on the body; the next meal simply appears under it.
		s.Food = randomCell(s.TileCount, rng)
		events = append(events, core.ScoreChanged{Score: s.Score})
	} else {
		s.Segments = s.Segments[:len(s.Segments)-1]
	}

	return core.StepResult{State: s.gameState(), Events: events}
}

func (s *State) terminate(cause core.Cause) core.StepResult {
	s.Status = core.StatusTerminated
	s.Cause = cause
	return core.StepResult{
		State:  s.gameState(),
		Events: []core.Event{core.GameOver{Cause: cause}},
	}
}

func (s *State) gameState() core.GameState {
	return core.GameState{Score: s.Score, Status: s.Status, Cause: s.Cause}
}

func randomCell(tiles int, rng core.Rand) Point {
	x := rng.Intn(tiles)
	y := rng.Intn(tiles)
	return Point{X: x, Y: y}
}
