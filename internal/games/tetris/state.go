package tetris

import (
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Phase is the Tetris state machine position.
type Phase string

const (
	PhaseSpawning   Phase = "spawning"
	PhaseFalling    Phase = "falling"
	PhaseTerminated Phase = "terminated"
)

// State is the complete serializable Tetris simulation state.
type State struct {
	Columns      int         `json:"columns"`
	Rows         int         `json:"rows"`
	Board        [][]bool    `json:"board"`
	Piece        Piece       `json:"piece"`
	Score        int         `json:"score"`
	Level        int         `json:"level"`
	Lines        int         `json:"lines"`
	Pieces       int         `json:"pieces"`
	DropInterval int         `json:"drop_interval_ms"`
	DropCounter  int         `json:"drop_counter_ms"`
	Ticks        int         `json:"ticks"`
	Phase        Phase       `json:"phase"`
	Status       core.Status `json:"status"`
	Cause        core.Cause  `json:"cause,omitempty"`
}

// GameID implements core.Snapshot.
func (State) GameID() string { return ID }

// NewState creates an empty board at level 1 and spawns the first piece.
func NewState(cfg config.TetrisConfig, rng core.Rand) State {
	s := State{
		Columns:      cfg.Columns,
		Rows:         cfg.Rows,
		Board:        emptyBoard(cfg.Columns, cfg.Rows),
		Level:        1,
		DropInterval: DropIntervalFor(cfg, 1),
		Phase:        PhaseSpawning,
		Status:       core.StatusRunning,
	}
	spawn(&s, rng)
	return s
}

func emptyBoard(cols, rows int) [][]bool {
	b := make([][]bool, rows)
	for y := range b {
		b[y] = make([]bool, cols)
	}
	return b
}

// Clone returns a deep copy of the state.
func (s *State) Clone() State {
	c := *s
	c.Board = make([][]bool, len(s.Board))
	for y := range s.Board {
		c.Board[y] = append([]bool(nil), s.Board[y]...)
	}
	c.Piece.Shape = s.Piece.Shape.Clone()
	return c
}

// LevelFor returns the level reached at a score.
func LevelFor(cfg config.TetrisConfig, score int) int {
	return score/cfg.PointsPerLvl + 1
}

// DropIntervalFor returns the gravity interval in milliseconds at a level.
func DropIntervalFor(cfg config.TetrisConfig, level int) int {
	return max(cfg.MinDropMS, cfg.BaseDropMS-(level-1)*cfg.DropStepMS)
}

// CanPlace reports whether every occupied cell of p is inside the board
// horizontally, above the floor and not on a filled cell. Cells above
// the top edge are allowed while a piece enters the board.
func CanPlace(s *State, p Piece) bool {
	ok := true
	p.Cells(func(x, y int) {
		if !ok {
			return
		}
		if x < 0 || x >= s.Columns || y >= s.Rows {
			ok = false
			return
		}
		if y >= 0 && s.Board[y][x] {
			ok = false
		}
	})
	return ok
}

// Move shifts the active piece, rejecting the attempt silently when the
// target position is invalid.
func Move(s *State, dx, dy int) bool {
	if s.Status != core.StatusRunning {
		return false
	}
	next := s.Piece.Moved(dx, dy)
	if !CanPlace(s, next) {
		return false
	}
	s.Piece = next
	return true
}

// Rotate turns the active piece clockwise in place; no wall kicks are
// attempted.
func Rotate(s *State) bool {
	if s.Status != core.StatusRunning {
		return false
	}
	next := s.Piece
	next.Shape = s.Piece.Shape.Rotate()
	if !CanPlace(s, next) {
		return false
	}
	s.Piece = next
	return true
}

// Step accumulates gravity and drops or locks the piece when due.
func Step(s *State, cfg config.TetrisConfig, rng core.Rand) core.StepResult {
	if s.Status != core.StatusRunning {
		return core.StepResult{State: s.gameState()}
	}
	s.Ticks++

	s.DropCounter += cfg.TickMS
	if s.DropCounter < s.DropInterval {
		return core.StepResult{State: s.gameState()}
	}
	s.DropCounter = 0
	if Move(s, 0, 1) {
		return core.StepResult{State: s.gameState()}
	}

	var events []core.Event
	lock(s)
	if lines := clearRows(s); lines > 0 {
		award(s, cfg, lines)
		events = append(events, core.ScoreChanged{Score: s.Score})
	}

	s.Phase = PhaseSpawning
	if !spawn(s, rng) {
		s.Phase = PhaseTerminated
		s.Status = core.StatusTerminated
		s.Cause = core.CauseBoardFull
		events = append(events, core.GameOver{Cause: core.CauseBoardFull})
	}
	return core.StepResult{State: s.gameState(), Events: events}
}

// lock writes the active piece into the board. Cells above the top
// edge are dropped.
func lock(s *State) {
	s.Piece.Cells(func(x, y int) {
		if y >= 0 {
			s.Board[y][x] = true
		}
	})
}

// clearRows removes complete rows bottom-up, inserting empty rows at the
// top so the board height is constant.
func clearRows(s *State) int {
	cleared := 0
	for y := s.Rows - 1; y >= 0; {
		if !full(s.Board[y]) {
			y--
			continue
		}
		copy(s.Board[1:y+1], s.Board[:y])
		s.Board[0] = make([]bool, s.Columns)
		cleared++
	}
	return cleared
}

func full(row []bool) bool {
	for _, c := range row {
		if !c {
			return false
		}
	}
	return true
}

// award scores cleared lines at the current level, then recomputes
// level and gravity from the new score.
func award(s *State, cfg config.TetrisConfig, lines int) {
	s.Score += lines * cfg.LinePoints * s.Level
	s.Lines += lines
	s.Level = LevelFor(cfg, s.Score)
	s.DropInterval = DropIntervalFor(cfg, s.Level)
}

// spawn places a random piece at the top center. It reports false when
// the piece overlaps the board.
func spawn(s *State, rng core.Rand) bool {
	kind := Kind(rng.Intn(Kinds))
	shape := ShapeOf(kind)
	s.Piece = Piece{
		Kind:  kind,
		Shape: shape,
		X:     s.Columns/2 - shape.Width()/2,
		Y:     0,
	}
	s.Pieces++
	if !CanPlace(s, s.Piece) {
		return false
	}
	s.Phase = PhaseFalling
	return true
}

func (s *State) gameState() core.GameState {
	return core.GameState{Score: s.Score, Status: s.Status, Cause: s.Cause}
}
