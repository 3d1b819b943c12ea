package pong

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Side names a paddle owner.
type Side string

const (
	SideNone     Side = ""
	SidePlayer   Side = "player"
	SideOpponent Side = "opponent"
)

// State is the complete serializable Pong simulation state.
// The player owns the left paddle, the CPU the right one.
type State struct {
	Width         float64     `json:"width"`
	Height        float64     `json:"height"`
	PaddleWidth   float64     `json:"paddle_width"`
	PaddleHeight  float64     `json:"paddle_height"`
	BallSize      float64     `json:"ball_size"`
	PlayerY       float64     `json:"player_y"`
	OpponentY     float64     `json:"opponent_y"`
	BallX         float64     `json:"ball_x"`
	BallY         float64     `json:"ball_y"`
	BallVX        float64     `json:"ball_vx"`
	BallVY        float64     `json:"ball_vy"`
	PlayerScore   int         `json:"player_score"`
	OpponentScore int         `json:"opponent_score"`
	HoldUp        bool        `json:"hold_up"`
	HoldDown      bool        `json:"hold_down"`
	Ticks         int         `json:"ticks"`
	Status        core.Status `json:"status"`
	Cause         core.Cause  `json:"cause,omitempty"`
}

// GameID implements core.Snapshot.
func (State) GameID() string { return ID }

// NewState centers both paddles and serves the ball from the middle.
func NewState(cfg config.PongConfig, rng core.Rand) State {
	mid := cfg.Court.Height/2 - cfg.Paddle.Height/2
	s := State{
		Width:        cfg.Court.Width,
		Height:       cfg.Court.Height,
		PaddleWidth:  cfg.Paddle.Width,
		PaddleHeight: cfg.Paddle.Height,
		BallSize:     cfg.Ball.Size,
		PlayerY:      mid,
		OpponentY:    mid,
		Status:       core.StatusRunning,
	}
	serve(&s, cfg, rng)
	return s
}

// Winner returns the side that reached the win score, if any.
func (s State) Winner() Side {
	switch s.Cause {
	case core.CausePlayerWon:
		return SidePlayer
	case core.CauseOpponentWon:
		return SideOpponent
	default:
		return SideNone
	}
}

// BallSpeed returns the magnitude of the ball velocity.
func (s State) BallSpeed() float64 {
	return math.Hypot(s.BallVX, s.BallVY)
}

// Hold latches or releases the player's vertical movement.
func Hold(s *State, d core.Direction, active bool) {
	switch d {
	case core.DirUp:
		s.HoldUp = active
	case core.DirDown:
		s.HoldDown = active
	}
}

// Step advances paddles and ball by one tick.
func Step(s *State, cfg config.PongConfig, rng core.Rand) core.StepResult {
	if s.Status != core.StatusRunning {
		return core.StepResult{State: s.gameState()}
	}
	s.Ticks++

	maxY := s.Height - cfg.Paddle.Height
	size := cfg.Ball.Size

	if s.HoldUp {
		s.PlayerY -= cfg.Paddle.PlayerStep
	}
	if s.HoldDown {
		s.PlayerY += cfg.Paddle.PlayerStep
	}
	s.PlayerY = core.ClampF(s.PlayerY, 0, maxY)

	center := s.OpponentY + cfg.Paddle.Height/2
	if center < s.BallY-cfg.Paddle.DeadZone {
		s.OpponentY += cfg.Paddle.AIStep
	} else if center > s.BallY+cfg.Paddle.DeadZone {
		s.OpponentY -= cfg.Paddle.AIStep
	}
	s.OpponentY = core.ClampF(s.OpponentY, 0, maxY)

	s.BallX += s.BallVX
	s.BallY += s.BallVY

	if s.BallY <= 0 {
		s.BallY = 0
		s.BallVY = math.Abs(s.BallVY)
	} else if s.BallY >= s.Height-size {
		s.BallY = s.Height - size
		s.BallVY = -math.Abs(s.BallVY)
	}

	if s.BallVX < 0 && s.BallX <= cfg.Paddle.Width && s.spans(s.PlayerY, cfg) {
		s.deflect(cfg)
	}
	if s.BallVX > 0 && s.BallX >= s.Width-cfg.Paddle.Width-size && s.spans(s.OpponentY, cfg) {
		s.deflect(cfg)
	}

	switch {
	case s.BallX < 0:
		s.OpponentScore++
		return s.scored(cfg, rng, s.OpponentScore, core.CauseOpponentWon)
	case s.BallX > s.Width:
		s.PlayerScore++
		return s.scored(cfg, rng, s.PlayerScore, core.CausePlayerWon)
	}

	return core.StepResult{State: s.gameState()}
}

// spans reports whether the ball's vertical extent touches the paddle at y.
func (s *State) spans(y float64, cfg config.PongConfig) bool {
	return s.BallY+cfg.Ball.Size >= y && s.BallY <= y+cfg.Paddle.Height
}

func (s *State) deflect(cfg config.PongConfig) {
	s.BallVX = -s.BallVX * cfg.Ball.SpeedUp
	s.BallVY *= cfg.Ball.SpeedUp
}

func (s *State) scored(cfg config.PongConfig, rng core.Rand, points int, win core.Cause) core.StepResult {
	serve(s, cfg, rng)
	events := []core.Event{core.ScoreChanged{Score: s.PlayerScore, Opponent: s.OpponentScore}}
	if points >= cfg.Rules.WinScore {
		s.Status = core.StatusTerminated
		s.Cause = win
		events = append(events, core.GameOver{Cause: win})
	}
	return core.StepResult{State: s.gameState(), Events: events}
}

// serve puts the ball in the center with a random diagonal velocity.
func serve(s *State, cfg config.PongConfig, rng core.Rand) {
	s.BallX = s.Width / 2
	s.BallY = s.Height / 2
	s.BallVX = cfg.Ball.Speed * sign(rng.Float64())
	s.BallVY = cfg.Ball.Speed * sign(rng.Float64())
}

func sign(roll float64) float64 {
	if roll > 0.5 {
		return 1
	}
	return -1
}

func (s *State) gameState() core.GameState {
	return core.GameState{Score: s.PlayerScore, Status: s.Status, Cause: s.Cause}
}
