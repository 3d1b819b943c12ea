package invaders

import (
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Projectile is a bullet box with a vertical velocity.
type Projectile struct {
	core.Box
	VY float64 `json:"vy"`
}

// State is the complete serializable Space Invaders simulation state.
type State struct {
	Width         float64      `json:"width"`
	Height        float64      `json:"height"`
	Player        core.Box     `json:"player"`
	Lives         int          `json:"lives"`
	Enemies       []core.Box   `json:"enemies"`
	PlayerBullets []Projectile `json:"player_bullets"`
	EnemyBullets  []Projectile `json:"enemy_bullets"`
	Direction     int          `json:"direction"` // -1 or +1
	Speed         float64      `json:"speed"`
	Drops         int          `json:"drops"`
	HoldLeft      bool         `json:"hold_left"`
	HoldRight     bool         `json:"hold_right"`
	Score         int          `json:"score"`
	Ticks         int          `json:"ticks"`
	Status        core.Status  `json:"status"`
	Cause         core.Cause   `json:"cause,omitempty"`
}

// GameID implements core.Snapshot.
func (State) GameID() string { return ID }

// NewState lays out the formation and places the ship near the bottom.
func NewState(cfg config.InvadersConfig) State {
	f := cfg.Formation
	enemies := make([]core.Box, 0, f.Rows*f.Cols)
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			enemies = append(enemies, core.NewBox(
				float64(col)*f.SpacingX+f.OriginX,
				float64(row)*f.SpacingY+f.OriginY,
				f.EnemyWidth, f.EnemyHeight,
			))
		}
	}

	return State{
		Width:  cfg.Field.Width,
		Height: cfg.Field.Height,
		Player: core.NewBox(
			cfg.Field.Width/2,
			cfg.Field.Height-cfg.Player.Offset,
			cfg.Player.Width, cfg.Player.Height,
		),
		Lives:     cfg.Player.Lives,
		Enemies:   enemies,
		Direction: 1,
		Speed:     f.Speed,
		Status:    core.StatusRunning,
	}
}

// Clone returns a deep copy of the state.
func (s *State) Clone() State {
	c := *s
	c.Enemies = append([]core.Box(nil), s.Enemies...)
	c.PlayerBullets = append([]Projectile(nil), s.PlayerBullets...)
	c.EnemyBullets = append([]Projectile(nil), s.EnemyBullets...)
	return c
}

// Hold latches or releases horizontal movement.
func Hold(s *State, d core.Direction, active bool) {
	switch d {
	case core.DirLeft:
		s.HoldLeft = active
	case core.DirRight:
		s.HoldRight = active
	}
}

// Shoot fires a bullet upward from the middle of the ship.
func Shoot(s *State, cfg config.InvadersConfig) {
	if s.Status != core.StatusRunning {
		return
	}
	b := cfg.Bullets
	s.PlayerBullets = append(s.PlayerBullets, Projectile{
		Box: core.NewBox(s.Player.X+s.Player.W/2, s.Player.Y, b.Width, b.Height),
		VY:  -b.PlayerSpeed,
	})
}

// Step advances ship, formation and projectiles by one tick.
func Step(s *State, cfg config.InvadersConfig, rng core.Rand) core.StepResult {
	if s.Status != core.StatusRunning {
		return core.StepResult{State: s.gameState()}
	}
	s.Ticks++
	var events []core.Event

	if s.HoldLeft {
		s.Player.X -= cfg.Player.Speed
	}
	if s.HoldRight {
		s.Player.X += cfg.Player.Speed
	}
	s.Player.X = core.ClampF(s.Player.X, 0, s.Width-s.Player.W)

	moveFormation(s, cfg)

	if hits := movePlayerBullets(s); hits > 0 {
		s.Score += hits * cfg.Formation.Points
		events = append(events, core.ScoreChanged{Score: s.Score})
	}

	if rng.Float64() < cfg.Formation.FireChance && len(s.Enemies) > 0 {
		shooter := s.Enemies[rng.Intn(len(s.Enemies))]
		s.EnemyBullets = append(s.EnemyBullets, Projectile{
			Box: core.NewBox(shooter.X+shooter.W/2, shooter.Bottom(), cfg.Bullets.Width, cfg.Bullets.Height),
			VY:  cfg.Bullets.EnemySpeed,
		})
	}

	if moveEnemyBullets(s) {
		return s.terminate(events, core.CauseOutOfLives)
	}

	for _, e := range s.Enemies {
		if e.Bottom() >= s.Player.Y {
			return s.terminate(events, core.CauseInvaded)
		}
	}

	if len(s.Enemies) == 0 {
		return s.terminate(events, core.CauseCleared)
	}

	return core.StepResult{State: s.gameState(), Events: events}
}

// moveFormation reverses and drops the whole formation once when any
// enemy sits at the bound it is travelling toward, and otherwise slides
// it sideways. Positions are checked before moving.
func moveFormation(s *State, cfg config.InvadersConfig) {
	atBound := false
	for _, e := range s.Enemies {
		if (e.X <= 0 && s.Direction < 0) || (e.Right() >= s.Width && s.Direction > 0) {
			atBound = true
			break
		}
	}

	if atBound {
		s.Direction = -s.Direction
		s.Speed += cfg.Formation.SpeedIncrement
		s.Drops++
		for i := range s.Enemies {
			s.Enemies[i] = s.Enemies[i].Translate(0, cfg.Formation.DropHeight)
		}
		return
	}

	dx := s.Speed * float64(s.Direction)
	for i := range s.Enemies {
		s.Enemies[i] = s.Enemies[i].Translate(dx, 0)
	}
}

// movePlayerBullets advances player shots and resolves enemy hits.
// A bullet removes at most one enemy. It returns the number of hits.
func movePlayerBullets(s *State) int {
	hits := 0
	kept := s.PlayerBullets[:0]
	for _, b := range s.PlayerBullets {
		b.Box = b.Translate(0, b.VY)
		hit := false
		for i := len(s.Enemies) - 1; i >= 0; i-- {
			if b.Intersects(s.Enemies[i]) {
				s.Enemies = append(s.Enemies[:i], s.Enemies[i+1:]...)
				hits++
				hit = true
				break
			}
		}
		if !hit && b.Y > 0 {
			kept = append(kept, b)
		}
	}
	s.PlayerBullets = kept
	return hits
}

// moveEnemyBullets advances enemy shots and resolves player hits.
// It reports whether the last life was lost.
func moveEnemyBullets(s *State) bool {
	kept := s.EnemyBullets[:0]
	for _, b := range s.EnemyBullets {
		b.Box = b.Translate(0, b.VY)
		if b.Intersects(s.Player) {
			s.Lives--
			if s.Lives <= 0 {
				s.EnemyBullets = kept
				return true
			}
			continue
		}
		if b.Y < s.Height {
			kept = append(kept, b)
		}
	}
	s.EnemyBullets = kept
	return false
}

func (s *State) terminate(events []core.Event, cause core.Cause) core.StepResult {
	s.Status = core.StatusTerminated
	s.Cause = cause
	return core.StepResult{
		State:  s.gameState(),
		Events: append(events, core.GameOver{Cause: cause}),
	}
}

func (s *State) gameState() core.GameState {
	return core.GameState{Score: s.Score, Status: s.Status, Cause: s.Cause}
}
