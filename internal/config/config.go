// Package config provides YAML-based rule configuration for the four
// simulations and the difficulty presets applied on top of it.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Arcade bundles the configuration of every game.
type Arcade struct {
	Snake    SnakeConfig
	Pong     PongConfig
	Tetris   TetrisConfig
	Invaders InvadersConfig
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	TileCount  int `yaml:"tile_count"`
	StartX     int `yaml:"start_x"`
	StartY     int `yaml:"start_y"`
	FoodPoints int `yaml:"food_points"`
	TickMS     int `yaml:"tick_ms"`
}

// PongConfig contains all configuration for the Pong game.
type PongConfig struct {
	Court  PongCourt  `yaml:"court"`
	Ball   PongBall   `yaml:"ball"`
	Paddle PongPaddle `yaml:"paddle"`
	Rules  PongRules  `yaml:"rules"`
	TickMS int        `yaml:"tick_ms"`
}

// PongCourt defines the playfield size.
type PongCourt struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongBall defines ball size and speed.
type PongBall struct {
	Size    float64 `yaml:"size"`
	Speed   float64 `yaml:"speed"`
	SpeedUp float64 `yaml:"speed_up"`
}

// PongPaddle defines paddle geometry and movement.
type PongPaddle struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	PlayerStep float64 `yaml:"player_step"`
	AIStep     float64 `yaml:"ai_step"`
	DeadZone   float64 `yaml:"dead_zone"`
}

// PongRules defines match rules.
type PongRules struct {
	WinScore int `yaml:"win_score"`
}

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Columns      int `yaml:"columns"`
	Rows         int `yaml:"rows"`
	TickMS       int `yaml:"tick_ms"`
	BaseDropMS   int `yaml:"base_drop_ms"`
	MinDropMS    int `yaml:"min_drop_ms"`
	DropStepMS   int `yaml:"drop_step_ms"`
	LinePoints   int `yaml:"line_points"`
	PointsPerLvl int `yaml:"points_per_level"`
}

// InvadersConfig contains all configuration for the Space Invaders game.
type InvadersConfig struct {
	Field     InvadersField     `yaml:"field"`
	Player    InvadersPlayer    `yaml:"player"`
	Formation InvadersFormation `yaml:"formation"`
	Bullets   InvadersBullets   `yaml:"bullets"`
	TickMS    int               `yaml:"tick_ms"`
}

// InvadersField defines the playfield size.
type InvadersField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InvadersPlayer defines the player ship.
type InvadersPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"` // distance of the ship's top edge from the bottom
	Speed  float64 `yaml:"speed"`
	Lives  int     `yaml:"lives"`
}

// InvadersFormation defines the enemy grid and its movement.
type InvadersFormation struct {
	Rows           int     `yaml:"rows"`
	Cols           int     `yaml:"cols"`
	EnemyWidth     float64 `yaml:"enemy_width"`
	EnemyHeight    float64 `yaml:"enemy_height"`
	OriginX        float64 `yaml:"origin_x"`
	OriginY        float64 `yaml:"origin_y"`
	SpacingX       float64 `yaml:"spacing_x"`
	SpacingY       float64 `yaml:"spacing_y"`
	Speed          float64 `yaml:"speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	DropHeight     float64 `yaml:"drop_height"`
	Points         int     `yaml:"points"`
	FireChance     float64 `yaml:"fire_chance"`
}

// InvadersBullets defines projectile geometry and speed.
type InvadersBullets struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PlayerSpeed float64 `yaml:"player_speed"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
}

// Tick returns the snake tick interval.
func (c SnakeConfig) Tick() time.Duration { return ms(c.TickMS) }

// Tick returns the pong tick interval.
func (c PongConfig) Tick() time.Duration { return ms(c.TickMS) }

// Tick returns the tetris tick interval.
func (c TetrisConfig) Tick() time.Duration { return ms(c.TickMS) }

// Tick returns the invaders tick interval.
func (c InvadersConfig) Tick() time.Duration { return ms(c.TickMS) }

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Validate reports every invalid field of the snake config.
func (c SnakeConfig) Validate() error {
	var errs []error
	errs = appendPositive(errs, "snake.tile_count", float64(c.TileCount))
	errs = appendPositive(errs, "snake.tick_ms", float64(c.TickMS))
	if c.StartX < 0 || c.StartX >= c.TileCount || c.StartY < 0 || c.StartY >= c.TileCount {
		errs = append(errs, fmt.Errorf("snake: start (%d,%d) outside %d tiles", c.StartX, c.StartY, c.TileCount))
	}
	if c.FoodPoints < 0 {
		errs = append(errs, fmt.Errorf("snake.food_points: must not be negative"))
	}
	return errors.Join(errs...)
}

// Validate reports every invalid field of the pong config.
func (c PongConfig) Validate() error {
	var errs []error
	errs = appendPositive(errs, "pong.court.width", c.Court.Width)
	errs = appendPositive(errs, "pong.court.height", c.Court.Height)
	errs = appendPositive(errs, "pong.ball.size", c.Ball.Size)
	errs = appendPositive(errs, "pong.ball.speed", c.Ball.Speed)
	errs = appendPositive(errs, "pong.paddle.width", c.Paddle.Width)
	errs = appendPositive(errs, "pong.paddle.height", c.Paddle.Height)
	errs = appendPositive(errs, "pong.rules.win_score", float64(c.Rules.WinScore))
	errs = appendPositive(errs, "pong.tick_ms", float64(c.TickMS))
	if c.Ball.SpeedUp < 1 {
		errs = append(errs, fmt.Errorf("pong.ball.speed_up: %v must be at least 1", c.Ball.SpeedUp))
	}
	if c.Paddle.Height > c.Court.Height {
		errs = append(errs, fmt.Errorf("pong.paddle.height: taller than the court"))
	}
	if c.Paddle.PlayerStep < 0 || c.Paddle.AIStep < 0 || c.Paddle.DeadZone < 0 {
		errs = append(errs, fmt.Errorf("pong.paddle: steps and dead zone must not be negative"))
	}
	return errors.Join(errs...)
}

// Validate reports every invalid field of the tetris config.
func (c TetrisConfig) Validate() error {
	var errs []error
	errs = appendPositive(errs, "tetris.columns", float64(c.Columns))
	errs = appendPositive(errs, "tetris.rows", float64(c.Rows))
	errs = appendPositive(errs, "tetris.tick_ms", float64(c.TickMS))
	errs = appendPositive(errs, "tetris.base_drop_ms", float64(c.BaseDropMS))
	errs = appendPositive(errs, "tetris.min_drop_ms", float64(c.MinDropMS))
	errs = appendPositive(errs, "tetris.points_per_level", float64(c.PointsPerLvl))
	if c.Columns < 4 {
		errs = append(errs, fmt.Errorf("tetris.columns: %d is narrower than a piece", c.Columns))
	}
	if c.MinDropMS > c.BaseDropMS {
		errs = append(errs, fmt.Errorf("tetris.min_drop_ms: above base_drop_ms"))
	}
	if c.DropStepMS < 0 || c.LinePoints < 0 {
		errs = append(errs, fmt.Errorf("tetris: drop_step_ms and line_points must not be negative"))
	}
	return errors.Join(errs...)
}

// Validate reports every invalid field of the invaders config.
func (c InvadersConfig) Validate() error {
	var errs []error
	errs = appendPositive(errs, "invaders.field.width", c.Field.Width)
	errs = appendPositive(errs, "invaders.field.height", c.Field.Height)
	errs = appendPositive(errs, "invaders.player.width", c.Player.Width)
	errs = appendPositive(errs, "invaders.player.height", c.Player.Height)
	errs = appendPositive(errs, "invaders.player.lives", float64(c.Player.Lives))
	errs = appendPositive(errs, "invaders.formation.enemy_width", c.Formation.EnemyWidth)
	errs = appendPositive(errs, "invaders.formation.enemy_height", c.Formation.EnemyHeight)
	errs = appendPositive(errs, "invaders.tick_ms", float64(c.TickMS))
	if c.Formation.Rows < 0 || c.Formation.Cols < 0 {
		errs = append(errs, fmt.Errorf("invaders.formation: rows and cols must not be negative"))
	}
	if c.Formation.FireChance < 0 || c.Formation.FireChance > 1 {
		errs = append(errs, fmt.Errorf("invaders.formation.fire_chance: %v outside [0,1]", c.Formation.FireChance))
	}
	if c.Formation.SpeedIncrement < 0 {
		errs = append(errs, fmt.Errorf("invaders.formation.speed_increment: must not be negative"))
	}
	return errors.Join(errs...)
}

// Validate reports every invalid field across all games.
func (a Arcade) Validate() error {
	return errors.Join(a.Snake.Validate(), a.Pong.Validate(), a.Tetris.Validate(), a.Invaders.Validate())
}

func appendPositive(errs []error, field string, v float64) []error {
	if v <= 0 {
		return append(errs, fmt.Errorf("%s: %v must be positive", field, v))
	}
	return errs
}
