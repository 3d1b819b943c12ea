package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// Defaults returns the built-in configuration of every game.
func Defaults() Arcade {
	return Arcade{
		Snake:    DefaultSnakeConfig(),
		Pong:     DefaultPongConfig(),
		Tetris:   DefaultTetrisConfig(),
		Invaders: DefaultInvadersConfig(),
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		TileCount:  30,
		StartX:     10,
		StartY:     10,
		FoodPoints: 10,
		TickMS:     150,
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Court: PongCourt{
			Width:  800,
			Height: 400,
		},
		Ball: PongBall{
			Size:    10,
			Speed:   5,
			SpeedUp: 1.1,
		},
		Paddle: PongPaddle{
			Width:      10,
			Height:     80,
			PlayerStep: 5,
			AIStep:     4,
			DeadZone:   10,
		},
		Rules: PongRules{
			WinScore: 5,
		},
		TickMS: 16,
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Columns:      10,
		Rows:         20,
		TickMS:       16,
		BaseDropMS:   1000,
		MinDropMS:    100,
		DropStepMS:   100,
		LinePoints:   100,
		PointsPerLvl: 1000,
	}
}

// DefaultInvadersConfig returns the default Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: InvadersField{
			Width:  800,
			Height: 600,
		},
		Player: InvadersPlayer{
			Width:  40,
			Height: 20,
			Offset: 40,
			Speed:  5,
			Lives:  3,
		},
		Formation: InvadersFormation{
			Rows:           5,
			Cols:           10,
			EnemyWidth:     30,
			EnemyHeight:    30,
			OriginX:        50,
			OriginY:        50,
			SpacingX:       70,
			SpacingY:       50,
			Speed:          1,
			SpeedIncrement: 0.2,
			DropHeight:     20,
			Points:         10,
			FireChance:     0.01,
		},
		Bullets: InvadersBullets{
			Width:       4,
			Height:      10,
			PlayerSpeed: 8,
			EnemySpeed:  3,
		},
		TickMS: 16,
	}
}
