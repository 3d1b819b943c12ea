package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config directory at an empty location.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestLoadPartialOverride(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pong.yaml"), "rules:\n  win_score: 7\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Pong.Rules.WinScore)
	assert.Equal(t, 800.0, cfg.Pong.Court.Width)
	assert.Equal(t, DefaultSnakeConfig(), cfg.Snake, "games without a file keep defaults")
}

func TestLoadUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".arcade", "configs", "snake.yaml"), "tick_ms: 90\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.Snake.TickMS)
	assert.Equal(t, 30, cfg.Snake.TileCount)
}

func TestLoadExplicitParseError(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tetris.yaml"), "columns: [\n")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tetris.yaml")
}

func TestLoadImplicitParseErrorFallsThrough(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".arcade", "configs", "tetris.yaml"), "columns: [\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg.Tetris)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "snake.yaml"), "tile_count: 0\n")
	writeFile(t, filepath.Join(dir, "invaders.yaml"), "formation:\n  fire_chance: 2\n")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snake.tile_count")
	assert.Contains(t, err.Error(), "invaders.formation.fire_chance")
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := DefaultPongConfig()
	cfg.Court.Width = 0
	cfg.Ball.SpeedUp = 0.5
	cfg.Paddle.Height = 1000

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"pong.court.width", "pong.ball.speed_up", "pong.paddle.height"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
	}{
		{"", DifficultyNormal},
		{"easy", DifficultyEasy},
		{"HARD", DifficultyHard},
		{" normal ", DifficultyNormal},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParsePreset("nightmare")
	require.ErrorIs(t, err, ErrUnknownPreset)
}

func TestApplyPreset(t *testing.T) {
	base := Defaults()

	normal, err := ApplyPreset(base, DifficultyNormal)
	require.NoError(t, err)
	assert.Equal(t, base, normal)

	easy, err := ApplyPreset(base, DifficultyEasy)
	require.NoError(t, err)
	assert.Equal(t, 200, easy.Snake.TickMS)
	assert.Equal(t, 3.0, easy.Pong.Paddle.AIStep)
	assert.Equal(t, 1200, easy.Tetris.BaseDropMS)
	assert.Equal(t, 5, easy.Invaders.Player.Lives)
	assert.InDelta(t, 0.005, easy.Invaders.Formation.FireChance, 1e-9)

	hard, err := ApplyPreset(base, DifficultyHard)
	require.NoError(t, err)
	assert.Equal(t, 100, hard.Snake.TickMS)
	assert.Equal(t, 6.0, hard.Pong.Paddle.AIStep)
	assert.Equal(t, 800, hard.Tetris.BaseDropMS)
	assert.Equal(t, 2, hard.Invaders.Player.Lives)
	require.NoError(t, hard.Validate())

	assert.Equal(t, 150, base.Snake.TickMS, "input is not modified")

	_, err = ApplyPreset(base, "insane")
	require.ErrorIs(t, err, ErrUnknownPreset)
}

func TestTickDurations(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "150ms", cfg.Snake.Tick().String())
	assert.Equal(t, "16ms", cfg.Pong.Tick().String())
	assert.Equal(t, "16ms", cfg.Tetris.Tick().String())
	assert.Equal(t, "16ms", cfg.Invaders.Tick().String())
}
