package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-arcade/internal/platform/tui"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game in the terminal.

Controls:
  snake     Arrows steer
  pong      W/S move the paddle
  tetris    Left/Right move, Down drops, A/D rotate
  invaders  Left/Right move, Space shoots
  R         Restart (after game over)
  Esc       Back to the menu
  Q/Ctrl+C  Quit

Difficulty options:
  easy    Slower snake, slower CPU paddle, extra lives
  normal  Default rules
  hard    Faster everything, fewer lives

Examples:
  arcade play snake
  arcade play tetris --difficulty hard
  arcade play pong --seed 42
  arcade play invaders --config-dir ./configs`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}
	return runTerminal(gameID)
}

// runTerminal runs the local terminal shell, opening gameID directly
// when it is set.
func runTerminal(gameID string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("arcade", false)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStoreOptional(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(tui.Options{
		Config:    cfg,
		Store:     store,
		Logger:    logger,
		Seed:      flagSeed,
		StartGame: gameID,
		Width:     width,
		Height:    height,
	})
}
