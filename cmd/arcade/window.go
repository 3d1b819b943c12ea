package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/platform/desktop"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/session"
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Open the desktop window",
	Long: `Open a native window. Pick a game with the number keys or the
arrows and Enter; Esc returns to the menu and R restarts after game over.

Examples:
  arcade window
  arcade window tetris`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("%w: %q", registry.ErrUnknownGame, gameID)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("arcade-window", false)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := desktop.Options{
		Config:    cfg,
		Logger:    logger,
		Seed:      flagSeed,
		StartGame: gameID,
	}
	if store := openStoreOptional(logger); store != nil {
		defer store.Close()
		opts.Saver = session.Saver(store)
	}
	return desktop.Run(opts)
}
