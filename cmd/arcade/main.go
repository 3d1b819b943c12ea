// arcade plays four retro games (snake, pong, tetris, space invaders) in
// the terminal, over SSH, in a browser or in a desktop window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade web               - Serve the browser client
//	arcade window            - Open the desktop window
//	arcade replays [game]    - List recorded rounds
//	arcade replay <id>       - Re-simulate and verify a recorded round
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config-dir <dir>    - Directory with per-game YAML overrides
//	--difficulty <name>   - easy, normal or hard
//	--db <path>           - Set database path (default: ~/.arcade/arcade.db)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/retro-arcade/internal/games/invaders"
	_ "github.com/vovakirdan/retro-arcade/internal/games/pong"
	_ "github.com/vovakirdan/retro-arcade/internal/games/snake"
	_ "github.com/vovakirdan/retro-arcade/internal/games/tetris"
)

var (
	// Global flags
	flagSeed       int64
	flagConfigDir  string
	flagDifficulty string
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Retro Arcade - snake, pong, tetris and space invaders",
	Long: `Retro Arcade plays four classic games on one engine. The same
simulations run in the terminal, over SSH, in a browser and in a desktop
window, and every round is journaled so it can be replayed.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  web      - Serve the browser client
  window   - Open the desktop window
  replays  - List recorded rounds
  replay   - Re-simulate a recorded round

Examples:
  arcade list
  arcade play snake
  arcade menu --difficulty hard
  arcade serve --ssh :2222
  arcade web --addr :8080
  arcade replay 6f1c...`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Directory with per-game YAML config overrides")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/arcade.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig reads the game configuration and applies --difficulty.
func loadConfig() (config.Arcade, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Arcade{}, err
	}
	cfg, err := config.Load(flagConfigDir)
	if err != nil {
		return config.Arcade{}, err
	}
	return config.ApplyPreset(cfg, preset)
}

// newLogger builds the logger for a command. Terminal hosts own stdout,
// so without --log-file they discard logs; servers log to stderr.
func newLogger(prefix string, server bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var (
		w       io.Writer = io.Discard
		cleanup           = func() {}
	)
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		cleanup = func() { _ = f.Close() }
	case server:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
	return logger, cleanup, nil
}

// openStoreOptional opens the replay database. Playing works without it,
// so a failure is only a warning.
func openStoreOptional(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
		logger.Warn("replay database unavailable", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
