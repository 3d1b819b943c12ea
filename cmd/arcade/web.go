package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/platform/web"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the browser client",
	Long: `Start an HTTP server with the canvas client. Each browser tab gets
its own session over a WebSocket; keyboard, on-screen buttons and swipes
are all accepted.

Examples:
  arcade web
  arcade web --addr :9000`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	arcade, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("arcade-web", true)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	cfg := web.DefaultConfig()
	cfg.Address = flagWebAddr
	cfg.Arcade = arcade
	cfg.Seed = flagSeed

	fmt.Printf("Serving the arcade on http://localhost%s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signalContext()
	defer stop()
	return web.NewServer(cfg, store, logger).ListenAndServe(ctx)
}
