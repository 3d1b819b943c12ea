package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every game registered in the arcade with its tick interval
under the current configuration and difficulty.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	games := registry.List()
	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return nil
	}

	idWidth, titleWidth := len("ID"), len("Title")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
		titleWidth = max(titleWidth, len(g.Title))
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idWidth, "ID", titleWidth, "Title", "Tick")
	for _, g := range games {
		game, err := registry.Create(g.ID, cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idWidth, g.ID, titleWidth, g.Title, game.TickInterval())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'arcade play <id>' to play a game.")
	return nil
}
