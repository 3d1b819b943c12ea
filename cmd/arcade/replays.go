package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/replay"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

var (
	flagReplayLimit int
	flagReplayTop   bool
	flagReplayClear bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays [game]",
	Short: "List recorded rounds",
	Long: `Display the most recent recorded rounds, optionally for one game.

Abandoned rounds (quit before game over) are listed but never count
towards a best score.

Examples:
  arcade replays
  arcade replays tetris --top
  arcade replays snake --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded round",
	Long: `Load a recorded round, play its journal back from the recorded seed
and check that the final score and cause match.

Examples:
  arcade replay 6f1c2a9e-3b7d-4e0a-9c55-0d3f0a7e1b21`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replaysCmd.Flags().IntVar(&flagReplayLimit, "limit", 10, "Number of rounds to show")
	replaysCmd.Flags().BoolVar(&flagReplayTop, "top", false, "Order completed rounds by score")
	replaysCmd.Flags().BoolVar(&flagReplayClear, "clear", false, "Delete the game's recorded rounds")
}

func runReplays(cmd *cobra.Command, args []string) error {
	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("%w: %q", registry.ErrUnknownGame, gameID)
		}
	}
	if (flagReplayTop || flagReplayClear) && gameID == "" {
		return errors.New("--top and --clear need a game")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagReplayClear {
		if err := store.DeleteReplays(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted recorded rounds for %s.\n", gameID)
		return nil
	}

	var rounds []storage.ReplaySummary
	if flagReplayTop {
		rounds, err = store.TopReplays(gameID, flagReplayLimit)
	} else {
		rounds, err = store.RecentReplays(gameID, flagReplayLimit)
	}
	if err != nil {
		return err
	}

	if gameID != "" {
		best, err := store.HighScore(gameID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Recorded rounds - %s (best %d)\n", gameID, best)
	} else {
		fmt.Fprintln(out, "Recorded rounds")
	}
	fmt.Fprintln(out)

	if len(rounds) == 0 {
		fmt.Fprintln(out, "  No rounds recorded yet. Play a game to set one!")
		return nil
	}
	printRounds(out, rounds)
	return nil
}

func printRounds(out io.Writer, rounds []storage.ReplaySummary) {
	fmt.Fprintf(out, "  %-36s  %-8s  %6s  %-12s  %6s  %s\n", "ID", "Game", "Score", "Result", "Ticks", "Date")
	fmt.Fprintf(out, "  %-36s  %-8s  %6s  %-12s  %6s  %s\n", "--", "----", "-----", "------", "-----", "----")
	for _, r := range rounds {
		result := string(r.Cause)
		if !r.Completed() {
			result = "abandoned"
		}
		fmt.Fprintf(out, "  %-36s  %-8s  %6d  %-12s  %6d  %s\n",
			r.ID, r.GameID, r.Score, result, r.Ticks, r.EndedAt.Local().Format("2006-01-02 15:04"))
	}
}

func runReplay(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	l, err := store.Replay(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Round %s\n", l.ID)
	fmt.Fprintf(out, "  game     %s\n", l.Game)
	fmt.Fprintf(out, "  seed     %d\n", l.Seed)
	fmt.Fprintf(out, "  ticks    %d\n", l.Ticks)
	fmt.Fprintf(out, "  inputs   %d\n", len(l.Entries))
	fmt.Fprintf(out, "  duration %s\n", l.Duration().Round(10*time.Millisecond))
	fmt.Fprintf(out, "  recorded score %d, cause %q\n", l.Score, l.Cause)

	res, err := replay.Verify(l)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  replayed score %d, cause %q: verified\n", res.State.Score, res.State.Cause)
	return nil
}
