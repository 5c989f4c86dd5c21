package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-pwa/internal/platform/tui"
	"github.com/vovakirdan/snake-pwa/internal/scores"
	"github.com/vovakirdan/snake-pwa/internal/storage"
)

var (
	flagBoard  bool
	flagPlayer string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recent games and high scores",
	Long: `Display the last games played in the terminal, the top 10 games of the
play log and overall statistics.

Examples:
  snake scores
  snake scores --player alice   # Recent games of an SSH user
  snake scores --board          # Interactive scoreboard
  snake scores --clear          # Forget the play log and recent games`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive scoreboard")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Show the recent games of an SSH user")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the play log and the recent games list")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	// Open score storage
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagClear {
		if err := clearScores(store, flagPlayer, cfg.History.Key); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	var kv scores.KV = store
	if flagPlayer != "" {
		kv = store.Namespace("ssh:" + flagPlayer)
	}
	history := scores.Load(kv, cfg.History.Key, cfg.History.Size, newLogger(os.Stderr, "snake", cfg.Log.Level))

	if err := printScores(os.Stdout, history, store, flagPlayer); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

// playSource is the part of the store printScores reads.
type playSource interface {
	TopPlays(limit int) ([]storage.Play, error)
	PlayerPlays(player string, limit int) ([]storage.Play, error)
	Stats() (storage.Stats, error)
}

// clearScores deletes the play log and the recent games of the local
// terminal, or of one SSH player when player is set.
func clearScores(store *storage.Store, player, historyKey string) error {
	if err := store.ClearPlays(); err != nil {
		return err
	}
	if player != "" {
		return store.Namespace("ssh:" + player).Delete(historyKey)
	}
	return store.Delete(historyKey)
}

// printScores writes the recent history, the top plays (or the latest
// plays of player) and statistics.
func printScores(w io.Writer, history *scores.History, plays playSource, player string) error {
	fmt.Fprintln(w, "Last 5 games")
	for _, line := range scores.Lines(history.Scores()) {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintln(w)

	title := "High Scores"
	var top []storage.Play
	var err error
	if player != "" {
		title = "Latest games of " + player
		top, err = plays.PlayerPlays(player, 10)
	} else {
		top, err = plays.TopPlays(10)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(w, title)
	if len(top) == 0 {
		fmt.Fprintln(w, "  No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'snake play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-8s  %-12s  %s\n", "Rank", "Score", "Length", "Time", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-8s  %-12s  %s\n", "----", "-----", "------", "----", "------", "----")

	for i, p := range top {
		player := p.Player
		if player == "" {
			player = "local"
		}
		fmt.Fprintf(w, "  %-4d  %-6d  %-6d  %-8s  %-12s  %s\n",
			i+1, p.Score, p.Length, p.Duration.Round(time.Second), player, p.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := plays.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Games: %d  Best: %d  Average: %.1f\n", stats.Games, stats.HighScore, stats.AvgScore)
	return nil
}
