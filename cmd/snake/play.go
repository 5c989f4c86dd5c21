package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-pwa/internal/core"
	"github.com/vovakirdan/snake-pwa/internal/platform/tui"
	"github.com/vovakirdan/snake-pwa/internal/scores"
	"github.com/vovakirdan/snake-pwa/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game of Snake in the terminal.

Controls:
  Arrows/WASD  - Steer
  Mouse drag   - Swipe to steer
  Enter/Space  - Start or restart
  ?            - Toggle help
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - The classic 150ms start, 2ms faster per food
  hard   - Fast start, steep speed-up
  fixed  - No speed-up at all

Examples:
  snake play
  snake play --difficulty easy
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	// The TUI owns stdout and stderr, so logs go to a file
	logOut, closeLog := openLogFile(cfg.Log.File)
	defer closeLog()
	logger := newLogger(logOut, "snake", cfg.Log.Level)

	// Get terminal size early so the first frame is laid out correctly
	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	mcfg := tui.ModelConfig{
		Rules:  cfg.Rules(),
		Speed:  cfg.Speed,
		Seed:   rt.Seed,
		Width:  rt.ScreenW,
		Height: rt.ScreenH,
		Logger: logger,
	}

	// Open score storage
	var kv scores.KV = scores.NewMemoryKV()
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open database, scores will not persist", "error", err)
		// Continue without storage - game still works
		store = nil
	} else {
		kv = store
		mcfg.Plays = store
	}
	mcfg.History = scores.Load(kv, cfg.History.Key, cfg.History.Size, logger)

	// Run the game
	runErr := tui.Run(mcfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogFile opens the terminal host log, discarding logs when it cannot.
func openLogFile(path string) (io.Writer, func()) {
	if path == "" {
		return io.Discard, func() {}
	}
	expanded, err := storage.ExpandPath(path)
	if err != nil {
		return io.Discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}
