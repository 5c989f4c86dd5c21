// snake is the Snake game: terminal, SSH and browser hosts in one binary.
//
// Usage:
//
//	snake play              - Play in the terminal
//	snake serve             - Serve the browser version over HTTP
//	snake ssh               - Start SSH server for remote play
//	snake scores            - Show recent games and the play log
//	snake icons             - Generate PWA icons and splash screens
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--db <path>           - Database path (default: ~/.snake/snake.db)
//	--seed <value>        - RNG seed for reproducible gameplay
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-pwa/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDBPath     string
	flagSeed       int64
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal and browser",
	Long: `Snake is the classic grid game: eat food, grow, and avoid the walls
and your own tail. It runs in the terminal, over SSH, and in the browser
as an installable web app.

Available commands:
  play     - Play in the terminal
  serve    - Serve the browser version
  ssh      - Start SSH server for remote play
  scores   - View recent games and high scores
  icons    - Generate web app icons

Examples:
  snake play
  snake play --difficulty hard
  snake serve --addr :8080
  snake ssh --port 2222
  snake scores --board`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sshCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(iconsCmd)
}

// loadConfig loads the configuration and applies the global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// mustLoadConfig is loadConfig for commands that cannot run without one.
func mustLoadConfig() config.Config {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates a timestamped logger at the configured level.
func newLogger(w io.Writer, prefix, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			logger.Warn("unknown log level, using info", "level", level)
			lvl = log.InfoLevel
		}
		logger.SetLevel(lvl)
	}
	return logger
}
