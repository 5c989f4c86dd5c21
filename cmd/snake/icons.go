package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-pwa/internal/icons"
)

var flagIconsOut string

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Generate web app icons and splash screens",
	Long: `Render the home screen icons and iOS splash screens used by the
browser version.

Examples:
  snake icons                   # Write into web/icons
  snake icons --out ./dist/icons`,
	Args: cobra.NoArgs,
	Run:  runIcons,
}

func init() {
	iconsCmd.Flags().StringVar(&flagIconsOut, "out", "web/icons", "Output directory")
}

func runIcons(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "snake-icons", flagLogLevel)

	paths, err := icons.Generate(flagIconsOut, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating icons: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d files in %s\n", len(paths), flagIconsOut)
}
