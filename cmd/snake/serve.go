package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-pwa/internal/server"
	"github.com/vovakirdan/snake-pwa/web"
)

var (
	flagServeAddr string
	flagServeRoot string
	flagEmbedded  bool
	flagNoBanner  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser version over HTTP",
	Long: `Start a static file server for the browser version of the game.

Files are served from the --root directory. Anything missing there (the
page, styles and manifest) falls back to the copy built into the binary.
Build snake.wasm and the icons into the root with 'make web'.

Examples:
  snake serve                    # Listen on 0.0.0.0:3000, serve ./web
  snake serve --addr :8080       # Listen on port 8080
  snake serve --root ./dist      # Serve another directory
  snake serve --embedded         # Serve only the built-in files

Open the printed URL on a phone and use "Add to Home Screen" to install.`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "HTTP address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagServeRoot, "root", "", "Directory to serve (default from config)")
	serveCmd.Flags().BoolVar(&flagEmbedded, "embedded", false, "Serve only the files built into the binary")
	serveCmd.Flags().BoolVar(&flagNoBanner, "quiet", false, "Do not print the URL banner")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger := newLogger(os.Stderr, "snake-http", cfg.Log.Level)

	scfg := server.DefaultConfig()
	scfg.Addr = cfg.Server.Addr
	if flagServeAddr != "" {
		scfg.Addr = flagServeAddr
	}
	scfg.ShutdownTimeout = cfg.ShutdownGrace()
	if flagNoBanner {
		scfg.Banner = nil
	}

	root := cfg.Server.Root
	if flagServeRoot != "" {
		root = flagServeRoot
	}
	scfg.Root = siteFS(root, flagEmbedded)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(scfg, logger)
	if err := srv.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// siteFS returns the served file system: the root directory over the
// embedded page, or the embedded page alone.
func siteFS(root string, embeddedOnly bool) fs.FS {
	if embeddedOnly || root == "" {
		return web.FS
	}
	return server.Overlay(os.DirFS(root), web.FS)
}
