// Package server is the static asset server for the browser build: it
// serves the page, the wasm binary and the PWA files over plain HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Config holds configuration for the asset server.
type Config struct {
	// Addr is the host:port to listen on (e.g., "0.0.0.0:3000").
	Addr string

	// Root is the file system served at "/".
	Root fs.FS

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// Banner receives the startup message; nil disables it.
	Banner io.Writer
}

// DefaultConfig returns a config with the classic defaults.
func DefaultConfig() Config {
	return Config{
		Addr:            "0.0.0.0:3000",
		ShutdownTimeout: 10 * time.Second,
		Banner:          os.Stdout,
	}
}

// Server wraps an http.Server serving static files.
type Server struct {
	config Config
	server *http.Server
	logger *log.Logger
}

// New creates a server. The logger defaults to a timestamped stderr logger.
func New(cfg Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-http",
		})
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{config: cfg, logger: logger}
	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the logged file handler.
func (s *Server) Handler() http.Handler {
	return loggingMiddleware(s.logger, NewHandler(s.config.Root, s.logger))
}

// ListenAndServe binds the address, prints the banner and serves until ctx
// is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("server: cannot listen on %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on an existing listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting HTTP server", "address", ln.Addr().String())

	if s.config.Banner != nil {
		_, port, _ := net.SplitHostPort(ln.Addr().String())
		ips, err := LocalIPv4s()
		if err != nil {
			s.logger.Warn("cannot list network interfaces", "error", err)
		}
		WriteBanner(s.config.Banner, port, ips)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// LocalIPv4s returns the IPv4 addresses of every non-loopback interface.
func LocalIPv4s() ([]string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil, err
	}

	var ips []string
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipnet.IP.To4(); ip4 != nil {
			ips = append(ips, ip4.String())
		}
	}
	return ips, nil
}

// WriteBanner prints the startup message with one URL per address.
func WriteBanner(w io.Writer, port string, ips []string) {
	var b strings.Builder
	b.WriteString("\nServer is running!\n")
	b.WriteString("You can access the game using any of these URLs:\n")
	if len(ips) == 0 {
		fmt.Fprintf(&b, "http://localhost:%s\n", port)
	}
	for _, ip := range ips {
		fmt.Fprintf(&b, "http://%s:%s\n", ip, port)
	}
	b.WriteString("\nTo install as PWA on mobile:\n")
	b.WriteString("1. Open one of the URLs above on your mobile device\n")
	b.WriteString("2. Add to Home Screen using your browser's menu\n")
	b.WriteString("\nPress Ctrl+C to stop the server\n")
	io.WriteString(w, b.String())
}
