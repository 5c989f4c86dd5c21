package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-pwa/internal/platform/tui"
)

var (
	flagSSHHost     string
	flagSSHPort     int
	flagHostKey     string
	flagIdleTimeout int
)

var sshCmd = &cobra.Command{
	Use:   "ssh",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Every user keeps their own list of
recent games; all users share the play log shown by 'snake scores'.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake ssh                           # Listen on 0.0.0.0:2222
  snake ssh --port 23234              # Listen on port 23234
  snake ssh --host-key ./my_host_key  # Use specific host key
  snake ssh --db ./snake.db           # Use specific database

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	Run:  runSSH,
}

func init() {
	sshCmd.Flags().StringVar(&flagSSHHost, "host", "", "Host to listen on (default from config)")
	sshCmd.Flags().IntVar(&flagSSHPort, "port", 0, "Port to listen on (default from config)")
	sshCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	sshCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
}

func runSSH(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	host := cfg.SSH.Host
	if flagSSHHost != "" {
		host = flagSSHHost
	}
	port := cfg.SSH.Port
	if flagSSHPort != 0 {
		port = flagSSHPort
	}
	hostKey := cfg.SSH.HostKeyPath
	if flagHostKey != "" {
		hostKey = flagHostKey
	}
	idle := cfg.SSH.IdleTimeout
	if flagIdleTimeout != 0 {
		idle = flagIdleTimeout
	}

	scfg := tui.SSHServerConfig{
		Address:     net.JoinHostPort(host, strconv.Itoa(port)),
		HostKeyPath: hostKey,
		DBPath:      cfg.Storage.Path,
		IdleTimeout: time.Duration(idle) * time.Minute,
		Rules:       cfg.Rules(),
		Speed:       cfg.Speed,
		HistoryKey:  cfg.History.Key,
		HistorySize: cfg.History.Size,
		Logger:      newLogger(os.Stderr, "snake-ssh", cfg.Log.Level),
	}

	server, err := tui.NewSSHServer(scfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting snake SSH server on %s\n", scfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %d\n", port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
