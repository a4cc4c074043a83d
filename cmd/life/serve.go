package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Life SSH server",
	Long: `Start an SSH server that lets users connect and play Life.

Each SSH connection gets its own grid. Runs are recorded under the SSH
user name and all users share the same run history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.life/host_key

Examples:
  life serve                           # Listen on :23235 with auto-generated key
  life serve --ssh :2222               # Listen on port 2222
  life serve --host-key ./my_host_key  # Use specific host key
  life serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset for every session: slow, normal, fast, turbo")
}

func runServe(_ *cobra.Command, _ []string) {
	lifeCfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("life-ssh", os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Life:        lifeCfg,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Life SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %s\n", sshPort(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(context.Background()); err != nil {
		fail("server: %v", err)
	}
}

// sshPort returns the port part of a listen address.
func sshPort(addr string) string {
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i+1:]
	}
	return addr
}
