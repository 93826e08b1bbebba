package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/pingpong/internal/platform/tui"
	"github.com/vovakirdan/pingpong/internal/spectate"
	"github.com/vovakirdan/pingpong/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pingpong SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own match against the computer. Results are
kept in memory for the lifetime of the server and shared by all sessions.
Sound is disabled for SSH sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pingpong/host_key

Examples:
  pingpong serve                           # Listen on :23234 with auto-generated key
  pingpong serve --ssh :2222               # Listen on port 2222
  pingpong serve --watch :8080             # Also stream matches to spectators
  pingpong serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, logCloser, err := newLogger(flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rt, err := runtimeConfig(0, 0) // sized per session from the PTY
	if err != nil {
		return err
	}

	ledger, err := storage.Open()
	if err != nil {
		return fmt.Errorf("cannot open results ledger: %w", err)
	}
	defer ledger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := tui.Env{
		Config:  cfg,
		Runtime: rt,
		Logger:  logger,
		Ledger:  ledger,
	}

	g, gctx := errgroup.WithContext(ctx)

	if flagWatch != "" {
		hub := spectate.NewHub(logger)
		env.Hub = hub
		g.Go(func() error {
			return hub.ListenAndServe(gctx, flagWatch)
		})
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}, env)
	if err != nil {
		stop()
		_ = g.Wait()
		return err
	}

	fmt.Printf("Starting pingpong SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	g.Go(func() error {
		return server.ListenAndServe(gctx)
	})

	return g.Wait()
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
