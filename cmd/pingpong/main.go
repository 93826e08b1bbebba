// pingpong is Pong against the computer, played in the terminal.
//
// Usage:
//
//	pingpong play     - Play a match locally
//	pingpong serve    - Start SSH server, one match per connection
//	pingpong config   - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.pingpong, ./configs, built-in)
//	--best-of <n>       - Match format: 3, 5 or 7
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible serves
//	--mute              - Disable sound
//	--watch <addr>      - Serve a read-only WebSocket spectator feed
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/pong"
)

var (
	// Global flags
	flagConfig   string
	flagBestOf   int
	flagFPS      int
	flagSeed     int64
	flagMute     bool
	flagWatch    string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pingpong",
	Short: "Pong against the computer in your terminal",
	Long: `pingpong is a terminal Pong game. You control the left paddle,
the computer tracks the ball with the right one.

Available commands:
  play     - Play a match locally
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  pingpong play
  pingpong play --best-of 7 --mute
  pingpong play --watch :8080
  pingpong serve --ssh :2222
  pingpong config > ~/.pingpong/pong.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagBestOf, "best-of", 0, "Match format: 3, 5 or 7 (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	rootCmd.PersistentFlags().StringVar(&flagWatch, "watch", "", "Spectator feed address (e.g. :8080), disabled if empty")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. The returned closer releases the log
// file, if any.
func newLogger(level, file string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "pingpong",
		Level:           lvl,
	})
	return logger, closer, nil
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (config.PongConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	return applyOverrides(cfg, flagBestOf, flagMute)
}

func applyOverrides(cfg config.PongConfig, bestOf int, mute bool) (config.PongConfig, error) {
	if bestOf != 0 {
		b, err := pong.ParseBestOf(bestOf)
		if err != nil {
			return cfg, err
		}
		cfg.Match.BestOf = int(b)
	}
	if mute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// runtimeConfig builds the loop settings for a screen of the given size.
func runtimeConfig(width, height int) (core.RuntimeConfig, error) {
	if flagFPS <= 0 || flagFPS > 240 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be between 1 and 240, got %d", flagFPS)
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, nil
}
