package main

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/platform/tui"
	"github.com/vovakirdan/pingpong/internal/pong"
)

func TestApplyOverrides(t *testing.T) {
	base := config.DefaultPongConfig()

	cfg, err := applyOverrides(base, 0, false)
	if err != nil {
		t.Fatalf("applyOverrides() failed: %v", err)
	}
	if cfg.Match.BestOf != base.Match.BestOf || cfg.Audio.Enabled != base.Audio.Enabled {
		t.Errorf("No flags should keep the config, got %+v", cfg)
	}

	cfg, err = applyOverrides(base, 7, true)
	if err != nil {
		t.Fatalf("applyOverrides() failed: %v", err)
	}
	if cfg.Match.BestOf != 7 {
		t.Errorf("BestOf = %d, expected 7", cfg.Match.BestOf)
	}
	if cfg.Audio.Enabled {
		t.Error("--mute should disable audio")
	}

	if _, err := applyOverrides(base, 4, false); !errors.Is(err, pong.ErrInvalidBestOf) {
		t.Errorf("applyOverrides(4) = %v, expected ErrInvalidBestOf", err)
	}
}

func TestNewLogger(t *testing.T) {
	logger, closer, err := newLogger("debug", "")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	defer closer.Close()
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("GetLevel() = %v, expected debug", logger.GetLevel())
	}

	if _, _, err := newLogger("loud", ""); err == nil {
		t.Error("newLogger() should reject unknown levels")
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := t.TempDir() + "/pong.log"

	logger, closer, err := newLogger("info", path)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("hello")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"localhost:2222", "2222"},
		{"[::1]:22", "22"},
		{"nonsense", "nonsense"},
	}

	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.want {
			t.Errorf("portOf(%q) = %q, expected %q", tt.addr, got, tt.want)
		}
	}
}

func TestServeFlagDefaults(t *testing.T) {
	defaults := tui.DefaultSSHServerConfig()

	if got := serveCmd.Flags().Lookup("ssh").DefValue; got != defaults.Address {
		t.Errorf("--ssh default = %q, expected %q", got, defaults.Address)
	}

	timeout, err := serveCmd.Flags().GetInt("idle-timeout")
	if err != nil {
		t.Fatalf("GetInt(idle-timeout) failed: %v", err)
	}
	if got := time.Duration(timeout) * time.Minute; got != defaults.IdleTimeout {
		t.Errorf("--idle-timeout default = %v, expected %v", got, defaults.IdleTimeout)
	}
}
