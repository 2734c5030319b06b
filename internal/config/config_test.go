package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Player.Source != SourceSimulated {
		t.Errorf("Player.Source = %q, want %q", cfg.Player.Source, SourceSimulated)
	}
	if cfg.Player.SkipSeconds != 15 {
		t.Errorf("Player.SkipSeconds = %d, want 15", cfg.Player.SkipSeconds)
	}
	if cfg.Player.TickInterval != 100 {
		t.Errorf("Player.TickInterval = %d, want 100", cfg.Player.TickInterval)
	}
	if cfg.Waveform.Bars != 12 {
		t.Errorf("Waveform.Bars = %d, want 12", cfg.Waveform.Bars)
	}
	if cfg.Waitlist.Subject != "New FeedCast Waitlist Signup" {
		t.Errorf("Waitlist.Subject = %q", cfg.Waitlist.Subject)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadFrom(t *testing.T) {
	t.Setenv("FEEDCAST_PLAYER_SOURCE", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[player]
source = "media"
skip_seconds = 30

[tui]
mouse = false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Player.Source != SourceMedia {
		t.Errorf("Player.Source = %q, want media", cfg.Player.Source)
	}
	if cfg.Player.SkipSeconds != 30 {
		t.Errorf("Player.SkipSeconds = %d, want 30", cfg.Player.SkipSeconds)
	}
	if cfg.TUI.Mouse {
		t.Error("TUI.Mouse = true, want false from file")
	}
	if cfg.Player.TickInterval != 100 {
		t.Errorf("Player.TickInterval = %d, want default 100", cfg.Player.TickInterval)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FEEDCAST_WAITLIST_ENDPOINT", "http://localhost:9999/join")
	t.Setenv("FEEDCAST_PLAYER_SKIP_SECONDS", "5")
	t.Setenv("FEEDCAST_LOG_LEVEL", "debug")

	cfg := &Config{}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	if cfg.Waitlist.Endpoint != "http://localhost:9999/join" {
		t.Errorf("Waitlist.Endpoint = %q", cfg.Waitlist.Endpoint)
	}
	if cfg.Player.SkipSeconds != 5 {
		t.Errorf("Player.SkipSeconds = %d, want 5", cfg.Player.SkipSeconds)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad source", func(c *Config) { c.Player.Source = "vinyl" }, "player: invalid source"},
		{"negative skip", func(c *Config) { c.Player.SkipSeconds = -1 }, "skip_seconds"},
		{"too many bars", func(c *Config) { c.Waveform.Bars = 100 }, "waveform: bars"},
		{"bad endpoint scheme", func(c *Config) { c.Waitlist.Endpoint = "ftp://example.com" }, "waitlist: invalid endpoint"},
		{"bad billing", func(c *Config) { c.Pricing.Billing = "weekly" }, "pricing: invalid billing"},
		{"bad theme", func(c *Config) { c.TUI.Theme = "neon" }, "tui: invalid theme"},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, "log: invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Player.Source = "vinyl"
	cfg.Log.Level = "trace"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !strings.Contains(err.Error(), "player:") || !strings.Contains(err.Error(), "log:") {
		t.Errorf("Validate() = %q, want both sections reported", err)
	}
}
