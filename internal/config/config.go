package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// FileName is the config file name in the home directory.
const FileName = ".feedcastrc"

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.feedcastrc, $XDG_CONFIG_HOME/feedcast/config.toml, ~/.config/feedcast/config.toml
func Load() (*Config, error) {
	// Mouse defaults to on; decoding into a zero Config could not tell an
	// explicit false from a missing key.
	cfg := &Config{TUI: TUIConfig{Mouse: true}}

	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{TUI: TUIConfig{Mouse: true}}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, FileName),
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	paths = append(paths, filepath.Join(xdgConfig, "feedcast", "config.toml"))

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Episode
	if v := os.Getenv("FEEDCAST_EPISODE_SEGMENTS_FILE"); v != "" {
		cfg.Episode.SegmentsFile = v
	}
	if v := os.Getenv("FEEDCAST_EPISODE_MEDIA_FILE"); v != "" {
		cfg.Episode.MediaFile = v
	}

	// Player
	if v := os.Getenv("FEEDCAST_PLAYER_SOURCE"); v != "" {
		cfg.Player.Source = v
	}
	if v := os.Getenv("FEEDCAST_PLAYER_SKIP_SECONDS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Player.SkipSeconds = i
		}
	}

	// Waitlist
	if v := os.Getenv("FEEDCAST_WAITLIST_ENDPOINT"); v != "" {
		cfg.Waitlist.Endpoint = v
	}
	if v := os.Getenv("FEEDCAST_WAITLIST_TIMEOUT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Waitlist.Timeout = i
		}
	}

	// Pricing
	if v := os.Getenv("FEEDCAST_PRICING_BILLING"); v != "" {
		cfg.Pricing.Billing = v
	}

	// TUI
	if v := os.Getenv("FEEDCAST_TUI_THEME"); v != "" {
		cfg.TUI.Theme = v
	}

	// Log
	if v := os.Getenv("FEEDCAST_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FEEDCAST_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
