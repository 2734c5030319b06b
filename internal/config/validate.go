package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/tessro/feedcast/internal/pricing"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Player.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("player: %w", err))
	}
	if err := c.Waveform.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("waveform: %w", err))
	}
	if err := c.Waitlist.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("waitlist: %w", err))
	}
	if err := c.Pricing.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("pricing: %w", err))
	}
	if err := c.TUI.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tui: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks PlayerConfig for errors.
func (c *PlayerConfig) Validate() error {
	switch c.Source {
	case "", SourceSimulated, SourceMedia:
		// valid
	default:
		return fmt.Errorf("invalid source: %s (must be simulated or media)", c.Source)
	}
	if c.SkipSeconds < 0 {
		return errors.New("skip_seconds must be non-negative")
	}
	if c.TickInterval < 0 {
		return errors.New("tick_interval must be non-negative")
	}
	return nil
}

// Validate checks WaveformConfig for errors.
func (c *WaveformConfig) Validate() error {
	if c.Bars < 0 || c.Bars > 64 {
		return errors.New("bars must be between 0 and 64")
	}
	if c.FrameRate < 0 || c.FrameRate > 120 {
		return errors.New("frame_rate must be between 0 and 120")
	}
	if c.Rows < 0 || c.Rows > 8 {
		return errors.New("rows must be between 0 and 8")
	}
	return nil
}

// Validate checks WaitlistConfig for errors.
func (c *WaitlistConfig) Validate() error {
	if c.Endpoint != "" {
		u, err := url.Parse(c.Endpoint)
		if err != nil {
			return fmt.Errorf("invalid endpoint: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid endpoint: %s (must be http or https)", c.Endpoint)
		}
	}
	if c.Timeout < 0 {
		return errors.New("timeout must be non-negative")
	}
	return nil
}

// Validate checks PricingConfig for errors.
func (c *PricingConfig) Validate() error {
	_, err := pricing.ParseBilling(c.Billing)
	return err
}

// Validate checks TUIConfig for errors.
func (c *TUIConfig) Validate() error {
	switch c.Theme {
	case "", "auto", "dark", "light":
		// valid
	default:
		return fmt.Errorf("invalid theme: %s (must be auto, dark, or light)", c.Theme)
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	return nil
}
