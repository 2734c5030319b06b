package config

const (
	SourceSimulated = "simulated"
	SourceMedia     = "media"
)

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Player: PlayerConfig{
			Source:       SourceSimulated,
			SkipSeconds:  15,
			TickInterval: 100,
		},
		Waveform: WaveformConfig{
			Bars:      12,
			FrameRate: 30,
			Rows:      3,
		},
		Waitlist: WaitlistConfig{
			Endpoint: "https://formspree.io/f/feedcast",
			Subject:  "New FeedCast Waitlist Signup",
			Timeout:  10,
		},
		Pricing: PricingConfig{
			Billing: "monthly",
		},
		TUI: TUIConfig{
			Theme: "auto",
			Mouse: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Player
	if c.Player.Source == "" {
		c.Player.Source = d.Player.Source
	}
	if c.Player.SkipSeconds == 0 {
		c.Player.SkipSeconds = d.Player.SkipSeconds
	}
	if c.Player.TickInterval == 0 {
		c.Player.TickInterval = d.Player.TickInterval
	}

	// Waveform
	if c.Waveform.Bars == 0 {
		c.Waveform.Bars = d.Waveform.Bars
	}
	if c.Waveform.FrameRate == 0 {
		c.Waveform.FrameRate = d.Waveform.FrameRate
	}
	if c.Waveform.Rows == 0 {
		c.Waveform.Rows = d.Waveform.Rows
	}

	// Waitlist
	if c.Waitlist.Endpoint == "" {
		c.Waitlist.Endpoint = d.Waitlist.Endpoint
	}
	if c.Waitlist.Subject == "" {
		c.Waitlist.Subject = d.Waitlist.Subject
	}
	if c.Waitlist.Timeout == 0 {
		c.Waitlist.Timeout = d.Waitlist.Timeout
	}

	// Pricing
	if c.Pricing.Billing == "" {
		c.Pricing.Billing = d.Pricing.Billing
	}

	// TUI
	if c.TUI.Theme == "" {
		c.TUI.Theme = d.TUI.Theme
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
