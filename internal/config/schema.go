package config

// Config is the root configuration structure.
type Config struct {
	Episode  EpisodeConfig  `toml:"episode" json:"episode"`
	Player   PlayerConfig   `toml:"player" json:"player"`
	Waveform WaveformConfig `toml:"waveform" json:"waveform"`
	Waitlist WaitlistConfig `toml:"waitlist" json:"waitlist"`
	Pricing  PricingConfig  `toml:"pricing" json:"pricing"`
	TUI      TUIConfig      `toml:"tui" json:"tui"`
	Log      LogConfig      `toml:"log" json:"log"`
}

// EpisodeConfig points at the episode's segments and audio.
type EpisodeConfig struct {
	SegmentsFile string `toml:"segments_file" json:"segments_file"`
	MediaFile    string `toml:"media_file" json:"media_file"`
}

// PlayerConfig holds playback settings.
type PlayerConfig struct {
	Source       string `toml:"source" json:"source"`
	SkipSeconds  int    `toml:"skip_seconds" json:"skip_seconds"`
	TickInterval int    `toml:"tick_interval" json:"tick_interval"`
}

// WaveformConfig holds waveform animation settings.
type WaveformConfig struct {
	Bars      int `toml:"bars" json:"bars"`
	FrameRate int `toml:"frame_rate" json:"frame_rate"`
	Rows      int `toml:"rows" json:"rows"`
}

// WaitlistConfig holds the signup endpoint.
type WaitlistConfig struct {
	Endpoint string `toml:"endpoint" json:"endpoint"`
	Subject  string `toml:"subject" json:"subject"`
	Timeout  int    `toml:"timeout" json:"timeout"`
}

// PricingConfig holds the initial pricing card state.
type PricingConfig struct {
	Billing string `toml:"billing" json:"billing"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `toml:"theme" json:"theme"`
	Mouse bool   `toml:"mouse" json:"mouse"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" json:"level"`
	File  string `toml:"file" json:"file"`
}
