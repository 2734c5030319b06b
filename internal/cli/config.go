package cli

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/tessro/feedcast/internal/config"
	fcerrors "github.com/tessro/feedcast/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Commands for viewing and editing feedcast configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration values, including defaults and environment overrides.`,
	RunE:  runConfigShow,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit configuration file",
	Long:  `Open the configuration file in your default editor.`,
	RunE:  runConfigEdit,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long:  `Create a new configuration file with default values.`,
	RunE:  runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Supported keys:
  episode.segments_file   TOML file with [[segments]] entries
  episode.media_file      Episode audio file
  player.source           simulated or media
  player.skip_seconds     Skip distance for ←/→
  player.tick_interval    Position update period (ms)
  waveform.bars           Number of waveform bars
  waveform.frame_rate     Waveform frames per second
  waveform.rows           Waveform height in rows
  waitlist.endpoint       Signup form URL
  waitlist.subject        Signup notification subject
  waitlist.timeout        Signup request timeout (s)
  pricing.billing         monthly or yearly
  tui.theme               auto, dark or light
  tui.mouse               Mouse seeking (true/false)
  log.level               debug, info, warn or error
  log.file                Write JSON logs to this file

Examples:
  feedcast config set episode.segments_file ~/episodes/today.toml
  feedcast config set player.skip_seconds 30`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	// init and set work on the file itself, which may not exist or be valid yet.
	configInitCmd.PersistentPreRunE = skipConfig
	configSetCmd.PersistentPreRunE = skipConfig

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

type keyKind int

const (
	kindString keyKind = iota
	kindInt
	kindBool
)

var configKeys = map[string]keyKind{
	"episode.segments_file": kindString,
	"episode.media_file":    kindString,
	"player.source":         kindString,
	"player.skip_seconds":   kindInt,
	"player.tick_interval":  kindInt,
	"waveform.bars":         kindInt,
	"waveform.frame_rate":   kindInt,
	"waveform.rows":         kindInt,
	"waitlist.endpoint":     kindString,
	"waitlist.subject":      kindString,
	"waitlist.timeout":      kindInt,
	"pricing.billing":       kindString,
	"tui.theme":             kindString,
	"tui.mouse":             kindBool,
	"log.level":             kindString,
	"log.file":              kindString,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if JSONOutput() {
		return writeJSON(cmd.OutOrStdout(), cfg)
	}

	// Pretty print as TOML
	encoder := toml.NewEncoder(cmd.OutOrStdout())
	encoder.Indent = "  "
	return encoder.Encode(cfg)
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	configPath := getConfigPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("%w at %s", fcerrors.ErrConfigNotFound, configPath)
	}

	// Find editor
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"nano", "vim", "vi", "notepad"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Set EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, configPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	return editorCmd.Run()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := getConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists at %s", configPath)
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := writeConfigFile(configPath, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if JSONOutput() {
		return writeJSON(out, map[string]string{
			"status": "created",
			"path":   configPath,
		})
	}

	fmt.Fprintf(out, "Created config file: %s\n", configPath)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Point episode.segments_file at your episode, or keep the built-in sample")
	fmt.Fprintln(out, "  2. Run 'feedcast ui' to start listening")
	return nil
}

func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return config.FileName
	}

	return filepath.Join(home, config.FileName)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	configPath := getConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w at %s", fcerrors.ErrConfigNotFound, configPath)
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	rawConfig := make(map[string]any)
	if _, err := toml.Decode(string(data), &rawConfig); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if err := setConfigValue(rawConfig, key, value); err != nil {
		return err
	}

	if err := writeConfigFile(configPath, rawConfig); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if JSONOutput() {
		return writeJSON(out, map[string]string{
			"status": "updated",
			"key":    key,
			"value":  value,
		})
	}
	fmt.Fprintf(out, "Set %s = %s\n", key, value)
	return nil
}

// setConfigValue stores value under key in raw, converting it to the key's
// type, and refuses changes that would leave the config invalid.
func setConfigValue(raw map[string]any, key, value string) error {
	kind, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("%w: unknown key %q (known: %s)", fcerrors.ErrInvalidConfig, key, strings.Join(knownKeys(), ", "))
	}

	section, field, _ := strings.Cut(key, ".")

	var typed any
	switch kind {
	case kindInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("value must be an integer for %s", key)
		}
		typed = int64(i)
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("value must be true or false for %s", key)
		}
		typed = b
	default:
		typed = value
	}

	sectionMap, ok := raw[section].(map[string]any)
	if !ok {
		sectionMap = make(map[string]any)
		raw[section] = sectionMap
	}
	sectionMap[field] = typed

	// Round-trip through the schema so bad values never reach disk.
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(raw); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	check := &config.Config{TUI: config.TUIConfig{Mouse: true}}
	if _, err := toml.Decode(buf.String(), check); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	check.ApplyDefaults()
	if err := check.Validate(); err != nil {
		return fmt.Errorf("%w: %w", fcerrors.ErrInvalidConfig, err)
	}
	return nil
}

func knownKeys() []string {
	keys := make([]string, 0, len(configKeys))
	for k := range configKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func writeConfigFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	defer func() { _ = f.Close() }()

	_, _ = fmt.Fprintln(f, "# FeedCast Configuration")
	_, _ = fmt.Fprintln(f, "# https://github.com/tessro/feedcast")
	_, _ = fmt.Fprintln(f, "")

	encoder := toml.NewEncoder(f)
	encoder.Indent = "  "
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
