package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Sink names accepted by the sink key.
const (
	SinkStderr = "stderr"
	SinkSyslog = "syslog"
	SinkNone   = "none"
)

// Notifier names accepted by the notifier key.
const (
	NotifierDesktop  = "desktop"
	NotifierTerminal = "terminal"
	NotifierNone     = "none"
)

// Config captures the startup settings for the notification log.
type Config struct {
	Label         string
	Icon          string
	Capacity      int
	SummaryLines  int
	Notifications bool
	Toasts        bool
	PrefsPath     string
	Sink          string
	Notifier      string
}

const (
	defaultConfigPath   = "~/.config/notilog/config.toml"
	defaultPrefsPath    = "~/.config/notilog/prefs.toml"
	defaultLabel        = "Log"
	defaultIcon         = "dialog-information"
	defaultCapacity     = 1000
	defaultSummaryLines = 10
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Label:         defaultLabel,
		Icon:          defaultIcon,
		Capacity:      defaultCapacity,
		SummaryLines:  defaultSummaryLines,
		Notifications: true,
		PrefsPath:     mustExpand(defaultPrefsPath),
		Sink:          SinkStderr,
		Notifier:      NotifierDesktop,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Label         string `toml:"label"`
		Icon          string `toml:"icon"`
		Capacity      int    `toml:"capacity"`
		SummaryLines  int    `toml:"summary_lines"`
		Notifications *bool  `toml:"notifications"`
		Toasts        *bool  `toml:"toasts"`
		PrefsPath     string `toml:"prefs_path"`
		Sink          string `toml:"sink"`
		Notifier      string `toml:"notifier"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Label); v != "" {
		cfg.Label = v
	}
	if v := strings.TrimSpace(raw.Icon); v != "" {
		cfg.Icon = v
	}
	if raw.Capacity > 0 {
		cfg.Capacity = raw.Capacity
	}
	if raw.SummaryLines > 0 {
		cfg.SummaryLines = raw.SummaryLines
	}
	if raw.Notifications != nil {
		cfg.Notifications = *raw.Notifications
	}
	if raw.Toasts != nil {
		cfg.Toasts = *raw.Toasts
	}
	if v := strings.TrimSpace(raw.PrefsPath); v != "" {
		cfg.PrefsPath = mustExpand(v)
	}

	switch v := strings.ToLower(strings.TrimSpace(raw.Sink)); v {
	case "":
	case SinkStderr, SinkSyslog, SinkNone:
		cfg.Sink = v
	default:
		return Config{}, fmt.Errorf("parse config: unknown sink %q", raw.Sink)
	}

	switch v := strings.ToLower(strings.TrimSpace(raw.Notifier)); v {
	case "":
	case NotifierDesktop, NotifierTerminal, NotifierNone:
		cfg.Notifier = v
	default:
		return Config{}, fmt.Errorf("parse config: unknown notifier %q", raw.Notifier)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
