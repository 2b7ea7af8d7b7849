// Package prefs handles the durable display settings.
// Preferences are stored in ~/.config/notilog/prefs.toml under the keys
// level, filter and theme.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/notilog/internal/logs"
)

// Prefs holds the persisted settings.
type Prefs struct {
	Level  logs.Level `toml:"level"`
	Filter string     `toml:"filter"`
	Theme  string     `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/notilog/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Defaults returns show-all settings with the default theme.
func Defaults() Prefs {
	return Prefs{Level: logs.Verbose, Theme: defaultTheme}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults if missing.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), nil
	}

	prefs := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs, nil // Graceful degradation
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return Defaults(), nil // Graceful degradation
	}

	if !prefs.Level.Valid() || prefs.Level == logs.WTF {
		prefs.Level = logs.Verbose
	}
	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}

	return prefs, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	if !p.Level.Valid() {
		p.Level = logs.Verbose
	}
	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

// Persister rewrites one key of the preferences file at a time. It satisfies
// state.Persister.
type Persister struct {
	mu   sync.Mutex
	path string
}

// NewPersister persists to path; empty uses the default location.
func NewPersister(path string) *Persister {
	return &Persister{path: path}
}

// PutLevel stores the display level.
func (p *Persister) PutLevel(level logs.Level) error {
	return p.update(func(pr *Prefs) { pr.Level = level })
}

// PutFilter stores the tag filter; empty means no filter.
func (p *Persister) PutFilter(tag string) error {
	return p.update(func(pr *Prefs) { pr.Filter = tag })
}

// PutTheme stores the viewer theme name.
func (p *Persister) PutTheme(name string) error {
	return p.update(func(pr *Prefs) { pr.Theme = name })
}

func (p *Persister) update(mutate func(*Prefs)) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	current, _ := Load(p.path)
	mutate(&current)
	return Save(p.path, current)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
