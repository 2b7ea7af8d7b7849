package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/notilog/internal/logs"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p != Defaults() {
		t.Fatalf("Load = %#v, want %#v", p, Defaults())
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "notilog")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	content := "level = \"warn\"\nfilter = \"Example\"\ntheme = \"Slate\"\n"
	if err := os.WriteFile(prefsFile, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Level != logs.Warn || p.Filter != "Example" || p.Theme != "Slate" {
		t.Fatalf("Load = %#v, want warn/Example/Slate", p)
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "subdir", "prefs.toml")

	p := Prefs{Level: logs.Error, Filter: "Net", Theme: "Kanagawa"}
	if err := Save(prefsFile, p); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded != p {
		t.Fatalf("Load = %#v, want %#v", loaded, p)
	}
}

func TestLoad_InvalidLevelFallsBackToDefaults(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("level = \"loud\"\nfilter = \"A\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p != Defaults() {
		t.Fatalf("Load = %#v, want defaults", p)
	}
}

func TestLoad_WTFLevelIsNotSelectable(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("level = \"wtf\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, _ := Load(prefsFile)
	if p.Level != logs.Verbose {
		t.Fatalf("Level = %v, want Verbose", p.Level)
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p != Defaults() {
		t.Fatalf("Load = %#v, want defaults", p)
	}
}

func TestPersister_UpdatesOneKeyAtATime(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	p := NewPersister(prefsFile)

	if err := p.PutTheme("Slate"); err != nil {
		t.Fatalf("PutTheme: %v", err)
	}
	if err := p.PutLevel(logs.Debug); err != nil {
		t.Fatalf("PutLevel: %v", err)
	}
	if err := p.PutFilter("Example"); err != nil {
		t.Fatalf("PutFilter: %v", err)
	}

	loaded, _ := Load(prefsFile)
	if want := (Prefs{Level: logs.Debug, Filter: "Example", Theme: "Slate"}); loaded != want {
		t.Fatalf("Load = %#v, want %#v", loaded, want)
	}

	if err := p.PutFilter(""); err != nil {
		t.Fatalf("PutFilter: %v", err)
	}
	loaded, _ = Load(prefsFile)
	if loaded.Filter != "" || loaded.Level != logs.Debug {
		t.Fatalf("Load = %#v, want cleared filter and kept level", loaded)
	}
}
