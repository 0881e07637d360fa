package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPickerDefaults(t *testing.T) {
	defaults := DefaultPickerDefaults()

	if defaults.Layout != "ymd" {
		t.Errorf("Default layout = %s, want ymd", defaults.Layout)
	}
	if defaults.Locale != "en" {
		t.Errorf("Default locale = %s, want en", defaults.Locale)
	}
	if defaults.MinuteInterval != 1 {
		t.Errorf("Default minute interval = %d, want 1", defaults.MinuteInterval)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	// Save original env
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	// Set to a temp dir that doesn't have a config
	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	// Should return default config
	if cfg.Picker.Layout != "ymd" {
		t.Errorf("Loaded layout = %s, want ymd (default)", cfg.Picker.Layout)
	}
	if cfg.ColorScheme.Accent != "170" {
		t.Errorf("Loaded accent = %s, want 170 (default)", cfg.ColorScheme.Accent)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	// Save original env
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "wheelpicker")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	content := `
theme:
  preset: monochrome
picker:
  layout: dmyHM
  locale: es
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Picker.Layout != "dmyHM" {
		t.Errorf("layout = %s, want dmyHM", cfg.Picker.Layout)
	}
	if cfg.Picker.Locale != "es" {
		t.Errorf("locale = %s, want es", cfg.Picker.Locale)
	}
	// Missing values filled from defaults
	if cfg.Picker.YearBegin != 1900 {
		t.Errorf("year_begin = %d, want 1900 (default)", cfg.Picker.YearBegin)
	}
	// Preset expands into concrete colors
	if cfg.ColorScheme.Accent != "255" {
		t.Errorf("accent = %s, want 255 (monochrome)", cfg.ColorScheme.Accent)
	}
}

func TestSaveAndReload(t *testing.T) {
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg := &Config{
		ColorScheme: DefaultColorScheme(),
		Picker:      DefaultPickerDefaults(),
	}
	cfg.Picker.Layout = "hMa"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if reloaded.Picker.Layout != "hMa" {
		t.Errorf("reloaded layout = %s, want hMa", reloaded.Picker.Layout)
	}
}
