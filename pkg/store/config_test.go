package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/freewrite/pkg/entry"
)

func TestLoadConfigReadsFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	data := []byte("path: " + filepath.Join(dir, "db") + "\ndebounce: 1s\nfont: serif\nsize: 18px\ntheme: light\n")
	if err := os.WriteFile(filepath.Join(dir, ".freewrite.yaml"), data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FREEWRITE_CONFIG_PATH", dir)
	t.Setenv("FREEWRITE_LOG_LEVEL", "debug")

	s, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if s.BasePath() != filepath.Join(dir, "db") {
		t.Errorf("path = %q", s.BasePath())
	}
	if s.Debounce != time.Second {
		t.Errorf("debounce = %v", s.Debounce)
	}
	want := entry.Prefs{Font: entry.FontSerif, FontSize: "18", Theme: entry.ThemeLight}
	if s.Prefs != want {
		t.Errorf("prefs = %+v, want %+v", s.Prefs, want)
	}
	if !s.ThemeSet {
		t.Error("expected ThemeSet when the file names a theme")
	}
	if s.LogLevel != "debug" {
		t.Errorf("log level = %q", s.LogLevel)
	}
	if s.LogFile != filepath.Join(dir, "db", "logs", "freewrite.log") {
		t.Errorf("log file = %q", s.LogFile)
	}
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	dir := t.TempDir()
	data := []byte("path: " + filepath.Join(dir, "db") + "\ndebounce: -5s\nfont: wingdings\nsize: huge\n")
	if err := os.WriteFile(filepath.Join(dir, ".freewrite.yaml"), data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FREEWRITE_CONFIG_PATH", dir)

	s, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if s.Debounce != DefaultDebounce {
		t.Errorf("debounce = %v, want default", s.Debounce)
	}
	if s.Prefs.Font != entry.DefaultFont || s.Prefs.FontSize != entry.DefaultFontSize {
		t.Errorf("prefs = %+v, want defaults", s.Prefs)
	}
}
