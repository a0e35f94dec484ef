package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPersistenceRoundTrip(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if _, ok, err := p.Get(KeyContent); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := p.Set(KeyContent, "first draft"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := p.Get(KeyContent)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got != "first draft" {
		t.Fatalf("got %q", got)
	}

	if _, err := os.Stat(filepath.Join(base, KeyContent)); err != nil {
		t.Fatalf("expected flat file for key: %v", err)
	}
}

func TestPersistenceSeesExternalWrites(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Set(KeyTheme, "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, KeyTheme), []byte("light"), 0o600); err != nil {
		t.Fatalf("external write: %v", err)
	}
	got, _, err := p.Get(KeyTheme)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "light" {
		t.Fatalf("expected external value, got %q", got)
	}
}

func TestLoadRejectsEmptyBasePath(t *testing.T) {
	if _, err := Load(testConfig{}); err == nil {
		t.Fatal("expected error for empty base path")
	}
}
