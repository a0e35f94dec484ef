// Package export moves entry text between the store and ordinary files.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/mitchellh/go-homedir"
)

// Exporter writes a buffer to a file chosen by the user.
type Exporter interface {
	Export(ctx context.Context, path, content string) error
}

// File is an Exporter for the local filesystem. Writes are atomic: the
// content lands in a temp file beside the target and is renamed over it.
type File struct{}

func (File) Export(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := ExpandPath(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("export: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("export: write %s: %w", target, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("export: write %s: %w", target, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("export: chmod %s: %w", target, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("export: rename into %s: %w", target, err)
	}
	return nil
}

// ExpandPath resolves a leading ~ and cleans the result.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("export: empty path")
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("export: expand %s: %w", path, err)
	}
	return filepath.Clean(expanded), nil
}

// DefaultFileName suggests a file name for an entry titled title, saved at
// now, e.g. "morning-pages-2024-03-01.txt".
func DefaultFileName(title string, now time.Time) string {
	slug := slugify(title)
	if slug == "" || slug == "untitled" {
		slug = "freewrite"
	}
	return slug + "-" + now.Format("2006-01-02") + ".txt"
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
