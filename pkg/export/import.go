package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// Document is a text file picked up by Collect.
type Document struct {
	Path    string
	Title   string
	Content string
	ModTime time.Time
}

// Collect reads every regular file matched by the doublestar patterns, such
// as "notes/**/*.md". Files matched by more than one pattern are read once.
// The result is sorted by modification time, oldest first.
func Collect(patterns []string) ([]Document, error) {
	seen := make(map[string]struct{})
	var docs []Document
	for _, pattern := range patterns {
		pattern, err := ExpandPath(pattern)
		if err != nil {
			return nil, err
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("export: bad pattern %q: %w", pattern, err)
		}
		for _, path := range matches {
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}

			info, err := os.Stat(path)
			if err != nil {
				return nil, fmt.Errorf("export: stat %s: %w", path, err)
			}
			if !info.Mode().IsRegular() {
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("export: read %s: %w", path, err)
			}
			docs = append(docs, Document{
				Path:    path,
				Title:   TitleFromPath(path),
				Content: string(data),
				ModTime: info.ModTime(),
			})
		}
	}
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].ModTime.Before(docs[j].ModTime)
	})
	return docs, nil
}

// TitleFromPath is the file name without its extension.
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
