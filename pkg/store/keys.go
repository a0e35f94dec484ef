package store

import (
	"fmt"

	"tableflip.dev/freewrite/pkg/collection"
	"tableflip.dev/freewrite/pkg/entry"
)

const (
	KeyContent = "freewrite-content"
	KeyFont    = "freewrite-font"
	KeySize    = "freewrite-size"
	KeyTheme   = "freewrite-theme"
	KeyEntries = "freewrite-entries"
)

// Keys lists every key freewrite owns.
func Keys() []string {
	return []string{KeyContent, KeyFont, KeySize, KeyTheme, KeyEntries}
}

// LoadEntries reads the entries collection. A missing key is an empty
// collection. Unreadable or malformed data also yields an empty collection,
// together with the error so the caller can report it.
func LoadEntries(kv KV, fallback entry.Prefs) (*collection.Collection, error) {
	raw, ok, err := kv.Get(KeyEntries)
	if err != nil {
		return collection.New(), err
	}
	if !ok {
		return collection.New(), nil
	}
	c, err := collection.Unmarshal([]byte(raw), fallback)
	if err != nil {
		return collection.New(), fmt.Errorf("store: decode %s: %w", KeyEntries, err)
	}
	return c, nil
}

// SaveEntries overwrites the entries key with the full collection.
func SaveEntries(kv KV, c *collection.Collection) error {
	data, err := collection.Marshal(c)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", KeyEntries, err)
	}
	return kv.Set(KeyEntries, string(data))
}

// LoadDraft returns the raw draft buffer, or "" when there is none.
func LoadDraft(kv KV) (string, error) {
	raw, _, err := kv.Get(KeyContent)
	return raw, err
}

func SaveDraft(kv KV, content string) error {
	return kv.Set(KeyContent, content)
}

// LoadPrefs reads the preference keys. Missing or invalid values fall back
// to defaults field by field.
func LoadPrefs(kv KV, defaults entry.Prefs) (entry.Prefs, error) {
	var p entry.Prefs
	var firstErr error
	read := func(key string) string {
		v, _, err := kv.Get(key)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return v
	}
	p.Font = entry.Font(read(KeyFont))
	p.FontSize = read(KeySize)
	p.Theme = entry.Theme(read(KeyTheme))
	return p.Normalize(defaults), firstErr
}

// SavePrefs overwrites all three preference keys.
func SavePrefs(kv KV, p entry.Prefs) error {
	if err := kv.Set(KeyFont, string(p.Font)); err != nil {
		return err
	}
	if err := kv.Set(KeySize, p.FontSize); err != nil {
		return err
	}
	return kv.Set(KeyTheme, string(p.Theme))
}
