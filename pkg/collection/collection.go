// Package collection holds the saved entries of a freewrite store and the
// rules for ordering, searching and mutating them.
package collection

import (
	"encoding/json"
	"sort"

	"tableflip.dev/freewrite/pkg/entry"
)

// Collection is the set of saved entries. Upsert by id is the only way an
// entry changes; Delete and Clear are the only ways one goes away.
//
// Entries are kept in insertion order so ties in UpdatedAt sort
// deterministically.
type Collection struct {
	items []entry.Entry
	index map[string]int
}

// New builds a collection by upserting each entry in order.
func New(entries ...entry.Entry) *Collection {
	c := &Collection{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		c.Upsert(e)
	}
	return c
}

// Upsert inserts e or replaces the entry with the same id in place. It
// reports whether the entry was new. Entries without an id are ignored.
func (c *Collection) Upsert(e entry.Entry) bool {
	if e.ID == "" {
		return false
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[e.ID]; ok {
		c.items[i] = e
		return false
	}
	c.index[e.ID] = len(c.items)
	c.items = append(c.items, e)
	return true
}

// Get returns a copy of the entry with id.
func (c *Collection) Get(id string) (entry.Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return entry.Entry{}, false
	}
	return c.items[i], true
}

// Has reports whether an entry with id exists.
func (c *Collection) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Delete removes the entry with id, reporting whether it existed.
func (c *Collection) Delete(id string) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].ID] = j
	}
	return true
}

// Clear removes every entry.
func (c *Collection) Clear() {
	c.items = nil
	c.index = make(map[string]int)
}

func (c *Collection) Len() int {
	return len(c.items)
}

// Entries returns copies of all entries in canonical order: most recently
// updated first, ties in insertion order.
func (c *Collection) Entries() []entry.Entry {
	out := make([]entry.Entry, len(c.items))
	copy(out, c.items)
	sortEntries(out)
	return out
}

// Search returns the entries whose content or title contains query, ignoring
// case, in canonical order. An empty query matches everything.
func (c *Collection) Search(query string) []entry.Entry {
	out := make([]entry.Entry, 0, len(c.items))
	for _, e := range c.items {
		if e.Matches(query) {
			out = append(out, e)
		}
	}
	sortEntries(out)
	return out
}

// Clone returns an independent copy.
func (c *Collection) Clone() *Collection {
	return New(c.items...)
}

func sortEntries(entries []entry.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].UpdatedAt.After(entries[j].UpdatedAt.Time)
	})
}

// Marshal serialises the collection as a JSON array in insertion order.
func Marshal(c *Collection) ([]byte, error) {
	items := []entry.Entry{}
	if c != nil && c.items != nil {
		items = c.items
	}
	return json.Marshal(items)
}

// Unmarshal parses a JSON array of entries. Empty input is an empty
// collection. Each entry is normalised against fallback, entries without an
// id are dropped and duplicate ids collapse to the last one.
func Unmarshal(data []byte, fallback entry.Prefs) (*Collection, error) {
	c := New()
	if len(data) == 0 {
		return c, nil
	}
	var items []entry.Entry
	if err := json.Unmarshal(data, &items); err != nil {
		return c, err
	}
	for _, e := range items {
		e.Normalize(fallback)
		c.Upsert(e)
	}
	return c, nil
}
