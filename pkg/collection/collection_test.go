package collection

import (
	"testing"
	"time"

	"tableflip.dev/freewrite/pkg/entry"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func mk(id, content string, updated time.Time) entry.Entry {
	e := entry.New(id, entry.DefaultPrefs(), t0)
	e.Content = content
	e.Touch(updated)
	return e
}

func ids(entries []entry.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestUpsertIsIdempotent(t *testing.T) {
	c := New()
	e := mk("a", "first", t0)
	if !c.Upsert(e) {
		t.Fatalf("expected first upsert to insert")
	}
	e.Content = "second"
	if c.Upsert(e) {
		t.Fatalf("expected second upsert to replace")
	}
	if c.Upsert(e) {
		t.Fatalf("expected repeat upsert to replace")
	}
	if c.Len() != 1 {
		t.Fatalf("expected one member, got %d", c.Len())
	}
	got, ok := c.Get("a")
	if !ok || got.Content != "second" {
		t.Fatalf("expected latest fields to win, got %+v", got)
	}
}

func TestUpsertWithoutIDIsIgnored(t *testing.T) {
	c := New(entry.Entry{Content: "orphan"})
	if c.Len() != 0 {
		t.Fatalf("expected entry without id to be dropped")
	}
}

func TestEntriesCanonicalOrder(t *testing.T) {
	a := mk("A", "a", t0.Add(time.Minute))
	b := mk("B", "b", t0.Add(2*time.Minute))
	c := New(a, b)

	if got := ids(c.Entries()); !equal(got, []string{"B", "A"}) {
		t.Fatalf("expected [B A], got %v", got)
	}
}

func TestEntriesTiesKeepInsertionOrder(t *testing.T) {
	same := t0.Add(time.Minute)
	c := New(mk("x", "", same), mk("y", "", same), mk("z", "", same))
	// Updating y in place must not move it in the tie order.
	y, _ := c.Get("y")
	y.Content = "changed"
	c.Upsert(y)

	if got := ids(c.Entries()); !equal(got, []string{"x", "y", "z"}) {
		t.Fatalf("expected insertion order for ties, got %v", got)
	}
}

func TestEntriesReturnsCopies(t *testing.T) {
	c := New(mk("a", "original", t0))
	list := c.Entries()
	list[0].Content = "mutated"
	got, _ := c.Get("a")
	if got.Content != "original" {
		t.Fatalf("listing leaked a reference into the collection")
	}
}

func TestDeleteReindexes(t *testing.T) {
	c := New(mk("a", "", t0), mk("b", "", t0), mk("c", "", t0))
	if !c.Delete("a") {
		t.Fatalf("expected delete to succeed")
	}
	if c.Delete("a") {
		t.Fatalf("expected second delete to report missing")
	}
	got, ok := c.Get("c")
	if !ok || got.ID != "c" {
		t.Fatalf("index broken after delete: %+v %v", got, ok)
	}
	c.Upsert(mk("c", "updated", t0))
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
}

func TestClear(t *testing.T) {
	c := New(mk("a", "", t0), mk("b", "", t0))
	c.Clear()
	if c.Len() != 0 || len(c.Entries()) != 0 {
		t.Fatalf("expected empty collection")
	}
	c.Upsert(mk("a", "", t0))
	if c.Len() != 1 {
		t.Fatalf("expected collection usable after clear")
	}
}

func TestSearch(t *testing.T) {
	older := mk("1", "The Lighthouse keeper", t0.Add(time.Minute))
	newer := mk("2", "another light", t0.Add(2*time.Minute))
	titled := mk("3", "nothing here", t0.Add(3*time.Minute))
	titled.Title = "Light reading"
	miss := mk("4", "darkness", t0.Add(4*time.Minute))
	c := New(older, newer, titled, miss)

	if got := ids(c.Search("LIGHT")); !equal(got, []string{"3", "2", "1"}) {
		t.Fatalf("unexpected search result %v", got)
	}
	if got := c.Search(""); len(got) != 4 {
		t.Fatalf("expected empty query to match everything, got %d", len(got))
	}
	if c.Len() != 4 {
		t.Fatalf("search must not mutate the collection")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	c := New(mk("a", "one", t0.Add(time.Minute)), mk("b", "two", t0))
	data, err := Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := Unmarshal(data, entry.DefaultPrefs())
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := ids(back.Entries()); !equal(got, []string{"a", "b"}) {
		t.Fatalf("unexpected order after round trip %v", got)
	}
}

func TestMarshalEmptyIsArray(t *testing.T) {
	data, err := Marshal(New())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected [], got %s", data)
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	c, err := Unmarshal([]byte("{not json"), entry.DefaultPrefs())
	if err == nil {
		t.Fatalf("expected error for malformed input")
	}
	if c == nil || c.Len() != 0 {
		t.Fatalf("expected usable empty collection alongside the error")
	}
}

func TestUnmarshalCollapsesDuplicates(t *testing.T) {
	data := []byte(`[{"id":"a","content":"old"},{"id":"a","content":"new"},{"content":"no id"}]`)
	c, err := Unmarshal(data, entry.DefaultPrefs())
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got, _ := c.Get("a")
	if c.Len() != 1 || got.Content != "new" {
		t.Fatalf("expected single entry with latest content, got %d %+v", c.Len(), got)
	}
	if got.Title != entry.DefaultTitle {
		t.Fatalf("expected normalised title, got %q", got.Title)
	}
}
