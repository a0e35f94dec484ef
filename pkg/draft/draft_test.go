package draft

import (
	"testing"
	"time"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"\n\t ", 0},
		{"a b  c", 3},
		{"  leading and trailing  ", 3},
		{"line one\nline two", 4},
	}
	for _, tt := range tests {
		if got := WordCount(tt.in); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDirtyTracksBaseline(t *testing.T) {
	d := New("hello")
	if d.Dirty() {
		t.Fatal("fresh draft should be clean")
	}
	d.SetContent("hello world")
	if !d.Dirty() {
		t.Fatal("expected dirty after edit")
	}
	d.SetContent("hello")
	if d.Dirty() {
		t.Fatal("returning to the baseline should be clean")
	}
	d.SetContent("changed")
	d.MarkSaved()
	if d.Dirty() {
		t.Fatal("expected clean after save")
	}
}

func TestUndoRedoScenario(t *testing.T) {
	d := New("")
	d.SetContent("a")
	d.SetContent("ab")
	d.SetContent("abc")

	if !d.Undo() || d.Content() != "ab" {
		t.Fatalf("first undo: got %q", d.Content())
	}
	if !d.Undo() || d.Content() != "a" {
		t.Fatalf("second undo: got %q", d.Content())
	}
	if !d.Redo() || d.Content() != "ab" {
		t.Fatalf("redo: got %q", d.Content())
	}
}

func TestPushAfterUndoClearsRedo(t *testing.T) {
	d := New("")
	d.SetContent("a")
	d.SetContent("ab")
	d.Undo()
	d.SetContent("ax")
	if d.CanRedo() {
		t.Fatal("new edit after undo should drop redo")
	}
	if d.Redo() {
		t.Fatal("redo should fail")
	}
	d.Undo()
	if d.Content() != "a" {
		t.Fatalf("got %q", d.Content())
	}
}

func TestUndoAtStart(t *testing.T) {
	d := New("seed")
	if d.Undo() {
		t.Fatal("nothing to undo")
	}
	if d.Content() != "seed" {
		t.Fatalf("content changed to %q", d.Content())
	}
}

func TestLoadResetsHistory(t *testing.T) {
	d := New("")
	d.SetContent("a")
	d.SetContent("ab")
	d.Load("other entry")
	if d.CanUndo() || d.CanRedo() {
		t.Fatal("load should reset history")
	}
	if d.Dirty() {
		t.Fatal("load should leave the draft clean")
	}
}

func TestHistoryLimit(t *testing.T) {
	h := NewHistory("0", 3)
	h.Push("1")
	h.Push("2")
	h.Push("3")
	var got []string
	for {
		s, ok := h.Undo()
		if !ok {
			break
		}
		got = append(got, s)
	}
	if len(got) != 2 || got[1] != "1" {
		t.Fatalf("expected two undos ending at %q, got %v", "1", got)
	}
}

func TestStats(t *testing.T) {
	d := New("héllo wörld")
	s := d.Stats()
	if s.Words != 2 || s.Chars != 11 {
		t.Fatalf("unexpected stats %+v", s)
	}
	if s.Reading != time.Minute {
		t.Fatalf("reading = %v", s.Reading)
	}
	if ReadingTime(0) != 0 || ReadingTime(401) != 3*time.Minute {
		t.Fatal("unexpected reading time rounding")
	}
}
