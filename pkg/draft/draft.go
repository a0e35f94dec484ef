// Package draft holds the editor buffer and tracks whether it differs from
// what was last saved or loaded.
package draft

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// WordsPerMinute is the reading speed used by ReadingTime.
const WordsPerMinute = 200

// Draft is the live editor buffer. The baseline is the content as of the
// last load or save; the draft is dirty whenever the two differ.
type Draft struct {
	content  string
	baseline string
	history  *History
}

func New(content string) *Draft {
	return &Draft{
		content:  content,
		baseline: content,
		history:  NewHistory(content, DefaultHistoryLimit),
	}
}

func (d *Draft) Content() string { return d.content }

func (d *Draft) Baseline() string { return d.baseline }

// SetContent replaces the buffer and records it for undo. It reports whether
// the buffer changed.
func (d *Draft) SetContent(text string) bool {
	if text == d.content {
		return false
	}
	d.content = text
	d.history.Push(text)
	return true
}

func (d *Draft) Dirty() bool { return d.content != d.baseline }

// Blank reports whether the buffer is empty or only whitespace.
func (d *Draft) Blank() bool { return strings.TrimSpace(d.content) == "" }

// MarkSaved makes the current buffer the new baseline.
func (d *Draft) MarkSaved() { d.baseline = d.content }

// Load swaps in content as both buffer and baseline and restarts the undo
// history from it.
func (d *Draft) Load(content string) {
	d.content = content
	d.baseline = content
	d.history.Reset(content)
}

func (d *Draft) Undo() bool {
	s, ok := d.history.Undo()
	if ok {
		d.content = s
	}
	return ok
}

func (d *Draft) Redo() bool {
	s, ok := d.history.Redo()
	if ok {
		d.content = s
	}
	return ok
}

func (d *Draft) CanUndo() bool { return d.history.CanUndo() }

func (d *Draft) CanRedo() bool { return d.history.CanRedo() }

func (d *Draft) WordCount() int { return WordCount(d.content) }

// Stats summarises a buffer for the status line.
type Stats struct {
	Words   int
	Chars   int
	Reading time.Duration
}

func (d *Draft) Stats() Stats {
	words := WordCount(d.content)
	return Stats{
		Words:   words,
		Chars:   CharCount(d.content),
		Reading: ReadingTime(words),
	}
}

// WordCount counts whitespace-delimited tokens.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// CharCount counts runes, not bytes.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// ReadingTime rounds up to whole minutes; any non-empty text takes at least
// one.
func ReadingTime(words int) time.Duration {
	if words <= 0 {
		return 0
	}
	minutes := math.Ceil(float64(words) / WordsPerMinute)
	return time.Duration(minutes) * time.Minute
}
