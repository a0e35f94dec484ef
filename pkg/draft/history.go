package draft

// DefaultHistoryLimit bounds how many snapshots a History keeps.
const DefaultHistoryLimit = 500

// History is a linear undo/redo stack of buffer snapshots. The snapshot at
// pos is the current buffer; everything after pos is redoable.
type History struct {
	snapshots []string
	pos       int
	limit     int
}

func NewHistory(initial string, limit int) *History {
	if limit <= 1 {
		limit = DefaultHistoryLimit
	}
	return &History{snapshots: []string{initial}, limit: limit}
}

// Reset forgets everything and starts over from s.
func (h *History) Reset(s string) {
	h.snapshots = append(h.snapshots[:0], s)
	h.pos = 0
}

// Push records s as the new current snapshot. Pushing the current snapshot
// again is a no-op; any other push discards the redo tail.
func (h *History) Push(s string) {
	if h.snapshots[h.pos] == s {
		return
	}
	h.snapshots = append(h.snapshots[:h.pos+1], s)
	h.pos++
	if over := len(h.snapshots) - h.limit; over > 0 {
		h.snapshots = append(h.snapshots[:0], h.snapshots[over:]...)
		h.pos -= over
	}
}

func (h *History) Undo() (string, bool) {
	if h.pos == 0 {
		return h.snapshots[0], false
	}
	h.pos--
	return h.snapshots[h.pos], true
}

func (h *History) Redo() (string, bool) {
	if h.pos == len(h.snapshots)-1 {
		return h.snapshots[h.pos], false
	}
	h.pos++
	return h.snapshots[h.pos], true
}

func (h *History) CanUndo() bool { return h.pos > 0 }

func (h *History) CanRedo() bool { return h.pos < len(h.snapshots)-1 }
