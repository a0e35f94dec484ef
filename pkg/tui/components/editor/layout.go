package editor

import "github.com/mattn/go-runewidth"

// row is one screen line: the runes value[start:end]. hard rows end at a
// newline or at the end of the buffer; soft rows were wrapped.
type row struct {
	start, end int
	hard       bool
}

// layout word-wraps value into rows no wider than width cells. Newlines
// always break. A word longer than width is split.
func layout(value []rune, width int) []row {
	width = max(width, 1)
	var rows []row
	lineStart := 0
	for i := 0; i <= len(value); i++ {
		if i < len(value) && value[i] != '\n' {
			continue
		}
		rows = wrapLine(rows, value, lineStart, i, width)
		lineStart = i + 1
	}
	return rows
}

func wrapLine(rows []row, value []rune, a, b, width int) []row {
	if a == b {
		return append(rows, row{start: a, end: b, hard: true})
	}
	start := a
	for start < b {
		w, i, lastSpace := 0, start, -1
		for i < b {
			rw := runewidth.RuneWidth(value[i])
			if w+rw > width && i > start {
				break
			}
			if value[i] == ' ' {
				lastSpace = i
			}
			w += rw
			i++
		}
		if i < b {
			switch {
			case value[i] == ' ':
				// the overflowing space hangs off the end of this row
				i++
			case lastSpace >= start:
				i = lastSpace + 1
			}
		}
		rows = append(rows, row{start: start, end: i, hard: i >= b})
		start = i
	}
	return rows
}

// locate returns the row index and display column of pos.
func locate(rows []row, value []rune, pos int) (int, int) {
	for r, rw := range rows {
		if pos < rw.start {
			continue
		}
		if pos < rw.end || (pos == rw.end && rw.hard) {
			return r, cells(value[rw.start:pos])
		}
	}
	if len(rows) == 0 {
		return 0, 0
	}
	last := len(rows) - 1
	return last, cells(value[rows[last].start:rows[last].end])
}

// offsetAt maps a display column in row r back to a buffer position.
func offsetAt(rows []row, value []rune, r, col int) int {
	rw := rows[r]
	limit := rw.end
	if !rw.hard && limit > rw.start {
		limit--
	}
	w := 0
	for i := rw.start; i < limit; i++ {
		next := w + runewidth.RuneWidth(value[i])
		if next > col {
			return i
		}
		w = next
	}
	return limit
}

func cells(rs []rune) int {
	n := 0
	for _, r := range rs {
		n += runewidth.RuneWidth(r)
	}
	return n
}
