// Package clipboard connects the editor to the system clipboard.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// System uses the host clipboard (pbcopy, xclip, xsel, wl-copy or the
// Windows API).
type System struct{}

func (System) Read() (string, error) { return clipboard.ReadAll() }

func (System) Write(text string) error { return clipboard.WriteAll(text) }

// Memory is a process-local clipboard, used when the host has none.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Default returns System when a clipboard utility is available and a Memory
// otherwise, so copy and paste still work within one session.
func Default() Clipboard {
	if clipboard.Unsupported {
		return &Memory{}
	}
	return System{}
}
