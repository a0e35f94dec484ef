package teaui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/store"
)

// Decider answers the session's unsaved-changes question with the choice the
// user already made in the confirm dialog. The session asks synchronously,
// so the dialog is shown first and the answer recorded before the call.
type Decider struct {
	mu   sync.Mutex
	save bool
}

// NewDecider returns a Decider that saves by default.
func NewDecider() *Decider { return &Decider{save: true} }

func (d *Decider) Set(save bool) {
	d.mu.Lock()
	d.save = save
	d.mu.Unlock()
}

// Confirm implements app.ConfirmFunc.
func (d *Decider) Confirm(string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.save
}

// Notifier buffers session notifications for the UI loop. Sends never block;
// when the buffer is full the notification is dropped.
type Notifier struct {
	ch chan app.Notification
}

func NewNotifier(buffer int) *Notifier {
	return &Notifier{ch: make(chan app.Notification, max(buffer, 1))}
}

// Notify implements app.NotifyFunc.
func (n *Notifier) Notify(note app.Notification) {
	select {
	case n.ch <- note:
	default:
	}
}

func (n *Notifier) C() <-chan app.Notification { return n.ch }

type noteMsg struct {
	note app.Notification
}

func waitForNote(ch <-chan app.Notification) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		note, ok := <-ch
		if !ok {
			return nil
		}
		return noteMsg{note: note}
	}
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, w store.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := w.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) handleWatchEvent(ev store.Event) {
	if ev.Type == store.EventKeyChanged && ev.Key != store.KeyEntries {
		return
	}
	if err := m.session.Reload(m.ctx); err != nil {
		return
	}
	m.editor.Replace(m.session.Content())
	m.applyPrefs()
	if m.mode == modeHistory {
		m.refreshHistory()
	}
}
