// Package teaui hosts the Bubble Tea program for the freewrite editor.
package teaui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/mattn/go-isatty"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/clipboard"
	"tableflip.dev/freewrite/pkg/entry"
	"tableflip.dev/freewrite/pkg/logging"
	"tableflip.dev/freewrite/pkg/store"
	"tableflip.dev/freewrite/pkg/timer"
	"tableflip.dev/freewrite/pkg/tui/components/dialog"
	"tableflip.dev/freewrite/pkg/tui/components/editor"
	"tableflip.dev/freewrite/pkg/tui/components/help"
	"tableflip.dev/freewrite/pkg/tui/components/history"
	"tableflip.dev/freewrite/pkg/tui/theme"
)

// ErrNotTerminal is returned by Run when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("freewrite needs an interactive terminal")

type mode int

const (
	modeEdit mode = iota
	modeHistory
	modeHelp
	modeDialog
)

type dialogAction int

const (
	dialogNone dialogAction = iota
	dialogConfirmNew
	dialogConfirmSelect
	dialogConfirmDelete
	dialogConfirmClear
	dialogRename
	dialogSaveFile
	dialogCommand
	dialogTimeUp
)

const (
	statusTTL          = 4 * time.Second
	defaultTimerMinute = 15
)

// Options wire a Model to its session and host capabilities.
type Options struct {
	Session *app.Session
	// Decider must be the one whose Confirm the session was opened with.
	Decider       *Decider
	Notifications <-chan app.Notification
	Watcher       store.Watcher
	Clipboard     clipboard.Clipboard
	Logger        logging.Logger
}

type tickMsg struct{ seq int }

type clearStatusMsg struct{ seq int }

type exportedMsg struct{ err error }

// Model is the root of the editor UI.
type Model struct {
	ctx     context.Context
	session *app.Session
	decider *Decider
	notes   <-chan app.Notification
	watcher store.Watcher
	clip    clipboard.Clipboard
	log     logging.Logger

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	th      theme.Theme
	prefs   entry.Prefs
	editor  *editor.Model
	history *history.Model
	help    *help.Model

	mode         mode
	returnMode   mode
	dialog       *dialog.Model
	dialogAction dialogAction
	targetID     string

	countdown *timer.Countdown
	tickSeq   int
	lastTimer int

	chrome    bool
	status    string
	statusErr bool
	statusSeq int

	width  int
	height int
}

// New builds the root model around an open session.
func New(ctx context.Context, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := &Model{
		ctx:       ctx,
		session:   opts.Session,
		decider:   opts.Decider,
		notes:     opts.Notifications,
		watcher:   opts.Watcher,
		clip:      opts.Clipboard,
		log:       opts.Logger,
		editor:    editor.New(),
		countdown: timer.New(),
		lastTimer: defaultTimerMinute,
		chrome:    true,
		width:     80,
		height:    24,
	}
	if m.decider == nil {
		m.decider = NewDecider()
	}
	if m.clip == nil {
		m.clip = clipboard.Default()
	}
	if m.log == nil {
		m.log = logging.Nop()
	}
	m.editor.Placeholder = "Begin writing"
	m.editor.SetValue(m.session.Content())
	m.history = history.New(theme.For(entry.ThemeDark).Panel)
	m.applyPrefs()
	m.layout()
	return m
}

// Run launches the Bubble Tea program and blocks until the user quits. The
// session is closed, flushing any pending autosave, before Run returns.
func Run(ctx context.Context, opts Options) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return ErrNotTerminal
	}
	m := New(ctx, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	m.stopWatch()
	if cerr := m.session.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("final save: %w", cerr)
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		waitForNote(m.notes),
		startWatchCmd(m.ctx, m.watcher),
	)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
	case noteMsg:
		cmds = append(cmds, m.showNote(msg.note), waitForNote(m.notes))
	case watchStartedMsg:
		if msg.err != nil {
			m.log.Warn(m.ctx, "store watch unavailable", "err", msg.err)
			break
		}
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		m.handleWatchEvent(msg.event)
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.stopWatch()
	case tickMsg:
		cmds = append(cmds, m.handleTick(msg))
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
	case exportedMsg:
		// the session reports the outcome through a notification
	case tea.PasteMsg:
		if m.mode == modeEdit {
			m.editor.Update(msg)
			m.pushContent()
		} else if m.mode == modeDialog {
			_, cmd := m.dialog.Update(msg)
			cmds = append(cmds, cmd)
		}
	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKeyPress(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+q" {
		return m.quit()
	}
	switch m.mode {
	case modeHelp:
		return m.handleHelpKey(msg)
	case modeHistory:
		return m.handleHistoryKey(msg)
	case modeDialog:
		return m.handleDialogKey(msg)
	default:
		return m.handleEditKey(msg)
	}
}

func (m *Model) quit() tea.Cmd {
	if err := m.session.Flush(); err != nil {
		m.log.Error(m.ctx, "final autosave failed", "err", err)
	}
	return tea.Quit
}

// pushContent hands the editor buffer to the session, which schedules the
// autosave.
func (m *Model) pushContent() {
	m.session.SetContent(m.editor.Value())
}

// pullContent reloads the editor from the session after the session changed
// the buffer itself.
func (m *Model) pullContent() {
	m.editor.Replace(m.session.Content())
	m.applyPrefs()
}

// applyPrefs restyles the UI when the live preferences changed.
func (m *Model) applyPrefs() {
	p := m.session.Prefs()
	if p == m.prefs && m.th.Name != "" {
		return
	}
	m.prefs = p
	m.th = theme.For(p.Theme)
	m.editor.SetStyles(m.th.Editor)
	m.editor.Decoration = fontDecoration(p.Font)
	m.history.SetStyles(m.th.Panel)
	if m.help != nil {
		m.help.SetTheme(p.Theme)
	}
	m.layout()
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusErr = isErr
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m *Model) showNote(n app.Notification) tea.Cmd {
	text := n.Message
	if n.Err != nil {
		text = fmt.Sprintf("%s: %v", n.Message, n.Err)
	}
	return m.setStatus(text, n.Level == app.LevelError)
}

func (m *Model) openDialog(d *dialog.Model, action dialogAction) tea.Cmd {
	if m.mode != modeDialog {
		m.returnMode = m.mode
	}
	m.dialog = d
	m.dialogAction = action
	m.dialog.SetWidth(m.width)
	m.mode = modeDialog
	return nil
}

func (m *Model) closeDialog() {
	m.dialog = nil
	m.dialogAction = dialogNone
	m.targetID = ""
	m.mode = m.returnMode
	if m.mode == modeHistory {
		m.refreshHistory()
	}
}

func (m *Model) openHistory() {
	m.mode = modeHistory
	m.refreshHistory()
	m.layout()
}

func (m *Model) closeHistory() {
	m.mode = modeEdit
	m.layout()
}

func (m *Model) refreshHistory() {
	m.history.SetEntries(m.session.Entries(), m.session.Current().ID)
}

func (m *Model) openHelp() {
	if m.help == nil {
		m.help = help.New(m.width-4, m.height-2, m.prefs.Theme)
	}
	m.help.SetSize(m.width-4, m.height-2)
	m.mode = modeHelp
}

// startTick begins a new tick chain; ticks from older chains are dropped.
func (m *Model) startTick() tea.Cmd {
	m.tickSeq++
	seq := m.tickSeq
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{seq: seq} })
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.seq != m.tickSeq || !m.countdown.Running() {
		return nil
	}
	if m.countdown.Tick() {
		m.log.Info(m.ctx, "countdown finished", "minutes", m.lastTimer)
		if m.mode == modeDialog {
			m.countdown.Reset()
			return m.setStatus("Time's Up!", false)
		}
		return m.openDialog(dialog.NewNotice("Time's Up!", "Your freewrite session is over.", m.th.Modal), dialogTimeUp)
	}
	return m.startTick()
}

func (m *Model) startTimer(minutes int) tea.Cmd {
	if !m.countdown.Start(minutes) {
		return m.setStatus("Timer length must be positive", true)
	}
	m.lastTimer = minutes
	return tea.Batch(m.startTick(), m.setStatus(fmt.Sprintf("Timer started: %d min", minutes), false))
}

// toggleTimer starts, pauses or resumes the countdown.
func (m *Model) toggleTimer() tea.Cmd {
	switch {
	case m.countdown.Running():
		m.countdown.Pause()
		m.tickSeq++
		return m.setStatus("Timer paused", false)
	case m.countdown.Active():
		m.countdown.Resume()
		return tea.Batch(m.startTick(), m.setStatus("Timer resumed", false))
	default:
		return m.startTimer(m.lastTimer)
	}
}
