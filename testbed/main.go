package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/entry"
	"tableflip.dev/freewrite/pkg/tui/components/eventviewer"
	"tableflip.dev/freewrite/pkg/tui/theme"
)

type options struct {
	full   bool
	width  int
	height int
	real   bool
	theme  string
}

func (o options) palette() theme.Theme {
	t, err := entry.ParseTheme(o.theme)
	if err != nil {
		t = entry.ThemeDark
	}
	return theme.For(t)
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "testbed",
		Short: "Run the TUI testbed harness",
		RunE: func(cmd *cobra.Command, args []string) error {
			base := newTestbedModel(opts)
			return run(&base)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.full, "full", false, "use the full terminal window")
	rootCmd.PersistentFlags().IntVar(&opts.width, "width", 80, "window width when not fullscreen")
	rootCmd.PersistentFlags().IntVar(&opts.height, "height", 20, "window height when not fullscreen")
	rootCmd.PersistentFlags().BoolVar(&opts.real, "real", false, "load entries from the real freewrite store")
	rootCmd.PersistentFlags().StringVar(&opts.theme, "theme", "dark", "theme to render with: dark or light")

	rootCmd.AddCommand(newEditorCmd(&opts))
	rootCmd.AddCommand(newHistoryCmd(&opts))
	rootCmd.AddCommand(newDialogCmd(&opts))
	rootCmd.AddCommand(newHelpCmd(&opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// testbedModel frames one component above a log of the messages it saw.
// Harnesses embed it and forward every message to Update first.
type testbedModel struct {
	fullscreen bool
	maxWidth   int
	maxHeight  int
	theme      theme.Theme

	termWidth  int
	termHeight int

	events *eventviewer.Model

	frameWidth  int
	frameHeight int
	innerWidth  int
	innerHeight int
	eventHeight int
	layoutDirty bool
}

func newTestbedModel(opts options) testbedModel {
	th := opts.palette()
	return testbedModel{
		fullscreen:  opts.full,
		maxWidth:    opts.width,
		maxHeight:   opts.height,
		theme:       th,
		events:      eventviewer.New(400, th),
		layoutDirty: true,
	}
}

func (m *testbedModel) Init() tea.Cmd { return nil }

func (m *testbedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.recordEvent(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.layoutDirty = true
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *testbedModel) View() (string, *tea.Cursor) {
	content := lipgloss.NewStyle().
		Padding(1, 2).
		Render(
			"Testbed UI\n\n" +
				"Run a subcommand to iterate on one component:\n" +
				"editor, history, dialog or help.\n\n" +
				"Press ctrl+c to quit.",
		)
	return m.composeView(content, nil)
}

// logf adds a harness-level line to the event log.
func (m *testbedModel) logf(source string, level app.Level, name, format string, args ...any) {
	m.events.Addf(source, level, name, format, args...)
}

func (m *testbedModel) composeView(content string, cursor *tea.Cursor) (string, *tea.Cursor) {
	if m.termWidth == 0 || m.termHeight == 0 {
		return "Resizing…", nil
	}
	m.ensureLayout()

	frame, cursor := m.renderFrame(content, cursor)
	frameBlock, cursor := m.placeFrame(frame, cursor)

	if events := m.renderEvents(); events != "" {
		frameBlock = lipgloss.JoinVertical(lipgloss.Left, frameBlock, "", events)
	}

	return frameBlock, cursor
}

func (m *testbedModel) renderFrame(content string, cursor *tea.Cursor) (string, *tea.Cursor) {
	m.ensureLayout()

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Palette.Accent))

	contentStyle := lipgloss.NewStyle().
		Width(m.innerWidth).
		Height(m.innerHeight).
		MaxHeight(m.innerHeight).
		Align(lipgloss.Left, lipgloss.Top)

	frame := borderStyle.Render(contentStyle.Render(content))
	if cursor == nil {
		return frame, nil
	}
	return frame, offsetCursor(cursor, 1, 1)
}

func (m *testbedModel) renderEvents() string {
	if m.events == nil || m.eventHeight == 0 {
		return ""
	}
	return m.events.View()
}

func (m *testbedModel) placeFrame(frame string, cursor *tea.Cursor) (string, *tea.Cursor) {
	background := lipgloss.NewStyle().Background(lipgloss.Color(m.theme.Palette.Background))

	height := max(1, m.termHeight-m.eventHeight-frameGap)

	offsetX := 0
	frameWidth := lipgloss.Width(frame)
	if frameWidth < m.termWidth {
		offsetX = (m.termWidth - frameWidth) / 2
	}
	placed := lipgloss.Place(
		m.termWidth,
		height,
		lipgloss.Center,
		lipgloss.Top,
		frame,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceStyle(background),
	)
	if cursor == nil {
		return placed, nil
	}
	return placed, offsetCursor(cursor, offsetX, 0)
}

func (m *testbedModel) contentSize() (int, int) {
	m.ensureLayout()
	return m.innerWidth, m.innerHeight
}

func (m *testbedModel) ensureLayout() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	if !m.layoutDirty && m.frameWidth != 0 && m.frameHeight != 0 {
		return
	}

	eventHeight := m.computeEventHeight()
	frameSpace := max(minFrameHeight, m.termHeight-eventHeight-frameGap)

	width := clamp(m.maxWidth, 20, m.termWidth-4)
	height := clamp(m.maxHeight, minFrameHeight, frameSpace)
	if m.fullscreen {
		width = clamp(m.termWidth, 20, m.termWidth)
		height = clamp(frameSpace, minFrameHeight, frameSpace)
	}

	m.frameWidth = width
	m.frameHeight = height
	m.innerWidth = max(1, width-2)
	m.innerHeight = max(1, height-2)
	m.eventHeight = eventHeight
	m.layoutDirty = false

	if m.events != nil && eventHeight > 0 {
		m.events.SetSize(m.termWidth, eventHeight)
	}
}

func (m *testbedModel) computeEventHeight() int {
	if m.events == nil {
		return 0
	}
	maxAvailable := m.termHeight - minFrameHeight - frameGap
	if maxAvailable < minEventHeight {
		return 0
	}
	desired := clamp(m.termHeight/4, minEventHeight, maxEventHeight)
	return min(desired, maxAvailable)
}

func (m *testbedModel) recordEvent(msg tea.Msg) {
	if m.events == nil {
		return
	}
	detail, ok := describeMsg(msg)
	if !ok {
		return
	}
	m.events.Add(eventviewer.Event{
		At:     time.Now(),
		Name:   fmt.Sprintf("%T", msg),
		Detail: detail,
	})
}

// describeMsg summarises the messages worth logging. Cursor blinks and
// other internal chatter are skipped.
func describeMsg(msg tea.Msg) (string, bool) {
	switch v := msg.(type) {
	case tea.KeyPressMsg:
		return fmt.Sprintf("key=%q", v.String()), true
	case tea.PasteMsg:
		return fmt.Sprintf("paste=%d bytes", len(v)), true
	case tea.WindowSizeMsg:
		return fmt.Sprintf("size=%dx%d", v.Width, v.Height), true
	default:
		return "", false
	}
}

func clamp(value, lo, hi int) int {
	if hi <= 0 {
		return lo
	}
	return max(lo, min(value, hi))
}

func offsetCursor(cursor *tea.Cursor, dx, dy int) *tea.Cursor {
	if cursor == nil {
		return nil
	}
	clone := *cursor
	clone.Position.X += dx
	clone.Position.Y += dy
	return &clone
}

const (
	minFrameHeight = 12
	minEventHeight = 5
	maxEventHeight = 12
	frameGap       = 1
)
