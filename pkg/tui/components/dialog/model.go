// Package dialog renders the small modal prompts the editor asks through:
// text prompts, yes/no confirmations and notices.
package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/freewrite/pkg/tui/theme"
)

type Kind int

const (
	KindPrompt Kind = iota
	KindConfirm
	KindNotice
)

// Result is the outcome of a key press.
type Result int

const (
	Pending Result = iota
	// Accept is enter on a prompt, yes on a confirm, or dismissing a notice.
	Accept
	// Reject is no on a confirm.
	Reject
	Cancel
)

// Model is one open dialog.
type Model struct {
	kind  Kind
	title string
	body  string
	hint  string
	input textinput.Model

	width  int
	styles theme.ModalTheme
}

// NewPrompt asks for a line of text, prefilled with value.
func NewPrompt(title, placeholder, value string, styles theme.ModalTheme) *Model {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()
	return &Model{
		kind:   KindPrompt,
		title:  title,
		hint:   "enter confirm · esc cancel",
		input:  ti,
		width:  48,
		styles: styles,
	}
}

// NewConfirm asks a yes/no question. Esc cancels without answering.
func NewConfirm(title, body string, styles theme.ModalTheme) *Model {
	return &Model{
		kind:   KindConfirm,
		title:  title,
		body:   body,
		hint:   "y yes · n no · esc cancel",
		width:  48,
		styles: styles,
	}
}

// NewNotice shows a message until any of enter, esc or space.
func NewNotice(title, body string, styles theme.ModalTheme) *Model {
	return &Model{
		kind:   KindNotice,
		title:  title,
		body:   body,
		hint:   "enter to continue",
		width:  40,
		styles: styles,
	}
}

func (m *Model) Kind() Kind { return m.kind }

// Value is the prompt text.
func (m *Model) Value() string { return strings.TrimSpace(m.input.Value()) }

// SetHint replaces the footer hint.
func (m *Model) SetHint(h string) { m.hint = h }

// SetWidth bounds the dialog to the terminal width.
func (m *Model) SetWidth(termWidth int) {
	w := 48
	if m.kind == KindNotice {
		w = 40
	}
	m.width = max(min(w, termWidth-4), 20)
	m.input.SetWidth(max(m.width-m.styles.Frame.GetHorizontalFrameSize()-3, 1))
}

// Update handles a key press.
func (m *Model) Update(msg tea.Msg) (Result, tea.Cmd) {
	switch m.kind {
	case KindPrompt:
		if k, ok := msg.(tea.KeyPressMsg); ok {
			switch k.String() {
			case "enter":
				return Accept, nil
			case "esc":
				return Cancel, nil
			}
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return Pending, cmd
	case KindConfirm:
		if k, ok := msg.(tea.KeyPressMsg); ok {
			switch strings.ToLower(k.String()) {
			case "y", "enter":
				return Accept, nil
			case "n":
				return Reject, nil
			case "esc":
				return Cancel, nil
			}
		}
	case KindNotice:
		if k, ok := msg.(tea.KeyPressMsg); ok {
			switch k.String() {
			case "enter", "esc", "space", " ":
				return Accept, nil
			}
		}
	}
	return Pending, nil
}

// View renders the framed dialog.
func (m *Model) View() string {
	inner := max(m.width-m.styles.Frame.GetHorizontalFrameSize(), 10)
	parts := []string{m.styles.Title.Render(m.title)}
	if m.body != "" {
		parts = append(parts, "", m.styles.Body.Render(wordwrap.String(m.body, inner)))
	}
	if m.kind == KindPrompt {
		parts = append(parts, "", m.input.View())
	}
	if m.hint != "" {
		parts = append(parts, "", m.styles.Hint.Render(m.hint))
	}
	content := lipgloss.NewStyle().Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return m.styles.Frame.Render(content)
}
