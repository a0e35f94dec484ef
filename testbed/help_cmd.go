package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/tui/components/help"
)

func newHelpCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "help-overlay",
		Short: "Render the help overlay component",
		RunE: func(cmd *cobra.Command, args []string) error {
			harness := &helpTestModel{testbedModel: newTestbedModel(*opts)}
			harness.ensureSizing()
			return run(harness)
		},
	}
	return cmd
}

type helpTestModel struct {
	testbedModel
	overlay *help.Model
}

func (m *helpTestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, cmd := m.testbedModel.Update(msg); cmd != nil {
		return m, cmd
	}
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		m.ensureSizing()
		return m, nil
	}
	var cmd tea.Cmd
	m.overlay, cmd = m.overlay.Update(msg)
	return m, cmd
}

func (m *helpTestModel) View() (string, *tea.Cursor) {
	m.ensureSizing()
	return m.composeView(m.overlay.View(), nil)
}

func (m *helpTestModel) ensureSizing() {
	m.ensureLayout()
	width := m.innerWidth
	height := m.innerHeight
	if width <= 0 {
		width = 72
	}
	if height <= 0 {
		height = 18
	}
	if m.overlay == nil {
		m.overlay = help.New(width, height, m.theme.Name)
		return
	}
	m.overlay.SetSize(width, height)
}
