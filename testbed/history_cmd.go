package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/tui/components/history"
)

var actionNames = map[history.Action]string{
	history.ActionOpen:     "open",
	history.ActionRename:   "rename",
	history.ActionDelete:   "delete",
	history.ActionClearAll: "clear all",
	history.ActionClose:    "close",
}

func newHistoryCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Render the history panel component",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := loadEntries(*opts)
			if err != nil {
				return err
			}
			harness := &historyTestModel{testbedModel: newTestbedModel(*opts)}
			harness.panel = history.New(harness.theme.Panel)
			current := ""
			if len(entries) > 0 {
				current = entries[0].ID
			}
			harness.panel.SetEntries(entries, current)
			return run(harness)
		},
	}
	return cmd
}

type historyTestModel struct {
	testbedModel
	panel *history.Model
}

func (m *historyTestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, cmd := m.testbedModel.Update(msg); cmd != nil {
		return m, cmd
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.panel.SetSize(m.contentSize())
	case tea.KeyPressMsg:
		action, cmd := m.panel.Update(msg)
		if name, ok := actionNames[action]; ok {
			id := ""
			if e, ok := m.panel.Selected(); ok {
				id = e.ID
			}
			level := app.LevelInfo
			if action == history.ActionDelete || action == history.ActionClearAll {
				level = app.LevelWarn
			}
			m.logf("history", level, name, "selected=%q filter=%q", id, m.panel.Query())
		}
		return m, cmd
	}
	return m, nil
}

func (m *historyTestModel) View() (string, *tea.Cursor) {
	return m.composeView(m.panel.View(), nil)
}
