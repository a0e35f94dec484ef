package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/tui/components/dialog"
)

var resultNames = map[dialog.Result]string{
	dialog.Accept: "accept",
	dialog.Reject: "reject",
	dialog.Cancel: "cancel",
}

func newDialogCmd(opts *options) *cobra.Command {
	kind := "confirm"

	cmd := &cobra.Command{
		Use:       "dialog",
		Short:     "Render a dialog component",
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			harness := &dialogTestModel{testbedModel: newTestbedModel(*opts), kind: kind}
			if err := harness.reset(); err != nil {
				return err
			}
			return run(harness)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", kind, "dialog to show: prompt, confirm or notice")
	return cmd
}

type dialogTestModel struct {
	testbedModel
	kind   string
	dialog *dialog.Model
}

// reset opens a fresh dialog of the chosen kind.
func (m *dialogTestModel) reset() error {
	styles := m.theme.Modal
	switch m.kind {
	case "prompt":
		m.dialog = dialog.NewPrompt("Rename entry", "Untitled", "Morning pages", styles)
	case "confirm":
		m.dialog = dialog.NewConfirm("Unsaved changes", "Save the current entry before starting a new one?", styles)
	case "notice":
		m.dialog = dialog.NewNotice("Time's up", "Your 15 minute session is over.", styles)
	default:
		return fmt.Errorf("unknown dialog kind %q", m.kind)
	}
	m.dialog.SetWidth(m.innerWidth)
	return nil
}

func (m *dialogTestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, cmd := m.testbedModel.Update(msg); cmd != nil {
		return m, cmd
	}
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		w, _ := m.contentSize()
		m.dialog.SetWidth(w)
		return m, nil
	}
	result, cmd := m.dialog.Update(msg)
	if name, ok := resultNames[result]; ok {
		m.logf("dialog", app.LevelInfo, name, "value=%q", m.dialog.Value())
		_ = m.reset()
	}
	return m, cmd
}

func (m *dialogTestModel) View() (string, *tea.Cursor) {
	return m.composeView(m.dialog.View(), nil)
}
