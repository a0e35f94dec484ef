package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/app"
	"tableflip.dev/freewrite/pkg/draft"
	"tableflip.dev/freewrite/pkg/tui/components/editor"
)

func newEditorCmd(opts *options) *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "editor",
		Short: "Render the editor component",
		RunE: func(cmd *cobra.Command, args []string) error {
			harness := &editorTestModel{testbedModel: newTestbedModel(*opts), editor: editor.New()}
			harness.editor.SetStyles(harness.theme.Editor)
			harness.editor.Placeholder = "Begin writing"
			if seed {
				entries, err := loadEntries(*opts)
				if err != nil {
					return err
				}
				if len(entries) > 0 {
					harness.editor.SetValue(entries[0].Content)
				}
			}
			return run(harness)
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "start with the most recent entry's content")
	return cmd
}

type editorTestModel struct {
	testbedModel
	editor *editor.Model
	words  int
}

func (m *editorTestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, cmd := m.testbedModel.Update(msg); cmd != nil {
		return m, cmd
	}
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		m.editor.SetSize(m.contentSize())
		return m, nil
	}
	if m.editor.Update(msg) {
		if words := draft.WordCount(m.editor.Value()); words != m.words {
			m.words = words
			m.logf("editor", app.LevelInfo, "changed", "%d words, cursor %d", words, m.editor.Cursor())
		}
	}
	return m, nil
}

func (m *editorTestModel) View() (string, *tea.Cursor) {
	content, cursor := m.editor.View()
	return m.composeView(content, cursor)
}
