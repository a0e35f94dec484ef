package teaui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/freewrite/pkg/tui/components/dialog"
	"tableflip.dev/freewrite/pkg/tui/components/history"
)

func (m *Model) handleEditKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+n":
		return m.newEntry()
	case "ctrl+s":
		return m.openDialog(dialog.NewPrompt("Save to file", "path", m.session.SuggestedFileName(), m.th.Modal), dialogSaveFile)
	case "ctrl+z":
		if m.session.Undo() {
			m.pullContent()
		}
		return nil
	case "ctrl+y", "ctrl+shift+z":
		if m.session.Redo() {
			m.pullContent()
		}
		return nil
	case "ctrl+a":
		m.editor.SelectAll()
		return nil
	case "esc":
		m.editor.ClearSelection()
		return nil
	case "ctrl+x":
		return m.cut()
	case "ctrl+c":
		return m.copy()
	case "ctrl+v":
		return m.paste()
	case "f11":
		m.chrome = !m.chrome
		m.layout()
		return nil
	case "ctrl+o":
		m.openHistory()
		return nil
	case "f1", "ctrl+g":
		m.openHelp()
		return nil
	case "ctrl+p":
		return m.openDialog(dialog.NewPrompt("Command", "timer 15 · font serif · theme · size 20 · rename …", "", m.th.Modal), dialogCommand)
	case "ctrl+t":
		return m.toggleTimer()
	}
	if m.editor.Update(msg) {
		m.pushContent()
	}
	return nil
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "f1", "ctrl+g", "enter":
		m.mode = modeEdit
		return nil
	}
	var cmd tea.Cmd
	m.help, cmd = m.help.Update(msg)
	return cmd
}

func (m *Model) handleHistoryKey(msg tea.KeyPressMsg) tea.Cmd {
	action, cmd := m.history.Update(msg)
	sel, _ := m.history.Selected()
	switch action {
	case history.ActionClose:
		m.closeHistory()
	case history.ActionOpen:
		return m.selectEntry(sel.ID)
	case history.ActionRename:
		d := dialog.NewPrompt("Rename entry", "title", sel.Title, m.th.Modal)
		return m.openDialogFor(d, dialogRename, sel.ID)
	case history.ActionDelete:
		d := dialog.NewConfirm("Delete entry", fmt.Sprintf("Delete %q permanently?", sel.Title), m.th.Modal)
		d.SetHint("y delete · n keep")
		return m.openDialogFor(d, dialogConfirmDelete, sel.ID)
	case history.ActionClearAll:
		d := dialog.NewConfirm("Delete all entries", "Every saved entry will be removed. This cannot be undone.", m.th.Modal)
		d.SetHint("y delete all · n keep")
		return m.openDialog(d, dialogConfirmClear)
	}
	return cmd
}

func (m *Model) openDialogFor(d *dialog.Model, action dialogAction, id string) tea.Cmd {
	cmd := m.openDialog(d, action)
	m.targetID = id
	return cmd
}

func (m *Model) handleDialogKey(msg tea.KeyPressMsg) tea.Cmd {
	res, cmd := m.dialog.Update(msg)
	if res == dialog.Pending {
		return cmd
	}
	action, target, value := m.dialogAction, m.targetID, m.dialog.Value()
	m.closeDialog()

	switch action {
	case dialogConfirmNew:
		if res == dialog.Cancel {
			return nil
		}
		m.decider.Set(res == dialog.Accept)
		return m.createEntry()
	case dialogConfirmSelect:
		if res == dialog.Cancel {
			return nil
		}
		m.decider.Set(res == dialog.Accept)
		return m.openEntry(target)
	case dialogConfirmDelete:
		if res != dialog.Accept {
			return nil
		}
		return m.deleteEntry(target)
	case dialogConfirmClear:
		if res != dialog.Accept {
			return nil
		}
		return m.clearAll()
	case dialogRename:
		if res != dialog.Accept {
			return nil
		}
		return m.rename(target, value)
	case dialogSaveFile:
		if res != dialog.Accept || value == "" {
			return nil
		}
		return m.saveToFile(value)
	case dialogCommand:
		if res != dialog.Accept {
			return nil
		}
		return m.runCommand(value)
	case dialogTimeUp:
		m.countdown.Reset()
		return nil
	}
	return nil
}

// newEntry asks about unsaved changes before starting a new entry.
func (m *Model) newEntry() tea.Cmd {
	if m.session.UnsavedChanges() {
		d := dialog.NewConfirm("Unsaved changes", "Save your changes before starting a new entry?", m.th.Modal)
		return m.openDialog(d, dialogConfirmNew)
	}
	return m.createEntry()
}

func (m *Model) createEntry() tea.Cmd {
	if _, err := m.session.CreateNewEntry(); err != nil {
		return nil
	}
	m.editor.SetValue("")
	m.applyPrefs()
	if m.mode == modeHistory {
		m.refreshHistory()
	}
	return m.setStatus("New entry", false)
}

// selectEntry asks about unsaved changes before opening id.
func (m *Model) selectEntry(id string) tea.Cmd {
	if id == m.session.Current().ID {
		m.closeHistory()
		return nil
	}
	if m.session.UnsavedChanges() {
		d := dialog.NewConfirm("Unsaved changes", "Save your changes before opening another entry?", m.th.Modal)
		return m.openDialogFor(d, dialogConfirmSelect, id)
	}
	return m.openEntry(id)
}

func (m *Model) openEntry(id string) tea.Cmd {
	e, err := m.session.SelectEntry(id)
	if err != nil {
		return m.setStatus(fmt.Sprintf("Could not open entry: %v", err), true)
	}
	m.editor.SetValue(m.session.Content())
	m.applyPrefs()
	m.closeHistory()
	return m.setStatus(fmt.Sprintf("Opened %s", e.Title), false)
}

func (m *Model) deleteEntry(id string) tea.Cmd {
	if err := m.session.DeleteEntry(id); err != nil {
		return m.setStatus(fmt.Sprintf("Delete failed: %v", err), true)
	}
	m.pullContent()
	m.refreshHistory()
	return m.setStatus("Entry deleted", false)
}

func (m *Model) clearAll() tea.Cmd {
	if err := m.session.ClearAll(); err != nil {
		return m.setStatus(fmt.Sprintf("Clear failed: %v", err), true)
	}
	m.editor.SetValue("")
	m.refreshHistory()
	return m.setStatus("All entries deleted", false)
}

func (m *Model) rename(id, title string) tea.Cmd {
	e, err := m.session.RenameEntry(id, title)
	if err != nil {
		return m.setStatus(fmt.Sprintf("Rename failed: %v", err), true)
	}
	return m.setStatus(fmt.Sprintf("Renamed to %s", e.Title), false)
}

// saveToFile runs the export off the UI loop; the session reports the result.
func (m *Model) saveToFile(path string) tea.Cmd {
	ctx, s := m.ctx, m.session
	return func() tea.Msg {
		return exportedMsg{err: s.SaveToFile(ctx, path)}
	}
}

func (m *Model) cut() tea.Cmd {
	text := m.editor.SelectedText()
	if text == "" {
		return m.setStatus("Nothing selected", false)
	}
	if err := m.clip.Write(text); err != nil {
		return m.setStatus(fmt.Sprintf("Clipboard unavailable: %v", err), true)
	}
	m.editor.DeleteSelection()
	m.pushContent()
	return nil
}

// copy copies the selection, or the whole buffer when nothing is selected.
func (m *Model) copy() tea.Cmd {
	text := m.editor.SelectedText()
	if text == "" {
		text = m.editor.Value()
	}
	if text == "" {
		return nil
	}
	if err := m.clip.Write(text); err != nil {
		return m.setStatus(fmt.Sprintf("Clipboard unavailable: %v", err), true)
	}
	return m.setStatus("Copied", false)
}

func (m *Model) paste() tea.Cmd {
	text, err := m.clip.Read()
	if err != nil {
		return m.setStatus(fmt.Sprintf("Clipboard unavailable: %v", err), true)
	}
	if text == "" {
		return nil
	}
	m.editor.InsertText(text)
	m.pushContent()
	return nil
}
