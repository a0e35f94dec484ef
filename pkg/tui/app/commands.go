package teaui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/freewrite/pkg/entry"
	"tableflip.dev/freewrite/pkg/timer"
	"tableflip.dev/freewrite/pkg/tui/components/dialog"
)

// runCommand executes a line typed into the command prompt.
func (m *Model) runCommand(raw string) tea.Cmd {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}
	name := strings.ToLower(fields[0])
	arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), fields[0]))

	switch name {
	case "timer", "t":
		return m.timerCommand(arg)
	case "font", "f":
		if arg == "" {
			f := m.session.CycleFont()
			m.applyPrefs()
			return m.setStatus("Font: "+f.Label(), false)
		}
		f, err := m.session.SetFont(arg)
		if err != nil {
			return m.setStatus(fmt.Sprintf("Unknown font %q (try %s)", arg, fontNames()), true)
		}
		m.applyPrefs()
		return m.setStatus("Font: "+f.Label(), false)
	case "size", "s":
		size, err := m.session.SetFontSize(arg)
		if err != nil {
			return m.setStatus(fmt.Sprintf("Invalid size %q (try %s)", arg, strings.Join(entry.SizePresets, ", ")), true)
		}
		m.applyPrefs()
		return m.setStatus("Size: "+size+"px", false)
	case "zoom", "z":
		delta := 1
		switch strings.ToLower(arg) {
		case "out", "-":
			delta = -1
		case "in", "+", "":
		default:
			return m.setStatus("Usage: zoom in|out", true)
		}
		size := m.session.Zoom(delta)
		m.applyPrefs()
		return m.setStatus("Size: "+size+"px", false)
	case "theme":
		if arg == "" {
			th := m.session.ToggleTheme()
			m.applyPrefs()
			return m.setStatus("Theme: "+string(th), false)
		}
		th, err := m.session.SetTheme(arg)
		if err != nil {
			return m.setStatus(fmt.Sprintf("Unknown theme %q (light or dark)", arg), true)
		}
		m.applyPrefs()
		return m.setStatus("Theme: "+string(th), false)
	case "rename", "title":
		return m.rename(m.session.Current().ID, arg)
	case "export", "save", "w":
		if arg == "" {
			return m.openDialog(dialog.NewPrompt("Save to file", "path", m.session.SuggestedFileName(), m.th.Modal), dialogSaveFile)
		}
		return m.saveToFile(arg)
	case "stats":
		st := m.session.Stats()
		return m.setStatus(fmt.Sprintf("%d words · %d characters · %s read", st.Words, st.Chars, st.Reading), false)
	case "new":
		return m.newEntry()
	case "history":
		m.openHistory()
		return nil
	case "help":
		m.openHelp()
		return nil
	case "quit", "q", "exit":
		return m.quit()
	}
	return m.setStatus(fmt.Sprintf("Unknown command %q", name), true)
}

func (m *Model) timerCommand(arg string) tea.Cmd {
	switch strings.ToLower(arg) {
	case "":
		return m.toggleTimer()
	case "pause", "stop":
		if !m.countdown.Running() {
			return nil
		}
		return m.toggleTimer()
	case "resume", "start":
		if m.countdown.Running() {
			return nil
		}
		return m.toggleTimer()
	case "reset":
		m.countdown.Reset()
		m.tickSeq++
		return m.setStatus("Timer reset", false)
	}
	minutes, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(arg), "m"))
	if err != nil || minutes <= 0 {
		return m.setStatus(fmt.Sprintf("Usage: timer <minutes> (presets %s)", presetNames()), true)
	}
	return m.startTimer(minutes)
}

func fontNames() string {
	names := make([]string, 0, len(entry.Fonts()))
	for _, f := range entry.Fonts() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func presetNames() string {
	names := make([]string, 0, len(timer.Presets))
	for _, p := range timer.Presets {
		names = append(names, strconv.Itoa(p))
	}
	return strings.Join(names, ", ")
}
