// Package theme centralizes Lip Gloss styles for the editor, derived from the
// entry's light or dark preference.
package theme

import (
	"image/color"
	"io"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"tableflip.dev/freewrite/pkg/entry"
)

// Palette holds the base colors a Theme is built from.
type Palette struct {
	Background string
	Foreground string
	Accent     string
	Danger     string
}

var (
	darkPalette = Palette{
		Background: "#1e1e1e",
		Foreground: "#e4e4e4",
		Accent:     "#d787af",
		Danger:     "#ff5f5f",
	}
	lightPalette = Palette{
		Background: "#ffffff",
		Foreground: "#222222",
		Accent:     "#af5f87",
		Danger:     "#d70000",
	}
)

// Theme groups every style the UI renders with.
type Theme struct {
	Name    entry.Theme
	Palette Palette

	Editor EditorTheme
	Footer FooterTheme
	Panel  PanelTheme
	Modal  ModalTheme
}

// EditorTheme styles the writing surface.
type EditorTheme struct {
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Selection   lipgloss.Style
	Cursor      color.Color
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Bar     lipgloss.Style
	Item    lipgloss.Style
	Active  lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Timer   lipgloss.Style
	TimeUp  lipgloss.Style
	Divider string
}

// PanelTheme styles the history side panel.
type PanelTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Filter   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
}

// ModalTheme styles centered dialogs.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Hint  lipgloss.Style
}

// For returns the theme matching t. Unknown values fall back to dark.
func For(t entry.Theme) Theme {
	p := darkPalette
	if t == entry.ThemeLight {
		p = lightPalette
	} else {
		t = entry.ThemeDark
	}
	return build(t, p)
}

func build(name entry.Theme, p Palette) Theme {
	fg := lipgloss.Color(p.Foreground)
	bg := lipgloss.Color(p.Background)
	accent := lipgloss.Color(p.Accent)
	muted := lipgloss.Color(Blend(p.Foreground, p.Background, 0.55))
	faint := lipgloss.Color(Blend(p.Foreground, p.Background, 0.8))

	return Theme{
		Name:    name,
		Palette: p,
		Editor: EditorTheme{
			Text:        lipgloss.NewStyle().Foreground(fg).Background(bg),
			Placeholder: lipgloss.NewStyle().Foreground(faint).Background(bg),
			Selection:   lipgloss.NewStyle().Foreground(bg).Background(accent),
			Cursor:      accent,
		},
		Footer: FooterTheme{
			Bar:     lipgloss.NewStyle().Foreground(muted).Background(bg),
			Item:    lipgloss.NewStyle().Foreground(muted).Background(bg),
			Active:  lipgloss.NewStyle().Foreground(fg).Background(bg).Bold(true),
			Status:  lipgloss.NewStyle().Foreground(accent).Background(bg),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Danger)).Background(bg).Bold(true),
			Timer:   lipgloss.NewStyle().Foreground(fg).Background(bg),
			TimeUp:  lipgloss.NewStyle().Foreground(accent).Background(bg).Bold(true),
			Divider: " • ",
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(muted).
				Padding(0, 1),
			Title:    lipgloss.NewStyle().Foreground(fg).Bold(true),
			Filter:   lipgloss.NewStyle().Foreground(accent),
			Muted:    lipgloss.NewStyle().Foreground(muted),
			Selected: lipgloss.NewStyle().Foreground(accent).Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Foreground(fg).Bold(true),
			Body:  lipgloss.NewStyle().Foreground(fg),
			Hint:  lipgloss.NewStyle().Foreground(muted),
		},
	}
}

// Blend mixes two hex colors in Lab space; t=0 is a, t=1 is b. Invalid input
// returns a unchanged.
func Blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}

// Detect guesses the terminal background behind out and returns the matching
// entry theme. It is only used to seed preferences on first launch.
func Detect(out io.Writer) entry.Theme {
	if termenv.NewOutput(out).HasDarkBackground() {
		return entry.ThemeDark
	}
	return entry.ThemeLight
}
