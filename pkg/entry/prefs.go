package entry

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Font names the typeface an entry is presented with.
type Font string

const (
	FontLato    Font = "lato"
	FontArial   Font = "arial"
	FontSystem  Font = "system"
	FontSerif   Font = "serif"
	FontScript  Font = "script"
	FontElegant Font = "elegant"
	FontClassic Font = "classic"
	FontPlaypen Font = "playpen"
	// FontRandom is resolved to one of the concrete fonts when chosen.
	FontRandom Font = "random"
)

var fontLabels = map[Font]string{
	FontLato:    "Lato",
	FontArial:   "Arial",
	FontSystem:  "System",
	FontSerif:   "Serif",
	FontScript:  "Script",
	FontElegant: "Elegant",
	FontClassic: "Classic",
	FontPlaypen: "Playpen",
	FontRandom:  "Random",
}

// Fonts returns every selectable font, in menu order.
func Fonts() []Font {
	return []Font{
		FontLato,
		FontArial,
		FontSystem,
		FontSerif,
		FontScript,
		FontElegant,
		FontClassic,
		FontPlaypen,
		FontRandom,
	}
}

// ParseFont converts raw user or stored input into a Font.
func ParseFont(raw string) (Font, error) {
	f := Font(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := fontLabels[f]; ok {
		return f, nil
	}
	return "", fmt.Errorf("entry: unknown font %q", raw)
}

// Label is the human readable font name.
func (f Font) Label() string {
	if l, ok := fontLabels[f]; ok {
		return l
	}
	return string(f)
}

// Resolve returns f, or a randomly picked concrete font for FontRandom.
func (f Font) Resolve() Font {
	if f != FontRandom {
		return f
	}
	fonts := Fonts()
	concrete := fonts[:len(fonts)-1]
	return concrete[rand.IntN(len(concrete))]
}

// Next cycles through the concrete fonts.
func (f Font) Next() Font {
	fonts := Fonts()
	concrete := fonts[:len(fonts)-1]
	for i, c := range concrete {
		if c == f {
			return concrete[(i+1)%len(concrete)]
		}
	}
	return concrete[0]
}

// Theme is the light or dark presentation of the editor.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func ParseTheme(raw string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(raw))); t {
	case ThemeDark, ThemeLight:
		return t, nil
	}
	return "", fmt.Errorf("entry: unknown theme %q", raw)
}

// Toggle flips between dark and light.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

const (
	DefaultFont     = FontSystem
	DefaultFontSize = "24"
	DefaultTheme    = ThemeDark

	MinFontSize = 8
	MaxFontSize = 72
	ZoomStep    = 2
)

// SizePresets are the quick-pick font sizes, in pixels.
var SizePresets = []string{"16", "18", "20", "24", "28"}

var ErrInvalidFontSize = errors.New("entry: invalid font size")

// ParseFontSize accepts "20", "20px" or " 20 " and returns the canonical
// digits. Anything without digits, or a zero size, is rejected.
func ParseFontSize(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidFontSize, raw)
	}
	return strconv.Itoa(n), nil
}

// ZoomFontSize steps size by delta pixels, clamped to [MinFontSize, MaxFontSize].
func ZoomFontSize(size string, delta int) string {
	n, err := strconv.Atoi(size)
	if err != nil {
		n, _ = strconv.Atoi(DefaultFontSize)
	}
	n += delta
	n = max(n, MinFontSize)
	n = min(n, MaxFontSize)
	return strconv.Itoa(n)
}

// Prefs are the presentation preferences snapshotted into every entry.
type Prefs struct {
	Font     Font   `json:"font" yaml:"font"`
	FontSize string `json:"fontSize" yaml:"fontSize"`
	Theme    Theme  `json:"theme" yaml:"theme"`
}

func DefaultPrefs() Prefs {
	return Prefs{
		Font:     DefaultFont,
		FontSize: DefaultFontSize,
		Theme:    DefaultTheme,
	}
}

// Normalize replaces any invalid field with the matching field of fallback.
func (p Prefs) Normalize(fallback Prefs) Prefs {
	if f, err := ParseFont(string(p.Font)); err == nil {
		p.Font = f
	} else {
		p.Font = fallback.Font
	}
	if s, err := ParseFontSize(p.FontSize); err == nil {
		p.FontSize = s
	} else {
		p.FontSize = fallback.FontSize
	}
	if t, err := ParseTheme(string(p.Theme)); err == nil {
		p.Theme = t
	} else {
		p.Theme = fallback.Theme
	}
	return p
}
