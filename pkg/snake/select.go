package snake

import (
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"

	"tableflip.dev/freewrite/pkg/entry"
)

var errNoEntries = errors.New("no saved entries")

// SelectEntry lets the user pick one of entries. Typing "/" filters by title
// and content.
func SelectEntry(in io.Reader, out io.Writer, label string, entries []entry.Entry) (entry.Entry, error) {
	if len(entries) == 0 {
		return entry.Entry{}, errNoEntries
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Title | bold }} {{ .ID | faint }}",
		Inactive: "   {{ .Title }} {{ .ID | faint }}",
		Selected: "{{ .Title | bold }}",
		Details: `
--------- Preview ----------
{{ .Preview }}
`,
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     entries,
		Templates: templates,
		Size:      10,
		Searcher:  entrySearcher(entries),
		Stdin:     io.NopCloser(in),
		Stdout:    nopWriteCloser{out},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return entry.Entry{}, fmt.Errorf("prompt failed: %w", err)
	}
	return entries[i], nil
}

func entrySearcher(entries []entry.Entry) func(input string, index int) bool {
	return func(input string, index int) bool {
		return entries[index].Matches(input)
	}
}
