package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/printers"
	"tableflip.dev/freewrite/pkg/store"
)

type configView struct {
	ConfigFile string `json:"configFile" yaml:"configFile"`
	Path       string `json:"path" yaml:"path"`
	Debounce   string `json:"debounce" yaml:"debounce"`
	Font       string `json:"font" yaml:"font"`
	Size       string `json:"size" yaml:"size"`
	Theme      string `json:"theme" yaml:"theme"`
	LogFile    string `json:"logFile" yaml:"logFile"`
	LogLevel   string `json:"logLevel" yaml:"logLevel"`
}

func addConfig(topLevel *cobra.Command) {
	asJSON := false

	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the resolved configuration",
		Long: `Print the settings in effect after reading .freewrite.yaml and the
FREEWRITE_* environment variables.`,
		Example: `
freewrite config
FREEWRITE_THEME=light freewrite config --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := store.LoadConfig()
			if err != nil {
				return err
			}
			view := configView{
				ConfigFile: s.ConfigFile,
				Path:       s.Path,
				Debounce:   s.Debounce.String(),
				Font:       string(s.Prefs.Font),
				Size:       s.Prefs.FontSize,
				Theme:      string(s.Prefs.Theme),
				LogFile:    s.LogFile,
				LogLevel:   s.LogLevel,
			}
			p := printers.Structured{Format: printers.FormatYAML, Out: cmd.OutOrStdout()}
			if asJSON {
				p.Format = printers.FormatJSON
			}
			return p.Print(view)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON.")

	topLevel.AddCommand(cmd)
}
