package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the editor",
		Example: `
freewrite ui
`,
		Args:      cobra.NoArgs,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd)
		},
	}

	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command) error {
	settings, p, err := loadStore()
	if err != nil {
		return err
	}
	i := ui.UI{Settings: settings, Persistence: p, Out: cmd.OutOrStdout()}
	return i.Do(cmd.Context())
}
