package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/commands/options"
	clearrunner "tableflip.dev/freewrite/pkg/runner/clear"
)

func addClear(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "delete every entry and the draft",
		Example: `
freewrite clear
freewrite clear --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closer, err := loadService()
			if err != nil {
				return err
			}
			defer closer.Close()
			c := clearrunner.Clear{
				Service: svc,
				Yes:     co.Yes,
				Confirm: confirmer(cmd),
				Out:     cmd.OutOrStdout(),
			}
			return aborted(cmd, c.Do(cmd.Context()))
		},
	}

	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
