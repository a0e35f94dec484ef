package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/commands/options"
	"tableflip.dev/freewrite/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"delete"},
		Short:   "permanently delete an entry",
		Example: `
freewrite rm 0190a
freewrite rm 0190a --yes
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closer, err := loadService()
			if err != nil {
				return err
			}
			defer closer.Close()
			id, err := entryID(cmd, svc, args, "Delete")
			if err != nil {
				return err
			}
			r := remove.Remove{
				Service: svc,
				ID:      id,
				Yes:     co.Yes,
				Confirm: confirmer(cmd),
				Out:     cmd.OutOrStdout(),
			}
			return aborted(cmd, r.Do(cmd.Context()))
		},
	}

	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

// aborted turns a declined confirmation into a message.
func aborted(cmd *cobra.Command, err error) error {
	if errors.Is(err, remove.ErrAborted) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nothing deleted")
		return nil
	}
	return err
}
