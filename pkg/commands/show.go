package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/commands/options"
	"tableflip.dev/freewrite/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}
	raw := false

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "print an entry",
		Long: `Print an entry with its details. The id may be shortened to any unique
prefix. Without an id, pick the entry from a list.`,
		Example: `
freewrite show 0190a
freewrite show 0190a --raw > pages.txt
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closer, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer closer.Close()
			id, err := entryID(cmd, svc, args, "Show")
			if err != nil {
				return oo.HandleError(err)
			}
			s := show.Show{
				Service: svc,
				ID:      id,
				Raw:     raw,
				ShowID:  io.ShowID,
				Output:  oo.Format(),
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print only the content.")
	options.AddOutputArg(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
