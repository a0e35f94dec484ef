package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/commands/options"
	"tableflip.dev/freewrite/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}
	limit := 0

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "list saved entries, most recent first",
		Example: `
freewrite ls
freewrite ls --limit 5 -k
freewrite ls --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closer, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer closer.Close()
			l := list.List{
				Service: svc,
				Limit:   limit,
				ShowID:  io.ShowID,
				Output:  oo.Format(),
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of entries to list.")
	options.AddOutputArg(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
