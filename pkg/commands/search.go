package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/commands/options"
	"tableflip.dev/freewrite/pkg/runner/search"
)

func addSearch(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "find entries by title or content",
		Example: `
freewrite search garden
freewrite search "morning pages" --json
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closer, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer closer.Close()
			s := search.Search{
				Service: svc,
				Query:   strings.Join(args, " "),
				ShowID:  io.ShowID,
				Output:  oo.Format(),
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
