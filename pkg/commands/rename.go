package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/runner/rename"
)

func addRename(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rename <id> [title]",
		Short: "set the title of an entry",
		Long:  `Set the title of an entry. An empty title resets it to "Untitled".`,
		Example: `
freewrite rename 0190a Morning pages
`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closer, err := loadService()
			if err != nil {
				return err
			}
			defer closer.Close()
			r := rename.Rename{
				Service: svc,
				ID:      args[0],
				Title:   strings.Join(args[1:], " "),
				Out:     cmd.OutOrStdout(),
			}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
