package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/runner/create"
)

func addNew(topLevel *cobra.Command) {
	title := ""

	cmd := &cobra.Command{
		Use:   "new [text]",
		Short: "save a new entry",
		Long: `Save a new entry from the arguments, or from standard input when no
text is given.`,
		Example: `
freewrite new "a thought for later"
cat notes.txt | freewrite new --title "Notes"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closer, err := loadService()
			if err != nil {
				return err
			}
			defer closer.Close()
			c := create.Create{
				Service: svc,
				Title:   title,
				Content: strings.Join(args, " "),
				Out:     cmd.OutOrStdout(),
			}
			if len(args) == 0 && !interactive(cmd) {
				c.In = cmd.InOrStdin()
			}
			return c.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Title of the entry.")

	topLevel.AddCommand(cmd)
}
