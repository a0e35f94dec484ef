package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	path := ""

	cmd := &cobra.Command{
		Use:   "export [id]",
		Short: "save an entry to a text file",
		Long: `Write the content of an entry to a text file. Without --output the file is
named after the entry and today's date, in the working directory.`,
		Example: `
freewrite export 0190a
freewrite export 0190a -o ~/Documents/pages.txt
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closer, err := loadService()
			if err != nil {
				return err
			}
			defer closer.Close()
			id, err := entryID(cmd, svc, args, "Export")
			if err != nil {
				return err
			}
			x := export.Export{
				Service: svc,
				ID:      id,
				Path:    path,
				Out:     cmd.OutOrStdout(),
			}
			return x.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&path, "output", "o", "", "File to write.")

	topLevel.AddCommand(cmd)
}
