package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/commands/options"
	"tableflip.dev/freewrite/pkg/runner/importer"
)

func addImport(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "import <pattern>...",
		Short: "save text files as new entries",
		Long: `Save every file matched by the patterns as a new entry titled after the
file name. Patterns may use ** to match directories recursively.`,
		Example: `
freewrite import notes.txt
freewrite import "~/journal/**/*.md"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closer, err := loadService()
			if err != nil {
				return err
			}
			defer closer.Close()
			i := importer.Import{
				Service:  svc,
				Patterns: args,
				ShowID:   io.ShowID,
				Out:      cmd.OutOrStdout(),
			}
			return i.Do(cmd.Context())
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
