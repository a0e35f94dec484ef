package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "freewrite",
		Short: base.Wrap80("Distraction-free writing in the terminal. Run without a command to open the editor."),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd)
		},
		SilenceUsage: true,
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addList(topLevel)
	addShow(topLevel)
	addSearch(topLevel)
	addNew(topLevel)
	addRename(topLevel)
	addRemove(topLevel)
	addClear(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addReport(topLevel)
	addTimer(topLevel)
	addMCP(topLevel)
	addConfig(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
	addCompletions(topLevel)
}
