package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/commands/options"
	"tableflip.dev/freewrite/pkg/runner/report"
	"tableflip.dev/freewrite/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}
	var (
		last     string
		calendar bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "summarise recent writing by day",
		Long: `Report lists the entries written within the time window, grouped by day,
with their word counts.`,
		Example: `
freewrite report
freewrite report --last 3d
freewrite report --last 1w2d --calendar`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closer, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer closer.Close()
			r := report.Report{
				Service:  svc,
				Window:   last,
				Calendar: calendar,
				ShowID:   io.ShowID,
				Output:   oo.Format(),
				Out:      cmd.OutOrStdout(),
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&last, "last", timeutil.DefaultWindow, "time window to include (for example 3d, 1w)")
	cmd.Flags().BoolVar(&calendar, "calendar", false, "show a month calendar of writing days")
	options.AddOutputArg(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
