package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/freewrite/pkg/runner/timer"
)

func addTimer(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "timer [minutes]",
		Short: "run a focus countdown",
		Example: `
freewrite timer
freewrite timer 25
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"5", "15", "25", "30"},
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes := 15
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid minutes %q", args[0])
				}
				minutes = n
			}
			t := timer.Timer{Minutes: minutes, Out: cmd.OutOrStdout()}
			return t.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
