package commands

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"
)

func addUpgrade(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade freewrite cli.",
		Example: `
freewrite upgrade
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ex := exec.CommandContext(cmd.Context(), "go", "install", "tableflip.dev/freewrite/cmd/freewrite@latest")
			var out bytes.Buffer
			ex.Stdout = &out
			ex.Stderr = &out
			if err := ex.Run(); err != nil {
				return fmt.Errorf("%s: %w\n%s", ex.String(), err, out.String())
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ex.String())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
