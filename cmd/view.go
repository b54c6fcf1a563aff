package cmd

import (
	"github.com/spf13/cobra"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <report>",
		Short: "View a previously saved scan report",
		Long:  "Render a report saved by the test command, e.g. .iacscan-reports/<run-id>.json.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.View(cmd.Context(), m.Path(args[0]))
			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
