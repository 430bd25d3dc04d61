package root

import (
	"github.com/spf13/cobra"

	"github.com/klimvill/RPG-task/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
