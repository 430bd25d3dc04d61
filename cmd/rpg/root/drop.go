package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klimvill/RPG-task/internal/ui"
)

func newDropCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drop <num>...",
		Short: "Delete tasks by number (a penalty applies)",
		Long:  "Delete user tasks or daily tasks by number. Giving up costs the gold and experience the tasks would have paid. Quest goals cannot be dropped.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("at least one task number is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parsePositions(args)
			if err != nil {
				return err
			}

			svc, cleanup, err := openService(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.DeleteTasks(nums)
			if err != nil {
				return err
			}
			if len(res.Removed) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing removed."))
				return nil
			}
			printPenalty(cmd.OutOrStdout(), "Removed", res)
			return nil
		},
	}

	return cmd
}
