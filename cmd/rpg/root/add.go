package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/klimvill/RPG-task/internal/ui"
)

func newAddCmd() *cobra.Command {
	var daily bool

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task, with skill tags in brackets",
		Long:  "Add a task. Skill tags go in square brackets, comma-separated:\n\n  rpg add \"Read a chapter [languages, intellect]\"\n\nA \"-e\" token inside the text, or --daily, adds the task to today's daily batch.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("task text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			parsed := svc.ParseTaskLine(strings.Join(args, " "))
			if parsed.Text == "" {
				return errors.New("task text is required")
			}

			tags := ""
			if len(parsed.Skills) > 0 {
				names := make([]string, 0, len(parsed.Skills))
				for _, s := range parsed.Skills {
					names = append(names, s.Title())
				}
				tags = " " + ui.Muted.Render("["+strings.Join(names, ", ")+"]")
			}

			if daily || parsed.Daily {
				svc.AddDailyTask(parsed.Text, parsed.Skills)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s%s\n", ui.Good.Render(ui.IconDaily+" Added daily"), parsed.Text, tags)
				return nil
			}

			svc.AddUserTask(parsed.Text, parsed.Skills)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s%s\n", ui.Good.Render(ui.IconTask+" Added"), parsed.Text, tags)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&daily, "daily", "e", false, "Add to today's daily batch")

	return cmd
}
