package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/klimvill/RPG-task/internal/catalog"
	"github.com/klimvill/RPG-task/internal/engine"
	"github.com/klimvill/RPG-task/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, dailies and the active quest",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			num := 0

			fmt.Fprintln(out, ui.Heading(ui.IconTask, "Tasks"))
			tasks := svc.Tasks().All()
			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty)"))
			}
			for _, t := range tasks {
				num++
				fmt.Fprintf(out, "%2d. %s%s\n", num, t.Text, skillSuffix(t.Skills))
			}

			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Heading(ui.IconDaily, "Daily "+ui.Muted.Render("("+svc.Daily().Date+")")))
			daily := svc.Daily()
			if len(daily.Tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty)"))
			}
			for _, t := range daily.Tasks {
				num++
				mark := "[ ]"
				if t.Done || daily.Done {
					mark = ui.Good.Render("[x]")
				}
				fmt.Fprintf(out, "%2d. %s %s%s\n", num, mark, t.Text, skillSuffix(t.Skills))
			}

			active := svc.Quests().Active()
			if active == nil {
				return nil
			}

			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, active.Quest.Name+" "+ui.Muted.Render("— "+active.Stage().Name)))
			for _, g := range active.Goals {
				num++
				mark := "[ ]"
				if g.Completed {
					mark = ui.Good.Render("[x]")
				}
				boss := ""
				if g.Def.Kind == catalog.GoalBoss {
					boss = " " + ui.Bad.Render(fmt.Sprintf("%s %d/%d", ui.IconBoss, g.Def.HP-g.Damage, g.Def.HP))
				}
				fmt.Fprintf(out, "%2d. %s %s%s\n", num, mark, g.Def.Text, boss)
			}
			return nil
		},
	}

	return cmd
}

func skillSuffix(skills []engine.SkillType) string {
	if len(skills) == 0 {
		return ""
	}
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Title())
	}
	return " " + ui.Muted.Render("["+strings.Join(names, ", ")+"]")
}
