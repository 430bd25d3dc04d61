package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klimvill/RPG-task/internal/engine"
	"github.com/klimvill/RPG-task/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <num>...",
		Short: "Complete tasks, dailies and quest goals by number",
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

			res, err := svc.CompleteTasks(nums)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(res.Completed) == 0 && len(res.Items) == 0 && !res.QuestDone {
				fmt.Fprintln(out, ui.Muted.Render("Nothing to complete."))
				return nil
			}

			for _, text := range res.Completed {
				fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconDone), text)
			}
			if res.Gold > 0 {
				fmt.Fprintf(out, "%s +%s gold\n", ui.Gold.Render(ui.IconGold), ui.GoldAmount(res.Gold))
			}
			for _, skill := range engine.AllSkills {
				if exp, ok := res.Exp[skill]; ok && exp > 0 {
					fmt.Fprintf(out, "%s +%.2f exp\n", ui.Key.Render(ui.IconSkill+" "+skill.Title()+":"), exp)
				}
			}
			for _, item := range res.Items {
				fmt.Fprintf(out, "%s Found %s\n", ui.Warn.Render(ui.IconChest), item.Name)
			}
			if res.DailyBonus > 0 {
				fmt.Fprintf(out, "%s All dailies done! +%s gold\n", ui.Good.Render(ui.IconDaily), ui.GoldAmount(res.DailyBonus))
			}

			if res.QuestDone {
				fmt.Fprintf(out, "%s Quest %q complete!\n", ui.Title.Render(ui.IconQuest), res.QuestName)
				if res.QuestGold > 0 {
					fmt.Fprintf(out, "%s +%s gold\n", ui.Gold.Render(ui.IconGold), ui.GoldAmount(res.QuestGold))
				}
				for _, item := range res.QuestItems {
					fmt.Fprintf(out, "%s Reward: %s\n", ui.Warn.Render(ui.IconChest), item.Name)
				}
			}
			if res.Overflow > 0 {
				fmt.Fprintf(out, "%s %d item(s) did not fit and were sold for %s gold\n", ui.Muted.Render(ui.IconWarn), res.Overflow, ui.GoldAmount(res.OverflowGold))
			}
			if res.RankUp {
				fmt.Fprintf(out, "%s %s You are now rank %s\n", ui.Gold.Render(ui.IconRank), ui.BadgeRankUp, res.Rank)
			}
			return nil
		},
	}

	return cmd
}
