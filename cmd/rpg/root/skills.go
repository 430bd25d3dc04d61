package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klimvill/RPG-task/internal/ui"
)

func newSkillsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Show skill levels and level-up prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			p := svc.Player()
			bal := svc.Balance()

			fmt.Fprintln(out, ui.Heading(ui.IconSkill, "Skills"))
			fmt.Fprintln(out, ui.LabelValue("Gold", ui.GoldAmount(p.Gold.Balance)))
			for i, s := range p.Skills() {
				needExp, needGold := bal.PriceForLevel(s.Level)
				ready := ui.Muted.Render("needs exp")
				if s.Exp >= needExp {
					if p.Gold.Balance >= needGold {
						ready = ui.Good.Render("ready")
					} else {
						ready = ui.Warn.Render("needs gold")
					}
				}
				fmt.Fprintf(out, "%2d. %s lvl %d — exp %.2f/%.2f, price %.2f gold %s\n",
					i+1, ui.Key.Render(s.Type.Title()), s.Level, s.Exp, needExp, needGold, ready)
			}
			return nil
		},
	}

	cmd.AddCommand(newSkillsUpCmd())

	return cmd
}

func newSkillsUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up <num>...",
		Short: "Buy a level for the selected skills",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("at least one skill number is required")
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

			bought := svc.BuySkillLevels(nums)
			out := cmd.OutOrStdout()
			if len(bought) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No skill was ready to level up."))
				return nil
			}
			for _, t := range bought {
				lvl := svc.Player().Skill(t).Level
				fmt.Fprintf(out, "%s %s is now level %d\n", ui.Good.Render(ui.IconSkill), ui.Key.Render(t.Title()), lvl)
			}
			return nil
		},
	}
}
