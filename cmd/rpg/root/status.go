package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klimvill/RPG-task/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show rank, gold and skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			p := svc.Player()

			name := p.Name
			if name == "" {
				name = "adventurer"
			}
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Status"))
			fmt.Fprintln(out, ui.LabelValue("Name", name))
			fmt.Fprintf(out, "%s %s %s %s\n",
				ui.Key.Render("Rank:"), ui.Gold.Render(p.Rank.String()),
				ui.ProgressBar(float64(p.Experience), float64(p.Rank.Experience()), 20),
				ui.Muted.Render(fmt.Sprintf("%d/%d", p.Experience, p.Rank.Experience())))
			fmt.Fprintf(out, "%s %s %s\n", ui.Key.Render("Gold:"), ui.IconGold, ui.GoldAmount(p.Gold.Balance))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconSkill+" Skills"))
			bal := svc.Balance()
			inv := svc.Inventory()
			for i, s := range p.Skills() {
				needExp, needGold := bal.PriceForLevel(s.Level)
				bonus := ""
				if b := inv.SkillBonus(string(s.Type)); b != 1.0 {
					bonus = " " + ui.Good.Render(fmt.Sprintf("(x%.2f)", b))
				}
				fmt.Fprintf(out, "%2d. %s lvl %d %s %s%s\n",
					i+1, ui.Key.Render(s.Type.Title()), s.Level,
					ui.ProgressBar(s.Exp, needExp, 10),
					ui.Muted.Render(fmt.Sprintf("next: %.2f exp, %.2f gold", needExp, needGold)),
					bonus)
			}

			return nil
		},
	}

	return cmd
}
