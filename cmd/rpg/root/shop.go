package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klimvill/RPG-task/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse today's item shop",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			items, err := svc.ShopItems()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShop, "Shop"))
			fmt.Fprintln(out, ui.LabelValue("Gold", ui.GoldAmount(svc.Player().Gold.Balance)))
			if len(items) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no offers today)"))
				return nil
			}
			for i, it := range items {
				fmt.Fprintf(out, "%2d. %s %s\n", i+1, ui.Key.Render(it.Name), ui.Gold.Render(fmt.Sprintf("%.2f", it.Cost)))
				if it.Description != "" {
					fmt.Fprintf(out, "    %s\n", ui.Dim.Render(it.Description))
				}
			}
			return nil
		},
	}

	cmd.AddCommand(newShopBuyCmd())

	return cmd
}

func newShopBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <num>...",
		Short: "Buy items from today's shop",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("at least one item number is required")
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

			res, err := svc.BuyItems(nums)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, it := range res.Bought {
				fmt.Fprintf(out, "%s Bought %s for %s gold\n", ui.Good.Render(ui.IconChest), ui.Key.Render(it.Name), ui.GoldAmount(it.Cost))
			}
			if res.NoGold {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" Not enough gold."))
			}
			if res.NoSpace {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" Not enough space in the bag."))
			}
			if len(res.Bought) == 0 && !res.NoGold && !res.NoSpace {
				fmt.Fprintln(out, ui.Muted.Render("Nothing bought."))
			}
			return nil
		},
	}
}
