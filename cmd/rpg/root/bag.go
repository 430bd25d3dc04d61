package root

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/klimvill/RPG-task/internal/catalog"
	"github.com/klimvill/RPG-task/internal/ui"
)

func newBagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bag",
		Short: "Show the inventory and equipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			items := svc.Catalog()

			fmt.Fprintln(out, ui.Heading(ui.IconChest, "Bag"))
			section := ""
			for i, slot := range svc.Inventory().Slots {
				head := "Carrying"
				if slot.Type != catalog.TypeGeneric {
					head = "Equipment"
				}
				if head != section {
					section = head
					if i > 0 {
						fmt.Fprintln(out, "")
					}
					fmt.Fprintln(out, ui.H2.Render(section))
				}

				label := ""
				if slot.Type != catalog.TypeGeneric {
					label = ui.Muted.Render(string(slot.Type)) + " "
				}
				if slot.Empty() {
					fmt.Fprintf(out, "%2d. %s%s\n", i+1, label, ui.Dim.Render("(empty)"))
					continue
				}
				item, err := items.Item(slot.ItemID)
				if err != nil {
					return err
				}
				amount := ""
				if slot.Amount > 1 {
					amount = fmt.Sprintf(" x%d", slot.Amount)
				}
				fmt.Fprintf(out, "%2d. %s%s%s\n", i+1, label, ui.Key.Render(item.Name), amount)
			}
			return nil
		},
	}

	cmd.AddCommand(newBagEquipCmd(), newBagSellCmd(), newBagInfoCmd())

	return cmd
}

func slotArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("slot number is required")
	}
	pos, err := strconv.Atoi(args[0])
	if err != nil || pos < 1 {
		return 0, errors.New("slot number must be a positive integer")
	}
	return pos, nil
}

func newBagEquipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equip <slot>",
		Short: "Equip or unequip the item in a slot",
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := slotArg(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, _ := slotArg(args)

			svc, cleanup, err := openService(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			moved, err := svc.EquipSlot(pos)
			if err != nil {
				return err
			}
			if !moved {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing moved: the slot is empty, the item is not wearable, or no slot is free."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Done."))
			return nil
		},
	}
}

func newBagSellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sell <slot>",
		Short: "Sell the contents of a slot",
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := slotArg(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, _ := slotArg(args)

			svc, cleanup, err := openService(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			item, credit, err := svc.SellSlot(pos)
			if err != nil {
				return err
			}
			if item.ID == "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("The slot is empty."))
				return nil
			}
			if credit == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s cannot be sold.\n", ui.Key.Render(item.Name))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Sold %s for %s gold\n", ui.Good.Render(ui.IconGold), ui.Key.Render(item.Name), ui.GoldAmount(credit))
			return nil
		},
	}
}

func newBagInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <slot>",
		Short: "Describe the item in a slot",
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := slotArg(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, _ := slotArg(args)

			svc, cleanup, err := openService(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			slot, err := svc.Inventory().Slot(pos)
			if err != nil {
				return err
			}
			if slot.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("The slot is empty."))
				return nil
			}
			item, err := svc.Catalog().Item(slot.ItemID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChest, item.Name))
			if item.Description != "" {
				fmt.Fprintln(out, ui.Dim.Render(item.Description))
			}
			fmt.Fprintln(out, ui.LabelValue("Type", string(item.Type)))
			if item.Sellable {
				fmt.Fprintln(out, ui.LabelValue("Sell price", ui.GoldAmount(item.Sell)))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Sell price", ui.Muted.Render("not sellable")))
			}

			if len(item.Effects) > 0 {
				fmt.Fprintln(out, ui.H2.Render("Effects"))
				skills := make([]string, 0, len(item.Effects))
				for s := range item.Effects {
					skills = append(skills, s)
				}
				sort.Strings(skills)
				for _, s := range skills {
					fmt.Fprintf(out, "- %s x%.2f\n", s, item.Effects[s])
				}
			}
			return nil
		},
	}
}
