package root

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/klimvill/RPG-task/internal/ui"
)

func newGuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guild",
		Short: "Visit the adventurers' guild",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if svc.Player().Name == "" {
				fmt.Fprintln(out, ui.Muted.Render("You are not registered. Join with: rpg guild join <name>"))
				return nil
			}

			board, err := svc.QuestBoard()
			if err != nil {
				return err
			}

			fmt.Fprintln(out, ui.Heading(ui.IconGuild, "Quest board"))
			if active := svc.Quests().Active(); active != nil {
				fmt.Fprintln(out, ui.Muted.Render("Active quest: "+active.Quest.Name))
			}
			if len(board) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no offers today)"))
				return nil
			}
			for i, q := range board {
				reward := fmt.Sprintf("%.2f gold", q.Reward.Gold)
				if n := len(q.Reward.Items); n > 0 {
					reward += fmt.Sprintf(" + %d item(s)", n)
				}
				fmt.Fprintf(out, "%2d. %s %s %s\n", i+1,
					ui.Key.Render(q.Name),
					ui.Warn.Render("["+q.Rank+"]"),
					ui.Muted.Render(reward))
				if q.Description != "" {
					fmt.Fprintf(out, "    %s\n", ui.Dim.Render(q.Description))
				}
			}
			return nil
		},
	}

	cmd.AddCommand(newGuildJoinCmd(), newGuildAcceptCmd())

	return cmd
}

func newGuildJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <name>",
		Short: "Register with the guild",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("a name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return errors.New("a name is required")
			}
			svc.Player().Name = name
			fmt.Fprintf(cmd.OutOrStdout(), "%s Welcome to the guild, %s!\n", ui.Good.Render(ui.IconGuild), ui.Key.Render(name))
			return nil
		},
	}
}

func newGuildAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <num>",
		Short: "Accept a quest from today's board",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest number is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("quest number must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, _ := strconv.Atoi(args[0])

			svc, cleanup, err := openService(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			q, err := svc.AcceptQuest(pos)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Accepted %s\n", ui.Good.Render(ui.IconQuest), ui.Key.Render(q.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Quest goals show up in rpg list."))
			return nil
		},
	}
}
