package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/klimvill/RPG-task/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "rpg",
	Short:         "RPG-task — gamify your to-do list",
	Long:          "RPG-task turns your to-do list into an RPG: tasks pay gold and skill experience, quests have stages and bosses, and the guild shop rotates daily.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoCmd(),
		newDropCmd(),
		newListCmd(),
		newStatusCmd(),
		newGuildCmd(),
		newShopCmd(),
		newSkillsCmd(),
		newBagCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
