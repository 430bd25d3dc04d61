package root

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/klimvill/RPG-task/internal/catalog"
	"github.com/klimvill/RPG-task/internal/engine"
	"github.com/klimvill/RPG-task/internal/storage"
	"github.com/klimvill/RPG-task/internal/ui"
)

// openService loads the saved state and runs the daily rollover. The returned
// cleanup checkpoints the state back to disk; every command defers it.
func openService(out io.Writer) (*engine.Service, func(), error) {
	dir, err := storage.DefaultDataDir()
	if err != nil {
		return nil, nil, err
	}
	store, err := storage.NewFileStore(dir)
	if err != nil {
		return nil, nil, err
	}
	items, err := catalog.Builtin()
	if err != nil {
		return nil, nil, err
	}

	svc := engine.NewService(store, items, engine.NewRoller(), engine.DefaultBalance())
	if err := svc.Load(); err != nil {
		return nil, nil, err
	}

	punished, err := svc.DailyReset()
	if err != nil {
		return nil, nil, err
	}
	if punished != nil && len(punished.Removed) > 0 {
		printPenalty(out, "Yesterday's unfinished dailies", punished)
	}

	cleanup := func() {
		if err := svc.Save(); err != nil {
			fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" save failed: "+err.Error()))
		}
	}
	return svc, cleanup, nil
}

func printPenalty(out io.Writer, title string, res *engine.PunishResult) {
	fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" "+title+":"))
	for _, text := range res.Removed {
		fmt.Fprintf(out, "- %s\n", ui.Muted.Render(text))
	}
	if res.Gold > 0 {
		fmt.Fprintf(out, "%s -%s gold\n", ui.Bad.Render("Penalty:"), ui.GoldAmount(res.Gold))
	}
	for _, skill := range engine.AllSkills {
		if exp, ok := res.Exp[skill]; ok && exp > 0 {
			fmt.Fprintf(out, "%s -%.2f exp\n", ui.Key.Render(skill.Title()+":"), exp)
		}
	}
}

func parsePositions(args []string) ([]int, error) {
	nums := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%q is not a task number", a)
		}
		nums = append(nums, n)
	}
	return nums, nil
}
