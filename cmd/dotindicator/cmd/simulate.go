package cmd

import (
	"fmt"
	"io"

	"github.com/go-drift/dotindicator/cmd/dotindicator/internal/config"
	"github.com/go-drift/dotindicator/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "simulate",
		Short: "Print the events a sequence of clicks produces",
		Long: `Click dots in order and print every observer call.

Each click runs the click observer first and, when select_on_click is
enabled, the selection observer with the previous and new index. The
command then steps the transitions to completion and prints the final state
of every dot.

Flags:
  --config FILE, -c FILE   Configuration file (default: ./dotindicator.yaml if present)
  --select LIST, -s LIST   Comma-separated dot indices to click in order
                           (default: every dot once, wrapping back to the start)
  --fps N                  Frame rate used to count settle frames (default: 60)`,
		Usage: "dotindicator simulate [--config FILE] [--select 1,2,0] [--fps N]",
		Run:   runSimulate,
	})
}

func runSimulate(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	res, err := loadConfig(opts)
	if err != nil {
		return err
	}
	return simulate(stdout, res, opts)
}

func simulate(w io.Writer, res *config.Resolved, opts options) error {
	clk, restore := useFrameClock()
	defer restore()

	ind, _ := mount(res)
	defer ind.Dispose()

	ind.SetOnClick(func(index int) {
		fmt.Fprintf(w, "click %d\n", index)
	})
	ind.SetOnSelectionChange(func(previous, current int) {
		fmt.Fprintf(w, "select %d -> %d\n", previous, current)
	})

	fmt.Fprintf(w, "dots=%d selected=%d\n", ind.DotsCount(), ind.SelectedIndex())
	interval := frameInterval(opts.fps)
	for _, index := range opts.selections(res.Indicator, ind.DotsCount()) {
		if ind.Dot(index) == nil {
			fmt.Fprintf(w, "click %d ignored (no such dot)\n", index)
			continue
		}
		ind.PerformClick(index)
		frames := 0
		for ind.IsAnimating() && frames < maxSettleFrames {
			clk.step(interval)
			frames++
		}
		if frames > 0 {
			fmt.Fprintf(w, "  settled after %d frames (enter %s, exit %s)\n", frames,
				ind.Transition(widgets.SlotEnter).Status(), ind.Transition(widgets.SlotExit).Status())
		}
	}

	fmt.Fprintf(w, "final selected=%d\n", ind.SelectedIndex())
	for _, dot := range ind.Dots() {
		sx, sy := dot.Scale()
		mark := " "
		if dot.IsSelected() {
			mark = "*"
		}
		fmt.Fprintf(w, "%s dot %d background=%s scale=%.2fx%.2f alpha=%.2f\n",
			mark, dot.Index(), dot.BackgroundID(), sx, sy, dot.Alpha())
	}
	return nil
}
