package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/dotindicator/cmd/dotindicator/internal/config"
	"github.com/go-drift/dotindicator/pkg/animation"
	"github.com/go-drift/dotindicator/pkg/graphics"
	"github.com/go-drift/dotindicator/pkg/widgets"
)

// maxSettleFrames bounds how long a transition may run before a command
// gives up on it.
const maxSettleFrames = 10_000

type options struct {
	configPath string
	outDir     string
	selects    []int
	fps        int
}

func defaultOptions() options {
	return options{outDir: "frames", fps: 60}
}

// parseOptions parses the flags shared by every command. Both "--flag value"
// and "--flag=value" are accepted.
func parseOptions(args []string) (options, error) {
	opts := defaultOptions()
	for i := 0; i < len(args); i++ {
		name, value, hasValue := strings.Cut(args[i], "=")
		switch name {
		case "--config", "-c", "--out", "-o", "--select", "-s", "--fps":
		default:
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}
		if !hasValue {
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", name)
			}
			value = args[i+1]
			i++
		}

		switch name {
		case "--config", "-c":
			opts.configPath = value
		case "--out", "-o":
			opts.outDir = value
		case "--select", "-s":
			indices, err := parseIndexList(value)
			if err != nil {
				return opts, err
			}
			opts.selects = indices
		case "--fps":
			fps, err := strconv.Atoi(value)
			if err != nil || fps <= 0 {
				return opts, fmt.Errorf("--fps must be a positive integer (got %q)", value)
			}
			opts.fps = fps
		}
	}
	return opts, nil
}

// parseIndexList parses "1,2,0".
func parseIndexList(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid dot index %q", part)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no dot indices in %q", s)
	}
	return out, nil
}

// selections returns the indices to visit: the explicit list, or every
// dot after the initial one followed by a wrap back to the start.
func (o options) selections(cfg widgets.DotIndicatorConfig, count int) []int {
	if len(o.selects) > 0 {
		return o.selects
	}
	if count == 0 {
		return nil
	}
	start := cfg.InitialSelectedIndex
	out := make([]int, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, (start+i)%count)
	}
	return out
}

func loadConfig(opts options) (*config.Resolved, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.LoadFile(opts.configPath, dir)
}

// mount creates an indicator and lays it out on the configured canvas. Zero
// canvas dimensions take the measured size.
func mount(res *config.Resolved) (*widgets.DotIndicator, graphics.Size) {
	ind := widgets.NewDotIndicator(res.Indicator)
	size := res.Canvas
	measured := ind.Measure()
	if size.Width == 0 {
		size.Width = measured.Width
	}
	if size.Height == 0 {
		size.Height = measured.Height
	}
	ind.Layout(size)
	return ind, size
}

// frameClock is a manually advanced animation clock so frames are evenly
// spaced regardless of how long painting takes.
type frameClock struct {
	now time.Time
}

func newFrameClock() *frameClock {
	return &frameClock{now: time.Unix(0, 0)}
}

func (c *frameClock) Now() time.Time {
	return c.now
}

// step advances the clock by one frame and steps every ticker.
func (c *frameClock) step(frame time.Duration) {
	c.now = c.now.Add(frame)
	animation.StepTickers()
}

// useFrameClock installs a frameClock and returns a function restoring the
// previous clock.
func useFrameClock() (*frameClock, func()) {
	clk := newFrameClock()
	prev := animation.SetClock(clk)
	return clk, func() { animation.SetClock(prev) }
}

func frameInterval(fps int) time.Duration {
	return time.Second / time.Duration(fps)
}
