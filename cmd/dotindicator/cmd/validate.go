package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-drift/dotindicator/cmd/dotindicator/internal/config"
	"github.com/go-drift/dotindicator/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check a configuration file",
		Long: `Load and resolve a configuration, build the indicator it describes and
report every problem found.

Besides syntax and value errors, validate reports drawable and animator
identifiers that are not built in or defined in the file. The indicator
would fall back to the defaults for those at run time.

Flags:
  --config FILE, -c FILE   Configuration file (default: ./dotindicator.yaml if present)`,
		Usage: "dotindicator validate [--config FILE]",
		Run:   runValidate,
	})
}

func runValidate(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	res, err := loadConfig(opts)
	if err != nil {
		return err
	}
	return validate(stdout, res)
}

// collectingHandler records reports instead of logging them.
type collectingHandler struct {
	reports []*errors.DriftError
	panics  []*errors.PanicError
}

func (h *collectingHandler) HandleError(err *errors.DriftError) {
	h.reports = append(h.reports, err)
}

func (h *collectingHandler) HandlePanic(err *errors.PanicError) {
	h.panics = append(h.panics, err)
}

func validate(w io.Writer, res *config.Resolved) error {
	h := &collectingHandler{}
	prev := errors.SetHandler(h)
	ind, size := mount(res)
	ind.Dispose()
	errors.SetHandler(prev)

	path := res.Path
	if path == "" {
		path = "(defaults)"
	}
	cfg := ind.Config()
	fmt.Fprintf(w, "config:     %s\n", path)
	fmt.Fprintf(w, "schema:     %s\n", res.Schema)
	fmt.Fprintf(w, "dots:       %d %s, gravity %s\n", cfg.DotsCount, cfg.Orientation, cfg.Gravity)
	fmt.Fprintf(w, "dot size:   %vx%v, margin %v\n", cfg.DotWidth, cfg.DotHeight, cfg.MarginBetweenDots)
	fmt.Fprintf(w, "canvas:     %vx%v\n", size.Width, size.Height)
	fmt.Fprintf(w, "drawables:  %s\n", joinIDs(cfg.Drawables.IDs()))
	fmt.Fprintf(w, "animators:  %s\n", joinIDs(cfg.Animators.IDs()))

	problems := h.problems()
	if len(problems) == 0 {
		fmt.Fprintln(w, "OK")
		return nil
	}
	for _, p := range problems {
		fmt.Fprintf(w, "problem: %s\n", p)
	}
	return fmt.Errorf("%d problem(s) found", len(problems))
}

// problems returns the distinct report messages in order. A missing
// resource is reported once per load, which can be several times.
func (h *collectingHandler) problems() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range h.reports {
		msg := fmt.Sprint(r.Err)
		if !seen[msg] {
			seen[msg] = true
			out = append(out, msg)
		}
	}
	for _, p := range h.panics {
		out = append(out, fmt.Sprintf("panic in %s: %v", p.Op, p.Value))
	}
	return out
}

func joinIDs[T ~string](ids []T) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}
