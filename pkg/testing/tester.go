package testing

import (
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/dotindicator/pkg/animation"
	"github.com/go-drift/dotindicator/pkg/errors"
	"github.com/go-drift/dotindicator/pkg/graphics"
	"github.com/go-drift/dotindicator/pkg/widgets"
)

// FrameDuration is the simulated frame interval used by PumpFor and
// PumpAndSettle.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = stderrors.New("PumpAndSettle timed out: animators did not settle")

// SelectionChange records one selection observer call.
type SelectionChange struct {
	Previous int
	Current  int
}

// IndicatorTester drives a DotIndicator with a fake clock and records
// observer calls and reported errors.
type IndicatorTester struct {
	indicator   *widgets.DotIndicator
	clock       *FakeClock
	prevClock   animation.Clock
	prevHandler errors.ErrorHandler
	recorder    *recordingHandler
	size        graphics.Size
	clicks      []int
	changes     []SelectionChange
}

// NewIndicatorTester creates a tester and installs its fake clock and error
// recorder globally. Call Cleanup when done, or use NewIndicatorTesterWithT.
func NewIndicatorTester() *IndicatorTester {
	clk := NewFakeClock()
	rec := &recordingHandler{}
	t := &IndicatorTester{
		clock:    clk,
		recorder: rec,
	}
	t.prevClock = animation.SetClock(clk)
	t.prevHandler = errors.SetHandler(rec)
	return t
}

// NewIndicatorTesterWithT creates a tester that cleans up via t.Cleanup.
func NewIndicatorTesterWithT(t *testing.T) *IndicatorTester {
	tester := NewIndicatorTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup disposes the mounted indicator and restores the global clock and
// error handler.
func (t *IndicatorTester) Cleanup() {
	if t.indicator != nil {
		t.indicator.Dispose()
		t.indicator = nil
	}
	animation.SetClock(t.prevClock)
	errors.SetHandler(t.prevHandler)
}

// SetSize sets the layout size used by Mount. Zero lays the indicator out
// at its measured size.
func (t *IndicatorTester) SetSize(size graphics.Size) {
	t.size = size
}

// Mount creates an indicator from cfg, wires recording observers and lays
// it out. A previously mounted indicator is disposed. Replacing the
// observers on the returned indicator stops the tester from recording.
func (t *IndicatorTester) Mount(cfg widgets.DotIndicatorConfig) *widgets.DotIndicator {
	if t.indicator != nil {
		t.indicator.Dispose()
	}
	t.clicks = nil
	t.changes = nil

	ind := widgets.NewDotIndicator(cfg)
	ind.SetOnClick(func(index int) {
		t.clicks = append(t.clicks, index)
	})
	ind.SetOnSelectionChange(func(previous, current int) {
		t.changes = append(t.changes, SelectionChange{Previous: previous, Current: current})
	})
	size := t.size
	if size == (graphics.Size{}) {
		size = ind.Measure()
	}
	ind.Layout(size)
	t.indicator = ind
	return ind
}

// Indicator returns the mounted indicator.
func (t *IndicatorTester) Indicator() *widgets.DotIndicator {
	return t.indicator
}

// Clock returns the fake clock.
func (t *IndicatorTester) Clock() *FakeClock {
	return t.clock
}

// Pump steps every active animator once at the current fake time.
func (t *IndicatorTester) Pump() {
	animation.StepTickers()
}

// PumpFor advances the clock by d in frame-sized steps, pumping after each.
func (t *IndicatorTester) PumpFor(d time.Duration) {
	for d > 0 {
		step := min(FrameDuration, d)
		t.clock.Advance(step)
		t.Pump()
		d -= step
	}
}

// PumpAndSettle pumps frames until no animator is running or the timeout
// is reached.
func (t *IndicatorTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed <= timeout {
		t.Pump()
		if !animation.HasActiveTickers() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

// Tap taps the center of the dot at index.
func (t *IndicatorTester) Tap(index int) error {
	if t.indicator == nil {
		return stderrors.New("no indicator mounted")
	}
	r, ok := t.indicator.DotRect(index)
	if !ok {
		return fmt.Errorf("no dot at index %d (count %d)", index, t.indicator.DotsCount())
	}
	if !t.indicator.Tap(r.Center()) {
		return fmt.Errorf("tap at %v missed dot %d", r.Center(), index)
	}
	return nil
}

// TapAt taps the point p in widget coordinates and reports whether a dot
// was hit.
func (t *IndicatorTester) TapAt(p graphics.Offset) bool {
	if t.indicator == nil {
		return false
	}
	return t.indicator.Tap(p)
}

// Clicks returns the indices passed to the click observer.
func (t *IndicatorTester) Clicks() []int {
	return t.clicks
}

// Changes returns the selection observer calls in order.
func (t *IndicatorTester) Changes() []SelectionChange {
	return t.changes
}

// Reports returns errors reported since the tester was created.
func (t *IndicatorTester) Reports() []*errors.DriftError {
	return t.recorder.errs
}

// Panics returns panics recovered since the tester was created.
func (t *IndicatorTester) Panics() []*errors.PanicError {
	return t.recorder.panics
}

type recordingHandler struct {
	errs   []*errors.DriftError
	panics []*errors.PanicError
}

func (h *recordingHandler) HandleError(err *errors.DriftError) {
	h.errs = append(h.errs, err)
}

func (h *recordingHandler) HandlePanic(err *errors.PanicError) {
	h.panics = append(h.panics, err)
}
