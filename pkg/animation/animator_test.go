package animation

import (
	stderrors "errors"
	"math"
	"testing"
	"time"

	"github.com/go-drift/dotindicator/pkg/errors"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
	StepTickers()
}

func useStepClock(t *testing.T) *stepClock {
	t.Helper()
	clk := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(clk)
	t.Cleanup(func() { SetClock(prev) })
	return clk
}

type recordingTarget struct {
	values map[Property]float64
	writes int
}

func newRecordingTarget() *recordingTarget {
	return &recordingTarget{values: make(map[Property]float64)}
}

func (r *recordingTarget) SetAnimatedValue(p Property, v float64) {
	r.values[p] = v
	r.writes++
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func scaleSpec(d time.Duration) AnimatorSpec {
	return AnimatorSpec{
		Properties: []PropertyValues{{Property: PropertyScaleX, From: 0.5, To: 1}},
		Duration:   d,
	}
}

func TestReverseCurve(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 1},
		{0.25, 0.75},
		{0.5, 0.5},
		{1, 0},
		{1.5, 0.5},
	}
	for _, tt := range tests {
		if got := ReverseCurve(tt.in); !approx(got, tt.want) {
			t.Errorf("ReverseCurve(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCurveByName(t *testing.T) {
	for _, name := range []string{"", "linear", "ease", "ease_in", "ease_out", "EASE_IN_OUT", "reverse"} {
		c, err := CurveByName(name)
		if err != nil || c == nil {
			t.Errorf("CurveByName(%q) = %v, %v", name, c, err)
		}
	}
	if _, err := CurveByName("bounce"); err == nil {
		t.Error("expected error for unknown curve")
	}
}

func TestAnimator_RunsToCompletion(t *testing.T) {
	clk := useStepClock(t)
	target := newRecordingTarget()
	a := NewAnimator(scaleSpec(100 * time.Millisecond))
	defer a.Dispose()
	a.SetTarget(target)

	a.Start()
	if !a.IsRunning() {
		t.Fatal("expected animator to be running after Start")
	}
	if got := target.values[PropertyScaleX]; !approx(got, 0.5) {
		t.Errorf("first frame scale = %v, want 0.5", got)
	}

	clk.advance(50 * time.Millisecond)
	if got := target.values[PropertyScaleX]; !approx(got, 0.75) {
		t.Errorf("midpoint scale = %v, want 0.75", got)
	}

	clk.advance(60 * time.Millisecond)
	if got := target.values[PropertyScaleX]; !approx(got, 1) {
		t.Errorf("final scale = %v, want 1", got)
	}
	if a.IsRunning() {
		t.Error("expected animator to stop after its duration")
	}
}

func TestAnimator_Status(t *testing.T) {
	clk := useStepClock(t)
	a := NewAnimator(scaleSpec(100 * time.Millisecond))
	defer a.Dispose()
	a.SetTarget(newRecordingTarget())

	if got := a.Status(); got != AnimationDismissed {
		t.Errorf("idle status = %v, want dismissed", got)
	}
	a.Start()
	if got := a.Status(); got != AnimationForward {
		t.Errorf("running status = %v, want forward", got)
	}
	clk.advance(100 * time.Millisecond)
	if got := a.Status(); got != AnimationCompleted {
		t.Errorf("finished status = %v, want completed", got)
	}

	// Restarting a completed run plays it again from the first frame.
	a.Start()
	if got := a.Status(); got != AnimationForward || !a.IsRunning() {
		t.Errorf("restarted status = %v, running %v", got, a.IsRunning())
	}
}

func TestAnimator_ReverseCurveRunsBackwards(t *testing.T) {
	clk := useStepClock(t)
	target := newRecordingTarget()
	a := NewAnimator(scaleSpec(100 * time.Millisecond))
	defer a.Dispose()
	a.SetCurve(ReverseCurve)
	a.SetTarget(target)

	a.Start()
	if got := target.values[PropertyScaleX]; !approx(got, 1) {
		t.Errorf("first frame = %v, want 1", got)
	}
	clk.advance(200 * time.Millisecond)
	if got := target.values[PropertyScaleX]; !approx(got, 0.5) {
		t.Errorf("last frame = %v, want 0.5", got)
	}
}

func TestAnimator_ZeroDurationAppliesImmediately(t *testing.T) {
	useStepClock(t)
	target := newRecordingTarget()
	a := NewAnimator(scaleSpec(0))
	defer a.Dispose()
	a.SetTarget(target)

	a.Start()
	if a.IsRunning() {
		t.Error("zero-duration animator should not be left running")
	}
	if got := target.values[PropertyScaleX]; !approx(got, 1) {
		t.Errorf("scale = %v, want 1", got)
	}
	if HasActiveTickers() {
		t.Error("zero-duration animator should not register a ticker")
	}
}

func TestAnimator_EndJumpsToLastFrame(t *testing.T) {
	clk := useStepClock(t)
	target := newRecordingTarget()
	a := NewAnimator(scaleSpec(time.Second))
	defer a.Dispose()
	a.SetTarget(target)

	a.Start()
	clk.advance(100 * time.Millisecond)
	a.End()

	if a.IsRunning() {
		t.Error("expected End to stop the run")
	}
	if got := target.values[PropertyScaleX]; !approx(got, 1) {
		t.Errorf("scale after End = %v, want 1", got)
	}
	if HasActiveTickers() {
		t.Error("expected ticker to be released after End")
	}
}

func TestAnimator_CancelLeavesValue(t *testing.T) {
	clk := useStepClock(t)
	target := newRecordingTarget()
	a := NewAnimator(scaleSpec(100 * time.Millisecond))
	defer a.Dispose()
	a.SetTarget(target)

	a.Start()
	clk.advance(50 * time.Millisecond)
	a.Cancel()
	writes := target.writes

	clk.advance(100 * time.Millisecond)
	if target.writes != writes {
		t.Error("cancelled animator kept writing to its target")
	}
	if got := target.values[PropertyScaleX]; !approx(got, 0.75) {
		t.Errorf("scale after Cancel = %v, want 0.75", got)
	}
}

func TestAnimator_StopBeforeRetarget(t *testing.T) {
	clk := useStepClock(t)
	first, second := newRecordingTarget(), newRecordingTarget()
	a := NewAnimator(scaleSpec(100 * time.Millisecond))
	defer a.Dispose()

	a.SetTarget(first)
	a.Start()
	clk.advance(10 * time.Millisecond)

	a.Stop()
	if got := first.values[PropertyScaleX]; !approx(got, 1) {
		t.Errorf("first target left at %v, want final frame 1", got)
	}
	firstWrites := first.writes

	a.SetTarget(second)
	a.Start()
	clk.advance(200 * time.Millisecond)

	if first.writes != firstWrites {
		t.Error("stale target received frames after rebinding")
	}
	if got := second.values[PropertyScaleX]; !approx(got, 1) {
		t.Errorf("second target = %v, want 1", got)
	}
}

func TestRegistry_LoadReturnsIndependentAnimators(t *testing.T) {
	r := NewRegistry()
	a, err := r.Load(ScaleWithAlpha)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, err := r.Load(ScaleWithAlpha)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if a == b {
		t.Fatal("expected distinct animators")
	}
	a.SetDuration(0)
	if b.Duration() != DefaultDuration {
		t.Errorf("durations are shared: %v", b.Duration())
	}
}

func TestRegistry_LoadUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Load("missing")
	var de *errors.DriftError
	if !stderrors.As(err, &de) {
		t.Fatalf("expected DriftError, got %T", err)
	}
	if de.Kind != errors.KindResource || de.Resource != "missing" {
		t.Errorf("unexpected error: %v", de)
	}
}

func TestRegistry_LoadOrDefault(t *testing.T) {
	var reported []*errors.DriftError
	prev := errors.SetHandler(reportFunc(func(err *errors.DriftError) { reported = append(reported, err) }))
	defer errors.SetHandler(prev)

	r := NewRegistry()
	if a := r.LoadOrDefault(""); a == nil || a.Duration() != DefaultDuration {
		t.Error("empty id should load the default animator")
	}
	if len(reported) != 0 {
		t.Errorf("empty id should not be reported, got %d reports", len(reported))
	}
	if a := r.LoadOrDefault("missing"); a == nil {
		t.Fatal("expected fallback animator")
	}
	if len(reported) != 1 {
		t.Errorf("expected one report for unknown id, got %d", len(reported))
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("", scaleSpec(0)); err == nil {
		t.Error("expected error for empty id")
	}
	if err := r.Register("neg", scaleSpec(-time.Second)); err == nil {
		t.Error("expected error for negative duration")
	}
	if err := r.Register("empty", AnimatorSpec{}); err == nil {
		t.Error("expected error for no properties")
	}
	if err := r.Register("grow", scaleSpec(50*time.Millisecond)); err != nil {
		t.Fatalf("Register: %v", err)
	}
	a, err := r.Load("grow")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if a.Duration() != 50*time.Millisecond {
		t.Errorf("Duration = %v", a.Duration())
	}
	ids := r.IDs()
	if len(ids) != 3 || ids[0] != Fade || ids[1] != "grow" || ids[2] != ScaleWithAlpha {
		t.Errorf("IDs = %v", ids)
	}
}

func TestRegistry_ZeroValue(t *testing.T) {
	var r Registry
	if _, err := r.Load(Fade); err == nil {
		t.Error("zero registry should have no built-ins")
	}
	if err := r.Register("grow", scaleSpec(10*time.Millisecond)); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := r.Load("grow"); err != nil {
		t.Errorf("Load: %v", err)
	}
	if ids := r.IDs(); len(ids) != 1 || ids[0] != "grow" {
		t.Errorf("IDs = %v", ids)
	}
}

type reportFunc func(*errors.DriftError)

func (f reportFunc) HandleError(err *errors.DriftError) { f(err) }
func (f reportFunc) HandlePanic(*errors.PanicError)     {}

func TestStepTickers_StartOrder(t *testing.T) {
	clk := useStepClock(t)

	var order []int
	tickers := make([]*Ticker, 8)
	for i := range tickers {
		tickers[i] = NewTicker(func(time.Duration) { order = append(order, i) })
		tickers[i].Start()
	}
	t.Cleanup(func() {
		for _, tk := range tickers {
			tk.Stop()
		}
	})

	clk.advance(16 * time.Millisecond)

	if len(order) != len(tickers) {
		t.Fatalf("stepped %d tickers, want %d", len(order), len(tickers))
	}
	for i, got := range order {
		if got != i {
			t.Fatalf("step order = %v, want start order", order)
		}
	}
}
