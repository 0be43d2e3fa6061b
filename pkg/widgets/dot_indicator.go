package widgets

import (
	"github.com/go-drift/dotindicator/pkg/animation"
	"github.com/go-drift/dotindicator/pkg/drawable"
	"github.com/go-drift/dotindicator/pkg/errors"
	"github.com/go-drift/dotindicator/pkg/graphics"
	"github.com/go-drift/dotindicator/pkg/layout"
)

// DotIndicator is a row or column of dots with exactly one selected.
//
// Selecting a dot swaps the backgrounds of the old and new dot, plays the
// exit animator on the old dot and the enter animator on the new one, and
// then notifies the selection observer. State changes are synchronous; the
// animators only decorate an already committed selection.
//
// A DotIndicator is not safe for concurrent use. Call every method from the
// UI thread that steps the animation tickers.
type DotIndicator struct {
	cfg       DotIndicatorConfig
	drawables *drawable.Factory
	animators *animation.Registry

	dots          []*Dot
	selectedIndex int

	transitions transitionSlots
	immediate   transitionSlots

	onClick           func(index int)
	onSelectionChange func(previous, current int)

	size  graphics.Size
	rects []graphics.Rect
}

// NewDotIndicator creates an indicator and its dots. The initial selection
// is shown without a visible transition.
func NewDotIndicator(cfg DotIndicatorConfig) *DotIndicator {
	cfg = cfg.resolved()
	w := &DotIndicator{
		cfg:           cfg,
		drawables:     cfg.Drawables,
		animators:     cfg.Animators,
		selectedIndex: cfg.InitialSelectedIndex,
	}

	w.transitions.animators[SlotEnter] = w.createEnterAnimator()
	w.transitions.animators[SlotExit] = w.createExitAnimator()

	immediateEnter := w.createEnterAnimator()
	immediateEnter.SetDuration(0)
	immediateExit := w.createExitAnimator()
	immediateExit.SetDuration(0)
	w.immediate.animators[SlotEnter] = immediateEnter
	w.immediate.animators[SlotExit] = immediateExit

	w.Rebuild()
	return w
}

func (w *DotIndicator) createEnterAnimator() *animation.Animator {
	return w.animators.LoadOrDefault(w.cfg.EnterAnimator)
}

// createExitAnimator loads the configured exit animator, or derives one by
// running the enter definition through ReverseCurve.
func (w *DotIndicator) createExitAnimator() *animation.Animator {
	if w.cfg.ExitAnimator != "" {
		a, err := w.animators.Load(w.cfg.ExitAnimator)
		if err == nil {
			return a
		}
		errors.Report(errors.Wrap("widgets.DotIndicator.createExitAnimator", errors.KindResource, err))
	}
	a := w.animators.LoadOrDefault(w.cfg.EnterAnimator)
	a.SetCurve(animation.ReverseCurve)
	return a
}

// Rebuild discards every dot and creates DotsCount new ones reflecting the
// current selection and tint.
func (w *DotIndicator) Rebuild() {
	w.transitions.detach()
	w.immediate.detach()

	params := w.cfg.dotParams()
	w.dots = make([]*Dot, 0, w.cfg.DotsCount)
	for i := 0; i < w.cfg.DotsCount; i++ {
		id := w.cfg.UnselectedDrawable
		slot := SlotExit
		if i == w.selectedIndex {
			id = w.cfg.SelectedDrawable
			slot = SlotEnter
		}

		dot := newDot(w, i, params)
		dot.setBackground(id, w.tintedBackground(id))
		w.dots = append(w.dots, dot)

		w.immediate.release(slot)
		w.immediate.play(slot, dot)
	}
	w.rects = nil
}

// SelectTo selects the dot at index. Out-of-range indices are ignored.
// Selecting the already selected dot replays the full transition.
//
// The selection observer runs before the selected index is updated, so
// SelectedIndex called from inside the observer returns the previous index.
func (w *DotIndicator) SelectTo(index int) {
	if index < 0 || index >= len(w.dots) {
		return
	}

	w.transitions.release(SlotExit)
	w.transitions.release(SlotEnter)

	current := w.dots[w.selectedIndex]
	next := w.dots[index]

	// Backgrounds swapped here are untinted until the next SetTint.
	current.setBackground(w.cfg.UnselectedDrawable, w.drawables.LoadOrDefault(w.cfg.UnselectedDrawable))
	w.transitions.play(SlotExit, current)

	next.setBackground(w.cfg.SelectedDrawable, w.drawables.LoadOrDefault(w.cfg.SelectedDrawable))
	w.transitions.play(SlotEnter, next)

	// Committed even if the observer panics, so the index always matches
	// the swapped backgrounds.
	defer func() { w.selectedIndex = index }()
	if w.onSelectionChange != nil {
		w.onSelectionChange(w.selectedIndex, index)
	}
}

// SelectedIndex returns the selected dot. It is meaningless when the
// indicator has no dots.
func (w *DotIndicator) SelectedIndex() int {
	return w.selectedIndex
}

// SetTint recolors every dot in place. Selection and running animators are
// left untouched. Zero removes the tint.
func (w *DotIndicator) SetTint(tint graphics.Color) {
	w.cfg.Tint = tint
	for i, dot := range w.dots {
		id := w.cfg.UnselectedDrawable
		if i == w.selectedIndex {
			id = w.cfg.SelectedDrawable
		}
		dot.setBackground(id, w.tintedBackground(id))
	}
}

// Tint returns the current tint, or zero.
func (w *DotIndicator) Tint() graphics.Color {
	return w.cfg.Tint
}

// SetDotsCount changes the number of dots and rebuilds them. A selection
// that no longer fits resets to the first dot.
func (w *DotIndicator) SetDotsCount(count int) {
	if count < 0 {
		count = 0
	}
	w.cfg.DotsCount = count
	if w.selectedIndex < 0 || w.selectedIndex >= count {
		w.selectedIndex = 0
	}
	w.Rebuild()
}

// DotsCount returns the number of dots.
func (w *DotIndicator) DotsCount() int {
	return len(w.dots)
}

// Dot returns the dot at index, or nil when out of range.
func (w *DotIndicator) Dot(index int) *Dot {
	if index < 0 || index >= len(w.dots) {
		return nil
	}
	return w.dots[index]
}

// Dots returns the current dots in order.
func (w *DotIndicator) Dots() []*Dot {
	out := make([]*Dot, len(w.dots))
	copy(out, w.dots)
	return out
}

// Config returns the resolved configuration, including the current tint
// and dot count.
func (w *DotIndicator) Config() DotIndicatorConfig {
	return w.cfg
}

// SetOnClick registers the click observer, replacing any previous one.
// It runs for every dot click, before any selection change. Nil clears it.
func (w *DotIndicator) SetOnClick(fn func(index int)) {
	w.onClick = fn
}

// SetOnSelectionChange registers the selection observer, replacing any
// previous one. Nil clears it.
func (w *DotIndicator) SetOnSelectionChange(fn func(previous, current int)) {
	w.onSelectionChange = fn
}

// PerformClick handles a click on the dot at index. Panics raised by
// observers are recovered and reported.
func (w *DotIndicator) PerformClick(index int) {
	if index < 0 || index >= len(w.dots) {
		return
	}
	defer errors.Recover("widgets.DotIndicator.click")

	if w.onClick != nil {
		w.onClick(index)
	}
	if w.cfg.SelectOnClick {
		w.SelectTo(index)
	}
}

// Transition returns the animator bound to slot, for inspection.
func (w *DotIndicator) Transition(slot TransitionSlot) *animation.Animator {
	return w.transitions.get(slot)
}

// IsAnimating reports whether a selection transition is still playing.
func (w *DotIndicator) IsAnimating() bool {
	return w.transitions.running() || w.immediate.running()
}

// Dispose stops every animator and drops the dots.
func (w *DotIndicator) Dispose() {
	w.transitions.dispose()
	w.immediate.dispose()
	w.dots = nil
	w.rects = nil
	w.onClick = nil
	w.onSelectionChange = nil
}

func (w *DotIndicator) tintedBackground(id drawable.ResourceID) drawable.Drawable {
	return w.drawables.Tint(w.drawables.LoadOrDefault(id), w.cfg.Tint)
}

// Measure returns the size needed to show every dot with its margins.
func (w *DotIndicator) Measure() graphics.Size {
	return w.linearLayout().Measure(w.dotParams())
}

// Layout arranges the dots inside a box of the given size.
func (w *DotIndicator) Layout(size graphics.Size) {
	w.size = size
	w.rects = w.linearLayout().Arrange(size, w.dotParams())
}

// Size returns the size passed to the last Layout call.
func (w *DotIndicator) Size() graphics.Size {
	return w.size
}

// DotRect returns the laid-out rectangle of the dot at index. The indicator
// is laid out at its measured size if Layout has not been called since the
// last rebuild.
func (w *DotIndicator) DotRect(index int) (graphics.Rect, bool) {
	if index < 0 || index >= len(w.dots) {
		return graphics.Rect{}, false
	}
	w.ensureLayout()
	return w.rects[index], true
}

// HitTest returns the dot under p, in widget coordinates.
func (w *DotIndicator) HitTest(p graphics.Offset) (int, bool) {
	w.ensureLayout()
	for i, r := range w.rects {
		if r.Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// Tap clicks the dot under p. It reports whether a dot was hit.
func (w *DotIndicator) Tap(p graphics.Offset) bool {
	index, ok := w.HitTest(p)
	if ok {
		w.PerformClick(index)
	}
	return ok
}

func (w *DotIndicator) ensureLayout() {
	if len(w.rects) != len(w.dots) {
		size := w.size
		if size == (graphics.Size{}) {
			size = w.Measure()
		}
		w.Layout(size)
	}
}

func (w *DotIndicator) linearLayout() layout.LinearLayout {
	return layout.LinearLayout{Orientation: w.cfg.Orientation, Gravity: w.cfg.Gravity, Padding: w.cfg.Padding}
}

func (w *DotIndicator) dotParams() []layout.LayoutParams {
	params := make([]layout.LayoutParams, len(w.dots))
	for i, d := range w.dots {
		params[i] = d.params
	}
	return params
}
