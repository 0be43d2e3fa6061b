package animation

import (
	"fmt"
	"time"
)

// Property names an animatable attribute of a target.
type Property string

const (
	// PropertyScaleX is the horizontal scale factor around the target's center.
	PropertyScaleX Property = "scale_x"
	// PropertyScaleY is the vertical scale factor around the target's center.
	PropertyScaleY Property = "scale_y"
	// PropertyAlpha is the target's opacity, 0 to 1.
	PropertyAlpha Property = "alpha"
)

// ParseProperty validates a property name from configuration.
func ParseProperty(name string) (Property, error) {
	switch p := Property(name); p {
	case PropertyScaleX, PropertyScaleY, PropertyAlpha:
		return p, nil
	default:
		return "", fmt.Errorf("unknown property %q", name)
	}
}

// Animatable receives property values from an [Animator].
type Animatable interface {
	SetAnimatedValue(property Property, value float64)
}

// PropertyValues animates one property from From to To.
type PropertyValues struct {
	Property Property
	From     float64
	To       float64
}

// AnimatorSpec describes an animator resource: which properties move, for how
// long, and along which curve.
type AnimatorSpec struct {
	Properties []PropertyValues
	Duration   time.Duration
	// Curve is the default timing curve. Nil means linear.
	Curve Curve
}

// Animator is a retargetable animation handle.
//
// An Animator plays its property keyframes on one target at a time. Start
// begins a run, End jumps a run to its final frame, and Cancel abandons it
// where it stands. Retargeting a running Animator without stopping it first
// leaves the old target mid-transition, so callers end and cancel before
// calling SetTarget.
type Animator struct {
	tweens     []propertyTween
	curve      Curve
	controller *AnimationController
	target     Animatable
	running    bool
}

type propertyTween struct {
	property Property
	tween    *Tween[float64]
}

// NewAnimator creates an idle animator from spec.
func NewAnimator(spec AnimatorSpec) *Animator {
	a := &Animator{
		curve:      spec.Curve,
		controller: NewAnimationController(spec.Duration),
	}
	if a.curve == nil {
		a.curve = LinearCurve
	}
	for _, pv := range spec.Properties {
		a.tweens = append(a.tweens, propertyTween{
			property: pv.Property,
			tween:    TweenFloat64(pv.From, pv.To),
		})
	}
	a.controller.AddListener(func() {
		a.apply(a.controller.Value)
	})
	a.controller.AddStatusListener(func(status AnimationStatus) {
		if status == AnimationCompleted || status == AnimationDismissed {
			a.running = false
		}
	})
	return a
}

// SetTarget binds the animator to target. Nil unbinds it.
func (a *Animator) SetTarget(target Animatable) {
	a.target = target
}

// Target returns the bound target, or nil.
func (a *Animator) Target() Animatable {
	return a.target
}

// SetCurve replaces the timing curve. Nil restores linear timing.
func (a *Animator) SetCurve(c Curve) {
	if c == nil {
		c = LinearCurve
	}
	a.curve = c
}

// Curve returns the current timing curve.
func (a *Animator) Curve() Curve {
	return a.curve
}

// Duration returns the run length.
func (a *Animator) Duration() time.Duration {
	return a.controller.Duration
}

// SetDuration changes the run length. Negative durations are treated as zero.
func (a *Animator) SetDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	a.controller.Duration = d
}

// IsRunning reports whether a run is in progress.
func (a *Animator) IsRunning() bool {
	return a.running
}

// Status returns the state of the current or last run.
func (a *Animator) Status() AnimationStatus {
	return a.controller.Status()
}

// Start plays the animator from its first frame. The first frame is applied
// to the target synchronously; a zero-duration animator also applies its
// last frame before returning and is never left running.
func (a *Animator) Start() {
	a.controller.Stop()
	a.controller.Value = 0
	a.apply(0)
	a.running = true
	a.controller.Forward()
}

// End finishes a run immediately, applying the last frame to the target.
// It is a no-op when the animator is idle.
func (a *Animator) End() {
	if !a.running {
		return
	}
	a.controller.Finish()
	a.running = false
}

// Cancel stops a run where it stands without applying further frames.
func (a *Animator) Cancel() {
	a.controller.Stop()
	a.running = false
}

// Stop ends then cancels a running animator, leaving its target at the final
// frame and the handle free to be rebound.
func (a *Animator) Stop() {
	if a.running {
		a.End()
		a.Cancel()
	}
}

// Dispose cancels the animator and releases its controller.
func (a *Animator) Dispose() {
	a.Cancel()
	a.target = nil
	a.controller.Dispose()
}

func (a *Animator) apply(t float64) {
	if a.target == nil {
		return
	}
	f := a.curve(t)
	for _, pt := range a.tweens {
		a.target.SetAnimatedValue(pt.property, pt.tween.Evaluate(f))
	}
}
