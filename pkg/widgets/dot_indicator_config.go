package widgets

import (
	"math"

	"github.com/go-drift/dotindicator/pkg/animation"
	"github.com/go-drift/dotindicator/pkg/drawable"
	"github.com/go-drift/dotindicator/pkg/errors"
	"github.com/go-drift/dotindicator/pkg/graphics"
	"github.com/go-drift/dotindicator/pkg/layout"
)

const (
	// DefaultDotsCount is the number of dots when none is configured.
	DefaultDotsCount = 4
	// DefaultDotSize is the dot width, height and margin in logical pixels.
	DefaultDotSize = 10
)

// DotIndicatorConfig holds the construction-time attributes of a
// [DotIndicator]. Start from [DefaultDotIndicatorConfig] and override fields;
// a bare struct literal turns SelectOnClick off.
type DotIndicatorConfig struct {
	// DotsCount is the number of dots. Negative values are treated as zero.
	DotsCount int

	// DotWidth and DotHeight are in device pixels. Values <= 0 use
	// DefaultDotSize scaled by Scale.
	DotWidth  float64
	DotHeight float64

	// MarginBetweenDots is applied on both sides of each dot along the main
	// axis. Negative values use DefaultDotSize scaled by Scale.
	MarginBetweenDots float64

	Orientation layout.Orientation

	// Gravity positions the row inside the widget bounds. Zero means center.
	Gravity layout.Gravity

	// Padding insets the row from the widget bounds and adds to the
	// measured size.
	Padding graphics.EdgeInsets

	SelectedDrawable   drawable.ResourceID
	UnselectedDrawable drawable.ResourceID

	// Tint recolors dot backgrounds. Zero means no tint.
	Tint graphics.Color

	// SelectOnClick selects a dot when it is clicked.
	SelectOnClick bool

	// EnterAnimator plays on the dot becoming selected. Empty means
	// animation.DefaultAnimator.
	EnterAnimator animation.ResourceID

	// ExitAnimator plays on the dot losing selection. Empty means the enter
	// animator run backwards with animation.ReverseCurve.
	ExitAnimator animation.ResourceID

	// InitialSelectedIndex is the selection at construction time.
	InitialSelectedIndex int

	// Scale is the device pixel ratio used to resolve default sizes.
	// Values <= 0 mean 1.
	Scale float64

	// Drawables and Animators resolve resources. Nil means the shared
	// default instances.
	Drawables *drawable.Factory
	Animators *animation.Registry
}

// DefaultDotIndicatorConfig returns the documented defaults: four black
// dots of default size, horizontal and centered, selectable by click, with
// the scale-and-fade animator.
func DefaultDotIndicatorConfig() DotIndicatorConfig {
	return DotIndicatorConfig{
		DotsCount:          DefaultDotsCount,
		DotWidth:           -1,
		DotHeight:          -1,
		MarginBetweenDots:  -1,
		Orientation:        layout.OrientationHorizontal,
		Gravity:            layout.GravityCenter,
		SelectedDrawable:   drawable.DefaultDot,
		UnselectedDrawable: drawable.DefaultDot,
		SelectOnClick:      true,
		EnterAnimator:      animation.DefaultAnimator,
		Scale:              1,
	}
}

// resolved returns a copy with every default filled in. Invalid counts and
// indices are corrected and reported.
func (c DotIndicatorConfig) resolved() DotIndicatorConfig {
	if c.Scale <= 0 {
		c.Scale = 1
	}
	mini := math.Floor(DefaultDotSize*c.Scale + 0.5)
	if c.DotWidth <= 0 {
		c.DotWidth = mini
	}
	if c.DotHeight <= 0 {
		c.DotHeight = mini
	}
	if c.MarginBetweenDots < 0 {
		c.MarginBetweenDots = mini
	}
	if c.Gravity == 0 {
		c.Gravity = layout.GravityCenter
	}
	if c.SelectedDrawable == "" {
		c.SelectedDrawable = drawable.DefaultDot
	}
	if c.UnselectedDrawable == "" {
		c.UnselectedDrawable = drawable.DefaultDot
	}
	if c.EnterAnimator == "" {
		c.EnterAnimator = animation.DefaultAnimator
	}
	if c.Drawables == nil {
		c.Drawables = drawable.DefaultFactory()
	}
	if c.Animators == nil {
		c.Animators = animation.DefaultRegistry()
	}
	if c.DotsCount < 0 {
		reportConfig("dots_count", c.DotsCount, "must not be negative")
		c.DotsCount = 0
	}
	if c.DotsCount > 0 && (c.InitialSelectedIndex < 0 || c.InitialSelectedIndex >= c.DotsCount) {
		reportConfig("initial_selected_index", c.InitialSelectedIndex, "out of range")
		c.InitialSelectedIndex = 0
	}
	return c
}

func reportConfig(field string, value any, reason string) {
	errors.Report(&errors.DriftError{
		Op:   "widgets.DotIndicatorConfig",
		Kind: errors.KindConfig,
		Err:  &errors.ConfigError{Field: field, Value: value, Reason: reason},
	})
}

// dotParams returns the layout params shared by every dot.
func (c DotIndicatorConfig) dotParams() layout.LayoutParams {
	p := layout.LayoutParams{Width: c.DotWidth, Height: c.DotHeight}
	if c.Orientation == layout.OrientationVertical {
		p.Margins = graphics.EdgeInsets{Top: c.MarginBetweenDots, Bottom: c.MarginBetweenDots}
	} else {
		p.Margins = graphics.EdgeInsets{Left: c.MarginBetweenDots, Right: c.MarginBetweenDots}
	}
	return p
}
