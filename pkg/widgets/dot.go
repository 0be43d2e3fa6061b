package widgets

import (
	"github.com/go-drift/dotindicator/pkg/animation"
	"github.com/go-drift/dotindicator/pkg/drawable"
	"github.com/go-drift/dotindicator/pkg/layout"
)

// Dot is one indicator element. Dots are owned by their [DotIndicator] and
// are discarded wholesale whenever the indicator rebuilds, so a *Dot must not
// be held across SetDotsCount or Rebuild.
type Dot struct {
	owner        *DotIndicator
	index        int
	backgroundID drawable.ResourceID
	background   drawable.Drawable
	params       layout.LayoutParams
	scaleX       float64
	scaleY       float64
	alpha        float64
}

func newDot(owner *DotIndicator, index int, params layout.LayoutParams) *Dot {
	return &Dot{
		owner:  owner,
		index:  index,
		params: params,
		scaleX: 1,
		scaleY: 1,
		alpha:  1,
	}
}

// Index returns the dot's position in the row.
func (d *Dot) Index() int {
	return d.index
}

// IsSelected reports whether the owning indicator currently selects this dot.
func (d *Dot) IsSelected() bool {
	return d.owner != nil && d.owner.selectedIndex == d.index
}

// Background returns the drawable painted behind the dot.
func (d *Dot) Background() drawable.Drawable {
	return d.background
}

// BackgroundID returns the resource the background was loaded from.
func (d *Dot) BackgroundID() drawable.ResourceID {
	return d.backgroundID
}

// IsTinted reports whether the background carries a tint.
func (d *Dot) IsTinted() bool {
	_, ok := d.background.(*drawable.TintedDrawable)
	return ok
}

// Params returns the dot's size and margins.
func (d *Dot) Params() layout.LayoutParams {
	return d.params
}

// Scale returns the animated scale factors.
func (d *Dot) Scale() (x, y float64) {
	return d.scaleX, d.scaleY
}

// Alpha returns the animated opacity.
func (d *Dot) Alpha() float64 {
	return d.alpha
}

// SetAnimatedValue implements [animation.Animatable].
func (d *Dot) SetAnimatedValue(property animation.Property, value float64) {
	switch property {
	case animation.PropertyScaleX:
		d.scaleX = value
	case animation.PropertyScaleY:
		d.scaleY = value
	case animation.PropertyAlpha:
		d.alpha = min(max(value, 0), 1)
	}
}

// PerformClick simulates a tap on the dot.
func (d *Dot) PerformClick() {
	if d.owner != nil {
		d.owner.PerformClick(d.index)
	}
}

func (d *Dot) setBackground(id drawable.ResourceID, bg drawable.Drawable) {
	d.backgroundID = id
	d.background = bg
}
