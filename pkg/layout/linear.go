// Package layout arranges indicator dots in a single row or column.
package layout

import "github.com/go-drift/dotindicator/pkg/graphics"

// LayoutParams are the per-child sizing inputs of a [LinearLayout].
type LayoutParams struct {
	Width   float64
	Height  float64
	Margins graphics.EdgeInsets
}

// outer returns the child's size including margins.
func (p LayoutParams) outer() graphics.Size {
	return graphics.Size{
		Width:  p.Width + p.Margins.Horizontal(),
		Height: p.Height + p.Margins.Vertical(),
	}
}

// LinearLayout places children one after another along its orientation.
type LinearLayout struct {
	Orientation Orientation
	Gravity     Gravity
	Padding     graphics.EdgeInsets
}

// Measure returns the size the children need, including margins and padding.
func (l LinearLayout) Measure(children []LayoutParams) graphics.Size {
	var main, cross float64
	for _, c := range children {
		o := c.outer()
		if l.Orientation == OrientationVertical {
			main += o.Height
			cross = max(cross, o.Width)
		} else {
			main += o.Width
			cross = max(cross, o.Height)
		}
	}
	if l.Orientation == OrientationVertical {
		return graphics.Size{
			Width:  cross + l.Padding.Horizontal(),
			Height: main + l.Padding.Vertical(),
		}
	}
	return graphics.Size{
		Width:  main + l.Padding.Horizontal(),
		Height: cross + l.Padding.Vertical(),
	}
}

// Arrange returns one rectangle per child inside a box of the given size.
// Rectangles exclude margins. When the children overflow the box they keep
// their sizes and spill past its edges.
func (l LinearLayout) Arrange(size graphics.Size, children []LayoutParams) []graphics.Rect {
	rects := make([]graphics.Rect, len(children))
	if len(children) == 0 {
		return rects
	}

	content := l.Measure(children)
	innerW := size.Width - l.Padding.Horizontal()
	innerH := size.Height - l.Padding.Vertical()
	contentW := content.Width - l.Padding.Horizontal()
	contentH := content.Height - l.Padding.Vertical()

	hCenter := l.Gravity&GravityCenterHorizontal != 0
	hEnd := l.Gravity&GravityRight != 0
	vCenter := l.Gravity&GravityCenterVertical != 0
	vEnd := l.Gravity&GravityBottom != 0

	if l.Orientation == OrientationVertical {
		y := l.Padding.Top + align(innerH, contentH, vCenter, vEnd)
		for i, c := range children {
			o := c.outer()
			x := l.Padding.Left + align(innerW, o.Width, hCenter, hEnd)
			rects[i] = graphics.RectFromLTWH(x+c.Margins.Left, y+c.Margins.Top, c.Width, c.Height)
			y += o.Height
		}
		return rects
	}

	x := l.Padding.Left + align(innerW, contentW, hCenter, hEnd)
	for i, c := range children {
		o := c.outer()
		y := l.Padding.Top + align(innerH, o.Height, vCenter, vEnd)
		rects[i] = graphics.RectFromLTWH(x+c.Margins.Left, y+c.Margins.Top, c.Width, c.Height)
		x += o.Width
	}
	return rects
}
