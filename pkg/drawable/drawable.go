// Package drawable provides the backgrounds painted behind indicator dots.
//
// A [Drawable] renders itself into any destination rectangle, so the same
// instance serves every dot size. Drawables are looked up by [ResourceID]
// through a [Factory], which also applies tints.
package drawable

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/go-drift/dotindicator/pkg/graphics"
)

// Drawable paints a background into a rectangle of dst.
type Drawable interface {
	// Draw composites the drawable into r with the given opacity (0-1).
	Draw(dst draw.Image, r image.Rectangle, opacity float64)
}

// Shape selects the outline of a [ShapeDrawable].
type Shape int

const (
	// ShapeOval fills the ellipse inscribed in the rectangle.
	ShapeOval Shape = iota
	// ShapeRect fills the whole rectangle.
	ShapeRect
)

// ShapeDrawable fills a vector shape with a solid color.
type ShapeDrawable struct {
	Shape Shape
	Color graphics.Color
}

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// Draw rasterizes the shape at the size of r. Parts of r outside dst are
// clipped.
func (s *ShapeDrawable) Draw(dst draw.Image, r image.Rectangle, opacity float64) {
	if opacity <= 0 || r.Intersect(dst.Bounds()).Empty() {
		return
	}
	w, h := float32(r.Dx()), float32(r.Dy())
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	switch s.Shape {
	case ShapeRect:
		z.MoveTo(0, 0)
		z.LineTo(w, 0)
		z.LineTo(w, h)
		z.LineTo(0, h)
	default:
		rx, ry := w/2, h/2
		kx, ky := rx*kappa, ry*kappa
		z.MoveTo(w, ry)
		z.CubeTo(w, ry+ky, rx+kx, h, rx, h)
		z.CubeTo(rx-kx, h, 0, ry+ky, 0, ry)
		z.CubeTo(0, ry-ky, rx-kx, 0, rx, 0)
		z.CubeTo(rx+kx, 0, w, ry-ky, w, ry)
	}
	z.ClosePath()
	z.DrawOp = draw.Over

	c := s.Color
	if opacity < 1 {
		c = c.WithAlpha(c.Alpha() * opacity)
	}
	src := image.NewUniform(c.NRGBA())
	if r.In(dst.Bounds()) {
		z.Draw(dst, r, src, image.Point{})
		return
	}
	// The rasterizer requires r inside dst, so overflowing shapes go
	// through a layer and a clipping composite.
	layer := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	z.Draw(layer, layer.Bounds(), src, image.Point{})
	composite(dst, r, layer, 1)
}

// TintedDrawable recolors Base with a source-in tint: every painted pixel
// takes the tint's RGB and its coverage is multiplied by the tint's alpha.
type TintedDrawable struct {
	Base Drawable
	Tint graphics.Color
}

// Draw renders Base offscreen, recolors it and composites the result.
func (t *TintedDrawable) Draw(dst draw.Image, r image.Rectangle, opacity float64) {
	if opacity <= 0 || t.Base == nil || r.Intersect(dst.Bounds()).Empty() {
		return
	}
	layer := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	t.Base.Draw(layer, layer.Bounds(), 1)

	tc := t.Tint.NRGBA()
	for i := 0; i+3 < len(layer.Pix); i += 4 {
		a := uint32(layer.Pix[i+3])
		layer.Pix[i] = tc.R
		layer.Pix[i+1] = tc.G
		layer.Pix[i+2] = tc.B
		layer.Pix[i+3] = uint8(a * uint32(tc.A) / 0xFF)
	}
	composite(dst, r, layer, opacity)
}

// composite draws src (whose origin maps to r.Min) onto dst with opacity.
func composite(dst draw.Image, r image.Rectangle, src image.Image, opacity float64) {
	if opacity >= 1 {
		draw.Draw(dst, r, src, src.Bounds().Min, draw.Over)
		return
	}
	mask := image.NewUniform(color.Alpha{A: uint8(opacity*0xFF + 0.5)})
	draw.DrawMask(dst, r, src, src.Bounds().Min, mask, image.Point{}, draw.Over)
}
