package widgets

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/go-drift/dotindicator/pkg/graphics"
)

// Paint draws every dot into dst with the widget origin at dst.Bounds().Min.
// Each background is scaled about its dot's center by the animated scale and
// composited with the animated alpha.
func (w *DotIndicator) Paint(dst draw.Image) {
	w.ensureLayout()
	origin := dst.Bounds().Min
	for i, dot := range w.dots {
		if dot.background == nil {
			continue
		}
		r := w.rects[i].ScaledAboutCenter(dot.scaleX, dot.scaleY)
		pr := r.Image().Add(origin)
		if pr.Empty() {
			continue
		}
		dot.background.Draw(dst, pr, dot.alpha)
	}
}

// Snapshot lays the indicator out at its current size (or measured size)
// and paints it onto a new transparent image.
func (w *DotIndicator) Snapshot() *image.NRGBA {
	w.ensureLayout()
	size := w.size
	if size == (graphics.Size{}) {
		size = w.Measure()
	}
	img := image.NewNRGBA(image.Rect(0, 0, int(size.Width+0.5), int(size.Height+0.5)))
	w.Paint(img)
	return img
}
