package drawable

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"

	// Register additional decoders for bitmap resources.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// BitmapDrawable scales a decoded image into the destination rectangle.
type BitmapDrawable struct {
	Image image.Image
	// Scaler resamples Image. Nil means draw.CatmullRom.
	Scaler draw.Scaler
}

// Draw scales the bitmap to r.
func (b *BitmapDrawable) Draw(dst draw.Image, r image.Rectangle, opacity float64) {
	if opacity <= 0 || b.Image == nil || r.Intersect(dst.Bounds()).Empty() {
		return
	}
	scaler := b.Scaler
	if scaler == nil {
		scaler = draw.CatmullRom
	}
	layer := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	scaler.Scale(layer, layer.Bounds(), b.Image, b.Image.Bounds(), draw.Src, nil)
	composite(dst, r, layer, opacity)
}

// DecodeFile loads a PNG, BMP or WebP file as a BitmapDrawable.
func DecodeFile(path string) (*BitmapDrawable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bitmap: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode bitmap %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("bitmap %s (%s) is empty", path, format)
	}
	return &BitmapDrawable{Image: img}, nil
}
