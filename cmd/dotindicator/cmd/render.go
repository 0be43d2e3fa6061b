package cmd

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/go-drift/dotindicator/cmd/dotindicator/internal/config"
	"github.com/go-drift/dotindicator/pkg/errors"
	"github.com/go-drift/dotindicator/pkg/graphics"
	"github.com/go-drift/dotindicator/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render selection transitions to PNG frames",
		Long: `Render the indicator to a sequence of PNG frames.

The first frame shows the initial selection. Each selected index then plays
its enter and exit transitions frame by frame until both settle.

Flags:
  --config FILE, -c FILE   Configuration file (default: ./dotindicator.yaml if present)
  --out DIR, -o DIR        Output directory (default: frames)
  --select LIST, -s LIST   Comma-separated dot indices to select in order
                           (default: every dot once, wrapping back to the start)
  --fps N                  Frames per second of animation time (default: 60)`,
		Usage: "dotindicator render [--config FILE] [--out DIR] [--select 1,2,0] [--fps N]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	res, err := loadConfig(opts)
	if err != nil {
		return err
	}
	n, err := render(res, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %d frames to %s\n", n, opts.outDir)
	return nil
}

// render writes frames to opts.outDir and returns how many were written.
func render(res *config.Resolved, opts options) (int, error) {
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	clk, restore := useFrameClock()
	defer restore()

	ind, size := mount(res)
	defer ind.Dispose()

	bounds := image.Rect(0, 0, int(size.Width+0.5), int(size.Height+0.5))
	if bounds.Empty() {
		return 0, errors.Wrap("cmd.render", errors.KindRender,
			fmt.Errorf("canvas %vx%v is empty", size.Width, size.Height))
	}

	frames := 0
	writeFrame := func() error {
		path := filepath.Join(opts.outDir, fmt.Sprintf("frame_%04d.png", frames))
		if err := writePNG(path, paintFrame(ind, bounds, res.Background)); err != nil {
			return errors.Wrap("cmd.render", errors.KindRender, err)
		}
		frames++
		return nil
	}

	if err := writeFrame(); err != nil {
		return frames, err
	}
	interval := frameInterval(opts.fps)
	for _, index := range opts.selections(res.Indicator, ind.DotsCount()) {
		ind.SelectTo(index)
		if !ind.IsAnimating() {
			// Zero-length transitions still get a frame showing the result.
			if err := writeFrame(); err != nil {
				return frames, err
			}
			continue
		}
		for i := 0; ind.IsAnimating() && i < maxSettleFrames; i++ {
			clk.step(interval)
			if err := writeFrame(); err != nil {
				return frames, err
			}
		}
	}
	return frames, nil
}

func paintFrame(ind *widgets.DotIndicator, bounds image.Rectangle, bg graphics.Color) *image.NRGBA {
	img := image.NewNRGBA(bounds)
	if bg != 0 {
		draw.Draw(img, bounds, image.NewUniform(bg.NRGBA()), image.Point{}, draw.Src)
	}
	ind.Paint(img)
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}
