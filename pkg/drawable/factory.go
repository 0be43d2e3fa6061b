package drawable

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-drift/dotindicator/pkg/errors"
	"github.com/go-drift/dotindicator/pkg/graphics"
)

// ResourceID identifies a drawable resource.
type ResourceID string

const (
	// BlackDot is a filled black circle.
	BlackDot ResourceID = "black_dot"
	// WhiteDot is a filled white circle.
	WhiteDot ResourceID = "white_dot"
	// SquareDot is a filled black square.
	SquareDot ResourceID = "square_dot"

	// DefaultDot is used when no drawable is configured.
	DefaultDot = BlackDot
)

// Factory resolves drawable resources and applies tints. The zero Factory
// has no built-in dots; [NewFactory] preloads them.
type Factory struct {
	mu        sync.RWMutex
	drawables map[ResourceID]Drawable
}

// NewFactory returns a factory preloaded with the built-in dots.
func NewFactory() *Factory {
	return &Factory{
		drawables: map[ResourceID]Drawable{
			BlackDot:  &ShapeDrawable{Shape: ShapeOval, Color: graphics.ColorBlack},
			WhiteDot:  &ShapeDrawable{Shape: ShapeOval, Color: graphics.ColorWhite},
			SquareDot: &ShapeDrawable{Shape: ShapeRect, Color: graphics.ColorBlack},
		},
	}
}

var (
	defaultFactory     *Factory
	defaultFactoryOnce sync.Once
)

// DefaultFactory returns the shared factory used when a widget is not given
// its own.
func DefaultFactory() *Factory {
	defaultFactoryOnce.Do(func() {
		defaultFactory = NewFactory()
	})
	return defaultFactory
}

// Register adds or replaces a drawable.
func (f *Factory) Register(id ResourceID, d Drawable) error {
	if id == "" {
		return &errors.ConfigError{Field: "drawable id", Value: `""`, Reason: "must not be empty"}
	}
	if d == nil {
		return &errors.ConfigError{Field: "drawable", Value: string(id), Reason: "must not be nil"}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.drawables == nil {
		f.drawables = make(map[ResourceID]Drawable)
	}
	f.drawables[id] = d
	return nil
}

// RegisterFile decodes an image file and registers it as a bitmap drawable.
func (f *Factory) RegisterFile(id ResourceID, path string) error {
	b, err := DecodeFile(path)
	if err != nil {
		return fmt.Errorf("drawable %s: %w", id, err)
	}
	return f.Register(id, b)
}

// Load returns the drawable registered under id.
func (f *Factory) Load(id ResourceID) (Drawable, error) {
	f.mu.RLock()
	d, ok := f.drawables[id]
	f.mu.RUnlock()
	if !ok {
		return nil, &errors.DriftError{
			Op:       "drawable.Factory.Load",
			Kind:     errors.KindResource,
			Resource: string(id),
			Err:      &errors.NotFoundError{Type: "drawable", ID: string(id)},
		}
	}
	return d, nil
}

// LoadOrDefault loads id, falling back to [DefaultDot] when id is empty or
// unknown. Unknown identifiers are reported to the error handler.
func (f *Factory) LoadOrDefault(id ResourceID) Drawable {
	if id == "" {
		id = DefaultDot
	}
	d, err := f.Load(id)
	if err == nil {
		return d
	}
	errors.Report(errors.Wrap("drawable.Factory.LoadOrDefault", errors.KindResource, err))
	if d, err := f.Load(DefaultDot); err == nil {
		return d
	}
	return &ShapeDrawable{Shape: ShapeOval, Color: graphics.ColorBlack}
}

// Tint wraps d with a source-in tint. A zero tint returns d unchanged.
func (f *Factory) Tint(d Drawable, tint graphics.Color) Drawable {
	if tint == 0 || d == nil {
		return d
	}
	if t, ok := d.(*TintedDrawable); ok {
		d = t.Base
	}
	return &TintedDrawable{Base: d, Tint: tint}
}

// IDs returns the registered identifiers in sorted order.
func (f *Factory) IDs() []ResourceID {
	f.mu.RLock()
	defer f.mu.RUnlock()
	ids := make([]ResourceID, 0, len(f.drawables))
	for id := range f.drawables {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
