package animation

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-drift/dotindicator/pkg/errors"
)

// ResourceID identifies an animator resource.
type ResourceID string

const (
	// ScaleWithAlpha grows a dot from half size and half opacity to full.
	ScaleWithAlpha ResourceID = "scale_with_alpha"
	// Fade moves opacity from 0.3 to 1 without scaling.
	Fade ResourceID = "fade"

	// DefaultAnimator is used when no animator resource is configured.
	DefaultAnimator = ScaleWithAlpha
)

// DefaultDuration is the run length of the built-in animators.
const DefaultDuration = 300 * time.Millisecond

// Registry maps resource identifiers to animator definitions. Every Load
// returns a fresh, independent Animator.
//
// The zero Registry is empty and ready to use. LoadOrDefault panics on a
// registry that has no [DefaultAnimator], so use [NewRegistry] unless every
// identifier is registered up front.
type Registry struct {
	mu    sync.RWMutex
	specs map[ResourceID]AnimatorSpec
}

// NewRegistry returns a registry preloaded with the built-in animators.
func NewRegistry() *Registry {
	r := &Registry{specs: make(map[ResourceID]AnimatorSpec)}
	r.specs[ScaleWithAlpha] = AnimatorSpec{
		Properties: []PropertyValues{
			{Property: PropertyScaleX, From: 0.5, To: 1},
			{Property: PropertyScaleY, From: 0.5, To: 1},
			{Property: PropertyAlpha, From: 0.5, To: 1},
		},
		Duration: DefaultDuration,
		Curve:    EaseInOut,
	}
	r.specs[Fade] = AnimatorSpec{
		Properties: []PropertyValues{
			{Property: PropertyAlpha, From: 0.3, To: 1},
		},
		Duration: DefaultDuration,
		Curve:    LinearCurve,
	}
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the shared registry used when a widget is not given
// its own.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register adds or replaces an animator definition.
func (r *Registry) Register(id ResourceID, spec AnimatorSpec) error {
	if id == "" {
		return &errors.ConfigError{Field: "animator id", Value: `""`, Reason: "must not be empty"}
	}
	if spec.Duration < 0 {
		return &errors.ConfigError{Field: "duration", Value: spec.Duration, Reason: "must not be negative"}
	}
	if len(spec.Properties) == 0 {
		return &errors.ConfigError{Field: "properties", Value: string(id), Reason: "at least one property is required"}
	}
	props := make([]PropertyValues, len(spec.Properties))
	copy(props, spec.Properties)
	spec.Properties = props

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.specs == nil {
		r.specs = make(map[ResourceID]AnimatorSpec)
	}
	r.specs[id] = spec
	return nil
}

// Load returns a new Animator for id.
func (r *Registry) Load(id ResourceID) (*Animator, error) {
	r.mu.RLock()
	spec, ok := r.specs[id]
	r.mu.RUnlock()
	if !ok {
		return nil, &errors.DriftError{
			Op:       "animation.Registry.Load",
			Kind:     errors.KindResource,
			Resource: string(id),
			Err:      &errors.NotFoundError{Type: "animator", ID: string(id)},
		}
	}
	return NewAnimator(spec), nil
}

// LoadOrDefault loads id, falling back to [DefaultAnimator] when id is empty
// or unknown. Unknown identifiers are reported to the error handler.
func (r *Registry) LoadOrDefault(id ResourceID) *Animator {
	if id == "" {
		id = DefaultAnimator
	}
	a, err := r.Load(id)
	if err == nil {
		return a
	}
	errors.Report(errors.Wrap("animation.Registry.LoadOrDefault", errors.KindResource, err))
	a, err = r.Load(DefaultAnimator)
	if err != nil {
		// The built-in default can only be missing if the registry was not
		// created with NewRegistry.
		panic(fmt.Sprintf("animation: default animator %q missing", DefaultAnimator))
	}
	return a
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []ResourceID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]ResourceID, 0, len(r.specs))
	for id := range r.specs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
