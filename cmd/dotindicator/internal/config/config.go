// Package config loads dotindicator.yaml and resolves it into an indicator
// configuration with its custom drawable and animator resources.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/dotindicator/pkg/animation"
	"github.com/go-drift/dotindicator/pkg/drawable"
	"github.com/go-drift/dotindicator/pkg/errors"
	"github.com/go-drift/dotindicator/pkg/graphics"
	"github.com/go-drift/dotindicator/pkg/layout"
	"github.com/go-drift/dotindicator/pkg/widgets"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "dotindicator.yaml"

// SchemaVersion is written by tools and assumed when schema is omitted.
// Any v1 schema is accepted.
const SchemaVersion = "v1.0.0"

// Config represents dotindicator.yaml.
type Config struct {
	Schema    string                    `yaml:"schema,omitempty"`
	Indicator IndicatorConfig           `yaml:"indicator"`
	Canvas    CanvasConfig              `yaml:"canvas"`
	Drawables map[string]DrawableConfig `yaml:"drawables,omitempty"`
	Animators map[string]AnimatorConfig `yaml:"animators,omitempty"`
}

// IndicatorConfig mirrors widgets.DotIndicatorConfig. Omitted fields keep
// the widget defaults.
type IndicatorConfig struct {
	DotsCount            *int      `yaml:"dots_count,omitempty"`
	DotWidth             *float64  `yaml:"dot_width,omitempty"`
	DotHeight            *float64  `yaml:"dot_height,omitempty"`
	MarginBetweenDots    *float64  `yaml:"margin_between_dots,omitempty"`
	Orientation          string    `yaml:"orientation,omitempty"`
	Gravity              string    `yaml:"gravity,omitempty"`
	Padding              []float64 `yaml:"padding,omitempty,flow"`
	SelectedDrawable     string    `yaml:"selected_drawable,omitempty"`
	UnselectedDrawable   string    `yaml:"unselected_drawable,omitempty"`
	Tint                 string    `yaml:"tint,omitempty"`
	SelectOnClick        *bool     `yaml:"select_on_click,omitempty"`
	EnterAnimator        string    `yaml:"enter_animator,omitempty"`
	ExitAnimator         string    `yaml:"exit_animator,omitempty"`
	InitialSelectedIndex int       `yaml:"initial_selected_index,omitempty"`
	Scale                float64   `yaml:"scale,omitempty"`
}

// CanvasConfig sizes the surface the CLI paints onto. Zero sizes use the
// indicator's measured size.
type CanvasConfig struct {
	Width      float64 `yaml:"width,omitempty"`
	Height     float64 `yaml:"height,omitempty"`
	Background string  `yaml:"background,omitempty"`
}

// DrawableConfig defines a custom drawable: either a filled shape or an
// image file relative to the config file.
type DrawableConfig struct {
	Shape string `yaml:"shape,omitempty"`
	Color string `yaml:"color,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// AnimatorConfig defines a custom animator.
type AnimatorConfig struct {
	Duration   string           `yaml:"duration,omitempty"`
	Curve      string           `yaml:"curve,omitempty"`
	Properties []PropertyConfig `yaml:"properties"`
}

// PropertyConfig animates one property between two values.
type PropertyConfig struct {
	Property string  `yaml:"property"`
	From     float64 `yaml:"from"`
	To       float64 `yaml:"to"`
}

// Resolved contains a ready-to-use indicator configuration.
type Resolved struct {
	// Path is the file the configuration was read from, or empty.
	Path       string
	Schema     string
	Indicator  widgets.DotIndicatorConfig
	Canvas     graphics.Size
	Background graphics.Color
}

// LoadOptional reads dotindicator.yaml from dir if present. A missing file
// yields an empty Config.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return Parse(data)
}

// Parse parses configuration YAML. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document decodes to the zero Config.
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Resolve validates cfg and builds the indicator configuration. Relative
// drawable files are resolved against baseDir. Custom resources are
// registered on fresh factories so the shared defaults stay untouched.
func Resolve(cfg *Config, baseDir string) (*Resolved, error) {
	schema, err := checkSchema(cfg.Schema)
	if err != nil {
		return nil, err
	}

	drawables := drawable.NewFactory()
	for _, id := range sortedKeys(cfg.Drawables) {
		if err := registerDrawable(drawables, id, cfg.Drawables[id], baseDir); err != nil {
			return nil, err
		}
	}

	animators := animation.NewRegistry()
	for _, id := range sortedKeys(cfg.Animators) {
		if err := registerAnimator(animators, id, cfg.Animators[id]); err != nil {
			return nil, err
		}
	}

	ind, err := resolveIndicator(cfg.Indicator)
	if err != nil {
		return nil, err
	}
	ind.Drawables = drawables
	ind.Animators = animators

	res := &Resolved{
		Schema:    schema,
		Indicator: ind,
		Canvas:    graphics.Size{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height},
	}
	if res.Canvas.Width < 0 || res.Canvas.Height < 0 {
		return nil, invalid("canvas", res.Canvas, "size must not be negative")
	}
	if cfg.Canvas.Background != "" {
		bg, err := graphics.ParseColor(cfg.Canvas.Background)
		if err != nil {
			return nil, invalid("canvas.background", cfg.Canvas.Background, err.Error())
		}
		res.Background = bg
	}
	return res, nil
}

// LoadFile loads path, or dotindicator.yaml in dir when path is empty, and
// resolves it.
func LoadFile(path, dir string) (*Resolved, error) {
	var (
		cfg *Config
		err error
	)
	if path == "" {
		cfg, err = LoadOptional(dir)
		if _, statErr := os.Stat(filepath.Join(dir, FileName)); statErr == nil {
			path = filepath.Join(dir, FileName)
		}
	} else {
		cfg, err = Load(path)
		dir = filepath.Dir(path)
	}
	if err != nil {
		return nil, err
	}
	res, err := Resolve(cfg, dir)
	if err != nil {
		return nil, err
	}
	res.Path = path
	return res, nil
}

func checkSchema(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return SchemaVersion, nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", invalid("schema", v, "not a semantic version")
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return "", invalid("schema", v, fmt.Sprintf("unsupported major version, want %s", semver.Major(SchemaVersion)))
	}
	return semver.Canonical(v), nil
}

func resolveIndicator(c IndicatorConfig) (widgets.DotIndicatorConfig, error) {
	out := widgets.DefaultDotIndicatorConfig()
	if c.DotsCount != nil {
		if *c.DotsCount < 0 {
			return out, invalid("indicator.dots_count", *c.DotsCount, "must not be negative")
		}
		out.DotsCount = *c.DotsCount
	}
	if c.DotWidth != nil {
		out.DotWidth = *c.DotWidth
	}
	if c.DotHeight != nil {
		out.DotHeight = *c.DotHeight
	}
	if c.MarginBetweenDots != nil {
		out.MarginBetweenDots = *c.MarginBetweenDots
	}
	if c.Orientation != "" {
		o, err := layout.ParseOrientation(c.Orientation)
		if err != nil {
			return out, invalid("indicator.orientation", c.Orientation, err.Error())
		}
		out.Orientation = o
	}
	if c.Gravity != "" {
		g, err := layout.ParseGravity(c.Gravity)
		if err != nil {
			return out, invalid("indicator.gravity", c.Gravity, err.Error())
		}
		out.Gravity = g
	}
	if len(c.Padding) > 0 {
		p, err := parsePadding(c.Padding)
		if err != nil {
			return out, invalid("indicator.padding", c.Padding, err.Error())
		}
		out.Padding = p
	}
	if c.SelectedDrawable != "" {
		out.SelectedDrawable = drawable.ResourceID(c.SelectedDrawable)
	}
	if c.UnselectedDrawable != "" {
		out.UnselectedDrawable = drawable.ResourceID(c.UnselectedDrawable)
	}
	if c.Tint != "" {
		tint, err := graphics.ParseColor(c.Tint)
		if err != nil {
			return out, invalid("indicator.tint", c.Tint, err.Error())
		}
		out.Tint = tint
	}
	if c.SelectOnClick != nil {
		out.SelectOnClick = *c.SelectOnClick
	}
	if c.EnterAnimator != "" {
		out.EnterAnimator = animation.ResourceID(c.EnterAnimator)
	}
	out.ExitAnimator = animation.ResourceID(c.ExitAnimator)
	if c.InitialSelectedIndex < 0 || (out.DotsCount > 0 && c.InitialSelectedIndex >= out.DotsCount) {
		return out, invalid("indicator.initial_selected_index", c.InitialSelectedIndex, fmt.Sprintf("out of range for %d dots", out.DotsCount))
	}
	out.InitialSelectedIndex = c.InitialSelectedIndex
	if c.Scale < 0 {
		return out, invalid("indicator.scale", c.Scale, "must not be negative")
	}
	if c.Scale > 0 {
		out.Scale = c.Scale
	}
	return out, nil
}

func registerDrawable(f *drawable.Factory, id string, c DrawableConfig, baseDir string) error {
	field := "drawables." + id
	if c.File != "" {
		if c.Shape != "" || c.Color != "" {
			return invalid(field, id, "file cannot be combined with shape or color")
		}
		path := c.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		if err := f.RegisterFile(drawable.ResourceID(id), path); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		return nil
	}

	d := &drawable.ShapeDrawable{Shape: drawable.ShapeOval, Color: graphics.ColorBlack}
	switch strings.ToLower(c.Shape) {
	case "", "oval", "circle":
	case "rect", "square":
		d.Shape = drawable.ShapeRect
	default:
		return invalid(field+".shape", c.Shape, "want oval or rect")
	}
	if c.Color != "" {
		col, err := graphics.ParseColor(c.Color)
		if err != nil {
			return invalid(field+".color", c.Color, err.Error())
		}
		d.Color = col
	}
	if err := f.Register(drawable.ResourceID(id), d); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return nil
}

func registerAnimator(r *animation.Registry, id string, c AnimatorConfig) error {
	field := "animators." + id
	spec := animation.AnimatorSpec{Duration: animation.DefaultDuration}
	if c.Duration != "" {
		d, err := time.ParseDuration(c.Duration)
		if err != nil {
			return invalid(field+".duration", c.Duration, err.Error())
		}
		spec.Duration = d
	}
	curve, err := animation.CurveByName(c.Curve)
	if err != nil {
		return invalid(field+".curve", c.Curve, err.Error())
	}
	spec.Curve = curve
	for i, p := range c.Properties {
		prop, err := animation.ParseProperty(p.Property)
		if err != nil {
			return invalid(fmt.Sprintf("%s.properties[%d]", field, i), p.Property, err.Error())
		}
		spec.Properties = append(spec.Properties, animation.PropertyValues{Property: prop, From: p.From, To: p.To})
	}
	if err := r.Register(animation.ResourceID(id), spec); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return nil
}

func invalid(field string, value any, reason string) error {
	return &errors.ConfigError{Field: field, Value: value, Reason: reason}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// parsePadding accepts one value for every side, two for horizontal and
// vertical, or four in left, top, right, bottom order.
func parsePadding(v []float64) (graphics.EdgeInsets, error) {
	for _, x := range v {
		if x < 0 {
			return graphics.EdgeInsets{}, stderrors.New("must not be negative")
		}
	}
	switch len(v) {
	case 1:
		return graphics.EdgeInsetsSymmetric(v[0], v[0]), nil
	case 2:
		return graphics.EdgeInsetsSymmetric(v[0], v[1]), nil
	case 4:
		return graphics.EdgeInsets{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]}, nil
	default:
		return graphics.EdgeInsets{}, fmt.Errorf("want 1, 2 or 4 values, got %d", len(v))
	}
}
