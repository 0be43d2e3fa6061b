package layout

import (
	"fmt"
	"strings"
)

// Orientation is the main axis of a [LinearLayout].
type Orientation int

const (
	// OrientationHorizontal lays children out left to right.
	OrientationHorizontal Orientation = iota
	// OrientationVertical lays children out top to bottom.
	OrientationVertical
)

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation accepts "horizontal" or "vertical". Empty means horizontal.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal":
		return OrientationHorizontal, nil
	case "vertical":
		return OrientationVertical, nil
	default:
		return 0, fmt.Errorf("unknown orientation %q", s)
	}
}

// Gravity positions the run of children inside the layout bounds. Values
// combine one horizontal and one vertical flag; an axis with no flag aligns
// to its start.
type Gravity int

// Gravity flags.
const (
	GravityLeft Gravity = 1 << iota
	GravityRight
	GravityCenterHorizontal
	GravityTop
	GravityBottom
	GravityCenterVertical

	// GravityStart and GravityEnd are left-to-right aliases.
	GravityStart = GravityLeft
	GravityEnd   = GravityRight
	// GravityCenter centers on both axes. It is the indicator default.
	GravityCenter = GravityCenterHorizontal | GravityCenterVertical
)

var gravityNames = []struct {
	name string
	g    Gravity
}{
	{"center", GravityCenter},
	{"center_horizontal", GravityCenterHorizontal},
	{"center_vertical", GravityCenterVertical},
	{"left", GravityLeft},
	{"start", GravityStart},
	{"right", GravityRight},
	{"end", GravityEnd},
	{"top", GravityTop},
	{"bottom", GravityBottom},
}

// ParseGravity parses flags joined by '|', e.g. "center_horizontal|bottom".
func ParseGravity(s string) (Gravity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return GravityCenter, nil
	}
	var g Gravity
	for _, part := range strings.Split(s, "|") {
		part = strings.ToLower(strings.TrimSpace(part))
		found := false
		for _, n := range gravityNames {
			if n.name == part {
				g |= n.g
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown gravity %q", part)
		}
	}
	return g, nil
}

func (g Gravity) String() string {
	if g == GravityCenter {
		return "center"
	}
	var parts []string
	for _, n := range gravityNames[1:] {
		if n.name == "start" || n.name == "end" {
			continue
		}
		if g&n.g != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// align returns the offset of a run of length content inside space along
// one axis. Without center or end the run sits at the start.
func align(space, content float64, center, end bool) float64 {
	switch {
	case center:
		return (space - content) / 2
	case end:
		return space - content
	default:
		return 0
	}
}
