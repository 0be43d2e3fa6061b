package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/dotindicator/pkg/widgets"
)

// updateSnapshotsEnv rewrites golden files instead of comparing when set to 1.
const updateSnapshotsEnv = "DOTINDICATOR_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the observable state of an indicator.
type Snapshot struct {
	Size     [2]float64 `json:"size"`
	Selected int        `json:"selected"`
	Tint     string     `json:"tint,omitempty"`
	Dots     []DotNode  `json:"dots"`
}

// DotNode is one dot in a Snapshot.
type DotNode struct {
	Index      int        `json:"index"`
	Selected   bool       `json:"selected,omitempty"`
	Background string     `json:"background"`
	Tinted     bool       `json:"tinted,omitempty"`
	Rect       [4]float64 `json:"rect"`
	Scale      [2]float64 `json:"scale"`
	Alpha      float64    `json:"alpha"`
}

// CaptureSnapshot captures the mounted indicator. It returns an empty
// snapshot when nothing is mounted.
func (t *IndicatorTester) CaptureSnapshot() *Snapshot {
	if t.indicator == nil {
		return &Snapshot{}
	}
	return CaptureIndicator(t.indicator)
}

// CaptureIndicator captures any indicator.
func CaptureIndicator(ind *widgets.DotIndicator) *Snapshot {
	size := ind.Size()
	snap := &Snapshot{
		Size:     [2]float64{round2(size.Width), round2(size.Height)},
		Selected: ind.SelectedIndex(),
		Dots:     []DotNode{},
	}
	if tint := ind.Tint(); tint != 0 {
		snap.Tint = tint.String()
	}
	for _, dot := range ind.Dots() {
		r, _ := ind.DotRect(dot.Index())
		sx, sy := dot.Scale()
		snap.Dots = append(snap.Dots, DotNode{
			Index:      dot.Index(),
			Selected:   dot.IsSelected(),
			Background: string(dot.BackgroundID()),
			Tinted:     dot.IsTinted(),
			Rect:       [4]float64{round2(r.Left), round2(r.Top), round2(r.Right), round2(r.Bottom)},
			Scale:      [2]float64{round2(sx), round2(sy)},
			Alpha:      round2(dot.Alpha()),
		})
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// DOTINDICATOR_UPDATE_SNAPSHOTS=1 is set, the file is rewritten instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(updateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, updateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, updateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between other (expected) and this snapshot.
// Returns the empty string if they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// lineDiff marks lines that differ at the same position.
func lineDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")
	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}
	return buf.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
