package layout

import (
	"testing"

	"github.com/go-drift/dotindicator/pkg/graphics"
)

func dots(n int, size, margin float64, o Orientation) []LayoutParams {
	params := make([]LayoutParams, n)
	for i := range params {
		p := LayoutParams{Width: size, Height: size}
		if o == OrientationHorizontal {
			p.Margins = graphics.EdgeInsets{Left: margin, Right: margin}
		} else {
			p.Margins = graphics.EdgeInsets{Top: margin, Bottom: margin}
		}
		params[i] = p
	}
	return params
}

func TestLinearLayout_Measure(t *testing.T) {
	tests := []struct {
		name string
		l    LinearLayout
		want graphics.Size
	}{
		{"horizontal", LinearLayout{Orientation: OrientationHorizontal}, graphics.Size{Width: 120, Height: 10}},
		{"vertical", LinearLayout{Orientation: OrientationVertical}, graphics.Size{Width: 10, Height: 120}},
		{"padding", LinearLayout{Padding: graphics.EdgeInsetsSymmetric(5, 2)}, graphics.Size{Width: 130, Height: 14}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.l.Measure(dots(4, 10, 10, tt.l.Orientation))
			if got != tt.want {
				t.Errorf("Measure = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLinearLayout_ArrangeHorizontalCenter(t *testing.T) {
	l := LinearLayout{Orientation: OrientationHorizontal, Gravity: GravityCenter}
	rects := l.Arrange(graphics.Size{Width: 200, Height: 50}, dots(4, 10, 10, OrientationHorizontal))

	// Content is 120 wide, so the run starts at 40 and each dot sits inside
	// a 10px margin on either side.
	wantLeft := []float64{50, 80, 110, 140}
	for i, r := range rects {
		if r.Left != wantLeft[i] {
			t.Errorf("rect[%d].Left = %v, want %v", i, r.Left, wantLeft[i])
		}
		if r.Top != 20 || r.Height() != 10 || r.Width() != 10 {
			t.Errorf("rect[%d] = %+v", i, r)
		}
	}
}

func TestLinearLayout_ArrangeVerticalGravity(t *testing.T) {
	tests := []struct {
		gravity  Gravity
		wantTop0 float64
		wantLeft float64
	}{
		{GravityTop | GravityLeft, 5, 0},
		{GravityBottom | GravityRight, 100 - 60 + 5, 40},
		{GravityCenter, 20 + 5, 20},
	}
	for _, tt := range tests {
		t.Run(tt.gravity.String(), func(t *testing.T) {
			l := LinearLayout{Orientation: OrientationVertical, Gravity: tt.gravity}
			rects := l.Arrange(graphics.Size{Width: 50, Height: 100}, dots(3, 10, 5, OrientationVertical))
			if rects[0].Top != tt.wantTop0 {
				t.Errorf("rect[0].Top = %v, want %v", rects[0].Top, tt.wantTop0)
			}
			if rects[1].Top != tt.wantTop0+20 {
				t.Errorf("rect[1].Top = %v, want %v", rects[1].Top, tt.wantTop0+20)
			}
			if rects[0].Left != tt.wantLeft {
				t.Errorf("rect[0].Left = %v, want %v", rects[0].Left, tt.wantLeft)
			}
		})
	}
}

func TestLinearLayout_ArrangeEmpty(t *testing.T) {
	if got := (LinearLayout{}).Arrange(graphics.Size{Width: 10, Height: 10}, nil); len(got) != 0 {
		t.Errorf("expected no rects, got %v", got)
	}
}

func TestParseGravity(t *testing.T) {
	tests := []struct {
		in      string
		want    Gravity
		wantErr bool
	}{
		{"", GravityCenter, false},
		{"center", GravityCenter, false},
		{"center_horizontal|bottom", GravityCenterHorizontal | GravityBottom, false},
		{" Top | End ", GravityTop | GravityRight, false},
		{"middle", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseGravity(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseGravity(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGravity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGravityString(t *testing.T) {
	if got := GravityCenter.String(); got != "center" {
		t.Errorf("String() = %q", got)
	}
	if got := (GravityTop | GravityRight).String(); got != "right|top" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseOrientation(t *testing.T) {
	if o, err := ParseOrientation("VERTICAL"); err != nil || o != OrientationVertical {
		t.Errorf("ParseOrientation(VERTICAL) = %v, %v", o, err)
	}
	if o, err := ParseOrientation(""); err != nil || o != OrientationHorizontal {
		t.Errorf("ParseOrientation(\"\") = %v, %v", o, err)
	}
	if _, err := ParseOrientation("diagonal"); err == nil {
		t.Error("expected error")
	}
}
