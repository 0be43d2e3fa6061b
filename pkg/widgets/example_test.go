package widgets_test

import (
	"fmt"

	"github.com/go-drift/dotindicator/pkg/animation"
	"github.com/go-drift/dotindicator/pkg/drawable"
	"github.com/go-drift/dotindicator/pkg/graphics"
	"github.com/go-drift/dotindicator/pkg/layout"
	"github.com/go-drift/dotindicator/pkg/widgets"
)

// This example shows how to create an indicator and follow selection
// changes.
func ExampleNewDotIndicator() {
	cfg := widgets.DefaultDotIndicatorConfig()
	cfg.DotsCount = 5

	ind := widgets.NewDotIndicator(cfg)
	defer ind.Dispose()

	ind.SetOnSelectionChange(func(previous, current int) {
		fmt.Printf("page %d -> %d\n", previous, current)
	})
	ind.SelectTo(3)
	ind.SelectTo(9)
	fmt.Println("selected:", ind.SelectedIndex())
	// Output:
	// page 0 -> 3
	// selected: 3
}

// This example shows a vertical indicator with distinct selected and
// unselected dots and a fade transition.
func ExampleDotIndicatorConfig_vertical() {
	cfg := widgets.DefaultDotIndicatorConfig()
	cfg.Orientation = layout.OrientationVertical
	cfg.Gravity = layout.GravityCenterHorizontal | layout.GravityTop
	cfg.SelectedDrawable = drawable.WhiteDot
	cfg.UnselectedDrawable = drawable.SquareDot
	cfg.EnterAnimator = animation.Fade
	cfg.Scale = 2

	ind := widgets.NewDotIndicator(cfg)
	defer ind.Dispose()
	size := ind.Measure()
	fmt.Println(size.Width, size.Height)
	// Output:
	// 20 240
}

// This example shows how a click observer runs before the selection moves.
func ExampleDotIndicator_PerformClick() {
	ind := widgets.NewDotIndicator(widgets.DefaultDotIndicatorConfig())
	defer ind.Dispose()

	ind.SetOnClick(func(index int) {
		fmt.Println("clicked", index, "while", ind.SelectedIndex(), "selected")
	})
	ind.PerformClick(2)
	fmt.Println("selected:", ind.SelectedIndex())
	// Output:
	// clicked 2 while 0 selected
	// selected: 2
}

// This example shows tinting every dot without changing the selection.
func ExampleDotIndicator_SetTint() {
	ind := widgets.NewDotIndicator(widgets.DefaultDotIndicatorConfig())
	defer ind.Dispose()

	ind.SelectTo(1)
	ind.SetTint(graphics.RGB(0, 150, 136))
	fmt.Println(ind.Tint(), ind.SelectedIndex(), ind.Dot(3).IsTinted())
	// Output:
	// #FF009688 1 true
}
