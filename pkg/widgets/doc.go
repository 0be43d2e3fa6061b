// Package widgets provides the DotIndicator paging widget.
//
// A [DotIndicator] owns a row (or column) of [Dot] elements and a selection
// state machine. Configuration comes from [DotIndicatorConfig]:
//
//	cfg := widgets.DefaultDotIndicatorConfig()
//	cfg.DotsCount = 5
//	cfg.Tint = graphics.RGB(0x21, 0x96, 0xF3)
//	ind := widgets.NewDotIndicator(cfg)
//	ind.SetOnSelectionChange(func(previous, current int) {
//	    fmt.Printf("page %d -> %d\n", previous, current)
//	})
//	ind.SelectTo(2)
//
// # Transitions
//
// The indicator reuses two animators, one per [TransitionSlot]. Each
// selection ends and cancels whatever the slots are still playing before
// binding them to the old (exit) and new (enter) dot. When no exit animator
// resource is configured the exit slot runs the enter definition through
// [animation.ReverseCurve].
//
// Animators advance only when the host steps [animation.StepTickers] once
// per frame; the selection itself is committed synchronously.
//
// # Observers
//
// SetOnClick and SetOnSelectionChange each hold a single callback. Setting
// one replaces the previous registration; setting nil clears it.
package widgets
