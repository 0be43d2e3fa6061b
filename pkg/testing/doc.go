// Package testing provides helpers for testing dot indicators.
//
// # Quick Start
//
//	func TestPager(t *testing.T) {
//	    tester := dottest.NewIndicatorTesterWithT(t)
//	    ind := tester.Mount(widgets.DefaultDotIndicatorConfig())
//
//	    tester.Tap(2)
//	    if ind.SelectedIndex() != 2 {
//	        t.Errorf("expected dot 2 selected")
//	    }
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// # Animation Testing
//
// The tester installs a [FakeClock] as the animation clock. PumpFor advances
// it frame by frame, stepping the animators after each frame:
//
//	tester.PumpFor(150 * time.Millisecond)
//
// # Snapshot Testing
//
// Capture the dot states and compare them against a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/pager.snapshot.json")
//
// Update golden files with:
//
//	DOTINDICATOR_UPDATE_SNAPSHOTS=1 go test ./...
package testing
