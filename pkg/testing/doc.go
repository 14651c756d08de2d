// Package testing provides a deterministic harness for exercising the
// slidable engine without a host render loop.
//
// # Quick Start
//
// Create a harness, drive the engine, and pump frames:
//
//	func TestOpen(t *testing.T) {
//	    h := sltest.NewHarness(t)
//	    ctrl := slidable.NewController(cfg)
//
//	    ctrl.Open(slidable.DirectionEnd, true)
//	    h.PumpFrames(30)
//
//	    if ctrl.Ratio() != 1 {
//	        t.Errorf("ratio = %v, want 1", ctrl.Ratio())
//	    }
//	}
//
// The harness installs a [FakeClock] as the animation time source and
// restores the previous clock via t.Cleanup. Each Pump advances the clock
// by one frame and steps all active tickers, mirroring the host loop.
//
// [DragSimulator] synthesizes drag sequences against a translator with
// fake-clock timestamps, for gesture-decision tests.
package testing
