package slidable_test

import (
	"math"
	"testing"

	"github.com/go-drift/slidable/pkg/slidable"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func spanNear(got, want slidable.Span) bool {
	return near(got.Start, want.Start) && near(got.Extent, want.Extent)
}

var allMotions = map[string]slidable.Motion{
	"behind":  slidable.BehindMotion{},
	"drawer":  slidable.DrawerMotion{},
	"scroll":  slidable.ScrollMotion{},
	"stretch": slidable.StretchMotion{},
}

func TestMotionsAreIdentityAtRatioZero(t *testing.T) {
	for name, m := range allMotions {
		tr := m.Transforms(0, 0.5, []float64{0.5, 0.5})
		if tr.ContentOffset != 0 {
			t.Errorf("%s: content offset = %v at ratio 0, want 0", name, tr.ContentOffset)
		}
		if tr.PaneSpans != nil {
			t.Errorf("%s: pane spans = %v at ratio 0, want none", name, tr.PaneSpans)
		}
		if tr.RevealClip != nil {
			t.Errorf("%s: reveal clip = %v at ratio 0, want none", name, *tr.RevealClip)
		}
	}
}

func TestMotionsFullyRevealAtRatioOne(t *testing.T) {
	weights := []float64{0.5, 0.5}
	for name, m := range allMotions {
		tr := m.Transforms(1, 0.5, weights)
		if !near(tr.ContentOffset, -0.5) {
			t.Errorf("%s: content offset = %v at full reveal, want -0.5", name, tr.ContentOffset)
		}
		if tr.RevealClip == nil || !spanNear(*tr.RevealClip, slidable.Span{Start: 0.5, Extent: 0.5}) {
			t.Errorf("%s: reveal clip = %v, want [0.5, 0.5]", name, tr.RevealClip)
		}
		// At full reveal every strategy lands the actions on the same final
		// placement: the end pane occupies [0.5, 1] in layout order.
		want := []slidable.Span{{Start: 0.5, Extent: 0.25}, {Start: 0.75, Extent: 0.25}}
		if len(tr.PaneSpans) != len(want) {
			t.Fatalf("%s: %d pane spans, want %d", name, len(tr.PaneSpans), len(want))
		}
		for i := range want {
			if !spanNear(tr.PaneSpans[i], want[i]) {
				t.Errorf("%s: span[%d] = %v, want %v", name, i, tr.PaneSpans[i], want[i])
			}
		}
	}
}

func TestBehindMotionKeepsPanesFixed(t *testing.T) {
	a := slidable.BehindMotion{}.Transforms(0.4, 0.5, []float64{0.5, 0.5})
	b := slidable.BehindMotion{}.Transforms(1, 0.5, []float64{0.5, 0.5})

	for i := range a.PaneSpans {
		if !spanNear(a.PaneSpans[i], b.PaneSpans[i]) {
			t.Errorf("span[%d] moved: %v vs %v; behind panes must stay at their final position", i, a.PaneSpans[i], b.PaneSpans[i])
		}
	}
	if !near(a.ContentOffset, -0.2) {
		t.Errorf("content offset = %v, want -0.2", a.ContentOffset)
	}
	if a.RevealClip == nil || !spanNear(*a.RevealClip, slidable.Span{Start: 0.8, Extent: 0.2}) {
		t.Errorf("reveal clip = %v, want [0.8, 0.2]", a.RevealClip)
	}
}

func TestDrawerMotionStacksThenFansOut(t *testing.T) {
	weights := []float64{0.5, 0.5}

	// Nearly closed: both actions collapse onto the pane's outer edge.
	tr := slidable.DrawerMotion{}.Transforms(1e-9, 0.5, weights)
	if !spanNear(tr.PaneSpans[0], tr.PaneSpans[1]) {
		t.Errorf("spans %v and %v should coincide when closed", tr.PaneSpans[0], tr.PaneSpans[1])
	}
	if !near(tr.PaneSpans[0].Start, 0.75) {
		t.Errorf("stacked start = %v, want the outer slot 0.75", tr.PaneSpans[0].Start)
	}

	// Half open: the earlier action leads, the later one trails behind it.
	tr = slidable.DrawerMotion{}.Transforms(0.5, 0.5, weights)
	want0 := slidable.Span{Start: 0.625, Extent: 0.25}
	want1 := slidable.Span{Start: 0.75, Extent: 0.25}
	if !spanNear(tr.PaneSpans[0], want0) || !spanNear(tr.PaneSpans[1], want1) {
		t.Errorf("spans = %v, want %v and %v", tr.PaneSpans, want0, want1)
	}
	if tr.PaneSpans[0].Start >= tr.PaneSpans[1].Start {
		t.Error("later action should trail behind the earlier one")
	}
}

func TestScrollMotionTranslatesRigidly(t *testing.T) {
	tr := slidable.ScrollMotion{}.Transforms(0.4, 0.5, []float64{0.5, 0.5})

	// The whole strip is shifted beyond the final placement by the
	// unrevealed remainder, entering from past the item edge.
	shift := (1 - 0.4) * 0.5
	want := []slidable.Span{
		{Start: 0.5 + shift, Extent: 0.25},
		{Start: 0.75 + shift, Extent: 0.25},
	}
	for i := range want {
		if !spanNear(tr.PaneSpans[i], want[i]) {
			t.Errorf("span[%d] = %v, want %v", i, tr.PaneSpans[i], want[i])
		}
	}
	// The strip's lead edge tracks the content's trailing edge exactly.
	if !near(tr.PaneSpans[0].Start, 1+tr.ContentOffset) {
		t.Errorf("strip not rigid with content: lead %v, content trailing edge %v", tr.PaneSpans[0].Start, 1+tr.ContentOffset)
	}
}

func TestStretchMotionFillsRevealedWindow(t *testing.T) {
	tr := slidable.StretchMotion{}.Transforms(0.4, 0.5, []float64{0.25, 0.75})

	window := 0.4 * 0.5
	total := 0.0
	for _, s := range tr.PaneSpans {
		total += s.Extent
	}
	if !near(total, window) {
		t.Errorf("pane extents sum to %v, want exactly %v", total, window)
	}
	if !near(tr.PaneSpans[0].Start, 1-window) {
		t.Errorf("first span starts at %v, want %v; stretch panes never leave the window", tr.PaneSpans[0].Start, 1-window)
	}
	if !near(tr.PaneSpans[0].Extent*3, tr.PaneSpans[1].Extent) {
		t.Errorf("weights not preserved: %v vs %v", tr.PaneSpans[0].Extent, tr.PaneSpans[1].Extent)
	}
}

func TestMotionsStartPaneMirrors(t *testing.T) {
	for name, m := range allMotions {
		tr := m.Transforms(-1, 0.5, []float64{1})
		if !near(tr.ContentOffset, 0.5) {
			t.Errorf("%s: content offset = %v for the start pane, want +0.5", name, tr.ContentOffset)
		}
		if tr.RevealClip == nil || !spanNear(*tr.RevealClip, slidable.Span{Start: 0, Extent: 0.5}) {
			t.Errorf("%s: reveal clip = %v, want [0, 0.5]", name, tr.RevealClip)
		}
		if len(tr.PaneSpans) != 1 || !spanNear(tr.PaneSpans[0], slidable.Span{Start: 0, Extent: 0.5}) {
			t.Errorf("%s: spans = %v, want a single [0, 0.5]", name, tr.PaneSpans)
		}
	}
}

func TestMotionsHoldPlacementDuringOvershoot(t *testing.T) {
	tr := slidable.BehindMotion{}.Transforms(2, 0.5, []float64{1})
	if !near(tr.ContentOffset, -1) {
		t.Errorf("content offset = %v during overshoot, want -1", tr.ContentOffset)
	}
	if tr.RevealClip == nil || !spanNear(*tr.RevealClip, slidable.Span{Start: 0.5, Extent: 0.5}) {
		t.Errorf("reveal clip = %v, want the fully revealed window", tr.RevealClip)
	}
}

func TestActionPaneTransformsUsesDefaults(t *testing.T) {
	pane := &slidable.ActionPane{Actions: []slidable.Action{{}, {}, {}}}
	tr := pane.Transforms(1)

	// Defaults: BehindMotion, extent factor 0.5, equal weights.
	if !near(tr.ContentOffset, -slidable.DefaultExtentFactor) {
		t.Errorf("content offset = %v, want %v", tr.ContentOffset, -slidable.DefaultExtentFactor)
	}
	if len(tr.PaneSpans) != 3 {
		t.Fatalf("%d spans, want 3", len(tr.PaneSpans))
	}
	third := slidable.DefaultExtentFactor / 3
	for i, s := range tr.PaneSpans {
		if !near(s.Extent, third) {
			t.Errorf("span[%d].Extent = %v, want equal share %v", i, s.Extent, third)
		}
	}
}
