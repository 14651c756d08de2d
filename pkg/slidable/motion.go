package slidable

import "math"

// Span is a main-axis interval expressed as fractions of the item's extent.
type Span struct {
	Start  float64
	Extent float64
}

// End returns the span's end position.
func (s Span) End() float64 {
	return s.Start + s.Extent
}

// Transforms is the per-frame output of a motion strategy. All values are
// signed fractions of the item's main-axis extent; the render layer scales
// them by the concrete extent and maps the main axis onto screen axes.
type Transforms struct {
	// ContentOffset is the translation of the item's main content.
	// Positive moves the content toward the main-axis end.
	ContentOffset float64
	// PaneSpans holds the absolute position of each action, in layout
	// order. Nil when the pane is fully hidden.
	PaneSpans []Span
	// RevealClip is the window of the item uncovered by the content.
	// Nil when nothing is revealed.
	RevealClip *Span
}

// Motion computes the visual transform for an action pane and the item
// content at a given ratio.
//
// Every strategy is a no-op at ratio 0 (the item is indistinguishable from
// a non-slidable one) and a full reveal at |ratio| = 1, where the content
// is shifted by the pane's extent factor.
type Motion interface {
	// Transforms computes the frame for the given signed ratio, the pane's
	// extent factor, and the pane's normalized action weights.
	Transforms(ratio, extentFactor float64, weights []float64) Transforms
}

// BehindMotion keeps the actions fixed at their final position and
// progressively uncovers them: the reveal is expressed purely as the
// content translation plus the reveal clip, never as a pane translation.
type BehindMotion struct{}

func (BehindMotion) Transforms(ratio, extentFactor float64, weights []float64) Transforms {
	f := newMotionFrame(ratio, extentFactor, weights)
	if f == nil {
		return Transforms{}
	}
	return Transforms{
		ContentOffset: f.contentOffset,
		PaneSpans:     f.finalSpans(),
		RevealClip:    f.revealClip(),
	}
}

// DrawerMotion stacks the actions at the pane's outer edge when closed and
// fans them out to their laid-out slots as the ratio grows, so actions
// enter in layout order with later ones sliding out from behind earlier
// ones. Content translates as in BehindMotion.
type DrawerMotion struct{}

func (DrawerMotion) Transforms(ratio, extentFactor float64, weights []float64) Transforms {
	f := newMotionFrame(ratio, extentFactor, weights)
	if f == nil {
		return Transforms{}
	}
	spans := f.finalSpans()
	for i := range spans {
		spans[i].Start += f.sign * (1 - f.reveal) * f.factor * f.outerPrefix(i)
	}
	return Transforms{
		ContentOffset: f.contentOffset,
		PaneSpans:     spans,
		RevealClip:    f.revealClip(),
	}
}

// ScrollMotion translates the whole pane strip rigidly at the content's
// rate, entering from beyond the item edge, so panes and content appear to
// move as one strip.
type ScrollMotion struct{}

func (ScrollMotion) Transforms(ratio, extentFactor float64, weights []float64) Transforms {
	f := newMotionFrame(ratio, extentFactor, weights)
	if f == nil {
		return Transforms{}
	}
	shift := f.sign * (1 - f.reveal) * f.factor
	spans := f.finalSpans()
	for i := range spans {
		spans[i].Start += shift
	}
	return Transforms{
		ContentOffset: f.contentOffset,
		PaneSpans:     spans,
		RevealClip:    f.revealClip(),
	}
}

// StretchMotion never translates the actions: each action's extent scales
// with the ratio so the pane set always fills exactly |ratio| * extent,
// the flex weights redistributing within the shrinking or growing window.
type StretchMotion struct{}

func (StretchMotion) Transforms(ratio, extentFactor float64, weights []float64) Transforms {
	f := newMotionFrame(ratio, extentFactor, weights)
	if f == nil {
		return Transforms{}
	}
	window := f.revealWindow()
	spans := make([]Span, len(f.weights))
	cursor := window.Start
	for i, w := range f.weights {
		spans[i] = Span{Start: cursor, Extent: window.Extent * w}
		cursor += spans[i].Extent
	}
	return Transforms{
		ContentOffset: f.contentOffset,
		PaneSpans:     spans,
		RevealClip:    &window,
	}
}

// motionFrame carries the quantities shared by all strategies.
type motionFrame struct {
	sign          float64 // -1 start pane, +1 end pane
	reveal        float64 // |ratio| clamped to [0, 1] for pane placement
	factor        float64
	weights       []float64
	contentOffset float64
}

// newMotionFrame returns nil at ratio 0, where every strategy is identity.
func newMotionFrame(ratio, extentFactor float64, weights []float64) *motionFrame {
	if ratio == 0 || extentFactor <= 0 || len(weights) == 0 {
		return nil
	}
	sign := 1.0
	if ratio < 0 {
		sign = -1.0
	}
	reveal := math.Abs(ratio)
	if reveal > 1 {
		// Dismiss overshoot: the content keeps sliding but the panes hold
		// their fully revealed placement.
		reveal = 1
	}
	return &motionFrame{
		sign:          sign,
		reveal:        reveal,
		factor:        extentFactor,
		weights:       weights,
		contentOffset: -ratio * extentFactor,
	}
}

// finalSpans returns each action's fully open placement: the start pane
// occupies [0, factor], the end pane [1-factor, 1], actions laid out in
// order from the pane's start edge.
func (f *motionFrame) finalSpans() []Span {
	base := 0.0
	if f.sign > 0 {
		base = 1 - f.factor
	}
	spans := make([]Span, len(f.weights))
	cursor := base
	for i, w := range f.weights {
		spans[i] = Span{Start: cursor, Extent: f.factor * w}
		cursor += spans[i].Extent
	}
	return spans
}

// outerPrefix returns the distance, as a fraction of the pane extent, from
// the pane's outer edge to action i's final start.
func (f *motionFrame) outerPrefix(i int) float64 {
	prefix := 0.0
	for j := 0; j < i; j++ {
		prefix += f.weights[j]
	}
	if f.sign < 0 {
		return prefix
	}
	// End pane: the outer edge is past the last action.
	return 1 - prefix - f.weights[i]
}

// revealWindow returns the uncovered region adjacent to the pane's edge.
func (f *motionFrame) revealWindow() Span {
	extent := f.reveal * f.factor
	if f.sign < 0 {
		return Span{Start: 0, Extent: extent}
	}
	return Span{Start: 1 - extent, Extent: extent}
}

func (f *motionFrame) revealClip() *Span {
	w := f.revealWindow()
	return &w
}
