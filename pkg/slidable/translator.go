package slidable

import (
	"math"
	"time"

	"github.com/go-drift/slidable/pkg/animation"
	"github.com/go-drift/slidable/pkg/errors"
	"github.com/go-drift/slidable/pkg/gestures"
)

// Translator tuning defaults.
const (
	// DefaultOpenThreshold is the |ratio| at drag end past which the pane
	// animates to fully open.
	DefaultOpenThreshold = 0.5
	// DefaultFastVelocity is the fling velocity, in logical pixels per
	// second, past which a drag opens regardless of distance.
	DefaultFastVelocity = 2500.0
)

// Translator converts a host drag stream into ratio mutations on a
// controller and resolves each drag into open, close, or dismiss.
//
// The host injects the item's main-axis extent and forwards its
// recognizer's drag details. Drags are ignored entirely while the
// controller is closing or dismissing, and while the translator is
// disabled.
type Translator struct {
	controller *Controller

	extent        float64
	openThreshold float64
	fastVelocity  float64
	disabled      bool

	dragging bool
	tracker  gestures.VelocityTracker
}

// NewTranslator creates a translator for the controller with the item's
// current main-axis extent. Wiring a disposed controller is a configuration
// mistake and panics with a structured lifecycle error.
func NewTranslator(c *Controller, extent float64) *Translator {
	if c.IsDisposed() {
		panic(errors.Lifecyclef("slidable.NewTranslator", "controller is disposed"))
	}
	return &Translator{
		controller:    c,
		extent:        extent,
		openThreshold: DefaultOpenThreshold,
		fastVelocity:  DefaultFastVelocity,
	}
}

// SetExtent updates the item's main-axis extent after a resize.
func (t *Translator) SetExtent(extent float64) {
	t.extent = extent
}

// SetOpenThreshold overrides the open distance threshold. Non-positive
// restores the default.
func (t *Translator) SetOpenThreshold(v float64) {
	if v <= 0 {
		v = DefaultOpenThreshold
	}
	t.openThreshold = v
}

// SetFastVelocity overrides the fling velocity threshold. Non-positive
// restores the default.
func (t *Translator) SetFastVelocity(v float64) {
	if v <= 0 {
		v = DefaultFastVelocity
	}
	t.fastVelocity = v
}

// SetEnabled toggles gesture handling. Disabling mid-drag drops the drag.
func (t *Translator) SetEnabled(enabled bool) {
	t.disabled = !enabled
	if t.disabled {
		t.dropDrag()
	}
}

func (t *Translator) dropDrag() {
	t.dragging = false
	t.tracker.Reset()
}

// Dragging reports whether a drag is in progress.
func (t *Translator) Dragging() bool {
	return t.dragging
}

// HandleDragStart begins a drag. A drag grabs the item: any in-flight
// animation stops at its current ratio.
func (t *Translator) HandleDragStart(d gestures.DragStartDetails) {
	c := t.controller
	if t.disabled || c.IsDisposed() || c.Closing() || c.Dismissing() || t.extent <= 0 {
		t.dragging = false
		return
	}
	if t.dragging {
		// The host's recognizer skipped a drag-end. Recoverable, but it is
		// an integration bug worth surfacing.
		errors.Report(errors.Gesturef("slidable.Translator.HandleDragStart",
			"drag started while another drag is active"))
	}
	t.dragging = true
	c.stopAnimation()
	t.tracker.Start(eventTime(d.Time))
}

// HandleDragUpdate applies a drag movement to the controller's ratio.
// Dragging toward a side with no configured pane produces zero change. The
// drag is dropped when the controller began closing or committed a
// dismissal since the last event.
func (t *Translator) HandleDragUpdate(d gestures.DragUpdateDetails) {
	if !t.dragging {
		return
	}
	c := t.controller
	if c.Closing() || c.Dismissing() {
		t.dropDrag()
		return
	}
	t.tracker.AddSample(d.PrimaryDelta, eventTime(d.Time))
	c.applyDragRatio(t.ratioAfter(c.Ratio(), d.PrimaryDelta))
}

// HandleDragEnd resolves the drag. A dismissible pane past its threshold
// dismisses; otherwise the pane opens when the distance threshold is met
// or the release was a fling in the opening direction, and closes in every
// other case.
func (t *Translator) HandleDragEnd(d gestures.DragEndDetails) {
	if !t.dragging {
		return
	}
	t.dragging = false
	c := t.controller
	if c.Closing() || c.Dismissing() {
		t.tracker.Reset()
		return
	}

	ratio := c.Ratio()
	if ratio == 0 {
		c.Close(true)
		return
	}

	dir := DirectionEnd
	if ratio < 0 {
		dir = DirectionStart
	}
	pane := c.Pane(dir)
	if pane != nil && pane.Dismiss != nil && math.Abs(ratio) >= pane.Dismiss.threshold() {
		c.Dismiss(nil)
		return
	}

	velocity := d.PrimaryVelocity
	if velocity == 0 {
		velocity = t.tracker.Velocity()
	}
	// A positive primary delta lowers the ratio, so an opening fling moves
	// against the ratio's sign.
	openingFling := math.Abs(velocity) >= t.fastVelocity && -velocity*dir.sign() > 0

	if math.Abs(ratio) >= t.openThreshold || openingFling {
		c.Open(dir, true)
		return
	}
	c.Close(true)
}

// ratioAfter converts the current ratio to a content displacement in
// pixels, applies the drag delta, and converts back, switching the pane
// extent factor when the sign crosses zero.
func (t *Translator) ratioAfter(ratio, primaryDelta float64) float64 {
	factor := t.factorFor(ratio)
	offset := -ratio * t.extent * factor
	offset += primaryDelta

	// The new side follows the content offset: content pushed toward the
	// main-axis end uncovers the start pane.
	var next float64
	switch {
	case offset > 0:
		if t.controller.Pane(DirectionStart) == nil {
			return 0
		}
		next = -offset / (t.extent * t.factorForSide(DirectionStart))
	case offset < 0:
		if t.controller.Pane(DirectionEnd) == nil {
			return 0
		}
		next = -offset / (t.extent * t.factorForSide(DirectionEnd))
	default:
		return 0
	}
	return next
}

func (t *Translator) factorFor(ratio float64) float64 {
	if ratio < 0 {
		return t.factorForSide(DirectionStart)
	}
	if ratio > 0 {
		return t.factorForSide(DirectionEnd)
	}
	// At rest either side may engage next; prefer a configured one.
	if t.controller.Pane(DirectionStart) != nil {
		return t.factorForSide(DirectionStart)
	}
	return t.factorForSide(DirectionEnd)
}

func (t *Translator) factorForSide(dir Direction) float64 {
	pane := t.controller.Pane(dir)
	if pane == nil {
		return DefaultExtentFactor
	}
	return pane.extentFactor()
}

func eventTime(t time.Time) time.Time {
	if t.IsZero() {
		return animation.Now()
	}
	return t
}
