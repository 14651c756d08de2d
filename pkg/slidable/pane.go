package slidable

import (
	"fmt"
	"time"

	"github.com/go-drift/slidable/pkg/errors"
)

// Tuning defaults. Durations and thresholds can be overridden per pane or
// via a [Profile].
const (
	// DefaultExtentFactor is the fraction of the item's main-axis extent a
	// fully open pane occupies.
	DefaultExtentFactor = 0.5
	// DefaultDismissThreshold is the |ratio| at drag end past which a
	// dismissible pane commits to dismissal.
	DefaultDismissThreshold = 0.75
	// DefaultDismissDuration is the slide-out phase length of a dismissal.
	DefaultDismissDuration = 300 * time.Millisecond
	// DefaultResizeDuration is the resize phase length of a dismissal.
	DefaultResizeDuration = 300 * time.Millisecond
	// DefaultOpenDuration is the open animation length.
	DefaultOpenDuration = 250 * time.Millisecond
	// DefaultCloseDuration is the close animation length.
	DefaultCloseDuration = 250 * time.Millisecond
)

// Action describes one entry in an action pane. The engine never interprets
// the payload; it is carried through for the render layer.
type Action struct {
	// FlexWeight is the action's relative share of the pane's extent.
	// Zero or negative means an equal share.
	FlexWeight float64
	// OnPressed is invoked by the host when the action is activated.
	// Panics from it propagate to the host's error reporting.
	OnPressed func()
	// Payload is an opaque render payload (label, icon, colors).
	Payload any
}

// DismissConfig enables the dismiss gesture on a pane.
type DismissConfig struct {
	// Threshold is the |ratio| at drag end past which dismissal commits.
	// Zero means DefaultDismissThreshold.
	Threshold float64
	// Duration is the slide-out phase length. Zero means
	// DefaultDismissDuration.
	Duration time.Duration
	// ResizeDuration is the resize phase length. Zero means
	// DefaultResizeDuration.
	ResizeDuration time.Duration
	// OnDismissed fires exactly once, after the resize phase finishes.
	OnDismissed func()
}

func (d *DismissConfig) threshold() float64 {
	if d == nil || d.Threshold <= 0 {
		return DefaultDismissThreshold
	}
	return d.Threshold
}

func (d *DismissConfig) duration() time.Duration {
	if d == nil || d.Duration <= 0 {
		return DefaultDismissDuration
	}
	return d.Duration
}

func (d *DismissConfig) resizeDuration() time.Duration {
	if d == nil || d.ResizeDuration <= 0 {
		return DefaultResizeDuration
	}
	return d.ResizeDuration
}

// ActionPane configures the strip of actions revealed on one side of an
// item. The motion strategy is resolved once; it is immutable for the
// pane's lifetime.
type ActionPane struct {
	// Actions, in layout order from the pane's start edge. Must not be empty.
	Actions []Action
	// ExtentFactor is the fraction of the item's extent occupied when fully
	// open, in (0, 1]. Zero means DefaultExtentFactor.
	ExtentFactor float64
	// Motion maps the ratio to transforms. Nil means BehindMotion.
	Motion Motion
	// Dismiss enables the dismiss gesture. Nil disables it.
	Dismiss *DismissConfig
}

// Validate panics with a structured config error on misuse. It is called at
// controller construction so integration bugs surface immediately rather
// than mid-gesture.
func (p *ActionPane) Validate() {
	if err := p.validate(); err != nil {
		panic(err)
	}
}

func (p *ActionPane) validate() *errors.SlidableError {
	const op = "slidable.ActionPane.Validate"
	if len(p.Actions) == 0 {
		return errors.Configf(op, "action pane has no actions")
	}
	if p.ExtentFactor < 0 || p.ExtentFactor > 1 {
		return errors.Configf(op, "extent factor %v outside (0, 1]", p.ExtentFactor)
	}
	if p.Dismiss != nil && (p.Dismiss.Threshold < 0 || p.Dismiss.Threshold > 1) {
		return errors.Configf(op, "dismiss threshold %v outside (0, 1]", p.Dismiss.Threshold)
	}
	return nil
}

func (p *ActionPane) extentFactor() float64 {
	if p.ExtentFactor <= 0 {
		return DefaultExtentFactor
	}
	return p.ExtentFactor
}

func (p *ActionPane) motion() Motion {
	if p.Motion == nil {
		return BehindMotion{}
	}
	return p.Motion
}

// Transforms computes the pane's frame for the given signed ratio through
// the pane's motion strategy, applying the effective extent factor and the
// normalized action weights.
func (p *ActionPane) Transforms(ratio float64) Transforms {
	return p.motion().Transforms(ratio, p.extentFactor(), p.Weights())
}

// Weights returns the normalized flex weights of the pane's actions.
// They sum to 1; non-positive weights fall back to an equal share.
func (p *ActionPane) Weights() []float64 {
	return normalizeWeights(actionWeights(p.Actions))
}

func actionWeights(actions []Action) []float64 {
	weights := make([]float64, len(actions))
	for i, a := range actions {
		weights[i] = a.FlexWeight
	}
	return weights
}

func normalizeWeights(weights []float64) []float64 {
	if len(weights) == 0 {
		return nil
	}
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		} else {
			total += 1
		}
	}
	out := make([]float64, len(weights))
	for i, w := range weights {
		if w <= 0 {
			w = 1
		}
		out[i] = w / total
	}
	return out
}

// String implements fmt.Stringer for debugging.
func (p *ActionPane) String() string {
	return fmt.Sprintf("ActionPane(actions=%d, extent=%.2f)", len(p.Actions), p.extentFactor())
}
