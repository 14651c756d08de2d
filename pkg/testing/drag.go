package testing

import (
	"time"

	"github.com/go-drift/slidable/pkg/gestures"
	"github.com/go-drift/slidable/pkg/slidable"
)

// DragSimulator synthesizes a drag sequence against a translator, stamping
// each event with the harness's fake clock and pumping a frame between
// updates like a real pointer stream would.
type DragSimulator struct {
	harness    *Harness
	translator *slidable.Translator
	position   gestures.Offset
}

// StartDrag begins a simulated horizontal drag at the given position.
func (h *Harness) StartDrag(tr *slidable.Translator, at gestures.Offset) *DragSimulator {
	d := &DragSimulator{harness: h, translator: tr, position: at}
	tr.HandleDragStart(gestures.DragStartDetails{
		Position: at,
		Time:     h.clock.Now(),
	})
	return d
}

// MoveBy advances the drag by delta over the given wall time.
func (d *DragSimulator) MoveBy(delta float64, over time.Duration) *DragSimulator {
	d.harness.Pump(over)
	d.position.X += delta
	d.translator.HandleDragUpdate(gestures.DragUpdateDetails{
		Position:     d.position,
		Delta:        gestures.Offset{X: delta},
		PrimaryDelta: delta,
		Time:         d.harness.clock.Now(),
	})
	return d
}

// MoveSteps applies the total delta as n equal updates spread over the
// given wall time, so the velocity tracker sees a realistic stream.
func (d *DragSimulator) MoveSteps(total float64, over time.Duration, n int) *DragSimulator {
	if n < 1 {
		n = 1
	}
	step := total / float64(n)
	per := over / time.Duration(n)
	for range n {
		d.MoveBy(step, per)
	}
	return d
}

// End releases the drag with the given main-axis velocity, in pixels per
// second. Pass 0 to let the translator use its own tracked estimate.
func (d *DragSimulator) End(velocity float64) {
	d.translator.HandleDragEnd(gestures.DragEndDetails{
		Velocity:        gestures.Offset{X: velocity},
		PrimaryVelocity: velocity,
	})
}
