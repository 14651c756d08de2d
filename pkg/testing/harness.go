package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/slidable/pkg/animation"
)

// DefaultFrame is the frame interval used by Pump, ~60fps.
const DefaultFrame = 16 * time.Millisecond

// ErrSettleTimeout is returned when Settle exceeds its timeout.
var ErrSettleTimeout = errors.New("Settle timed out: animations did not settle")

// Harness drives the engine's frame loop deterministically. It installs a
// fake clock as the animation time source for the duration of the test.
type Harness struct {
	clock     *FakeClock
	prevClock animation.Clock
}

// NewHarness creates a harness that restores the real clock via t.Cleanup.
func NewHarness(t *testing.T) *Harness {
	h := &Harness{clock: NewFakeClock()}
	h.prevClock = animation.SetClock(h.clock)
	t.Cleanup(func() {
		animation.SetClock(h.prevClock)
	})
	return h
}

// Clock returns the fake clock for advancing time directly.
func (h *Harness) Clock() *FakeClock {
	return h.clock
}

// Pump advances the clock by d and steps all active tickers once,
// mirroring one iteration of the host frame loop.
func (h *Harness) Pump(d time.Duration) {
	h.clock.Advance(d)
	animation.StepTickers()
}

// PumpFrames pumps n frames at the default frame interval.
func (h *Harness) PumpFrames(n int) {
	for range n {
		h.Pump(DefaultFrame)
	}
}

// Settle pumps frames until no tickers remain active, or fails with
// ErrSettleTimeout once the given amount of fake time has elapsed.
func (h *Harness) Settle(timeout time.Duration) error {
	var elapsed time.Duration
	for animation.HasActiveTickers() {
		if elapsed >= timeout {
			return ErrSettleTimeout
		}
		h.Pump(DefaultFrame)
		elapsed += DefaultFrame
	}
	return nil
}
