package animation

import "time"

// Curve transforms linear progress in [0, 1] into eased progress.
type Curve func(float64) float64

// Animator drives a scalar value toward a target over time.
//
// Unlike a fixed-range controller, an Animator is re-targetable: each
// [Animator.AnimateTo] call carries its own target, duration, and curve.
// Issuing a new request cancels any in-flight animation first, so exactly
// one target animation is ever active per animator (last-request-wins).
//
// The OnTick callback fires on every value change, including the final one.
// Always call Dispose when done to stop the animation and release the ticker.
type Animator struct {
	// OnTick fires whenever the value changes.
	OnTick func(value float64)

	value      float64
	ticker     *Ticker
	target     float64
	startValue float64
	duration   time.Duration
	curve      Curve
	done       func(completed bool)
	disposed   bool
}

// NewAnimator creates an animator starting at the given value.
func NewAnimator(initial float64) *Animator {
	return &Animator{value: initial}
}

// Value returns the current value.
func (a *Animator) Value() float64 {
	return a.value
}

// IsAnimating reports whether an animation is in flight.
func (a *Animator) IsAnimating() bool {
	return a.ticker != nil
}

// SetValue stops any in-flight animation and jumps to v immediately.
// The superseded animation's done callback fires with completed=false.
func (a *Animator) SetValue(v float64) {
	if a.disposed {
		return
	}
	a.cancel()
	if a.value != v {
		a.value = v
		a.notify()
	}
}

// AnimateTo animates from the current value to target over the given
// duration. A zero or negative duration completes synchronously. The done
// callback, if non-nil, fires exactly once: with completed=true when the
// target is reached, or completed=false when the request is superseded or
// stopped first.
func (a *Animator) AnimateTo(target float64, duration time.Duration, curve Curve, done func(completed bool)) {
	if a.disposed {
		if done != nil {
			done(false)
		}
		return
	}
	a.cancel()

	if duration <= 0 || a.value == target {
		if a.value != target {
			a.value = target
			a.notify()
		}
		if done != nil {
			done(true)
		}
		return
	}

	a.target = target
	a.startValue = a.value
	a.duration = duration
	a.curve = curve
	a.done = done

	a.ticker = NewTicker(a.tick)
	a.ticker.Start()
}

func (a *Animator) tick(elapsed time.Duration) {
	progress := float64(elapsed) / float64(a.duration)
	if progress >= 1.0 {
		progress = 1.0
	}

	eased := progress
	if a.curve != nil {
		eased = a.curve(progress)
	}
	next := a.startValue + (a.target-a.startValue)*eased
	if next != a.value {
		a.value = next
		a.notify()
	}

	if progress >= 1.0 {
		a.finish()
	}
}

// Stop cancels any in-flight animation at the current value.
// The pending done callback fires with completed=false.
func (a *Animator) Stop() {
	a.cancel()
}

// finish resolves the active request as completed.
func (a *Animator) finish() {
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
	}
	done := a.done
	a.done = nil
	if done != nil {
		done(true)
	}
}

// cancel resolves the active request, if any, as superseded.
func (a *Animator) cancel() {
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
	}
	done := a.done
	a.done = nil
	if done != nil {
		done(false)
	}
}

// Dispose cancels any in-flight animation and releases the animator.
// Subsequent operations are no-ops.
func (a *Animator) Dispose() {
	if a.disposed {
		return
	}
	a.cancel()
	a.disposed = true
	a.OnTick = nil
}

func (a *Animator) notify() {
	if a.OnTick != nil {
		a.OnTick(a.value)
	}
}
