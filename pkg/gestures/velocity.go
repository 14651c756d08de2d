package gestures

import "time"

// VelocityTracker estimates the main-axis velocity of a drag from its
// update stream, in logical pixels per second.
//
// Samples are blended with exponential smoothing so a single jittery frame
// does not flip a fling decision at release.
type VelocityTracker struct {
	velocity float64
	lastTime time.Time
	primed   bool
}

// Start resets the tracker at the beginning of a drag.
func (v *VelocityTracker) Start(t time.Time) {
	v.velocity = 0
	v.lastTime = t
	v.primed = true
}

// AddSample records a main-axis movement of delta pixels at time t.
// Samples with a non-positive time step leave the estimate unchanged.
func (v *VelocityTracker) AddSample(delta float64, t time.Time) {
	if !v.primed {
		v.Start(t)
		return
	}
	dt := t.Sub(v.lastTime).Seconds()
	v.lastTime = t
	if dt <= 0 {
		return
	}
	inst := delta / dt
	v.velocity = v.velocity*0.8 + inst*0.2
}

// Velocity returns the current smoothed estimate in pixels per second.
func (v *VelocityTracker) Velocity() float64 {
	return v.velocity
}

// Reset clears the tracker.
func (v *VelocityTracker) Reset() {
	v.velocity = 0
	v.primed = false
}
