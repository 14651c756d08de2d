// Package gestures defines the drag event types and velocity estimation the
// slidable engine consumes from a host render layer.
//
// The engine does not recognize pointers itself: the host's gesture system
// (recognizer, arena, hit testing) produces drag start/update/end events and
// feeds them to a translator. This package is the shared vocabulary for
// those events plus a [VelocityTracker] for fling detection.
package gestures

import "time"

// DefaultTouchSlop is the minimum pointer travel, in logical pixels, before
// a drag should be recognized. Hosts that run their own recognizers may use
// a platform-specific value instead.
const DefaultTouchSlop = 18.0

// Offset represents a 2D point or vector in logical pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Axis identifies the main axis of a drag or list.
type Axis int

const (
	// AxisHorizontal selects the X component as the primary axis.
	AxisHorizontal Axis = iota
	// AxisVertical selects the Y component as the primary axis.
	AxisVertical
)

// Primary returns the component of o along the axis.
func (a Axis) Primary(o Offset) float64 {
	if a == AxisVertical {
		return o.Y
	}
	return o.X
}

// DragStartDetails describes the start of a drag.
type DragStartDetails struct {
	// Position is the pointer position when the drag began.
	Position Offset
	// Time is when the event occurred. Zero means "now" per the
	// animation clock.
	Time time.Time
}

// DragUpdateDetails describes a drag update.
type DragUpdateDetails struct {
	// Position is the current pointer position.
	Position Offset
	// Delta is the movement since the previous update.
	Delta Offset
	// PrimaryDelta is the movement along the drag's main axis.
	PrimaryDelta float64
	// Time is when the event occurred. Zero means "now" per the
	// animation clock.
	Time time.Time
}

// DragEndDetails describes the end of a drag.
type DragEndDetails struct {
	// Velocity is the pointer velocity at release, in pixels per second.
	Velocity Offset
	// PrimaryVelocity is the velocity along the drag's main axis.
	PrimaryVelocity float64
}
