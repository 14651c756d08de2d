package slidable

import (
	"time"

	"github.com/go-drift/slidable/pkg/animation"
)

// Direction selects which action pane an operation targets.
type Direction int

const (
	// DirectionStart targets the pane at the item's main-axis start
	// (negative ratio).
	DirectionStart Direction = -1
	// DirectionEnd targets the pane at the item's main-axis end
	// (positive ratio).
	DirectionEnd Direction = 1
)

func (d Direction) sign() float64 {
	if d < 0 {
		return -1
	}
	return 1
}

// Status describes the controller's current interaction state.
//
// The status follows this state machine:
//
//	Closed ──Open()──► Opening ──► Open ──Dismiss()──► Dismissing ──► Dismissed
//	   ▲                                │
//	   └────── Closing ◄───Close()──────┘
//
// A drag leaves the status untouched until it resolves at drag end.
type Status int

const (
	// StatusClosed means the item is at rest with no pane revealed.
	StatusClosed Status = iota
	// StatusOpening means an open animation is in flight.
	StatusOpening
	// StatusOpen means a pane is fully revealed.
	StatusOpen
	// StatusClosing means a close animation is in flight.
	StatusClosing
	// StatusDismissing means a dismissal has committed and is animating.
	StatusDismissing
	// StatusDismissed means the dismissal finished; the host should remove
	// the item.
	StatusDismissed
)

func (s Status) String() string {
	switch s {
	case StatusClosed:
		return "closed"
	case StatusOpening:
		return "opening"
	case StatusOpen:
		return "open"
	case StatusClosing:
		return "closing"
	case StatusDismissing:
		return "dismissing"
	case StatusDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Config configures a controller. At least one pane must be set.
type Config struct {
	// StartPane is revealed at negative ratios. Nil disables that side.
	StartPane *ActionPane
	// EndPane is revealed at positive ratios. Nil disables that side.
	EndPane *ActionPane

	// OpenDuration is the open animation length. Zero means
	// DefaultOpenDuration.
	OpenDuration time.Duration
	// CloseDuration is the close animation length. Zero means
	// DefaultCloseDuration.
	CloseDuration time.Duration
	// Curve eases open/close/dismiss animations. Nil means animation.Ease.
	Curve animation.Curve

	// Group coordinates this controller with siblings. Nil disables
	// cross-item coordination.
	Group *Group
	// Tag clusters controllers within the group; opening one closes any
	// other open controller sharing the tag. Must be comparable.
	Tag any
}

func (c Config) openDuration() time.Duration {
	if c.OpenDuration <= 0 {
		return DefaultOpenDuration
	}
	return c.OpenDuration
}

func (c Config) closeDuration() time.Duration {
	if c.CloseDuration <= 0 {
		return DefaultCloseDuration
	}
	return c.CloseDuration
}

func (c Config) curve() animation.Curve {
	if c.Curve == nil {
		return animation.Ease
	}
	return c.Curve
}

// Controller owns the open ratio of one slidable item for the lifetime of
// the owning widget. All mutation goes through its operations; the render
// layer subscribes for repaint scheduling and reads the ratio back.
//
// Operations on a disposed controller are silent no-ops.
type Controller struct {
	cfg Config

	animator *animation.Animator
	resize   *animation.Animator

	ratio           float64
	status          Status
	closing         bool
	dismissing      bool
	resizeRequested bool
	resizeFraction  float64

	listeners       map[int]func()
	statusListeners map[int]func(Status)
	nextListenerID  int

	detachGroup func()
	registered  bool
	disposed    bool
}

// NewController creates a controller for one slidable item. Configured
// panes are validated immediately; misuse panics with a structured config
// error.
func NewController(cfg Config) *Controller {
	if cfg.StartPane != nil {
		cfg.StartPane.Validate()
	}
	if cfg.EndPane != nil {
		cfg.EndPane.Validate()
	}
	c := &Controller{
		cfg:             cfg,
		resizeFraction:  1,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(Status)),
	}
	c.animator = animation.NewAnimator(0)
	c.animator.OnTick = c.onRatioTick
	if cfg.Group != nil {
		c.detachGroup = cfg.Group.attach(c)
	}
	return c
}

// Ratio returns the current open ratio. Negative reveals the start pane,
// positive the end pane; |ratio| is 1 when fully open and may exceed 1
// transiently during a dismiss overshoot.
func (c *Controller) Ratio() float64 {
	return c.ratio
}

// Status returns the current interaction status.
func (c *Controller) Status() Status {
	return c.status
}

// Closing reports whether a close animation is in flight.
func (c *Controller) Closing() bool {
	return c.closing
}

// Dismissing reports whether a dismissal has committed.
func (c *Controller) Dismissing() bool {
	return c.dismissing
}

// ResizeRequested reports whether the dismissal's resize phase has begun.
func (c *Controller) ResizeRequested() bool {
	return c.resizeRequested
}

// ResizeFraction returns the remaining size fraction during the dismissal
// resize phase, 1 otherwise.
func (c *Controller) ResizeFraction() float64 {
	return c.resizeFraction
}

// IsDisposed reports whether Dispose has run.
func (c *Controller) IsDisposed() bool {
	return c.disposed
}

// Tag returns the group tag from the configuration.
func (c *Controller) Tag() any {
	return c.cfg.Tag
}

// Pane returns the pane for the given direction, or nil.
func (c *Controller) Pane(dir Direction) *ActionPane {
	if dir == DirectionStart {
		return c.cfg.StartPane
	}
	return c.cfg.EndPane
}

// OpenPane returns the pane selected by the current ratio's sign, or nil
// when the item is closed.
func (c *Controller) OpenPane() *ActionPane {
	switch {
	case c.ratio < 0:
		return c.cfg.StartPane
	case c.ratio > 0:
		return c.cfg.EndPane
	default:
		return nil
	}
}

// SetRatio clamps r to the legal range and stores it, notifying listeners
// on every distinct value. It stops any in-flight animation. No-op when
// disposed or while a dismissal is committed.
func (c *Controller) SetRatio(r float64) {
	if c.disposed || c.dismissing {
		return
	}
	c.applyDragRatio(r)
}

// Open animates the ratio toward the pane in the given direction. No-op
// when that side has no pane, when disposed, or while dismissing. A new
// request supersedes any in-flight animation on this controller.
func (c *Controller) Open(dir Direction, animate bool) {
	if c.disposed || c.dismissing {
		return
	}
	if c.Pane(dir) == nil {
		return
	}
	c.registerOpen()
	c.setStatus(StatusOpening)
	dur := c.cfg.openDuration()
	if !animate {
		dur = 0
	}
	c.animator.AnimateTo(dir.sign(), dur, c.cfg.curve(), func(completed bool) {
		if completed {
			c.setStatus(StatusOpen)
		}
	})
}

// Close animates the ratio to 0. Closing is true for the duration and
// false on completion or cancellation. No-op when disposed or while
// dismissing.
func (c *Controller) Close(animate bool) {
	if c.disposed || c.dismissing {
		return
	}
	if c.ratio == 0 && !c.animator.IsAnimating() {
		c.setStatus(StatusClosed)
		c.unregisterOpen()
		return
	}
	c.setClosing(true)
	c.setStatus(StatusClosing)
	dur := c.cfg.closeDuration()
	if !animate {
		dur = 0
	}
	c.animator.AnimateTo(0, dur, c.cfg.curve(), func(completed bool) {
		c.setClosing(false)
		if completed {
			c.setStatus(StatusClosed)
			c.unregisterOpen()
		}
	})
}

// Dismiss commits to removing the item. The ratio overshoots past the open
// position until the content has fully left the item, then the resize
// phase shrinks the item over the config's resize duration, after which
// the completion callback fires exactly once. Once committed a dismissal
// never reverses; only Dispose cancels it.
//
// The effective configuration is override when non-nil, otherwise the open
// pane's. Without either, or with no pane open, Dismiss is a no-op.
func (c *Controller) Dismiss(override *DismissConfig) {
	if c.disposed || c.dismissing {
		return
	}
	pane := c.OpenPane()
	if pane == nil {
		return
	}
	cfg := override
	if cfg == nil {
		cfg = pane.Dismiss
	}
	if cfg == nil {
		return
	}
	c.dismissing = true
	c.setStatus(StatusDismissing)
	c.notifyListeners()

	sign := 1.0
	if c.ratio < 0 {
		sign = -1
	}
	overshoot := sign / pane.extentFactor()
	c.animator.AnimateTo(overshoot, cfg.duration(), c.cfg.curve(), func(completed bool) {
		if completed {
			c.beginResize(cfg)
		}
	})
}

func (c *Controller) beginResize(cfg *DismissConfig) {
	c.resizeRequested = true
	c.notifyListeners()
	shrink := animation.TweenFloat64(1, 0)
	c.resize = animation.NewAnimator(0)
	c.resize.OnTick = func(progress float64) {
		c.resizeFraction = shrink.Evaluate(progress)
		c.notifyListeners()
	}
	c.resize.AnimateTo(1, cfg.resizeDuration(), animation.LinearCurve, func(completed bool) {
		if !completed {
			return
		}
		c.setStatus(StatusDismissed)
		c.unregisterOpen()
		if cfg.OnDismissed != nil {
			cfg.OnDismissed()
		}
	})
}

// AddListener registers a callback fired on every ratio or flag change.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	if c.disposed {
		return func() {}
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		if c.listeners != nil {
			delete(c.listeners, id)
		}
	}
}

// AddStatusListener registers a callback fired on every status change.
// Returns an unsubscribe function.
func (c *Controller) AddStatusListener(fn func(Status)) func() {
	if c.disposed {
		return func() {}
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		if c.statusListeners != nil {
			delete(c.statusListeners, id)
		}
	}
}

// Dispose cancels any in-flight animation, removes the group registration,
// and releases all listeners. Exactly one detach path exists; subsequent
// operations on the controller are no-ops, not errors.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.unregisterOpen()
	if c.detachGroup != nil {
		c.detachGroup()
		c.detachGroup = nil
	}
	c.animator.Dispose()
	if c.resize != nil {
		c.resize.Dispose()
		c.resize = nil
	}
	c.disposed = true
	c.listeners = nil
	c.statusListeners = nil
}

// stopAnimation cancels any in-flight ratio animation at the current
// value. Used by the translator when a drag grabs a moving item.
func (c *Controller) stopAnimation() {
	c.animator.Stop()
}

// applyDragRatio clamps r to the panes available and writes it through the
// animator. Registration with the group happens on the transition away
// from rest. A committed dismissal owns the ratio until it finishes.
func (c *Controller) applyDragRatio(r float64) {
	if c.dismissing {
		return
	}
	r = c.clampRatio(r)
	if r != 0 {
		c.registerOpen()
	}
	c.animator.SetValue(r)
}

// clampRatio restricts r to [-1, 1], collapsed to one side when only one
// pane is configured. Out-of-range values from upstream are clamped
// defensively rather than propagated; this surface renders every frame and
// must not throw.
func (c *Controller) clampRatio(r float64) float64 {
	min, max := -1.0, 1.0
	if c.cfg.StartPane == nil {
		min = 0
	}
	if c.cfg.EndPane == nil {
		max = 0
	}
	if r < min {
		return min
	}
	if r > max {
		return max
	}
	return r
}

func (c *Controller) onRatioTick(value float64) {
	c.ratio = value
	c.notifyListeners()
}

func (c *Controller) setClosing(v bool) {
	if c.closing == v {
		return
	}
	c.closing = v
	c.notifyListeners()
}

func (c *Controller) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

func (c *Controller) registerOpen() {
	if c.cfg.Group == nil {
		return
	}
	// The local flag goes stale while an eviction's close is still in
	// flight; the group's entry for the tag is authoritative.
	if c.registered && c.cfg.Group.Open(c.cfg.Tag) == c {
		return
	}
	c.registered = true
	c.cfg.Group.RegisterOpen(c.cfg.Tag, c)
}

func (c *Controller) unregisterOpen() {
	if !c.registered {
		return
	}
	c.registered = false
	if c.cfg.Group != nil {
		c.cfg.Group.Unregister(c.cfg.Tag, c)
	}
}
