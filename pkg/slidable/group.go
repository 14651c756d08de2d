package slidable

import "github.com/go-drift/slidable/pkg/notify"

// EventKind discriminates group events. An explicit discriminant, not
// runtime type identity, selects the behavior.
type EventKind int

const (
	// EventCloseRequest asks every open controller sharing Tag, other than
	// Source, to close.
	EventCloseRequest EventKind = iota
	// EventScrollClose asks every open controller in the scope to close
	// because the enclosing scrollable started moving.
	EventScrollClose
)

// Event is the tagged variant dispatched through a group's channel.
type Event struct {
	Kind   EventKind
	Tag    any
	Source *Controller
}

// Group coordinates slidable controllers within one subtree scope so that
// only one item per tag stays open, and scrolling closes everything.
//
// A group covers exactly one scope boundary; nested or sibling scopes with
// their own group do not interact. Controllers without a group are fully
// functional, they just lose cross-item coordination.
type Group struct {
	events *notify.Channel[Event]
	open   map[any]*Controller
}

// NewGroup creates an empty coordination scope.
func NewGroup() *Group {
	return &Group{
		events: notify.NewChannel[Event](),
		open:   make(map[any]*Controller),
	}
}

// RegisterOpen records c as the open controller for tag. If a different
// controller is currently registered under the tag, it receives a close
// instruction synchronously, within the same event turn, before the entry
// is overwritten — from the group's point of view there is never a moment
// with two open occupants per tag.
func (g *Group) RegisterOpen(tag any, c *Controller) {
	if prev, ok := g.open[tag]; ok && prev != c {
		g.events.Publish(Event{Kind: EventCloseRequest, Tag: tag, Source: c})
	}
	g.open[tag] = c
}

// Unregister removes the entry for tag only if it still belongs to c, so a
// stale disposal cannot evict a newer registration.
func (g *Group) Unregister(tag any, c *Controller) {
	if g.open[tag] == c {
		delete(g.open, tag)
	}
}

// Open returns the controller currently registered under tag, or nil.
func (g *Group) Open(tag any) *Controller {
	return g.open[tag]
}

// NotifyScrollStarted broadcasts a close to every currently-open member.
// The ancestor scroll listener calls this when scrolling begins.
func (g *Group) NotifyScrollStarted() {
	g.events.Publish(Event{Kind: EventScrollClose})
}

// ObserveScroll subscribes the group to a host-provided "currently
// scrolling" stream; each transition to true broadcasts a close.
// Returns an unsubscribe function.
func (g *Group) ObserveScroll(scrolling *notify.Channel[bool]) func() {
	return scrolling.Subscribe(func(active bool) {
		if active {
			g.NotifyScrollStarted()
		}
	})
}

// attach subscribes a controller to the group's events. Returns the detach
// function; detach runs exactly once via Controller.Dispose.
func (g *Group) attach(c *Controller) func() {
	return g.events.Subscribe(func(ev Event) {
		c.handleGroupEvent(ev)
	})
}

func (c *Controller) handleGroupEvent(ev Event) {
	if c.disposed {
		return
	}
	switch ev.Kind {
	case EventCloseRequest:
		if ev.Source == c || ev.Tag != c.cfg.Tag {
			return
		}
		c.Close(true)
	case EventScrollClose:
		// An open requested this same turn still sits at ratio 0 with its
		// animation pending; scrolling cancels it too.
		if c.ratio != 0 || c.status == StatusOpening {
			c.Close(true)
		}
	}
}
