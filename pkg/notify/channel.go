// Package notify provides the typed broadcast channel used to coordinate
// slidable controllers within one subtree scope.
//
// A channel is a slot, not a queue: each publish overwrites the latest value
// and synchronously notifies every listener within the same event turn.
package notify

// Channel is a typed broadcast slot holding the most recent value and a set
// of listeners. It is not safe for concurrent use; all dispatch happens on
// the host's single event loop.
type Channel[T any] struct {
	latest    T
	hasValue  bool
	listeners map[int]func(T)
	nextID    int
}

// NewChannel creates an empty channel.
func NewChannel[T any]() *Channel[T] {
	return &Channel[T]{
		listeners: make(map[int]func(T)),
	}
}

// Publish overwrites the latest value and synchronously notifies all
// listeners. Listener panics are not caught; they propagate to the host.
func (c *Channel[T]) Publish(value T) {
	c.latest = value
	c.hasValue = true
	for _, listener := range c.listeners {
		listener(value)
	}
}

// Subscribe adds a listener that fires on every publish.
// Returns an unsubscribe function.
func (c *Channel[T]) Subscribe(fn func(T)) func() {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// Latest returns the most recently published value, if any.
func (c *Channel[T]) Latest() (T, bool) {
	return c.latest, c.hasValue
}

// ListenerCount returns the number of active listeners.
func (c *Channel[T]) ListenerCount() int {
	return len(c.listeners)
}
