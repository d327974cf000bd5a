package state

import (
	"github.com/google/uuid"

	"github.com/ytget/person-form/internal/model"
	"github.com/ytget/person-form/internal/trace"
)

type sessionTracer interface {
	WithSession(session string) trace.Tracer
}

type subscriber struct {
	id int
	fn model.ChangeFunc
}

// Container owns the canonical Person for the lifetime of the UI tree.
// It is not safe for concurrent use; all calls come from the UI event loop.
type Container struct {
	id          string
	person      model.Person
	revision    uint64
	tracer      trace.Tracer
	subscribers []subscriber
	nextSubID   int
}

// NewContainer creates a container holding initial
func NewContainer(initial model.Person, tracer trace.Tracer) *Container {
	id := uuid.NewString()
	if tracer == nil {
		tracer = trace.Nop{}
	}
	if st, ok := tracer.(sessionTracer); ok {
		tracer = st.WithSession(id)
	}

	return &Container{
		id:     id,
		person: initial,
		tracer: tracer,
	}
}

// ID returns the session ID assigned at creation
func (c *Container) ID() string {
	return c.id
}

// Tracer returns the session-tagged tracer views should render through
func (c *Container) Tracer() trace.Tracer {
	return c.tracer
}

// Person returns a snapshot of the current record
func (c *Container) Person() model.Person {
	return c.person
}

// Revision returns how many records have been committed since creation
func (c *Container) Revision() uint64 {
	return c.revision
}

// OnPersonChange replaces the held record with updated and re-renders
// every subscriber with the new snapshot. No validation happens here.
func (c *Container) OnPersonChange(updated model.Person) {
	c.person = updated
	c.revision++
	c.tracer.Committed(c.revision, updated)

	// copy so a subscriber may unsubscribe while being notified
	subs := make([]subscriber, len(c.subscribers))
	copy(subs, c.subscribers)
	for _, s := range subs {
		s.fn(updated)
	}
}

// Subscribe registers fn to be called after every commit
func (c *Container) Subscribe(fn model.ChangeFunc) func() {
	if fn == nil {
		return func() {}
	}

	c.nextSubID++
	id := c.nextSubID
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range c.subscribers {
			if s.id == id {
				c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
				return
			}
		}
	}
}
