package trace

import (
	"log"
	"sync"

	"github.com/ytget/person-form/internal/model"
)

// Component names used in trace lines
const (
	ComponentContainer = "StateContainer"
	ComponentEditor    = "EditorView"
	ComponentReadOnly  = "ReadOnlyView"
)

// Tracer records component renders and state commits
type Tracer interface {
	Rendered(component string, p model.Person)
	Committed(revision uint64, p model.Person)
}

// New returns a log-backed tracer, or a no-op tracer when disabled
func New(enabled bool, logger *log.Logger) Tracer {
	if !enabled || logger == nil {
		return Nop{}
	}
	return &LogTracer{logger: logger}
}

// LogTracer writes one log line per render
type LogTracer struct {
	logger  *log.Logger
	session string
}

// WithSession returns a copy that tags every line with the given session ID
func (lt *LogTracer) WithSession(session string) Tracer {
	return &LogTracer{logger: lt.logger, session: session}
}

// Rendered logs the render of component with the values it was given
func (lt *LogTracer) Rendered(component string, p model.Person) {
	if lt.session != "" {
		lt.logger.Printf("[%s] %s rendered: %s", shortSession(lt.session), component, p)
		return
	}
	lt.logger.Printf("%s rendered: %s", component, p)
}

// Committed logs a state replacement with its revision number
func (lt *LogTracer) Committed(revision uint64, p model.Person) {
	if lt.session != "" {
		lt.logger.Printf("[%s] %s committed #%d: %s", shortSession(lt.session), ComponentContainer, revision, p)
		return
	}
	lt.logger.Printf("%s committed #%d: %s", ComponentContainer, revision, p)
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Nop discards every render
type Nop struct{}

// Rendered does nothing
func (Nop) Rendered(string, model.Person) {}

// Committed does nothing
func (Nop) Committed(uint64, model.Person) {}

// Event is one recorded render or commit
type Event struct {
	Component string
	Person    model.Person
	Revision  uint64 // set for commits only
}

// Recorder keeps every render in memory; used by tests
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Rendered appends an event
func (r *Recorder) Rendered(component string, p model.Person) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Component: component, Person: p})
}

// Committed appends a container event carrying the revision
func (r *Recorder) Committed(revision uint64, p model.Person) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Component: ComponentContainer, Person: p, Revision: revision})
}

// Events returns a copy of the recorded events
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many times component rendered
func (r *Recorder) Count(component string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Component == component {
			n++
		}
	}
	return n
}

// Last returns the most recent event for component
func (r *Recorder) Last(component string) (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Component == component {
			return r.events[i], true
		}
	}
	return Event{}, false
}

// Reset drops all recorded events
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
