package state

import (
	"github.com/ytget/person-form/internal/model"
)

// Holder defines what a rendering surface needs from the state owner.
type Holder interface {
	// Person returns a snapshot of the current record
	Person() model.Person

	// OnPersonChange replaces the current record and re-renders subscribers
	OnPersonChange(updated model.Person)

	// Subscribe registers a re-render hook and returns its cancel function
	Subscribe(fn model.ChangeFunc) func()
}
