package tui

import (
	"strings"

	"github.com/ytget/person-form/internal/model"
	"github.com/ytget/person-form/internal/present"
	"github.com/ytget/person-form/internal/trace"
)

// ReadOnly renders a Person snapshot as labelled text
type ReadOnly struct {
	tracer trace.Tracer
}

// NewReadOnly creates the display
func NewReadOnly(tracer trace.Tracer) ReadOnly {
	if tracer == nil {
		tracer = trace.Nop{}
	}
	return ReadOnly{tracer: tracer}
}

// View renders p
func (r ReadOnly) View(p model.Person) string {
	r.tracer.Rendered(trace.ComponentReadOnly, p)

	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render(present.HeadingReadOnly))
	b.WriteString("\n\n")
	b.WriteString(fieldStyle.Render(present.Text(p.Name, p.Age, p.IsStudent)))
	return sectionStyle.Render(b.String())
}
