package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/person-form/internal/model"
	"github.com/ytget/person-form/internal/present"
	"github.com/ytget/person-form/internal/trace"
)

// ReadOnlyView displays a Person snapshot without any way to change it
type ReadOnlyView struct {
	tracer trace.Tracer

	nameLabel    *widget.Label
	ageLabel     *widget.Label
	studentLabel *widget.Label
	container    *fyne.Container
}

// NewReadOnlyView creates the display; call Render before showing it
func NewReadOnlyView(tracer trace.Tracer) *ReadOnlyView {
	if tracer == nil {
		tracer = trace.Nop{}
	}
	rv := &ReadOnlyView{
		tracer:       tracer,
		nameLabel:    widget.NewLabel(""),
		ageLabel:     widget.NewLabel(""),
		studentLabel: widget.NewLabel(""),
	}
	rv.container = container.NewVBox(
		widget.NewLabelWithStyle(present.HeadingReadOnly, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		rv.nameLabel,
		rv.ageLabel,
		rv.studentLabel,
	)
	return rv
}

// Container returns the display's canvas object
func (rv *ReadOnlyView) Container() *fyne.Container {
	return rv.container
}

// Render writes the labelled fields for p
func (rv *ReadOnlyView) Render(p model.Person) {
	rv.tracer.Rendered(trace.ComponentReadOnly, p)

	fields := present.PersonFields(p)
	labels := []*widget.Label{rv.nameLabel, rv.ageLabel, rv.studentLabel}
	for i, label := range labels {
		label.SetText(fields[i].String())
	}
}

// Text returns what the view currently shows, one line per field
func (rv *ReadOnlyView) Text() []string {
	return []string{rv.nameLabel.Text, rv.ageLabel.Text, rv.studentLabel.Text}
}
