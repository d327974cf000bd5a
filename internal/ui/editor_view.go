package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/person-form/internal/model"
	"github.com/ytget/person-form/internal/present"
	"github.com/ytget/person-form/internal/trace"
)

// EditorView renders editable controls for a Person snapshot and reports
// every edit as a complete replacement record.
type EditorView struct {
	props    model.Person
	onChange model.ChangeFunc
	tracer   trace.Tracer

	// UI components
	nameEntry    *widget.Entry
	ageEntry     *widget.Entry
	studentCheck *widget.Check
	container    *fyne.Container

	// set while props are pushed into widgets so their callbacks do not emit
	syncing bool
}

// NewEditorView creates the editor; call Render before showing it
func NewEditorView(tracer trace.Tracer) *EditorView {
	if tracer == nil {
		tracer = trace.Nop{}
	}
	ev := &EditorView{tracer: tracer}
	ev.createUI()
	return ev
}

// createUI creates the editor controls
func (ev *EditorView) createUI() {
	ev.nameEntry = widget.NewEntry()
	ev.nameEntry.SetPlaceHolder(NamePlaceholder)
	ev.nameEntry.OnChanged = ev.onNameChanged

	ev.ageEntry = widget.NewEntry()
	ev.ageEntry.SetPlaceHolder(AgePlaceholder)
	ev.ageEntry.OnChanged = ev.onAgeChanged

	ev.studentCheck = widget.NewCheck(present.LabelStudentInput, ev.onStudentChanged)

	ev.container = container.NewVBox(
		widget.NewLabelWithStyle(present.HeadingEdit, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),

		widget.NewLabel(present.LabelNameInput),
		ev.nameEntry,

		widget.NewLabel(present.LabelAgeInput),
		ev.ageEntry,

		ev.studentCheck,
	)
}

// Container returns the editor's canvas object
func (ev *EditorView) Container() *fyne.Container {
	return ev.container
}

// Render shows p in the controls and remembers onChange for the next edit
func (ev *EditorView) Render(p model.Person, onChange model.ChangeFunc) {
	ev.tracer.Rendered(trace.ComponentEditor, p)

	ev.props = p
	ev.onChange = onChange

	ev.syncing = true
	defer func() { ev.syncing = false }()

	if ev.nameEntry.Text != p.Name {
		ev.nameEntry.SetText(p.Name)
	}
	// keep in-progress text such as "" or "030" while it still means the same age
	if model.ParseAge(ev.ageEntry.Text) != p.Age {
		ev.ageEntry.SetText(strconv.Itoa(p.Age))
	}
	if ev.studentCheck.Checked != p.IsStudent {
		ev.studentCheck.SetChecked(p.IsStudent)
	}
}

// onNameChanged reports the raw text, untrimmed
func (ev *EditorView) onNameChanged(text string) {
	if ev.syncing {
		return
	}
	ev.emit(ev.props.WithName(text))
}

// onAgeChanged reports the parsed age, 0 when the text is not a number
func (ev *EditorView) onAgeChanged(text string) {
	if ev.syncing {
		return
	}
	ev.emit(ev.props.WithAge(model.ParseAge(text)))
}

// onStudentChanged reports the new checked state
func (ev *EditorView) onStudentChanged(checked bool) {
	if ev.syncing {
		return
	}
	ev.emit(ev.props.WithStudent(checked))
}

func (ev *EditorView) emit(p model.Person) {
	if ev.onChange == nil {
		return
	}
	ev.onChange(p)
}
