package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/person-form/internal/model"
	"github.com/ytget/person-form/internal/present"
	"github.com/ytget/person-form/internal/trace"
)

// field identifies one editor control
type field int

const (
	fieldName field = iota
	fieldAge
	fieldStudent
	fieldCount
)

const (
	checkedBox    = "[x]"
	uncheckedBox  = "[ ]"
	focusMarker   = "›"
	unfocusMarker = " "
)

// Editor renders the three controls for a Person snapshot. The text inputs
// carry cursor position and in-progress text; the record itself always comes
// from the caller.
type Editor struct {
	focus  field
	name   textinput.Model
	age    textinput.Model
	tracer trace.Tracer
}

// NewEditor creates an editor with focus on the name control
func NewEditor(tracer trace.Tracer) Editor {
	if tracer == nil {
		tracer = trace.Nop{}
	}

	name := textinput.New()
	name.Prompt = present.LabelNameInput + " "
	name.PromptStyle = labelStyle
	name.TextStyle = inputStyle
	name.Focus()

	age := textinput.New()
	age.Prompt = present.LabelAgeInput + " "
	age.Placeholder = "0"
	age.PromptStyle = labelStyle
	age.TextStyle = inputStyle
	age.PlaceholderStyle = placeholderStyle

	return Editor{name: name, age: age, tracer: tracer}
}

// Update applies one message to the controls showing props. Edits are
// reported through onChange as complete records built from props.
func (e Editor) Update(msg tea.Msg, props model.Person, onChange model.ChangeFunc) (Editor, tea.Cmd) {
	e = e.sync(props)

	emit := func(p model.Person) {
		if onChange != nil {
			onChange(p)
		}
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "tab", "down":
			return e.setFocus((e.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return e.setFocus((e.focus + fieldCount - 1) % fieldCount)
		}

		if e.focus == fieldStudent {
			switch k.String() {
			case " ", "enter", "x":
				emit(props.WithStudent(!props.IsStudent))
			}
			return e, nil
		}
	}

	var cmd tea.Cmd
	switch e.focus {
	case fieldName:
		before := e.name.Value()
		e.name, cmd = e.name.Update(msg)
		if e.name.Value() != before {
			emit(props.WithName(e.name.Value()))
		}
	case fieldAge:
		before := e.age.Value()
		e.age, cmd = e.age.Update(msg)
		if e.age.Value() != before {
			emit(props.WithAge(model.ParseAge(e.age.Value())))
		}
	}
	return e, cmd
}

// sync pushes props into the text inputs. The age input keeps in-progress
// text while it still parses to the committed age.
func (e Editor) sync(props model.Person) Editor {
	if e.name.Value() != props.Name {
		e.name.SetValue(props.Name)
	}
	if model.ParseAge(e.age.Value()) != props.Age {
		e.age.SetValue(strconv.Itoa(props.Age))
	}
	return e
}

func (e Editor) setFocus(f field) (Editor, tea.Cmd) {
	e.focus = f
	e.name.Blur()
	e.age.Blur()

	var cmd tea.Cmd
	switch f {
	case fieldName:
		cmd = e.name.Focus()
	case fieldAge:
		cmd = e.age.Focus()
	}
	return e, cmd
}

// ageValue is the text the age input shows for age
func (e Editor) ageValue(age int) string {
	return e.sync(model.Person{Name: e.name.Value(), Age: age}).age.Value()
}

// View renders the controls for props
func (e Editor) View(props model.Person) string {
	e.tracer.Rendered(trace.ComponentEditor, props)
	e = e.sync(props)

	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render(present.HeadingEdit))
	b.WriteString("\n\n")

	b.WriteString(e.marker(fieldName) + e.name.View())
	b.WriteString("\n")
	b.WriteString(e.marker(fieldAge) + e.age.View())
	b.WriteString("\n")

	box := uncheckedBox
	if props.IsStudent {
		box = checkedBox
	}
	b.WriteString(e.marker(fieldStudent))
	b.WriteString(e.style(fieldStudent).Render(box + " " + present.LabelStudentInput))

	return sectionStyle.Render(b.String())
}

func (e Editor) marker(f field) string {
	if e.focus == f {
		return focusMarker + " "
	}
	return unfocusMarker + " "
}

func (e Editor) style(f field) lipgloss.Style {
	if e.focus == f {
		return focusedInputStyle
	}
	return inputStyle
}
