package present

import (
	"strconv"
	"strings"

	"github.com/ytget/person-form/internal/model"
)

// Section headings
const (
	HeadingParent   = "Parent Component"
	HeadingEdit     = "Person Edit"
	HeadingReadOnly = "Person View"
)

// Editor control labels
const (
	LabelNameInput    = "Name:"
	LabelAgeInput     = "Age:"
	LabelStudentInput = "Child is a student"
)

// Read-only field labels
const (
	LabelName      = "Name:"
	LabelAge       = "Age:"
	LabelIsStudent = "Is student:"
)

// Boolean renderings
const (
	Yes = "Yes"
	No  = "No"
)

// Field is one labelled line of the read-only view
type Field struct {
	Label string
	Value string
}

// String joins label and value with a single space
func (f Field) String() string {
	return f.Label + " " + f.Value
}

// YesNo renders a boolean for display
func YesNo(b bool) string {
	if b {
		return Yes
	}
	return No
}

// Fields returns the read-only lines for a person in display order
func Fields(name string, age int, isStudent bool) []Field {
	return []Field{
		{Label: LabelName, Value: name},
		{Label: LabelAge, Value: strconv.Itoa(age)},
		{Label: LabelIsStudent, Value: YesNo(isStudent)},
	}
}

// PersonFields is Fields for a whole record
func PersonFields(p model.Person) []Field {
	return Fields(p.Name, p.Age, p.IsStudent)
}

// Text renders the read-only view as newline separated lines
func Text(name string, age int, isStudent bool) string {
	fields := Fields(name, age, isStudent)
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = f.String()
	}
	return strings.Join(lines, "\n")
}
