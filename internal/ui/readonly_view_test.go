package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/google/go-cmp/cmp"

	"github.com/ytget/person-form/internal/model"
	"github.com/ytget/person-form/internal/trace"
)

func TestReadOnlyView_Render(t *testing.T) {
	test.NewApp()

	tests := []struct {
		person   model.Person
		expected []string
	}{
		{model.DefaultPerson(), []string{"Name: Alex", "Age: 10", "Is student: Yes"}},
		{model.Person{Name: "", Age: 0, IsStudent: false}, []string{"Name: ", "Age: 0", "Is student: No"}},
	}

	for _, tc := range tests {
		rv := NewReadOnlyView(nil)
		rv.Render(tc.person)
		if diff := cmp.Diff(tc.expected, rv.Text()); diff != "" {
			t.Errorf("Render(%v) mismatch (-want +got):\n%s", tc.person, diff)
		}
	}
}

func TestReadOnlyView_Deterministic(t *testing.T) {
	test.NewApp()
	rv := NewReadOnlyView(nil)

	p := model.Person{Name: "Ada", Age: 36, IsStudent: false}
	rv.Render(p)
	first := rv.Text()

	rv.Render(model.DefaultPerson())
	rv.Render(p)
	if diff := cmp.Diff(first, rv.Text()); diff != "" {
		t.Errorf("re-render differs (-first +second):\n%s", diff)
	}
}

func TestReadOnlyView_Traces(t *testing.T) {
	test.NewApp()
	rec := trace.NewRecorder()
	rv := NewReadOnlyView(rec)

	rv.Render(model.DefaultPerson())

	last, ok := rec.Last(trace.ComponentReadOnly)
	if !ok || last.Person != model.DefaultPerson() {
		t.Errorf("Expected read-only trace with default person, got %v (ok=%t)", last, ok)
	}
}
