package present

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ytget/person-form/internal/model"
)

func TestYesNo(t *testing.T) {
	if YesNo(true) != "Yes" {
		t.Errorf("YesNo(true) = %s, expected Yes", YesNo(true))
	}
	if YesNo(false) != "No" {
		t.Errorf("YesNo(false) = %s, expected No", YesNo(false))
	}
}

func TestFields(t *testing.T) {
	got := PersonFields(model.DefaultPerson())
	want := []Field{
		{Label: "Name:", Value: "Alex"},
		{Label: "Age:", Value: "10"},
		{Label: "Is student:", Value: "Yes"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PersonFields mismatch (-want +got):\n%s", diff)
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name      string
		age       int
		isStudent bool
		expected  string
	}{
		{"Alex", 10, true, "Name: Alex\nAge: 10\nIs student: Yes"},
		{"Alex", 0, false, "Name: Alex\nAge: 0\nIs student: No"},
		{"", 30, true, "Name: \nAge: 30\nIs student: Yes"},
		{"  padded  ", 7, false, "Name:   padded  \nAge: 7\nIs student: No"},
	}

	for _, test := range tests {
		result := Text(test.name, test.age, test.isStudent)
		if result != test.expected {
			t.Errorf("Text(%q, %d, %t) = %q, expected %q", test.name, test.age, test.isStudent, result, test.expected)
		}
	}
}

func TestText_Deterministic(t *testing.T) {
	first := Text("Alex", 10, true)
	for i := 0; i < 50; i++ {
		if got := Text("Alex", 10, true); got != first {
			t.Fatalf("render %d differs: %q vs %q", i, got, first)
		}
	}
}
