package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Default values for a freshly initialized container
const (
	DefaultName      = "Alex"
	DefaultAge       = 10
	DefaultIsStudent = true
)

// Person is the single record edited and displayed by the UI
type Person struct {
	Name      string
	Age       int
	IsStudent bool
}

// ChangeFunc receives a complete replacement record
type ChangeFunc func(Person)

// DefaultPerson returns the record a new container starts with
func DefaultPerson() Person {
	return Person{
		Name:      DefaultName,
		Age:       DefaultAge,
		IsStudent: DefaultIsStudent,
	}
}

// WithName returns a copy of p with Name replaced verbatim
func (p Person) WithName(name string) Person {
	p.Name = name
	return p
}

// WithAge returns a copy of p with Age replaced
func (p Person) WithAge(age int) Person {
	p.Age = age
	return p
}

// WithStudent returns a copy of p with IsStudent replaced
func (p Person) WithStudent(isStudent bool) Person {
	p.IsStudent = isStudent
	return p
}

// String returns a compact form used in render traces
func (p Person) String() string {
	return fmt.Sprintf("{name:%q age:%d isStudent:%t}", p.Name, p.Age, p.IsStudent)
}

// ParseAge converts the text of an age control to an age.
// Empty, non-numeric, non-finite and out of range input all yield 0;
// fractional values are truncated toward zero. Negative numbers are kept.
func ParseAge(text string) int {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}

	if n, err := strconv.Atoi(s); err == nil {
		return n
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Trunc(f)
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int(f)
}
