package model

// Package model defines the Person record shared by the state container and
// the views. Person is a value type: every edit produces a new record and the
// previous one is left untouched.
