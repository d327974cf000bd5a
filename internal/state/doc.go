package state

// Package state holds the single canonical Person record. The container is the
// only writer: views receive snapshots and report complete replacement records
// through OnPersonChange, which commits them and re-renders every subscriber.
