package tui

// Package tui is the terminal surface built on Bubble Tea. App is the parent
// model; it routes keys to the Editor with the state holder's commit function
// as callback and renders both children from the current snapshot.
