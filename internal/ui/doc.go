package ui

// Package ui contains the Fyne desktop surface. RootUI owns the window and
// re-renders an EditorView and a ReadOnlyView from the state container on every
// commit; the editor reports complete replacement records back to the container.
