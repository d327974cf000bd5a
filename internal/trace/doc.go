package trace

// Package trace emits a diagnostic line every time a component renders. It has
// no functional effect; it exists so re-render behavior can be observed while
// editing.
