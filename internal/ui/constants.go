package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Placeholders
const (
	NamePlaceholder = "Enter a name"
	AgePlaceholder  = "0"
)

