package present

// Package present holds the labels and read-only text shared by every rendering
// surface, so the GUI and the terminal UI describe a Person identically.
