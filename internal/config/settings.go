package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
)

// Window size limits
const (
	MinWindowWidth  float32 = 320
	MinWindowHeight float32 = 240
)

// Settings remembers window geometry between runs
type Settings struct {
	app      fyne.App
	fallback fyne.Size
}

// NewSettings creates a new settings manager; fallback is used until a size is saved
func NewSettings(app fyne.App, fallback WindowConfig) *Settings {
	return &Settings{
		app:      app,
		fallback: clampSize(fyne.NewSize(fallback.Width, fallback.Height)),
	}
}

// GetWindowSize returns the last saved window size or the fallback
func (s *Settings) GetWindowSize() fyne.Size {
	prefs := s.app.Preferences()
	width := prefs.FloatWithFallback(KeyWindowWidth, float64(s.fallback.Width))
	height := prefs.FloatWithFallback(KeyWindowHeight, float64(s.fallback.Height))
	return clampSize(fyne.NewSize(float32(width), float32(height)))
}

// SetWindowSize saves the window size, clamped to the minimum
func (s *Settings) SetWindowSize(size fyne.Size) {
	size = clampSize(size)
	prefs := s.app.Preferences()
	prefs.SetFloat(KeyWindowWidth, float64(size.Width))
	prefs.SetFloat(KeyWindowHeight, float64(size.Height))
}

func clampSize(size fyne.Size) fyne.Size {
	if size.Width < MinWindowWidth {
		size.Width = MinWindowWidth
	}
	if size.Height < MinWindowHeight {
		size.Height = MinWindowHeight
	}
	return size
}
