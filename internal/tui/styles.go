package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent  lipgloss.Color = "#89b4fa"
	colorFocus   lipgloss.Color = "#b4befe"
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#7f849c"
	colorBorder  lipgloss.Color = "#45475a"
	colorSuccess lipgloss.Color = "#a6e3a1"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	inputStyle = lipgloss.NewStyle().
			Foreground(colorText)

	focusedInputStyle = lipgloss.NewStyle().
				Foreground(colorFocus).
				Bold(true)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)

	fieldStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
