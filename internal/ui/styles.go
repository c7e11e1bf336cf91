package ui

import "github.com/charmbracelet/lipgloss"

// Palette, teal on slate.
var (
	colorTeal   = lipgloss.Color("#20B9B4")
	colorBright = lipgloss.Color("#2CD7C7")
	colorSlate  = lipgloss.Color("#2C4A54")
	colorError  = lipgloss.Color("#E74C3C")
)

var styles = struct {
	Title       lipgloss.Style
	Heading     lipgloss.Style
	Label       lipgloss.Style
	ActiveLabel lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Result      lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
}{
	Title:       lipgloss.NewStyle().Bold(true).Foreground(colorBright).MarginBottom(1),
	Heading:     lipgloss.NewStyle().Bold(true).Foreground(colorTeal),
	Label:       lipgloss.NewStyle().Foreground(colorSlate),
	ActiveLabel: lipgloss.NewStyle().Foreground(colorBright).Bold(true),
	Tab:         lipgloss.NewStyle().Padding(0, 2).Foreground(colorSlate),
	ActiveTab:   lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(colorBright).Underline(true),
	Result: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorTeal).
		Padding(0, 1),
	Error: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorError).
		Foreground(colorError).
		Padding(0, 1),
	Help: lipgloss.NewStyle().Foreground(colorSlate).MarginTop(1),
}
