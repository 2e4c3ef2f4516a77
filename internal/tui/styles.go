package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorTeal   = lipgloss.Color("#1EA69A")
	colorGreen  = lipgloss.Color("#0B8278")
	colorOrange = lipgloss.Color("#FFB86C")
	colorWhite  = lipgloss.Color("#F8F8F2")
	colorGray   = lipgloss.Color("#6272A4")
	colorPanel  = lipgloss.Color("#44475A")
	colorCyan   = lipgloss.Color("#8BE9FD")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	labelStyle    = lipgloss.NewStyle().Foreground(colorGray).Width(16)
	valueStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	selectedStyle = lipgloss.NewStyle().Background(colorPanel).Foreground(colorWhite)
	editingStyle  = lipgloss.NewStyle().Foreground(colorOrange).Bold(true)
	totalStyle    = lipgloss.NewStyle().Foreground(colorTeal).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(colorGray)

	// Graph segments, in breakdown order.
	segmentStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(colorTeal),
		lipgloss.NewStyle().Foreground(colorGreen),
		lipgloss.NewStyle().Foreground(colorOrange),
	}
)
