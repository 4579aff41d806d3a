package ui

import "github.com/charmbracelet/lipgloss"

// Terminal palette, keeping the classic ANSI report colors
var (
	ColorCyan    = lipgloss.Color("#00FFFF")
	ColorTeal    = lipgloss.Color("#00AAAA")
	ColorWhite   = lipgloss.Color("#EEEEEE")
	ColorGrey    = lipgloss.Color("#999999")
	ColorDim     = lipgloss.Color("#555555")
	ColorError   = lipgloss.Color("#FF3300")
	ColorWarning = lipgloss.Color("#FFAA00")
	ColorOK      = lipgloss.Color("#00CC33")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002222")).
			Foreground(ColorCyan).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorTeal)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002222")).
			Foreground(ColorTeal).
			Padding(0, 1)

	StylePhase = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorTeal)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true).
			Padding(0, 1)

	StyleValue = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorGrey)

	StylePrompt = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	StyleConfirmed = lipgloss.NewStyle().
			Foreground(ColorGrey)

	StyleCheck = lipgloss.NewStyle().
			Foreground(ColorOK).
			Bold(true)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	StyleWarnValue = lipgloss.NewStyle().
			Foreground(ColorCyan)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDim)
)
