package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout stacks the menu bar, body, and status bar vertically.
func ComposeLayout(menuBar, body, statusBar string) string {
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, body, statusBar)
}
