// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds lipgloss colors and styles for the demo shell.
type Theme struct {
	// Base colors
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color

	// Pre-built styles
	Title      lipgloss.Style
	Normal     lipgloss.Style
	Subtle     lipgloss.Style
	Highlight  lipgloss.Style
	ErrorStyle lipgloss.Style

	// Tab strip styles
	SelectedTab lipgloss.Style
	InactiveTab lipgloss.Style
	PinnedBadge lipgloss.Style

	// Window frame styles
	FocusedWindow   lipgloss.Style
	UnfocusedWindow lipgloss.Style
	WindowHeader    lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewTheme builds the default dark theme.
func NewTheme() *Theme {
	t := &Theme{
		Background: lipgloss.Color("#0a0a0b"),
		Surface:    lipgloss.Color("#1a1a1b"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#909090"),
		Accent:     lipgloss.Color("#4ade80"),
		Border:     lipgloss.Color("#333333"),
		Error:      lipgloss.Color("#f87171"),
	}

	t.Title = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Accent)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)

	t.SelectedTab = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1).
		Bold(true)
	t.InactiveTab = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Padding(0, 1)
	t.PinnedBadge = lipgloss.NewStyle().Foreground(t.Accent)

	t.FocusedWindow = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)
	t.UnfocusedWindow = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.WindowHeader = lipgloss.NewStyle().Foreground(t.Muted).Bold(true)

	t.HelpKey = lipgloss.NewStyle().Foreground(t.Accent)
	t.HelpDesc = lipgloss.NewStyle().Foreground(t.Muted)

	return t
}
