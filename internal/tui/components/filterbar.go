package components

import (
	"strings"

	"github.com/theirongolddev/ccb/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// AllCards is the filter label that shows every benefit.
const AllCards = "All"

// FilterOptions returns the card filter choices: AllCards followed by cards.
func FilterOptions(cards []string) []string {
	return append([]string{AllCards}, cards...)
}

// RenderFilterBar renders the card filter choices with the active one highlighted.
func RenderFilterBar(options []string, activeIdx int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	parts := make([]string, 0, len(options))
	for i, opt := range options {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render("["+opt+"]"))
		} else {
			parts = append(parts, inactiveStyle.Render(opt))
		}
	}

	return " " + dimStyle.Render("Card:") + " " + strings.Join(parts, "  ")
}
