package components

import (
	"strings"

	"github.com/theirongolddev/ccb/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// MessageKind selects the color of the status bar message.
type MessageKind int

// Message kinds.
const (
	MsgInfo MessageKind = iota
	MsgSuccess
	MsgWarn
	MsgError
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the last message on the right.
func RenderStatusBar(width int, msg string, kind MessageKind) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	var msgColor lipgloss.Color
	switch kind {
	case MsgSuccess:
		msgColor = t.Green
	case MsgWarn:
		msgColor = t.Orange
	case MsgError:
		msgColor = t.Red
	default:
		msgColor = t.TextMuted
	}

	left := " [a]dd  [u]sage  [d]elete  [c]ard  [s]ettings  [q]uit"
	right := ""
	if msg != "" {
		right = lipgloss.NewStyle().Foreground(msgColor).Render(msg) + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
