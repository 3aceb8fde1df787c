package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/ccb/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	successStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// BandColor returns the chart color for a usage band.
func BandColor(b model.Band) lipgloss.Color {
	switch b {
	case model.BandHigh:
		return ColorRed
	case model.BandMid:
		return ColorOrange
	default:
		return ColorGreen
	}
}

// Success renders a one-line confirmation.
func Success(msg string) string { return successStyle.Render("  " + msg) }

// Warn renders a one-line warning.
func Warn(msg string) string { return warnStyle.Render("  " + msg) }

// Error renders a one-line error.
func Error(msg string) string { return errorStyle.Render("  " + msg) }

// Info renders a one-line informational notice.
func Info(msg string) string { return mutedStyle.Render("  " + msg) }

// Table represents a bordered text table for CLI output.
type Table struct {
	Title      string
	Headers    []string
	Rows       [][]string
	RightAlign []bool // per column; left-aligned when unset
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(" " + pad(h, widths[i], t.rightAligned(i)) + " "))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(valueStyle.Render(" " + pad(cell, widths[i], t.rightAligned(i)) + " "))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

func (t Table) rightAligned(col int) bool {
	return col < len(t.RightAlign) && t.RightAlign[col]
}

func pad(s string, w int, right bool) string {
	gap := w - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// RenderUsageChart renders one horizontal bar per benefit, scaled to 100%
// and colored by usage band.
func RenderUsageChart(benefits []model.Benefit, barWidth int) string {
	if len(benefits) == 0 {
		return ""
	}
	if barWidth < 10 {
		barWidth = 10
	}

	labelW := 0
	for _, bf := range benefits {
		labelW = max(labelW, lipgloss.Width(Truncate(bf.Name, 24)))
	}

	var b strings.Builder
	for _, bf := range benefits {
		pct := bf.UsedPercent()
		filled := int(pct / 100 * float64(barWidth))
		filled = min(max(filled, 0), barWidth)

		style := lipgloss.NewStyle().Foreground(BandColor(model.BandOf(pct)))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(pad(Truncate(bf.Name, 24), labelW, false)))
		b.WriteString(" ")
		b.WriteString(style.Render(strings.Repeat("█", filled)))
		b.WriteString(dimStyle.Render(strings.Repeat("░", barWidth-filled)))
		b.WriteString(" ")
		b.WriteString(style.Render(fmt.Sprintf("%3.0f%%", pct)))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(successStyle.Render("█ <50%"))
	b.WriteString("  ")
	b.WriteString(warnStyle.Render("█ 50-80%"))
	b.WriteString("  ")
	b.WriteString(errorStyle.Render("█ ≥80%"))
	b.WriteString("\n")

	return b.String()
}
