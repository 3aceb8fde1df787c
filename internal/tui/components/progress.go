package components

import (
	"fmt"

	"github.com/theirongolddev/ccb/internal/model"
	"github.com/theirongolddev/ccb/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForBand returns green/orange/red for a usage band.
func ColorForBand(b model.Band) lipgloss.Color {
	t := theme.Active
	switch b {
	case model.BandHigh:
		return t.Red
	case model.BandMid:
		return t.Orange
	default:
		return t.Green
	}
}

// UsageBar renders a labeled usage bar with its percentage, colored by band.
// used is the 0-1 fraction stored on the benefit.
func UsageBar(label string, used float64, labelW, barWidth int) string {
	t := theme.Active

	if used < 0 {
		used = 0
	}
	if used > 1 {
		used = 1
	}
	color := ColorForBand(model.BandOf(used * 100))

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, truncate(label, labelW))) +
		" " +
		bar.ViewAs(used) +
		" " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", used*100))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
