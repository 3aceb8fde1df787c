package cli

import (
	"strings"
	"testing"

	"github.com/theirongolddev/ccb/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func init() {
	// Plain output so assertions can match text.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0%", FormatPercent(0))
	assert.Equal(t, "60%", FormatPercent(0.6))
	assert.Equal(t, "100%", FormatPercent(1))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$10.00", FormatMoney(decimal.NewFromInt(10)))
	assert.Equal(t, "$7.50", FormatMoney(decimal.RequireFromString("7.5")))
	assert.Equal(t, "-$1.25", FormatMoney(decimal.RequireFromString("-1.25")))
}

func TestFormatRemaining(t *testing.T) {
	v := decimal.NewFromInt(200)
	assert.Equal(t, "$80.00", FormatRemaining(model.Benefit{Used: 0.6, Value: &v}))
	assert.Equal(t, "-", FormatRemaining(model.Benefit{Used: 0.6}))
}

func TestFormatCountdown(t *testing.T) {
	today := model.Date("2025-03-01")
	assert.Equal(t, "today", FormatCountdown("2025-03-01", today))
	assert.Equal(t, "in 1 day", FormatCountdown("2025-03-02", today))
	assert.Equal(t, "in 30 days", FormatCountdown("2025-03-31", today))
	assert.Equal(t, "1 day ago", FormatCountdown("2025-02-28", today))
	assert.Equal(t, "5 days ago", FormatCountdown("2025-02-24", today))
	assert.Equal(t, "-", FormatCountdown("", today))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Airline…", Truncate("Airline incidental credit", 8))
	assert.Equal(t, "x", Truncate("x", 0))
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Headers:    []string{"Name", "Used"},
		Rows:       [][]string{{"Dining", "5%"}, {"Travel", "100%"}},
		RightAlign: []bool{false, true},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 6)
	assert.Contains(t, out, "│ Dining │   5% │")
	assert.Contains(t, out, "│ Travel │ 100% │")
}

func TestRenderUsageChart(t *testing.T) {
	out := RenderUsageChart([]model.Benefit{
		{Name: "Low", Used: 0.2},
		{Name: "High", Used: 0.9},
	}, 10)

	assert.Contains(t, out, "Low  ██░░░░░░░░  20%")
	assert.Contains(t, out, "High █████████░  90%")
	assert.Empty(t, RenderUsageChart(nil, 10))
}

func TestBandColor(t *testing.T) {
	assert.Equal(t, ColorGreen, BandColor(model.BandOf(10)))
	assert.Equal(t, ColorOrange, BandColor(model.BandOf(50)))
	assert.Equal(t, ColorRed, BandColor(model.BandOf(80)))
}
