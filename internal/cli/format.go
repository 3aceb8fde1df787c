// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/ccb/internal/model"

	"github.com/shopspring/decimal"
)

// FormatPercent formats a 0-1 usage fraction as a whole percentage.
// e.g., 0.6 -> "60%"
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatMoney formats a decimal amount as USD with cents.
func FormatMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// FormatRemaining returns the unused value of b, or "-" when it has none.
func FormatRemaining(b model.Benefit) string {
	left, ok := b.Remaining()
	if !ok {
		return "-"
	}
	return FormatMoney(left)
}

// FormatCountdown describes how far next is from today.
// e.g., "today", "in 1 day", "in 12 days", "3 days ago"
func FormatCountdown(next, today model.Date) string {
	if next.IsZero() {
		return "-"
	}
	nt, err := next.Time()
	if err != nil {
		return "?"
	}
	tt, err := today.Time()
	if err != nil {
		return "?"
	}

	days := int(nt.Sub(tt).Hours() / 24)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "in 1 day"
	case days > 1:
		return fmt.Sprintf("in %d days", days)
	case days == -1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}
