// Package schedule computes benefit reset dates and applies lapsed resets.
package schedule

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/ccb/internal/model"
)

// NextReset returns the reset date that follows from for the given interval.
func NextReset(interval model.Interval, from model.Date) (model.Date, error) {
	days, err := interval.Days()
	if err != nil {
		return "", err
	}
	return from.AddDays(days)
}

// Lapsed reports whether b is due for a reset on today.
func Lapsed(b model.Benefit, today model.Date) bool {
	return b.NextReset.OnOrBefore(today)
}

// ApplyResets zeroes usage and advances the next reset date of every benefit
// whose reset date is on or before today. It returns the names that were reset.
//
// Benefits without a reset date, or with one in the future, are left alone.
// A benefit whose next date cannot be computed is also left alone and its
// failure is reported in the joined error; the others are still processed.
func ApplyResets(bs *model.Benefits, today model.Date) ([]string, error) {
	var (
		reset []string
		errs  []error
	)
	for _, b := range bs.All() {
		if !Lapsed(b, today) {
			continue
		}
		next, err := NextReset(b.ResetInterval, today)
		if err != nil {
			errs = append(errs, fmt.Errorf("resetting %q: %w", b.Name, err))
			continue
		}
		b.Used = 0
		b.NextReset = next
		bs.Set(b)
		reset = append(reset, b.Name)
	}
	return reset, errors.Join(errs...)
}
