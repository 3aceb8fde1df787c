// Package model defines domain types for tracked card benefits.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownInterval is returned for reset intervals outside the fixed set.
var ErrUnknownInterval = errors.New("unknown reset interval")

// Interval is how often a benefit's usage resets.
type Interval string

// Supported reset intervals. The string values are the on-disk form.
const (
	Monthly   Interval = "Monthly"
	Yearly    Interval = "Yearly"
	FiveYears Interval = "5 Years"
)

// Intervals lists the supported intervals in display order.
var Intervals = []Interval{Monthly, Yearly, FiveYears}

// Days returns the fixed offset in days between resets.
// Monthly is always 30 days and Yearly always 365, not calendar arithmetic.
func (i Interval) Days() (int, error) {
	switch i {
	case Monthly:
		return 30, nil
	case Yearly:
		return 365, nil
	case FiveYears:
		return 1825, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownInterval, string(i))
	}
}

// Valid reports whether i is one of the supported intervals.
func (i Interval) Valid() bool {
	_, err := i.Days()
	return err == nil
}

func (i Interval) String() string {
	return string(i)
}

// ParseInterval maps user input to an Interval. Matching is case-insensitive
// and accepts a few shorthands ("month", "year", "5y", "fiveyears").
func ParseInterval(s string) (Interval, error) {
	norm := strings.ToLower(strings.Join(strings.Fields(s), " "))
	switch norm {
	case "monthly", "month", "m":
		return Monthly, nil
	case "yearly", "year", "annual", "y":
		return Yearly, nil
	case "5 years", "5years", "fiveyears", "five years", "5y":
		return FiveYears, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownInterval, s)
}

// UnmarshalText accepts only the canonical on-disk values.
func (i *Interval) UnmarshalText(b []byte) error {
	v := Interval(b)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownInterval, string(b))
	}
	*i = v
	return nil
}
