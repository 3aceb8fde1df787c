package model

import (
	"fmt"
	"time"
)

// DateLayout is the on-disk calendar date format.
const DateLayout = "2006-01-02"

// Date is a local calendar date in YYYY-MM-DD form. The format is fixed-width
// and zero-padded, so string comparison orders dates chronologically.
// The zero value means "not set".
type Date string

// DateOf returns the local calendar date of t.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// ParseDate validates s as a calendar date.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", fmt.Errorf("parsing date %q: %w", s, err)
	}
	return Date(s), nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == ""
}

// Time returns the date at midnight UTC.
func (d Date) Time() (time.Time, error) {
	return time.Parse(DateLayout, string(d))
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) (Date, error) {
	t, err := d.Time()
	if err != nil {
		return "", fmt.Errorf("parsing date %q: %w", string(d), err)
	}
	return DateOf(t.AddDate(0, 0, n)), nil
}

// OnOrBefore reports whether d is set and falls on or before other.
func (d Date) OnOrBefore(other Date) bool {
	return !d.IsZero() && d <= other
}

func (d Date) String() string {
	return string(d)
}

// UnmarshalText rejects strings that are not valid calendar dates.
// An empty string decodes to the unset date.
func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = ""
		return nil
	}
	v, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
