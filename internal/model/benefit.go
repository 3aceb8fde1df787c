package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Benefit is one tracked card benefit. Name is the identity and is stored as
// the key of the backing file's object, not inside the record.
type Benefit struct {
	Name          string           `json:"-"`
	Description   string           `json:"description"`
	Card          string           `json:"card"`
	Used          float64          `json:"used"`
	ResetInterval Interval         `json:"reset_interval"`
	NextReset     Date             `json:"next_reset,omitempty"`
	Value         *decimal.Decimal `json:"value,omitempty"`
}

// Validate checks the record invariants.
func (b Benefit) Validate() error {
	if b.Name == "" {
		return errors.New("benefit name is empty")
	}
	if b.Used < 0 || b.Used > 1 {
		return fmt.Errorf("benefit %q: used %.4f outside [0, 1]", b.Name, b.Used)
	}
	if !b.ResetInterval.Valid() {
		return fmt.Errorf("benefit %q: %w: %q", b.Name, ErrUnknownInterval, string(b.ResetInterval))
	}
	if b.Value != nil && b.Value.IsNegative() {
		return fmt.Errorf("benefit %q: negative value %s", b.Name, b.Value)
	}
	return nil
}

// UsedPercent returns usage on a 0-100 scale.
func (b Benefit) UsedPercent() float64 {
	return b.Used * 100
}

// Remaining returns the unused part of the face value, rounded to cents.
// The second result is false when the benefit has no value recorded.
func (b Benefit) Remaining() (decimal.Decimal, bool) {
	if b.Value == nil {
		return decimal.Zero, false
	}
	left := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(b.Used))
	return b.Value.Mul(left).Round(2), true
}

// Band is the color tier used when charting usage.
type Band int

// Usage bands: below 50%, 50% up to 80%, and 80% or more.
const (
	BandLow Band = iota
	BandMid
	BandHigh
)

// BandOf classifies a usage percentage (0-100).
func BandOf(pct float64) Band {
	switch {
	case pct < 50:
		return BandLow
	case pct < 80:
		return BandMid
	default:
		return BandHigh
	}
}
