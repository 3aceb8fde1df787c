package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/ccb/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clock is a settable time source for the store.
type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestStore(t *testing.T, day string) (*Store, *clock) {
	t.Helper()
	d, err := time.ParseInLocation(model.DateLayout, day, time.Local)
	require.NoError(t, err)
	c := &clock{t: d.Add(10 * time.Hour)}
	path := filepath.Join(t.TempDir(), "benefits.json")
	return New(path, WithClock(c.now)), c
}

func TestReadWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benefits.json")
	want := model.NewBenefits(
		model.Benefit{Name: "Benefit1", Description: "desc", Used: 0.5, ResetInterval: model.Monthly, NextReset: "2099-01-01"},
		model.Benefit{Name: "Lounge", Description: "Priority Pass", Card: "Sapphire", Used: 1, ResetInterval: model.Yearly, NextReset: "2099-06-30"},
	)

	require.NoError(t, WriteFile(path, want))
	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteFile_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benefits.json")
	bs := model.NewBenefits(model.Benefit{
		Name: "Dining & Co", Description: "d", Card: "Gold", Used: 0.25,
		ResetInterval: model.FiveYears, NextReset: "2030-01-01",
	})
	require.NoError(t, WriteFile(path, bs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := `{
    "Dining & Co": {
        "description": "d",
        "card": "Gold",
        "used": 0.25,
        "reset_interval": "5 Years",
        "next_reset": "2030-01-01"
    }
}
`
	assert.Equal(t, want, string(data))
}

func TestReadFile_MissingCardIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benefits.json")
	legacy := `{
    "Benefit1": {
        "description": "desc",
        "used": 0.5,
        "reset_interval": "Monthly",
        "next_reset": "2099-01-01"
    }
}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	got, err := ReadFile(path)
	require.NoError(t, err)
	b, ok := got.Get("Benefit1")
	require.True(t, ok)
	assert.Equal(t, "", b.Card)

	// Saving writes the normalized field back.
	require.NoError(t, WriteFile(path, got))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"card": ""`)
}

func TestLoad_MissingFile(t *testing.T) {
	s, _ := newTestStore(t, "2025-03-01")

	err := s.Load()
	assert.ErrorIs(t, err, ErrNoDataFile)
	assert.Equal(t, 0, s.Len())
}

func TestLoad_MalformedFile(t *testing.T) {
	s, _ := newTestStore(t, "2025-03-01")
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"broken": `), 0o600))

	err := s.Load()
	require.Error(t, err)
	var lerr *LoadError
	require.True(t, errors.As(err, &lerr), "got %T", err)
	assert.True(t, lerr.Malformed)
	assert.Equal(t, 0, s.Len())

	bak, err := os.ReadFile(s.Path() + ".bak")
	require.NoError(t, err)
	assert.Equal(t, `{"broken": `, string(bak))
}

func TestLoad_UnknownIntervalRejected(t *testing.T) {
	s, _ := newTestStore(t, "2025-03-01")
	data := `{"a": {"description": "d", "card": "c", "used": 0, "reset_interval": "Weekly", "next_reset": "2025-01-01"}}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(data), 0o600))

	err := s.Load()
	assert.ErrorIs(t, err, model.ErrUnknownInterval)
	assert.Equal(t, 0, s.Len())
}

func TestSave_ErrorKeepsMemory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	s := New(filepath.Join(blocker, "benefits.json"))
	err := s.Add(NewBenefit{Name: "Travel", Description: "Airline credit", Card: "Amex", Interval: model.Yearly})

	var serr *SaveError
	require.True(t, errors.As(err, &serr), "got %v", err)
	_, ok := s.Get("Travel")
	assert.True(t, ok, "in-memory state survives a failed save")
}

func TestAdd_RejectsBlankFields(t *testing.T) {
	base := NewBenefit{Name: "Travel", Description: "Airline credit", Card: "Amex", Interval: model.Yearly}
	tests := []struct {
		name  string
		edit  func(*NewBenefit)
		field string
	}{
		{"empty name", func(nb *NewBenefit) { nb.Name = "" }, "name"},
		{"blank description", func(nb *NewBenefit) { nb.Description = "   " }, "description"},
		{"empty card", func(nb *NewBenefit) { nb.Card = "" }, "card"},
		{"unknown interval", func(nb *NewBenefit) { nb.Interval = "Weekly" }, "reset interval"},
		{"negative value", func(nb *NewBenefit) {
			v := decimal.NewFromInt(-5)
			nb.Value = &v
		}, "value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore(t, "2025-03-01")
			nb := base
			tt.edit(&nb)

			err := s.Add(nb)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.field == "name" || tt.field == "description" || tt.field == "card", errors.Is(err, ErrBlank))
			assert.Equal(t, 0, s.Len())

			_, statErr := os.Stat(s.Path())
			assert.True(t, os.IsNotExist(statErr), "rejected add must not write the file")
		})
	}
}

func TestAdd_UnknownIntervalIsTyped(t *testing.T) {
	s, _ := newTestStore(t, "2025-03-01")
	err := s.Add(NewBenefit{Name: "a", Description: "b", Card: "c", Interval: "Weekly"})
	assert.ErrorIs(t, err, model.ErrUnknownInterval)
}

func TestAdd_ReplacesExistingInPlace(t *testing.T) {
	s, _ := newTestStore(t, "2025-03-01")
	require.NoError(t, s.Add(NewBenefit{Name: "A", Description: "a", Card: "X", Interval: model.Monthly}))
	require.NoError(t, s.Add(NewBenefit{Name: "B", Description: "b", Card: "X", Interval: model.Monthly}))
	require.NoError(t, s.UpdateUsage("A", 40))

	require.NoError(t, s.Add(NewBenefit{Name: "A", Description: "again", Card: "Y", Interval: model.Yearly}))

	assert.Equal(t, []string{"A", "B"}, s.Benefits().Names())
	a, _ := s.Get("A")
	assert.Equal(t, "again", a.Description)
	assert.Equal(t, 0.0, a.Used)
}

func TestUpdateUsage(t *testing.T) {
	s, _ := newTestStore(t, "2025-03-01")
	require.NoError(t, s.Add(NewBenefit{Name: "Dining", Description: "d", Card: "Gold", Interval: model.Monthly}))

	require.NoError(t, s.UpdateUsage("Dining", 35))
	b, _ := s.Get("Dining")
	assert.Equal(t, 0.35, b.Used)

	var verr *ValidationError
	assert.True(t, errors.As(s.UpdateUsage("Dining", 101), &verr))
	assert.True(t, errors.As(s.UpdateUsage("Dining", -1), &verr))
	b, _ = s.Get("Dining")
	assert.Equal(t, 0.35, b.Used, "rejected update leaves usage alone")

	assert.ErrorIs(t, s.UpdateUsage("Nope", 10), ErrNotFound)
}

func TestDelete_Unknown(t *testing.T) {
	s, _ := newTestStore(t, "2025-03-01")
	assert.ErrorIs(t, s.Delete("ghost"), ErrNotFound)

	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err), "no-op delete must not write the file")
}

func TestCheckResets_AlwaysSaves(t *testing.T) {
	s, _ := newTestStore(t, "2025-03-01")
	_ = s.Load()

	reset, err := s.CheckResets()
	require.NoError(t, err)
	assert.Empty(t, reset)

	got, err := ReadFile(s.Path())
	require.NoError(t, err, "the reset check writes the file even when nothing lapsed")
	assert.Equal(t, 0, got.Len())
}

func TestCheckResets_PersistsLapsed(t *testing.T) {
	s, _ := newTestStore(t, "2025-03-01")
	past := model.NewBenefits(model.Benefit{
		Name: "Benefit1", Description: "desc", Used: 1.0,
		ResetInterval: model.Monthly, NextReset: "2025-02-28",
	})
	require.NoError(t, WriteFile(s.Path(), past))
	require.NoError(t, s.Load())

	reset, err := s.CheckResets()
	require.NoError(t, err)
	assert.Equal(t, []string{"Benefit1"}, reset)

	onDisk, err := ReadFile(s.Path())
	require.NoError(t, err)
	b, _ := onDisk.Get("Benefit1")
	assert.Equal(t, 0.0, b.Used)
	assert.Equal(t, model.Date("2025-03-31"), b.NextReset)
}

func TestEndToEnd(t *testing.T) {
	s, c := newTestStore(t, "2025-03-01")
	assert.ErrorIs(t, s.Load(), ErrNoDataFile)

	require.NoError(t, s.Add(NewBenefit{Name: "Travel", Description: "Airline credit", Card: "Amex", Interval: model.Yearly}))
	require.Equal(t, 1, s.Len())
	travel, _ := s.Get("Travel")
	assert.Equal(t, 0.0, travel.Used)
	assert.Equal(t, model.Date("2026-03-01"), travel.NextReset)

	require.NoError(t, s.UpdateUsage("Travel", 60))
	travel, _ = s.Get("Travel")
	assert.Equal(t, 0.6, travel.Used)

	// A fresh session on the reset day.
	c.t = c.t.AddDate(0, 0, 365)
	s2 := New(s.Path(), WithClock(c.now))
	require.NoError(t, s2.Load())
	reset, err := s2.CheckResets()
	require.NoError(t, err)
	assert.Equal(t, []string{"Travel"}, reset)
	travel, _ = s2.Get("Travel")
	assert.Equal(t, 0.0, travel.Used)
	assert.Equal(t, model.Date("2027-03-01"), travel.NextReset)

	require.NoError(t, s2.Delete("Travel"))
	assert.Equal(t, 0, s2.Len())
	onDisk, err := ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, 0, onDisk.Len())
}

func TestListAndCards(t *testing.T) {
	s, _ := newTestStore(t, "2025-03-01")
	for _, nb := range []NewBenefit{
		{Name: "Dining", Description: "d", Card: "Gold", Interval: model.Monthly},
		{Name: "Uber", Description: "u", Card: "Amex", Interval: model.Monthly},
		{Name: "Airline", Description: "a", Card: "Gold", Interval: model.Yearly},
	} {
		require.NoError(t, s.Add(nb))
	}

	assert.Len(t, s.List(""), 3)
	gold := s.List("Gold")
	require.Len(t, gold, 2)
	assert.Equal(t, "Dining", gold[0].Name)
	assert.Equal(t, "Airline", gold[1].Name)
	assert.Empty(t, s.List("Platinum"))

	assert.Equal(t, []string{"Amex", "Gold"}, s.Cards())
}
