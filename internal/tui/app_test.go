package tui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/ccb/internal/config"
	"github.com/theirongolddev/ccb/internal/model"
	"github.com/theirongolddev/ccb/internal/store"
	"github.com/theirongolddev/ccb/internal/tui/components"
	"github.com/theirongolddev/ccb/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	now := func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local) }
	st := store.New(filepath.Join(t.TempDir(), "benefits.json"), store.WithClock(now))
	for _, nb := range []store.NewBenefit{
		{Name: "Dining", Description: "$10/month", Card: "Gold", Interval: model.Monthly},
		{Name: "Uber", Description: "$15/month", Card: "Amex", Interval: model.Monthly},
		{Name: "Airline", Description: "fee credit", Card: "Gold", Interval: model.Yearly},
	} {
		require.NoError(t, st.Add(nb))
	}
	return NewApp(st)
}

func press(t *testing.T, a App, key string) App {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m, _ := a.Update(msg)
	app, ok := m.(App)
	require.True(t, ok)
	return app
}

func TestApp_CardFilterCycles(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, []string{components.AllCards, "Amex", "Gold"}, a.options)
	assert.Len(t, a.rows, 3)

	a = press(t, a, "c")
	assert.Equal(t, "Amex", a.filter)
	require.Len(t, a.rows, 1)
	assert.Equal(t, "Uber", a.rows[0].Name)

	a = press(t, a, "c")
	assert.Equal(t, "Gold", a.filter)
	assert.Len(t, a.rows, 2)

	a = press(t, a, "c")
	assert.Equal(t, "", a.filter)
	assert.Len(t, a.rows, 3)
}

func TestApp_CursorBounds(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "k")
	assert.Equal(t, 0, a.cursor)

	for i := 0; i < 5; i++ {
		a = press(t, a, "down")
	}
	assert.Equal(t, 2, a.cursor)
}

func TestApp_MutationsRefetch(t *testing.T) {
	a := newTestApp(t)

	a = a.applyUsage("Dining", 85)
	assert.Equal(t, components.MsgSuccess, a.statusKind)
	assert.Equal(t, 0.85, a.rows[0].Used)

	a.cursor = 2
	a = a.applyDelete("Airline")
	assert.Len(t, a.rows, 2)
	assert.Equal(t, 1, a.cursor, "cursor is clamped to the shorter list")

	a = a.applyDelete("Airline")
	assert.Equal(t, components.MsgWarn, a.statusKind)

	a = a.applyAdd(store.NewBenefit{Name: "Lounge", Description: "Priority Pass", Card: "Platinum", Interval: model.Yearly})
	assert.Equal(t, components.MsgSuccess, a.statusKind)
	assert.Contains(t, a.options, "Platinum")
	assert.Equal(t, "Lounge", a.rows[a.cursor].Name)

	a = a.applyAdd(store.NewBenefit{Name: "Blank", Description: "", Card: "X", Interval: model.Yearly})
	assert.Equal(t, components.MsgWarn, a.statusKind)
	assert.Len(t, a.rows, 3)
}

func TestApp_FilterResetsWhenCardDisappears(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "c") // Amex
	require.Equal(t, "Amex", a.filter)

	a = a.applyDelete("Uber")
	assert.Equal(t, "", a.filter)
	assert.Len(t, a.rows, 2)
}

func TestApp_FormOpensAndCancels(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "d")
	require.NotNil(t, a.form)
	assert.Equal(t, formDelete, a.formKind)
	assert.Equal(t, "Dining", a.vals.target)

	a = press(t, a, "esc")
	assert.Nil(t, a.form)
	assert.Len(t, a.rows, 3)
}

func TestApp_ViewListsBenefits(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	view := m.(App).View()

	assert.Contains(t, view, "Dining")
	assert.Contains(t, view, "Uber")
	assert.Contains(t, view, "Current Benefits")
}

func TestParsePercent(t *testing.T) {
	n, err := parsePercent(" 60% ")
	require.NoError(t, err)
	assert.Equal(t, 60, n)

	_, err = parsePercent("101")
	assert.Error(t, err)
	_, err = parsePercent("abc")
	assert.Error(t, err)
}

func TestApp_SettingsSaveTheme(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(func() { theme.SetActive("flexoki-dark") })

	a := newTestApp(t)
	a = press(t, a, "s")
	require.NotNil(t, a.form)
	assert.Equal(t, formSettings, a.formKind)
	assert.Equal(t, "flexoki-dark", a.vals.theme)
	assert.Equal(t, "warn", a.vals.logLevel)

	a = a.closeForm().applySettings("terminal", "debug")
	assert.Equal(t, components.MsgSuccess, a.statusKind)
	assert.Equal(t, "terminal", theme.Active.Name)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "terminal", cfg.Appearance.Theme)
	assert.Equal(t, "debug", cfg.General.LogLevel)
}
