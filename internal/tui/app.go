// Package tui provides the interactive Bubble Tea dashboard for ccb.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/ccb/internal/cli"
	"github.com/theirongolddev/ccb/internal/model"
	"github.com/theirongolddev/ccb/internal/store"
	"github.com/theirongolddev/ccb/internal/tui/components"
	"github.com/theirongolddev/ccb/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
	labelWidth       = 22
)

// App is the root Bubble Tea model. Every mutation goes through the store
// and is followed by refresh, which rebuilds the view state from it.
type App struct {
	store *store.Store

	// View state, rebuilt by refresh
	rows    []model.Benefit
	options []string // card filter choices, AllCards first
	filter  string   // "" shows every card
	cursor  int

	// Active form, if any
	form     *huh.Form
	formKind formKind
	vals     *formValues

	status     string
	statusKind components.MessageKind

	width  int
	height int
}

// NewApp creates the dashboard over an already loaded store.
func NewApp(st *store.Store) App {
	a := App{
		store: st,
		vals:  &formValues{},
	}
	a.refresh()
	return a
}

// WithStatus returns a copy of a showing msg in the status bar.
func (a App) WithStatus(msg string, kind components.MessageKind) App {
	a.status = msg
	a.statusKind = kind
	return a
}

// refresh re-fetches rows and filter options from the store.
func (a *App) refresh() {
	a.options = components.FilterOptions(a.store.Cards())

	known := false
	for _, c := range a.options[1:] {
		if c == a.filter {
			known = true
			break
		}
	}
	if !known {
		a.filter = ""
	}

	a.rows = a.store.List(a.filter)
	if a.cursor >= len(a.rows) {
		a.cursor = len(a.rows) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a App) filterIdx() int {
	for i, c := range a.options {
		if i > 0 && c == a.filter {
			return i
		}
	}
	return 0
}

func (a *App) cycleFilter() {
	next := (a.filterIdx() + 1) % len(a.options)
	if next == 0 {
		a.filter = ""
	} else {
		a.filter = a.options[next]
	}
	a.cursor = 0
	a.refresh()
}

func (a App) selected() (model.Benefit, bool) {
	if a.cursor < 0 || a.cursor >= len(a.rows) {
		return model.Benefit{}, false
	}
	return a.rows[a.cursor], true
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.contentWidth())
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return a, tea.Quit
		}
		if a.form != nil {
			if key == "esc" {
				return a.closeForm().WithStatus("Cancelled", components.MsgInfo), nil
			}
			return a.updateForm(msg)
		}
		return a.updateBrowse(key)
	}

	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateBrowse(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(a.rows)-1 {
			a.cursor++
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
	case "g", "home":
		a.cursor = 0
	case "G", "end":
		a.cursor = max(len(a.rows)-1, 0)
	case "c", "tab":
		a.cycleFilter()
	case "a":
		return a.openForm(formAdd, newAddForm(a.resetVals()))
	case "u", "enter":
		b, ok := a.selected()
		if !ok {
			return a.WithStatus("No benefits available to update.", components.MsgWarn), nil
		}
		return a.openForm(formUsage, newUsageForm(a.resetVals(), b))
	case "d", "x":
		b, ok := a.selected()
		if !ok {
			return a.WithStatus("No benefits available to delete.", components.MsgWarn), nil
		}
		return a.openForm(formDelete, newDeleteForm(a.resetVals(), b))
	case "s":
		return a.openForm(formSettings, newSettingsForm(a.resetVals()))
	}
	return a, nil
}

func (a *App) resetVals() *formValues {
	a.vals = &formValues{}
	return a.vals
}

func (a App) openForm(kind formKind, f *huh.Form) (tea.Model, tea.Cmd) {
	a.formKind = kind
	a.form = f
	if a.width > 0 {
		a.form = a.form.WithWidth(a.contentWidth())
	}
	return a, a.form.Init()
}

func (a App) closeForm() App {
	a.form = nil
	a.formKind = formNone
	return a
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		kind := a.formKind
		a = a.closeForm()
		return a.submit(kind), nil
	case huh.StateAborted:
		return a.closeForm().WithStatus("Cancelled", components.MsgInfo), nil
	}
	return a, cmd
}

// submit applies a completed form to the store.
func (a App) submit(kind formKind) App {
	v := a.vals
	switch kind {
	case formAdd:
		nb, err := v.newBenefit()
		if err != nil {
			return a.WithStatus(err.Error(), components.MsgWarn)
		}
		return a.applyAdd(nb)
	case formUsage:
		pct, err := parsePercent(v.usage)
		if err != nil {
			return a.WithStatus(err.Error(), components.MsgWarn)
		}
		return a.applyUsage(v.target, pct)
	case formDelete:
		if !v.confirm {
			return a.WithStatus("Kept "+v.target, components.MsgInfo)
		}
		return a.applyDelete(v.target)
	case formSettings:
		return a.applySettings(v.theme, v.logLevel)
	}
	return a
}

func (a App) applyAdd(nb store.NewBenefit) App {
	err := a.store.Add(nb)
	a.refresh()
	if err == nil {
		for i, b := range a.rows {
			if b.Name == nb.Name {
				a.cursor = i
			}
		}
	}
	return a.report(err, fmt.Sprintf("Benefit '%s' added successfully!", nb.Name))
}

func (a App) applyUsage(name string, pct int) App {
	err := a.store.UpdateUsage(name, pct)
	a.refresh()
	return a.report(err, fmt.Sprintf("Updated usage for '%s'", name))
}

func (a App) applyDelete(name string) App {
	err := a.store.Delete(name)
	a.refresh()
	return a.report(err, fmt.Sprintf("Deleted '%s'", name))
}

// report maps a store result to a status message.
func (a App) report(err error, success string) App {
	var (
		verr *store.ValidationError
		serr *store.SaveError
	)
	switch {
	case err == nil:
		return a.WithStatus(success, components.MsgSuccess)
	case errors.As(err, &verr):
		return a.WithStatus(verr.Error(), components.MsgWarn)
	case errors.Is(err, store.ErrNotFound):
		return a.WithStatus(err.Error(), components.MsgWarn)
	case errors.As(err, &serr):
		return a.WithStatus("Not saved: "+serr.Err.Error(), components.MsgError)
	default:
		return a.WithStatus(err.Error(), components.MsgError)
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return lipgloss.NewStyle().Foreground(theme.Active.Orange).
			Render(fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d)", a.width, minTerminalWidth))
	}

	cw := a.contentWidth()
	t := theme.Active

	var b strings.Builder
	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(" Credit Card Benefits Tracker")
	b.WriteString("\n" + title + "\n\n")

	if a.form != nil {
		b.WriteString(a.form.View())
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render(" esc to cancel"))
		return b.String()
	}

	b.WriteString(a.viewSummary(cw))
	b.WriteString("\n")
	b.WriteString(components.RenderFilterBar(a.options, a.filterIdx()))
	b.WriteString("\n\n")
	b.WriteString(components.SectionTitle("Current Benefits", cw))
	b.WriteString("\n")
	b.WriteString(a.viewList(cw))
	b.WriteString("\n")
	b.WriteString(components.RenderStatusBar(cw, a.status, a.statusKind))

	return b.String()
}

func (a App) viewSummary(cw int) string {
	all := a.store.List("")
	today := a.store.Today()

	var usedSum float64
	due := 0
	for _, bf := range all {
		usedSum += bf.Used
		if soon, err := today.AddDays(7); err == nil && bf.NextReset.OnOrBefore(soon) {
			due++
		}
	}
	avg := "-"
	if len(all) > 0 {
		avg = cli.FormatPercent(usedSum / float64(len(all)))
	}

	widths := components.LayoutRow(cw, 4)
	return components.CardRow([]string{
		components.MetricCard("Benefits", fmt.Sprintf("%d", len(all)), widths[0]),
		components.MetricCard("Cards", fmt.Sprintf("%d", len(a.options)-1), widths[1]),
		components.MetricCard("Avg used", avg, widths[2]),
		components.MetricCard("Reset within 7d", fmt.Sprintf("%d", due), widths[3]),
	})
}

func (a App) viewList(cw int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	if len(a.rows) == 0 {
		return muted.Render("  No benefits recorded yet. Press a to add one.") + "\n"
	}

	today := a.store.Today()
	barWidth := max(cw-labelWidth-48, 10)

	var b strings.Builder
	for i, bf := range a.rows {
		marker := "  "
		if i == a.cursor {
			marker = lipgloss.NewStyle().Foreground(t.Accent).Render("▸ ")
		}
		card := ""
		if bf.Card != "" {
			card = " (" + bf.Card + ")"
		}
		line := marker +
			components.UsageBar(bf.Name, bf.Used, labelWidth, barWidth) +
			muted.Render(fmt.Sprintf("  %-10s %s", cli.FormatRemaining(bf), cli.FormatCountdown(bf.NextReset, today))) +
			dim.Render(card)
		b.WriteString(line)
		b.WriteString("\n")
	}

	if bf, ok := a.selected(); ok {
		b.WriteString("\n")
		b.WriteString(muted.Render(fmt.Sprintf("  %s: %s  ·  %s  ·  resets %s",
			bf.Name, bf.Description, bf.ResetInterval, orDash(bf.NextReset))))
		b.WriteString("\n")
	}
	return b.String()
}

func orDash(d model.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.String()
}
