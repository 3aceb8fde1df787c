package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/ccb/internal/model"
	"github.com/theirongolddev/ccb/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
)

type formKind int

const (
	formNone formKind = iota
	formAdd
	formUsage
	formDelete
	formSettings
)

// formValues backs the huh fields. It lives behind a pointer so the bound
// field addresses stay valid as the App value is copied by Bubble Tea.
type formValues struct {
	name        string
	description string
	card        string
	interval    model.Interval
	value       string
	usage       string
	confirm     bool
	target      string
	theme       string
	logLevel    string
}

func notBlank(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

func parseValue(s string) (*decimal.Decimal, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errors.New("enter an amount like 10 or 12.50")
	}
	if d.IsNegative() {
		return nil, errors.New("amount must not be negative")
	}
	return &d, nil
}

func parsePercent(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%")))
	if err != nil {
		return 0, errors.New("enter a whole number")
	}
	if n < 0 || n > 100 {
		return 0, errors.New("must be between 0 and 100")
	}
	return n, nil
}

func newAddForm(v *formValues) *huh.Form {
	v.interval = model.Monthly
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Benefit name").
				Value(&v.name).
				Validate(notBlank("name")),
			huh.NewInput().
				Title("Description").
				Placeholder("$10/month dining credit").
				Value(&v.description).
				Validate(notBlank("description")),
			huh.NewInput().
				Title("Card").
				Value(&v.card).
				Validate(notBlank("card")),
			huh.NewSelect[model.Interval]().
				Title("Reset interval").
				Options(huh.NewOptions(model.Intervals...)...).
				Value(&v.interval),
			huh.NewInput().
				Title("Face value (optional)").
				Placeholder("10.00").
				Value(&v.value).
				Validate(func(s string) error {
					_, err := parseValue(s)
					return err
				}),
		),
	).WithShowHelp(true)
}

func newUsageForm(v *formValues, b model.Benefit) *huh.Form {
	v.target = b.Name
	v.usage = strconv.Itoa(int(b.UsedPercent() + 0.5))
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Usage for %s (0-100%%)", b.Name)).
				Value(&v.usage).
				Validate(func(s string) error {
					_, err := parsePercent(s)
					return err
				}),
		),
	)
}

func newDeleteForm(v *formValues, b model.Benefit) *huh.Form {
	v.target = b.Name
	v.confirm = false
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", b.Name)).
				Affirmative("Delete").
				Negative("Keep").
				Value(&v.confirm),
		),
	)
}

// PromptNewBenefit runs the add form inline, outside the dashboard.
func PromptNewBenefit() (store.NewBenefit, error) {
	v := &formValues{}
	if err := newAddForm(v).Run(); err != nil {
		return store.NewBenefit{}, err
	}
	return v.newBenefit()
}

func (v *formValues) newBenefit() (store.NewBenefit, error) {
	val, err := parseValue(v.value)
	if err != nil {
		return store.NewBenefit{}, err
	}
	return store.NewBenefit{
		Name:        v.name,
		Description: v.description,
		Card:        v.card,
		Interval:    v.interval,
		Value:       val,
	}, nil
}
