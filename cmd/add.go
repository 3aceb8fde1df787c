package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/ccb/internal/cli"
	"github.com/theirongolddev/ccb/internal/model"
	"github.com/theirongolddev/ccb/internal/store"
	"github.com/theirongolddev/ccb/internal/tui"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var flagValue string

var addCmd = &cobra.Command{
	Use:   "add [name description card interval]",
	Short: "Add a benefit, or replace one with the same name",
	Long: `Add a benefit. With no arguments an interactive form is shown.

Interval is one of Monthly, Yearly or "5 Years".`,
	Example: `  ccb add "Dining Credit" "$10/month at Grubhub" "Amex Gold" monthly --value 10`,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 4 {
			return fmt.Errorf("expected 4 arguments or none, got %d", len(args))
		}
		return nil
	},
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagValue, "value", "", "Face value of the benefit per period, e.g. 10.00")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	s := openSession()
	s.printNotices()

	var (
		nb  store.NewBenefit
		err error
	)
	if len(args) == 0 {
		nb, err = tui.PromptNewBenefit()
		if err != nil {
			return explain(err)
		}
	} else {
		nb, err = newBenefitFromArgs(args, flagValue)
		if err != nil {
			return explain(err)
		}
	}

	if err := s.store.Add(nb); err != nil {
		if errors.Is(err, store.ErrBlank) {
			fmt.Println(cli.Warn("Please enter name, description, and card."))
		}
		return explain(err)
	}

	fmt.Println(cli.Success(fmt.Sprintf("Benefit '%s' added successfully!", nb.Name)))
	return nil
}

// newBenefitFromArgs builds a request from positional arguments. An interval
// that ParseInterval doesn't recognize is passed through as typed so the
// store rejects it with a validation error.
func newBenefitFromArgs(args []string, value string) (store.NewBenefit, error) {
	nb := store.NewBenefit{
		Name:        args[0],
		Description: args[1],
		Card:        args[2],
		Interval:    model.Interval(args[3]),
	}
	if iv, err := model.ParseInterval(args[3]); err == nil {
		nb.Interval = iv
	}

	if value != "" {
		d, err := decimal.NewFromString(value)
		if err != nil {
			return nb, &store.ValidationError{Field: "value", Reason: "must be a number", Err: err}
		}
		nb.Value = &d
	}
	return nb, nil
}
