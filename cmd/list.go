package cmd

import (
	"fmt"

	"github.com/theirongolddev/ccb/internal/cli"
	"github.com/theirongolddev/ccb/internal/model"

	"github.com/spf13/cobra"
)

var flagCard string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List benefits with usage and reset dates",
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVar(&flagCard, "card", "", "Only show benefits for this card")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	s := openSession()
	s.printNotices()

	benefits := s.store.List(flagCard)
	if len(benefits) == 0 {
		if flagCard != "" {
			fmt.Printf("\n  No benefits for %s.\n", flagCard)
		} else {
			fmt.Println("\n  No benefits recorded yet.")
		}
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(benefitTable(benefits, s.store.Today(), flagCard)))
	return nil
}

func benefitTable(benefits []model.Benefit, today model.Date, card string) cli.Table {
	title := "CURRENT BENEFITS"
	if card != "" {
		title += "  " + card
	}

	rows := make([][]string, 0, len(benefits))
	for _, b := range benefits {
		next := "-"
		if !b.NextReset.IsZero() {
			next = b.NextReset.String()
		}
		rows = append(rows, []string{
			b.Name,
			b.Card,
			cli.Truncate(b.Description, 36),
			cli.FormatPercent(b.Used),
			cli.FormatRemaining(b),
			next,
			cli.FormatCountdown(b.NextReset, today),
		})
	}

	return cli.Table{
		Title:      title,
		Headers:    []string{"Name", "Card", "Description", "Used", "Left", "Next reset", "Resets"},
		Rows:       rows,
		RightAlign: []bool{false, false, false, true, true, false, false},
	}
}
