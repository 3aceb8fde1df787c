package cmd

import (
	"fmt"

	"github.com/theirongolddev/ccb/internal/cli"

	"github.com/spf13/cobra"
)

var flagChartWidth int

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Bar chart of benefit usage",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().StringVar(&flagCard, "card", "", "Only chart benefits for this card")
	chartCmd.Flags().IntVar(&flagChartWidth, "width", 40, "Bar width in columns")
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	s := openSession()
	s.printNotices()

	benefits := s.store.List(flagCard)
	if len(benefits) == 0 {
		fmt.Println("\n  No benefits to chart.")
		return nil
	}

	title := "BENEFIT USAGE"
	if flagCard != "" {
		title += "  " + flagCard
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()
	fmt.Print(cli.RenderUsageChart(benefits, flagChartWidth))
	return nil
}
