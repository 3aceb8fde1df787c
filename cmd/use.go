package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/ccb/internal/cli"
	"github.com/theirongolddev/ccb/internal/store"

	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:     "use <name> <percent>",
	Short:   "Set how much of a benefit has been used",
	Example: "  ccb use \"Dining Credit\" 60",
	Args:    cobra.ExactArgs(2),
	RunE:    runUse,
}

func init() {
	rootCmd.AddCommand(useCmd)
}

func runUse(_ *cobra.Command, args []string) error {
	s := openSession()
	s.printNotices()

	name := args[0]
	pct, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(args[1]), "%"))
	if err != nil {
		return explain(&store.ValidationError{Field: "usage", Reason: "must be a whole number", Err: err})
	}

	if err := s.store.UpdateUsage(name, pct); err != nil {
		return explain(err)
	}

	fmt.Println(cli.Success(fmt.Sprintf("Updated usage for '%s' to %d%%", name, pct)))
	return nil
}
