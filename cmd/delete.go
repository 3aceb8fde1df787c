package cmd

import (
	"fmt"

	"github.com/theirongolddev/ccb/internal/cli"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a benefit",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	s := openSession()
	s.printNotices()

	if err := s.store.Delete(args[0]); err != nil {
		return explain(err)
	}

	fmt.Println(cli.Success(fmt.Sprintf("Deleted '%s'", args[0])))
	return nil
}
