package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the local watch journal",
	Long:  "Delete the local watch journal. Completions and resume positions live on the server and are not affected.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes your local session history. Re-run with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve journal path: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Println("No journal to delete.")
				return nil
			}
			return fmt.Errorf("delete journal: %w", err)
		}
		fmt.Println("Journal deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
