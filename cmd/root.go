package cmd

import (
	"github.com/abhisek/studyhall/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studyhall",
	Short: "Terminal client for the Studyhall course platform",
	Long:  "Studyhall — learn your enrolled courses from the terminal: browse the curriculum, track watch time, and mark lessons complete.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the local journal database (overrides STUDYHALL_DB env var)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the journal path using --db flag (highest priority),
// then STUDYHALL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
