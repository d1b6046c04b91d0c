package cmd

import (
	"fmt"

	"github.com/abhisek/studyhall/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past learning sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve journal path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer st.Close()

		repo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}

		ctx := cmd.Context()
		sessions, err := repo.SessionSummaries(ctx, 20)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}

		for _, s := range sessions {
			fmt.Printf("%s  %-40s %2d completed  %2dm watched\n",
				s.Timestamp.Format("2006-01-02 15:04"), s.CourseTitle,
				s.LessonsCompleted, s.WatchSecs/60)
		}

		totals, err := repo.JournalTotals(ctx)
		if err == nil {
			fmt.Printf("\nTotal: %d sessions, %d lessons completed, %dm watched\n",
				totals.Sessions, totals.Completions, totals.WatchSecs/60)
		}
		return nil
	},
}
