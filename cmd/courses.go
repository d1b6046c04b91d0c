package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the course catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := buildClient()
		if err != nil {
			return err
		}

		courses, err := client.ListCourses(cmd.Context())
		if err != nil {
			return fmt.Errorf("list courses: %w", err)
		}

		if len(courses) == 0 {
			fmt.Println("No courses available.")
			return nil
		}

		for _, c := range courses {
			fmt.Printf("%-30s %-40s %d lessons\n", c.Slug, c.Title, c.LessonCount)
		}
		return nil
	},
}
