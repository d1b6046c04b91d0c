package api

import (
	"context"
	"fmt"

	"github.com/abhisek/studyhall/internal/course"
)

// CourseSummary is a catalog listing entry (no curriculum attached).
type CourseSummary struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	LessonCount int    `json:"lesson_count"`
}

// ListCourses fetches the course catalog.
func (c *Client) ListCourses(ctx context.Context) ([]CourseSummary, error) {
	var out []CourseSummary
	if err := c.get(ctx, "/api/courses", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCourse fetches a full course document, including its curriculum, by slug.
func (c *Client) GetCourse(ctx context.Context, slug string) (*course.Course, error) {
	var out course.Course
	path := fmt.Sprintf("/api/courses/%s?include=curriculum", slug)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
