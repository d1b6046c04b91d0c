package api

import (
	"context"
	"fmt"
)

// IsEnrolled reports whether the signed-in learner may access the course.
func (c *Client) IsEnrolled(ctx context.Context, courseID string) (bool, error) {
	var out struct {
		Enrolled bool `json:"enrolled"`
	}
	path := fmt.Sprintf("/api/courses/%s/enrollment", courseID)
	if err := c.get(ctx, path, &out); err != nil {
		return false, err
	}
	return out.Enrolled, nil
}
