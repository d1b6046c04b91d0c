package api

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// LessonProgress is the backend's per-learner, per-lesson record. The
// backend keeps exactly one record per lesson per learner and updates it
// in place on repeated watch/completion events.
type LessonProgress struct {
	LessonID      string     `json:"lesson_id"`
	IsCompleted   bool       `json:"is_completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	LastWatchedAt *time.Time `json:"last_watched_at,omitempty"`
	WatchSeconds  int        `json:"watch_duration_seconds"`
}

// CourseProgress is the backend's aggregate progress record for a
// learner+course pair. It is created lazily on first interaction.
type CourseProgress struct {
	CourseID         string           `json:"course_id"`
	TotalLessons     int              `json:"total_lessons"`
	CompletedLessons int              `json:"completed_lessons"`
	ProgressPercent  int              `json:"progress_percent"`
	LastLessonID     string           `json:"last_lesson_id"`
	Lessons          []LessonProgress `json:"lessons"`
}

// CompletedSet returns the set of completed lesson ids.
func (p *CourseProgress) CompletedSet() map[string]bool {
	set := make(map[string]bool, len(p.Lessons))
	for _, lp := range p.Lessons {
		if lp.IsCompleted {
			set[lp.LessonID] = true
		}
	}
	return set
}

// GetProgress fetches the learner's progress for a course. A missing
// record is the normal "no progress yet" state and returns (nil, nil);
// only transport and server failures return an error.
func (c *Client) GetProgress(ctx context.Context, courseID string) (*CourseProgress, error) {
	var out CourseProgress
	path := fmt.Sprintf("/api/courses/%s/progress", courseID)
	err := c.get(ctx, path, &out)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkLessonComplete records a lesson completion. The backend upserts the
// per-lesson record, so repeating the call never duplicates it.
func (c *Client) MarkLessonComplete(ctx context.Context, courseID, lessonID string) error {
	path := fmt.Sprintf("/api/courses/%s/lessons/%s/complete", courseID, lessonID)
	return c.post(ctx, path, nil, nil)
}

// SetLastLesson persists the learner's resume position and accumulated
// watch time. Idempotent on the backend side.
func (c *Client) SetLastLesson(ctx context.Context, courseID, lessonID string, watchSeconds int) error {
	body := map[string]any{
		"lesson_id":     lessonID,
		"watch_seconds": watchSeconds,
	}
	path := fmt.Sprintf("/api/courses/%s/last-lesson", courseID)
	return c.post(ctx, path, body, nil)
}
