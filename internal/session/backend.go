package session

import (
	"context"

	"github.com/abhisek/studyhall/internal/api"
	"github.com/abhisek/studyhall/internal/course"
)

// Backend is the slice of the platform API the learning session consumes.
// *api.Client satisfies it; tests substitute fakes.
type Backend interface {
	GetCourse(ctx context.Context, slug string) (*course.Course, error)
	IsEnrolled(ctx context.Context, courseID string) (bool, error)
	GetProgress(ctx context.Context, courseID string) (*api.CourseProgress, error)
	MarkLessonComplete(ctx context.Context, courseID, lessonID string) error
	SetLastLesson(ctx context.Context, courseID, lessonID string, watchSeconds int) error
}
