package session

import (
	"context"
	"errors"

	"github.com/abhisek/studyhall/internal/api"
	"github.com/abhisek/studyhall/internal/course"
)

// fakeBackend implements Backend with canned responses and call counters.
type fakeBackend struct {
	course   *course.Course
	enrolled bool
	progress *api.CourseProgress

	courseErr     error
	enrollErr     error
	progressErr   error
	completeErr   error
	lastLessonErr error

	completeCalls   int
	lastLessonCalls int
	lastSavedLesson string
	lastSavedSecs   int
}

func (f *fakeBackend) GetCourse(ctx context.Context, slug string) (*course.Course, error) {
	if f.courseErr != nil {
		return nil, f.courseErr
	}
	return f.course, nil
}

func (f *fakeBackend) IsEnrolled(ctx context.Context, courseID string) (bool, error) {
	if f.enrollErr != nil {
		return false, f.enrollErr
	}
	return f.enrolled, nil
}

func (f *fakeBackend) GetProgress(ctx context.Context, courseID string) (*api.CourseProgress, error) {
	if f.progressErr != nil {
		return nil, f.progressErr
	}
	return f.progress, nil
}

func (f *fakeBackend) MarkLessonComplete(ctx context.Context, courseID, lessonID string) error {
	f.completeCalls++
	return f.completeErr
}

func (f *fakeBackend) SetLastLesson(ctx context.Context, courseID, lessonID string, watchSeconds int) error {
	f.lastLessonCalls++
	f.lastSavedLesson = lessonID
	f.lastSavedSecs = watchSeconds
	return f.lastLessonErr
}

var errNetwork = errors.New("connection refused")

// testCourse is a small curriculum: two sections holding three and two
// lessons.
func testCourse() *course.Course {
	return &course.Course{
		ID:    "crs-1",
		Slug:  "intro-go",
		Title: "Intro to Go",
		Sections: []course.Section{
			{ID: "sec-1", Title: "Basics", Lessons: []course.Lesson{
				{ID: "l1", Title: "Hello", DurationMin: 5},
				{ID: "l2", Title: "Types", DurationMin: 8},
				{ID: "l3", Title: "Funcs", DurationMin: 12},
			}},
			{ID: "sec-2", Title: "More", Lessons: []course.Lesson{
				{ID: "l4", Title: "Structs", DurationMin: 9},
				{ID: "l5", Title: "Methods", DurationMin: 7},
			}},
		},
	}
}

func freshState(c *course.Course) *State {
	return NewState(c, Reconcile(c, nil, nil), nil, "test-session")
}
