package session

import (
	"fmt"
	"os"

	"github.com/abhisek/studyhall/internal/api"
	"github.com/abhisek/studyhall/internal/course"
)

// ResumePoint is the reconciler's verdict: the lesson the learner resumes
// at and the section to expand for it. Empty is true for courses with no
// lessons at all — a terminal "no content" state, not an error.
type ResumePoint struct {
	LessonID  string
	SectionID string
	Empty     bool
}

// Reconcile picks the single resume lesson from persisted progress plus the
// loaded curriculum. Priority order, first match wins:
//
//  1. progress carries a last lesson id that still exists in the course
//  2. first lesson of the first non-empty section
//  3. no content
//
// A last lesson id that no longer resolves (the lesson was deleted since
// the learner's last visit) is treated exactly like missing progress.
// fetchErr is the outcome of the progress fetch: a failure there degrades
// to rule 2 and is logged, never propagated — reconciliation must not take
// the session down.
func Reconcile(c *course.Course, progress *api.CourseProgress, fetchErr error) ResumePoint {
	if fetchErr != nil {
		fmt.Fprintf(os.Stderr, "warning: progress fetch failed for course %s, resuming at first lesson: %v\n", c.ID, fetchErr)
	}

	if fetchErr == nil && progress != nil && progress.LastLessonID != "" {
		if _, sectionID, ok := c.FindLesson(progress.LastLessonID); ok {
			return ResumePoint{LessonID: progress.LastLessonID, SectionID: sectionID}
		}
	}

	if first, sectionID, ok := c.FirstLesson(); ok {
		return ResumePoint{LessonID: first.ID, SectionID: sectionID}
	}

	return ResumePoint{Empty: true}
}
