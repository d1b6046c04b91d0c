package session

import (
	"testing"

	"github.com/abhisek/studyhall/internal/api"
	"github.com/abhisek/studyhall/internal/course"
)

func TestReconcile_NoProgressResumesAtFirstLesson(t *testing.T) {
	rp := Reconcile(testCourse(), nil, nil)

	if rp.Empty {
		t.Fatal("resume point should not be empty")
	}
	if rp.LessonID != "l1" {
		t.Errorf("LessonID = %s, want l1", rp.LessonID)
	}
	if rp.SectionID != "sec-1" {
		t.Errorf("SectionID = %s, want sec-1", rp.SectionID)
	}
}

func TestReconcile_PersistedLastLessonWins(t *testing.T) {
	progress := &api.CourseProgress{LastLessonID: "l4"}

	rp := Reconcile(testCourse(), progress, nil)

	if rp.LessonID != "l4" {
		t.Errorf("LessonID = %s, want l4", rp.LessonID)
	}
	if rp.SectionID != "sec-2" {
		t.Errorf("SectionID = %s, want sec-2 (containing section expands)", rp.SectionID)
	}
}

func TestReconcile_StaleLastLessonFallsBack(t *testing.T) {
	// The persisted lesson was deleted from the curriculum since the last
	// visit; treated the same as no progress.
	progress := &api.CourseProgress{LastLessonID: "deleted-lesson"}

	rp := Reconcile(testCourse(), progress, nil)

	if rp.LessonID != "l1" || rp.SectionID != "sec-1" {
		t.Errorf("resume = %s/%s, want l1/sec-1", rp.LessonID, rp.SectionID)
	}
}

func TestReconcile_FetchErrorDegradesToFirstLesson(t *testing.T) {
	rp := Reconcile(testCourse(), nil, errNetwork)

	if rp.Empty {
		t.Fatal("fetch error must not produce an empty resume point on a non-empty course")
	}
	if rp.LessonID != "l1" {
		t.Errorf("LessonID = %s, want l1", rp.LessonID)
	}
}

func TestReconcile_EmptyCourse(t *testing.T) {
	empty := &course.Course{ID: "crs-2", Title: "Empty"}

	rp := Reconcile(empty, nil, nil)

	if !rp.Empty {
		t.Error("expected Empty resume point for a course with no lessons")
	}
	if rp.LessonID != "" {
		t.Errorf("LessonID = %s, want empty", rp.LessonID)
	}
}

func TestReconcile_SkipsEmptyLeadingSection(t *testing.T) {
	c := testCourse()
	c.Sections = append([]course.Section{{ID: "sec-0", Title: "Intro"}}, c.Sections...)

	rp := Reconcile(c, nil, nil)

	if rp.LessonID != "l1" || rp.SectionID != "sec-1" {
		t.Errorf("resume = %s/%s, want l1/sec-1", rp.LessonID, rp.SectionID)
	}
}
