package session

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/studyhall/internal/api"
)

func TestBegin_FreshLearner(t *testing.T) {
	backend := &fakeBackend{course: testCourse(), enrolled: true}

	st, err := Begin(context.Background(), backend, "intro-go")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	if got := st.CurrentLessonID(); got != "l1" {
		t.Errorf("CurrentLessonID = %s, want l1", got)
	}
	if !st.IsExpanded("sec-1") {
		t.Error("sec-1 should be expanded")
	}
	if got := st.ProgressPercent(); got != 0 {
		t.Errorf("ProgressPercent = %d, want 0", got)
	}
	if st.SessionID == "" {
		t.Error("SessionID should be assigned")
	}
}

func TestBegin_ResumesFromPersistedProgress(t *testing.T) {
	backend := &fakeBackend{
		course:   testCourse(),
		enrolled: true,
		progress: &api.CourseProgress{
			LastLessonID: "l4",
			Lessons: []api.LessonProgress{
				{LessonID: "l1", IsCompleted: true},
				{LessonID: "l2", IsCompleted: true},
				{LessonID: "l3", IsCompleted: true},
			},
		},
	}

	st, err := Begin(context.Background(), backend, "intro-go")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	if got := st.CurrentLessonID(); got != "l4" {
		t.Errorf("CurrentLessonID = %s, want l4", got)
	}
	if !st.IsExpanded("sec-2") {
		t.Error("sec-2 (containing the resume lesson) should be expanded")
	}
	if got := st.ProgressPercent(); got != 60 {
		t.Errorf("ProgressPercent = %d, want 60 (3/5)", got)
	}
}

func TestBegin_NotEnrolled(t *testing.T) {
	backend := &fakeBackend{course: testCourse(), enrolled: false}

	_, err := Begin(context.Background(), backend, "intro-go")
	if !errors.Is(err, ErrNotEnrolled) {
		t.Fatalf("Begin = %v, want ErrNotEnrolled", err)
	}
}

func TestBegin_CourseLoadFailureIsFatal(t *testing.T) {
	backend := &fakeBackend{courseErr: errNetwork, enrolled: true}

	_, err := Begin(context.Background(), backend, "intro-go")
	if err == nil {
		t.Fatal("expected error when the course load fails")
	}
	if errors.Is(err, ErrNotEnrolled) {
		t.Error("load failure must not masquerade as an enrollment refusal")
	}
}

func TestBegin_ProgressFetchFailureDegrades(t *testing.T) {
	backend := &fakeBackend{course: testCourse(), enrolled: true, progressErr: errNetwork}

	st, err := Begin(context.Background(), backend, "intro-go")
	if err != nil {
		t.Fatalf("Begin should absorb progress fetch failures, got %v", err)
	}
	if got := st.CurrentLessonID(); got != "l1" {
		t.Errorf("CurrentLessonID = %s, want l1 (degraded resume)", got)
	}
	if got := st.CompletedCount(); got != 0 {
		t.Errorf("CompletedCount = %d, want 0 (no partial completed set)", got)
	}
}
