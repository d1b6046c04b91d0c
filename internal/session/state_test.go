package session

import (
	"testing"

	"github.com/abhisek/studyhall/internal/course"
)

func TestNewState_InitialScenario(t *testing.T) {
	// Course with 2 sections (3 lessons, 2 lessons), no prior progress.
	st := freshState(testCourse())

	if got := st.CurrentLessonID(); got != "l1" {
		t.Errorf("CurrentLessonID = %s, want l1", got)
	}
	if !st.IsExpanded("sec-1") {
		t.Error("sec-1 should be expanded")
	}
	if st.IsExpanded("sec-2") {
		t.Error("sec-2 should not be expanded")
	}
	if got := st.ProgressPercent(); got != 0 {
		t.Errorf("ProgressPercent = %d, want 0", got)
	}
}

func TestNewState_DropsUnknownCompletedIDs(t *testing.T) {
	c := testCourse()
	completed := map[string]bool{"l1": true, "ghost": true}

	st := NewState(c, Reconcile(c, nil, nil), completed, "s")

	if !st.IsCompleted("l1") {
		t.Error("l1 should be completed")
	}
	if st.IsCompleted("ghost") {
		t.Error("ghost must not survive into the completed set")
	}
	if got := st.CompletedCount(); got != 1 {
		t.Errorf("CompletedCount = %d, want 1", got)
	}
}

func TestSelectLesson_ExpandsContainingSection(t *testing.T) {
	st := freshState(testCourse())

	if !st.SelectLesson("l4") {
		t.Fatal("SelectLesson(l4) refused")
	}
	if got := st.CurrentLessonID(); got != "l4" {
		t.Errorf("CurrentLessonID = %s, want l4", got)
	}
	if !st.IsExpanded("sec-2") {
		t.Error("sec-2 should expand on selection")
	}
	// Previously expanded sections stay expanded.
	if !st.IsExpanded("sec-1") {
		t.Error("sec-1 should remain expanded")
	}
}

func TestSelectLesson_RejectsUnknownLesson(t *testing.T) {
	st := freshState(testCourse())

	if st.SelectLesson("ghost") {
		t.Fatal("SelectLesson(ghost) should be refused")
	}
	if got := st.CurrentLessonID(); got != "l1" {
		t.Errorf("CurrentLessonID = %s, want unchanged l1", got)
	}
}

func TestToggleSection(t *testing.T) {
	st := freshState(testCourse())

	st.ToggleSection("sec-2")
	if !st.IsExpanded("sec-2") {
		t.Error("sec-2 should be expanded after toggle")
	}
	st.ToggleSection("sec-2")
	if st.IsExpanded("sec-2") {
		t.Error("sec-2 should collapse after second toggle")
	}
}

func TestProgressPercent_RoundsAndGuardsZero(t *testing.T) {
	c := testCourse()
	st := NewState(c, Reconcile(c, nil, nil), map[string]bool{"l1": true}, "s")

	// 1 of 5 → 20%.
	if got := st.ProgressPercent(); got != 20 {
		t.Errorf("ProgressPercent = %d, want 20", got)
	}

	empty := &course.Course{ID: "crs-2"}
	stEmpty := NewState(empty, Reconcile(empty, nil, nil), nil, "s")
	if got := stEmpty.ProgressPercent(); got != 0 {
		t.Errorf("ProgressPercent on empty course = %d, want 0", got)
	}
	if got := stEmpty.CurrentLessonID(); got != "" {
		t.Errorf("CurrentLessonID on empty course = %s, want empty", got)
	}
}

func TestProgressPercent_RoundHalfUp(t *testing.T) {
	c := &course.Course{
		ID: "crs-3",
		Sections: []course.Section{
			{ID: "s1", Lessons: []course.Lesson{
				{ID: "a"}, {ID: "b"}, {ID: "c"},
			}},
		},
	}
	st := NewState(c, Reconcile(c, nil, nil), map[string]bool{"a": true}, "s")

	// 1/3 = 33.33 → 33.
	if got := st.ProgressPercent(); got != 33 {
		t.Errorf("ProgressPercent = %d, want 33", got)
	}
}

func TestOutline_ReflectsCompletedSet(t *testing.T) {
	c := testCourse()
	st := NewState(c, Reconcile(c, nil, nil), map[string]bool{"l2": true}, "s")

	out := st.Outline()
	if !out.Sections[0].Lessons[1].Completed {
		t.Error("l2 should be completed in the outline")
	}
	if out.Sections[0].Lessons[0].Completed {
		t.Error("l1 should not be completed in the outline")
	}
}

func TestNeighbors_LastLessonOverall(t *testing.T) {
	st := freshState(testCourse())
	st.SelectLesson("l5")

	prev, next := st.Neighbors()
	if next != nil {
		t.Errorf("next = %v, want nil at last lesson", next)
	}
	if prev == nil || prev.LessonID != "l4" {
		t.Errorf("prev = %v, want l4", prev)
	}
}
