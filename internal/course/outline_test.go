package course

import "testing"

func TestBuildOutline_AnnotatesCompletion(t *testing.T) {
	c := testCourse()
	completed := map[string]bool{"l1": true, "l4": true}

	out := BuildOutline(c, completed)

	if out.CourseID != c.ID {
		t.Errorf("CourseID = %s, want %s", out.CourseID, c.ID)
	}
	if len(out.Sections) != 2 {
		t.Fatalf("len(Sections) = %d, want 2", len(out.Sections))
	}
	if !out.Sections[0].Lessons[0].Completed {
		t.Error("l1 should be completed")
	}
	if out.Sections[0].Lessons[1].Completed {
		t.Error("l2 should not be completed")
	}
	if !out.Sections[1].Lessons[0].Completed {
		t.Error("l4 should be completed")
	}
	if out.Sections[1].Lessons[0].SectionID != "sec-2" {
		t.Errorf("SectionID = %s, want sec-2", out.Sections[1].Lessons[0].SectionID)
	}
}

func TestBuildOutline_Deterministic(t *testing.T) {
	c := testCourse()
	completed := map[string]bool{"l2": true}

	a := BuildOutline(c, completed)
	b := BuildOutline(c, completed)

	if len(a.Sections) != len(b.Sections) {
		t.Fatal("outlines differ in section count")
	}
	for i := range a.Sections {
		for j := range a.Sections[i].Lessons {
			if a.Sections[i].Lessons[j] != b.Sections[i].Lessons[j] {
				t.Errorf("lesson %d/%d differs between rebuilds", i, j)
			}
		}
	}
}

func TestBuildOutline_RederivesAfterSetChange(t *testing.T) {
	c := testCourse()

	before := BuildOutline(c, map[string]bool{})
	after := BuildOutline(c, map[string]bool{"l3": true})

	if before.Sections[0].Lessons[2].Completed {
		t.Error("l3 completed before marking")
	}
	if !after.Sections[0].Lessons[2].Completed {
		t.Error("l3 not completed after marking")
	}
	// Order is unaffected by completion.
	for i := range before.Sections {
		if before.Sections[i].ID != after.Sections[i].ID {
			t.Error("section order changed with completion set")
		}
	}
}

func TestCourse_Lookups(t *testing.T) {
	c := testCourse()

	if got := c.TotalLessons(); got != 5 {
		t.Errorf("TotalLessons = %d, want 5", got)
	}

	l, secID, ok := c.FindLesson("l5")
	if !ok || l.Title != "Methods" || secID != "sec-2" {
		t.Errorf("FindLesson(l5) = %v %s %v", l, secID, ok)
	}

	if c.HasLesson("nope") {
		t.Error("HasLesson(nope) = true, want false")
	}

	first, secID, ok := c.FirstLesson()
	if !ok || first.ID != "l1" || secID != "sec-1" {
		t.Errorf("FirstLesson = %v %s %v", first, secID, ok)
	}

	empty := &Course{ID: "crs-2"}
	if _, _, ok := empty.FirstLesson(); ok {
		t.Error("FirstLesson on empty course should report false")
	}
}
