package course

import "testing"

func testCourse() *Course {
	return &Course{
		ID:    "crs-1",
		Slug:  "intro-go",
		Title: "Intro",
		Sections: []Section{
			{ID: "sec-1", Title: "Basics", Lessons: []Lesson{
				{ID: "l1", Title: "Hello", DurationMin: 5},
				{ID: "l2", Title: "Types", DurationMin: 8},
				{ID: "l3", Title: "Funcs", DurationMin: 12},
			}},
			{ID: "sec-2", Title: "More", Lessons: []Lesson{
				{ID: "l4", Title: "Structs", DurationMin: 9},
				{ID: "l5", Title: "Methods", DurationMin: 7},
			}},
		},
	}
}

func TestFlatten_Order(t *testing.T) {
	refs := Flatten(testCourse())

	if len(refs) != 5 {
		t.Fatalf("len(refs) = %d, want 5", len(refs))
	}
	want := []string{"l1", "l2", "l3", "l4", "l5"}
	for i, w := range want {
		if refs[i].LessonID != w {
			t.Errorf("refs[%d].LessonID = %s, want %s", i, refs[i].LessonID, w)
		}
		if refs[i].Index != i {
			t.Errorf("refs[%d].Index = %d, want %d", i, refs[i].Index, i)
		}
	}
	if refs[3].SectionID != "sec-2" {
		t.Errorf("refs[3].SectionID = %s, want sec-2", refs[3].SectionID)
	}
}

func TestNeighbors_Boundaries(t *testing.T) {
	refs := Flatten(testCourse())

	prev, next := Neighbors(refs, "l1")
	if prev != nil {
		t.Errorf("prev at first lesson = %v, want nil", prev)
	}
	if next == nil || next.LessonID != "l2" {
		t.Errorf("next at first lesson = %v, want l2", next)
	}

	prev, next = Neighbors(refs, "l5")
	if next != nil {
		t.Errorf("next at last lesson = %v, want nil", next)
	}
	if prev == nil || prev.LessonID != "l4" {
		t.Errorf("prev at last lesson = %v, want l4", prev)
	}
}

func TestNeighbors_CrossesSectionBoundary(t *testing.T) {
	refs := Flatten(testCourse())

	prev, next := Neighbors(refs, "l4")
	if prev == nil || prev.LessonID != "l3" {
		t.Errorf("prev = %v, want l3", prev)
	}
	if next == nil || next.LessonID != "l5" {
		t.Errorf("next = %v, want l5", next)
	}
}

func TestNeighbors_RoundTrip(t *testing.T) {
	refs := Flatten(testCourse())

	// next(previous(L)) == L for every non-boundary lesson.
	for i := 1; i < len(refs)-1; i++ {
		prev, _ := Neighbors(refs, refs[i].LessonID)
		if prev == nil {
			t.Fatalf("prev of %s is nil", refs[i].LessonID)
		}
		_, next := Neighbors(refs, prev.LessonID)
		if next == nil || next.LessonID != refs[i].LessonID {
			t.Errorf("next(prev(%s)) = %v, want %s", refs[i].LessonID, next, refs[i].LessonID)
		}
	}
}

func TestNeighbors_UnknownLesson(t *testing.T) {
	refs := Flatten(testCourse())

	prev, next := Neighbors(refs, "ghost")
	if prev != nil || next != nil {
		t.Errorf("Neighbors(ghost) = %v, %v, want nil, nil", prev, next)
	}
}

func TestNeighbors_IgnoresEmptySections(t *testing.T) {
	c := testCourse()
	c.Sections = append([]Section{{ID: "sec-0", Title: "Empty"}}, c.Sections...)

	refs := Flatten(c)
	if len(refs) != 5 {
		t.Fatalf("len(refs) = %d, want 5", len(refs))
	}
	prev, _ := Neighbors(refs, "l1")
	if prev != nil {
		t.Errorf("prev at first lesson = %v, want nil", prev)
	}
}
