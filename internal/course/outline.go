package course

// Outline is the view-ready projection of a course: the Section→Lesson tree
// with each lesson annotated with the learner's completion flag. It is
// rebuilt from scratch whenever the completed-set changes; it never mutates
// the Course it was derived from.
type Outline struct {
	CourseID string
	Title    string
	Sections []SectionNode
}

// SectionNode is one section in the outline.
type SectionNode struct {
	ID      string
	Title   string
	Lessons []LessonNode
}

// LessonNode is one lesson in the outline, annotated for display.
type LessonNode struct {
	ID          string
	SectionID   string
	Title       string
	DurationMin int
	VideoURL    string
	Completed   bool
}

// BuildOutline projects a course and a completed-lesson set into an Outline.
// It is a pure function of its two inputs: calling it again with an updated
// completed set re-derives the same tree deterministically without touching
// the network or the course document.
func BuildOutline(c *Course, completed map[string]bool) Outline {
	out := Outline{
		CourseID: c.ID,
		Title:    c.Title,
		Sections: make([]SectionNode, 0, len(c.Sections)),
	}
	for _, s := range c.Sections {
		node := SectionNode{
			ID:      s.ID,
			Title:   s.Title,
			Lessons: make([]LessonNode, 0, len(s.Lessons)),
		}
		for _, l := range s.Lessons {
			node.Lessons = append(node.Lessons, LessonNode{
				ID:          l.ID,
				SectionID:   s.ID,
				Title:       l.Title,
				DurationMin: l.DurationMin,
				VideoURL:    l.VideoURL,
				Completed:   completed[l.ID],
			})
		}
		out.Sections = append(out.Sections, node)
	}
	return out
}
