package course

// LessonRef identifies a lesson's position in the flattened sequence.
type LessonRef struct {
	LessonID  string
	SectionID string
	Title     string
	Index     int
}

// Flatten produces the ordered lesson sequence for a course: section order
// first, then lesson order within each section. The sequence depends only
// on the course document — never on completion state or on which sections
// happen to be expanded in the UI.
func Flatten(c *Course) []LessonRef {
	refs := make([]LessonRef, 0, c.TotalLessons())
	for _, s := range c.Sections {
		for _, l := range s.Lessons {
			refs = append(refs, LessonRef{
				LessonID:  l.ID,
				SectionID: s.ID,
				Title:     l.Title,
				Index:     len(refs),
			})
		}
	}
	return refs
}

// Neighbors returns the previous and next lesson around currentID in the
// flattened sequence. Previous is nil at index 0 and next is nil at the
// last index. If currentID is not in the sequence both are nil.
func Neighbors(refs []LessonRef, currentID string) (prev, next *LessonRef) {
	for i := range refs {
		if refs[i].LessonID != currentID {
			continue
		}
		if i > 0 {
			prev = &refs[i-1]
		}
		if i < len(refs)-1 {
			next = &refs[i+1]
		}
		return prev, next
	}
	return nil, nil
}
