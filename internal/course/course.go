package course

// Lesson is a single video lesson within a section. Completion is a
// learner-specific fact tracked by the backend, not a lesson property.
type Lesson struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	DurationMin int    `json:"duration_minutes"`
	VideoURL    string `json:"video_url,omitempty"`
}

// Section is an ordered group of lessons. Section order and lesson order
// within a section define the navigation sequence.
type Section struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Course is the full curriculum document as served by the backend.
// It is immutable for the duration of a learning session.
type Course struct {
	ID       string    `json:"id"`
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// TotalLessons returns the number of lessons across all sections.
func (c *Course) TotalLessons() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Lessons)
	}
	return n
}

// FindLesson locates a lesson by id and returns it together with the id of
// its containing section.
func (c *Course) FindLesson(lessonID string) (Lesson, string, bool) {
	for _, s := range c.Sections {
		for _, l := range s.Lessons {
			if l.ID == lessonID {
				return l, s.ID, true
			}
		}
	}
	return Lesson{}, "", false
}

// HasLesson reports whether a lesson id exists anywhere in the course.
func (c *Course) HasLesson(lessonID string) bool {
	_, _, ok := c.FindLesson(lessonID)
	return ok
}

// FirstLesson returns the first lesson of the first non-empty section.
// Sections with no lessons are skipped.
func (c *Course) FirstLesson() (Lesson, string, bool) {
	for _, s := range c.Sections {
		if len(s.Lessons) > 0 {
			return s.Lessons[0], s.ID, true
		}
	}
	return Lesson{}, "", false
}
