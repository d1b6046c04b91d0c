package session

import (
	"math"
	"sync"

	"github.com/abhisek/studyhall/internal/course"
)

// State is the authoritative in-memory state of one learning session: the
// current lesson, the completed-lesson set, the expanded-section set, and
// the derived progress counters. Every other component reads and writes
// through it. It is a read-side cache over the backend's progress record,
// discarded when the session ends.
//
// Methods are safe for use from bubbletea command goroutines; mutation
// happens under a single mutex.
type State struct {
	mu sync.Mutex

	course *course.Course
	refs   []course.LessonRef

	// SessionID groups this session's journal events.
	SessionID string

	currentLessonID string
	completed       map[string]bool
	expanded        map[string]bool
	marking         bool
	closed          bool
}

// NewState builds session state from the loaded course, the reconciled
// resume point, and the completed set derived from persisted progress.
// Completed ids that don't resolve to a course lesson are dropped so the
// completed-set ⊆ course-lessons invariant holds from the start.
func NewState(c *course.Course, resume ResumePoint, completed map[string]bool, sessionID string) *State {
	st := &State{
		course:    c,
		refs:      course.Flatten(c),
		SessionID: sessionID,
		completed: make(map[string]bool),
		expanded:  make(map[string]bool),
	}
	for id := range completed {
		if completed[id] && c.HasLesson(id) {
			st.completed[id] = true
		}
	}
	if !resume.Empty {
		st.currentLessonID = resume.LessonID
		st.expanded[resume.SectionID] = true
	}
	return st
}

// Course returns the immutable course document the session runs over.
func (st *State) Course() *course.Course {
	return st.course
}

// CurrentLessonID returns the current lesson id, or "" for an empty course.
func (st *State) CurrentLessonID() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.currentLessonID
}

// SelectLesson makes lessonID the current lesson and ensures its section is
// expanded (other expanded sections are left alone). It refuses ids that
// don't exist in the course and reports whether the selection happened.
func (st *State) SelectLesson(lessonID string) bool {
	_, sectionID, ok := st.course.FindLesson(lessonID)
	if !ok {
		return false
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.currentLessonID = lessonID
	st.expanded[sectionID] = true
	return true
}

// ToggleSection flips a section's expanded flag. Pure UI state, no effect
// on navigation order or progress.
func (st *State) ToggleSection(sectionID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.expanded[sectionID] = !st.expanded[sectionID]
}

// IsExpanded reports whether a section is expanded.
func (st *State) IsExpanded(sectionID string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.expanded[sectionID]
}

// IsCompleted reports whether a lesson is completed.
func (st *State) IsCompleted(lessonID string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.completed[lessonID]
}

// CompletedCount returns the number of completed lessons.
func (st *State) CompletedCount() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.completed)
}

// TotalLessons returns the lesson count of the course.
func (st *State) TotalLessons() int {
	return len(st.refs)
}

// ProgressPercent returns round(completed/total*100), with an empty course
// reporting 0 rather than dividing by zero.
func (st *State) ProgressPercent() int {
	total := len(st.refs)
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(st.CompletedCount()) / float64(total) * 100))
}

// Outline re-derives the view tree from the course and the current
// completed set.
func (st *State) Outline() course.Outline {
	st.mu.Lock()
	completed := make(map[string]bool, len(st.completed))
	for id := range st.completed {
		completed[id] = true
	}
	st.mu.Unlock()
	return course.BuildOutline(st.course, completed)
}

// Neighbors returns the previous and next lesson around the current one in
// the flattened sequence.
func (st *State) Neighbors() (prev, next *course.LessonRef) {
	return course.Neighbors(st.refs, st.CurrentLessonID())
}

// Marking reports whether a mark-complete call is in flight, so the UI can
// disable the affordance without blocking anything else.
func (st *State) Marking() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.marking
}

// Close marks the session as torn down. In-flight sync calls finish
// silently but no longer mutate state.
func (st *State) Close() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.closed = true
}

// beginMark reserves lessonID for a mark-complete call. It refuses when
// there is nothing to do: another call is already in flight, the lesson is
// already complete (repeat clicks are no-ops, so the aggregate count can
// only ever increment once per lesson), or lessonID is no longer the
// current lesson — the id is fixed at the learner's action, and if
// navigation has moved on by the time the call runs, completing the old
// target would act on a lesson the learner never confirmed.
func (st *State) beginMark(lessonID string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed || st.marking {
		return false
	}
	if lessonID == "" || lessonID != st.currentLessonID || st.completed[lessonID] {
		return false
	}
	st.marking = true
	return true
}

// finishMark clears the busy flag and, on success, adds the lesson to the
// completed set. Once in the set a lesson never leaves it for the life of
// the session. Returns whether the local update was applied (it is skipped
// after Close).
func (st *State) finishMark(lessonID string, success bool) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.marking = false
	if !success || st.closed {
		return false
	}
	st.completed[lessonID] = true
	return true
}
