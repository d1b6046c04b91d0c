package learn

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyhall/internal/course"
	"github.com/abhisek/studyhall/internal/router"
	"github.com/abhisek/studyhall/internal/screen"
	"github.com/abhisek/studyhall/internal/session"
	"github.com/abhisek/studyhall/internal/store"
	"github.com/abhisek/studyhall/internal/ui/components"
	"github.com/abhisek/studyhall/internal/ui/layout"
)

// rowKind discriminates sidebar rows.
type rowKind int

const (
	rowSection rowKind = iota
	rowLesson
)

// row is one selectable line in the curriculum sidebar.
type row struct {
	kind      rowKind
	sectionID string
	lessonID  string
}

// LearnScreen drives one learning session: the curriculum sidebar, the
// current lesson pane, completion marking, and watch-time tracking.
type LearnScreen struct {
	backend   session.Backend
	sync      *session.Sync
	eventRepo store.EventRepo
	slug      string

	st          *session.State
	spinner     components.Spinner
	cursor      int
	watchSecs   int // seconds on the current lesson, reset on change
	totalWatch  int // seconds across the whole session
	loaded      bool
	notEnrolled bool
	errMsg      string
	statusMsg   string
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)

// New creates a LearnScreen for the given course slug.
func New(backend session.Backend, eventRepo store.EventRepo, slug string) *LearnScreen {
	return &LearnScreen{
		backend:   backend,
		sync:      session.NewSync(backend),
		eventRepo: eventRepo,
		slug:      slug,
		spinner:   components.NewSpinner("Loading course..."),
	}
}

func (s *LearnScreen) Init() tea.Cmd {
	return tea.Batch(s.beginSession(), s.spinner.Init())
}

func (s *LearnScreen) Title() string {
	if s.st != nil {
		return s.st.Course().Title
	}
	return "Learning"
}

func (s *LearnScreen) KeyHints() []layout.KeyHint {
	if s.st == nil || s.notEnrolled || s.errMsg != "" {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "N/P", Description: "Next/Prev lesson"},
		{Key: "C", Description: "Mark complete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleReady(msg)
	case markCompleteResultMsg:
		return s.handleMarkResult(msg)
	case watchTickMsg:
		if s.st != nil && s.st.CurrentLessonID() != "" {
			s.watchSecs++
			return s, s.tick()
		}
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if !s.loaded {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

// beginSession bootstraps the session off the UI loop. The whole visible
// session gates on this one command; everything after it is non-blocking.
func (s *LearnScreen) beginSession() tea.Cmd {
	return func() tea.Msg {
		st, err := session.Begin(context.Background(), s.backend, s.slug)
		return sessionReadyMsg{State: st, Err: err}
	}
}

func (s *LearnScreen) handleReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	s.loaded = true

	if errors.Is(msg.Err, session.ErrNotEnrolled) {
		s.notEnrolled = true
		return s, nil
	}
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.st = msg.State
	s.cursor = s.cursorForLesson(s.st.CurrentLessonID())

	s.appendEvent(func(ctx context.Context) error {
		return s.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:   s.st.SessionID,
			CourseID:    s.st.Course().ID,
			CourseTitle: s.st.Course().Title,
			Action:      "start",
		})
	})

	if s.st.CurrentLessonID() == "" {
		// Empty course: nothing to watch, nothing to tick.
		return s, nil
	}
	return s, s.tick()
}

func (s *LearnScreen) handleMarkResult(msg markCompleteResultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		fmt.Fprintf(os.Stderr, "warning: mark complete failed: %v\n", msg.Err)
		s.statusMsg = "Couldn't save completion — press C to retry"
		return s, nil
	}
	if msg.Applied {
		s.statusMsg = ""
	}
	return s, nil
}

func (s *LearnScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.st == nil || s.notEnrolled || s.errMsg != "" {
		if msg.String() == "esc" {
			return s, s.endSession()
		}
		return s, nil
	}

	rows := s.visibleRows()

	switch msg.String() {
	case "esc":
		return s, s.endSession()

	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil

	case "down", "j":
		if s.cursor < len(rows)-1 {
			s.cursor++
		}
		return s, nil

	case "enter":
		if s.cursor < 0 || s.cursor >= len(rows) {
			return s, nil
		}
		r := rows[s.cursor]
		if r.kind == rowSection {
			s.st.ToggleSection(r.sectionID)
			return s, nil
		}
		return s, s.selectLesson(r.lessonID)

	case "n", "right":
		if _, next := s.st.Neighbors(); next != nil {
			return s, s.selectLesson(next.LessonID)
		}
		return s, nil

	case "p", "left":
		if prev, _ := s.st.Neighbors(); prev != nil {
			return s, s.selectLesson(prev.LessonID)
		}
		return s, nil

	case "c":
		return s, s.markComplete()
	}

	return s, nil
}

// selectLesson switches the current lesson: flush the watch time spent on
// the old one, move, and persist the new resume position without blocking
// navigation.
func (s *LearnScreen) selectLesson(lessonID string) tea.Cmd {
	prev := s.st.CurrentLessonID()
	if lessonID == prev {
		return nil
	}
	if !s.st.SelectLesson(lessonID) {
		return nil
	}
	s.flushWatch(prev)
	s.cursor = s.cursorForLesson(lessonID)
	s.statusMsg = ""

	// The new lesson has no watch time yet.
	st := s.st
	return func() tea.Msg {
		s.sync.SaveLastLesson(context.Background(), st, 0)
		return nil
	}
}

// markComplete issues the completion call for the lesson current at the
// keypress. The target id is fixed here, not when the command goroutine
// runs, so navigating away before the call lands can never complete a
// different lesson. The already-complete and in-flight guards live in the
// sync service; checking here as well just avoids spawning a no-op
// command.
func (s *LearnScreen) markComplete() tea.Cmd {
	current := s.st.CurrentLessonID()
	if current == "" || s.st.IsCompleted(current) || s.st.Marking() {
		return nil
	}

	st := s.st
	return func() tea.Msg {
		applied, err := s.sync.MarkComplete(context.Background(), st, current)
		if err != nil {
			return markCompleteResultMsg{LessonID: current, Err: err}
		}
		if applied {
			lesson, _, _ := st.Course().FindLesson(current)
			s.appendEvent(func(ctx context.Context) error {
				return s.eventRepo.AppendCompletionEvent(ctx, store.CompletionEventData{
					SessionID:   st.SessionID,
					CourseID:    st.Course().ID,
					LessonID:    current,
					LessonTitle: lesson.Title,
				})
			})
		}
		return markCompleteResultMsg{LessonID: current, Applied: applied}
	}
}

// endSession tears the session down: flush the open watch span, persist
// the resume position, journal the end event, and pop the screen. All
// remote work is fire-and-forget; leaving must never block.
func (s *LearnScreen) endSession() tea.Cmd {
	if s.st == nil {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}

	span := s.flushWatch(s.st.CurrentLessonID())
	st := s.st

	s.appendEvent(func(ctx context.Context) error {
		return s.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:        st.SessionID,
			CourseID:         st.Course().ID,
			CourseTitle:      st.Course().Title,
			Action:           "end",
			LessonsCompleted: st.CompletedCount(),
			WatchSecs:        s.totalWatch,
		})
	})

	return func() tea.Msg {
		s.sync.SaveLastLesson(context.Background(), st, span)
		st.Close()
		return router.PopScreenMsg{}
	}
}

// flushWatch journals the seconds accumulated on lessonID and rolls them
// into the session total. Returns the flushed span. Callers only flush
// after a confirmed lesson change or at teardown, so the span is always
// attributed to the lesson it was watched on.
func (s *LearnScreen) flushWatch(lessonID string) int {
	if s.st == nil || s.watchSecs == 0 || lessonID == "" {
		return 0
	}
	secs := s.watchSecs
	s.appendEvent(func(ctx context.Context) error {
		return s.eventRepo.AppendWatchEvent(ctx, store.WatchEventData{
			SessionID: s.st.SessionID,
			CourseID:  s.st.Course().ID,
			LessonID:  lessonID,
			Seconds:   secs,
		})
	})
	s.totalWatch += secs
	s.watchSecs = 0
	return secs
}

// appendEvent runs a journal append, logging instead of failing — the
// journal is telemetry, it never interrupts the session.
func (s *LearnScreen) appendEvent(fn func(ctx context.Context) error) {
	if s.eventRepo == nil {
		return
	}
	if err := fn(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to journal event: %v\n", err)
	}
}

func (s *LearnScreen) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

// visibleRows projects the outline plus the expansion set into the list
// of selectable sidebar rows. Collapsed sections contribute only their
// header row; navigation order is unaffected either way.
func (s *LearnScreen) visibleRows() []row {
	out := s.st.Outline()
	rows := make([]row, 0, len(out.Sections))
	for _, sec := range out.Sections {
		rows = append(rows, row{kind: rowSection, sectionID: sec.ID})
		if !s.st.IsExpanded(sec.ID) {
			continue
		}
		for _, l := range sec.Lessons {
			rows = append(rows, row{kind: rowLesson, sectionID: sec.ID, lessonID: l.ID})
		}
	}
	return rows
}

// cursorForLesson finds the sidebar row for a lesson, falling back to 0.
func (s *LearnScreen) cursorForLesson(lessonID string) int {
	if lessonID == "" {
		return 0
	}
	for i, r := range s.visibleRows() {
		if r.kind == rowLesson && r.lessonID == lessonID {
			return i
		}
	}
	return 0
}

// currentLesson resolves the current lesson document, if any.
func (s *LearnScreen) currentLesson() (course.Lesson, string, bool) {
	id := s.st.CurrentLessonID()
	if id == "" {
		return course.Lesson{}, "", false
	}
	return s.st.Course().FindLesson(id)
}
