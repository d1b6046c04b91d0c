package learn

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyhall/internal/api"
	"github.com/abhisek/studyhall/internal/course"
	"github.com/abhisek/studyhall/internal/screen"
	"github.com/abhisek/studyhall/internal/session"
	"github.com/abhisek/studyhall/internal/store"
)

// fakeBackend implements session.Backend for testing.
type fakeBackend struct {
	course    *course.Course
	enrolled  bool
	progress  *api.CourseProgress
	markErr   error
	markCalls int
}

func (f *fakeBackend) GetCourse(_ context.Context, _ string) (*course.Course, error) {
	if f.course == nil {
		return nil, errors.New("course not found")
	}
	return f.course, nil
}

func (f *fakeBackend) IsEnrolled(_ context.Context, _ string) (bool, error) {
	return f.enrolled, nil
}

func (f *fakeBackend) GetProgress(_ context.Context, _ string) (*api.CourseProgress, error) {
	return f.progress, nil
}

func (f *fakeBackend) MarkLessonComplete(_ context.Context, _, _ string) error {
	f.markCalls++
	return f.markErr
}

func (f *fakeBackend) SetLastLesson(_ context.Context, _, _ string, _ int) error {
	return nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents    []store.SessionEventData
	watchEvents      []store.WatchEventData
	completionEvents []store.CompletionEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendWatchEvent(_ context.Context, data store.WatchEventData) error {
	m.watchEvents = append(m.watchEvents, data)
	return nil
}
func (m *mockEventRepo) AppendCompletionEvent(_ context.Context, data store.CompletionEventData) error {
	m.completionEvents = append(m.completionEvents, data)
	return nil
}
func (m *mockEventRepo) SessionSummaries(_ context.Context, _ int) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) JournalTotals(_ context.Context) (store.Totals, error) {
	return store.Totals{}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testCourse() *course.Course {
	return &course.Course{
		ID:    "crs-1",
		Slug:  "go-basics",
		Title: "Go Basics",
		Sections: []course.Section{
			{ID: "sec-1", Title: "Getting Started", Lessons: []course.Lesson{
				{ID: "l1", Title: "Installing Go", DurationMin: 5},
				{ID: "l2", Title: "Hello World", DurationMin: 8},
			}},
			{ID: "sec-2", Title: "Types", Lessons: []course.Lesson{
				{ID: "l3", Title: "Structs", DurationMin: 12},
			}},
		},
	}
}

// readyScreen builds a LearnScreen with a live session, the way Init's
// command would.
func readyScreen(t *testing.T, backend *fakeBackend, repo *mockEventRepo) *LearnScreen {
	t.Helper()
	s := New(backend, repo, "go-basics")
	st, err := session.Begin(context.Background(), backend, "go-basics")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	var scr screen.Screen = s
	scr, _ = scr.Update(sessionReadyMsg{State: st})
	return scr.(*LearnScreen)
}

func TestLearnScreen_Title(t *testing.T) {
	s := New(&fakeBackend{}, &mockEventRepo{}, "go-basics")
	if s.Title() != "Learning" {
		t.Errorf("Title = %q, want %q before load", s.Title(), "Learning")
	}
}

func TestLearnScreen_View_Loading(t *testing.T) {
	s := New(&fakeBackend{}, &mockEventRepo{}, "go-basics")
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestLearnScreen_NotEnrolled(t *testing.T) {
	s := New(&fakeBackend{}, &mockEventRepo{}, "go-basics")
	var scr screen.Screen = s
	scr, _ = scr.Update(sessionReadyMsg{Err: session.ErrNotEnrolled})
	ls := scr.(*LearnScreen)

	if !ls.notEnrolled {
		t.Error("expected notEnrolled after gate refusal")
	}
	if ls.View(80, 24) == "" {
		t.Error("expected non-empty view for not-enrolled state")
	}
}

func TestLearnScreen_StartEventJournaled(t *testing.T) {
	backend := &fakeBackend{course: testCourse(), enrolled: true}
	repo := &mockEventRepo{}
	readyScreen(t, backend, repo)

	if len(repo.sessionEvents) != 1 {
		t.Fatalf("session events = %d, want 1", len(repo.sessionEvents))
	}
	if repo.sessionEvents[0].Action != "start" {
		t.Errorf("action = %q, want %q", repo.sessionEvents[0].Action, "start")
	}
	if repo.sessionEvents[0].CourseID != "crs-1" {
		t.Errorf("course id = %q, want %q", repo.sessionEvents[0].CourseID, "crs-1")
	}
}

func TestLearnScreen_ResumesAtFirstLesson(t *testing.T) {
	backend := &fakeBackend{course: testCourse(), enrolled: true}
	s := readyScreen(t, backend, &mockEventRepo{})

	if got := s.st.CurrentLessonID(); got != "l1" {
		t.Errorf("current lesson = %q, want %q", got, "l1")
	}
}

func TestLearnScreen_NextLessonKey(t *testing.T) {
	backend := &fakeBackend{course: testCourse(), enrolled: true}
	s := readyScreen(t, backend, &mockEventRepo{})

	var scr screen.Screen = s
	scr, cmd := scr.Update(keyPress('n'))
	ls := scr.(*LearnScreen)

	if got := ls.st.CurrentLessonID(); got != "l2" {
		t.Errorf("current lesson = %q, want %q after next", got, "l2")
	}
	if cmd == nil {
		t.Error("expected a resume-save command after navigation")
	}
}

func TestLearnScreen_PrevAtFirstLessonStays(t *testing.T) {
	backend := &fakeBackend{course: testCourse(), enrolled: true}
	s := readyScreen(t, backend, &mockEventRepo{})

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('p'))
	ls := scr.(*LearnScreen)

	if got := ls.st.CurrentLessonID(); got != "l1" {
		t.Errorf("current lesson = %q, want %q at start boundary", got, "l1")
	}
}

func TestLearnScreen_NextCrossesSectionBoundary(t *testing.T) {
	backend := &fakeBackend{course: testCourse(), enrolled: true}
	s := readyScreen(t, backend, &mockEventRepo{})

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('n'))
	scr, _ = scr.Update(keyPress('n'))
	ls := scr.(*LearnScreen)

	if got := ls.st.CurrentLessonID(); got != "l3" {
		t.Errorf("current lesson = %q, want %q across sections", got, "l3")
	}
	if !ls.st.IsExpanded("sec-2") {
		t.Error("expected target section to be expanded after navigation")
	}
}

func TestLearnScreen_MarkComplete(t *testing.T) {
	backend := &fakeBackend{course: testCourse(), enrolled: true}
	repo := &mockEventRepo{}
	s := readyScreen(t, backend, repo)

	var scr screen.Screen = s
	_, cmd := scr.Update(keyPress('c'))
	if cmd == nil {
		t.Fatal("expected a mark-complete command")
	}

	msg := cmd()
	result, ok := msg.(markCompleteResultMsg)
	if !ok {
		t.Fatalf("cmd returned %T, want markCompleteResultMsg", msg)
	}
	if !result.Applied {
		t.Error("expected completion to be applied")
	}
	if backend.markCalls != 1 {
		t.Errorf("mark calls = %d, want 1", backend.markCalls)
	}
	if !s.st.IsCompleted("l1") {
		t.Error("expected l1 in completed set")
	}
	if len(repo.completionEvents) != 1 {
		t.Errorf("completion events = %d, want 1", len(repo.completionEvents))
	}
}

func TestLearnScreen_MarkCompleteTwiceIsNoOp(t *testing.T) {
	backend := &fakeBackend{course: testCourse(), enrolled: true}
	s := readyScreen(t, backend, &mockEventRepo{})

	var scr screen.Screen = s
	_, cmd := scr.Update(keyPress('c'))
	cmd()

	_, cmd = scr.Update(keyPress('c'))
	if cmd != nil {
		t.Error("expected no command for an already-complete lesson")
	}
	if backend.markCalls != 1 {
		t.Errorf("mark calls = %d, want 1 after repeat press", backend.markCalls)
	}
}

func TestLearnScreen_MarkCompleteFailureKeepsState(t *testing.T) {
	backend := &fakeBackend{course: testCourse(), enrolled: true, markErr: errors.New("network down")}
	repo := &mockEventRepo{}
	s := readyScreen(t, backend, repo)

	var scr screen.Screen = s
	_, cmd := scr.Update(keyPress('c'))
	msg := cmd()

	result := msg.(markCompleteResultMsg)
	if result.Err == nil {
		t.Fatal("expected an error result")
	}
	if s.st.IsCompleted("l1") {
		t.Error("failed completion must not enter the completed set")
	}
	if len(repo.completionEvents) != 0 {
		t.Errorf("completion events = %d, want 0 on failure", len(repo.completionEvents))
	}

	// The error surfaces as a retry hint.
	scr.Update(result)
	if s.statusMsg == "" {
		t.Error("expected a status message after failed completion")
	}
}

func TestLearnScreen_EscEndsSession(t *testing.T) {
	backend := &fakeBackend{course: testCourse(), enrolled: true}
	repo := &mockEventRepo{}
	s := readyScreen(t, backend, repo)
	s.watchSecs = 42

	var scr screen.Screen = s
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a teardown command")
	}
	cmd()

	if len(repo.watchEvents) != 1 || repo.watchEvents[0].Seconds != 42 {
		t.Errorf("watch events = %+v, want one with 42 seconds", repo.watchEvents)
	}

	var end *store.SessionEventData
	for i := range repo.sessionEvents {
		if repo.sessionEvents[i].Action == "end" {
			end = &repo.sessionEvents[i]
		}
	}
	if end == nil {
		t.Fatal("expected an end event")
	}
	if end.WatchSecs != 42 {
		t.Errorf("end watch secs = %d, want 42", end.WatchSecs)
	}
}

func TestLearnScreen_MarkCompleteAfterNavigatingIsDropped(t *testing.T) {
	backend := &fakeBackend{course: testCourse(), enrolled: true}
	repo := &mockEventRepo{}
	s := readyScreen(t, backend, repo)

	// Press C on l1, then navigate to l2 before the command goroutine runs.
	var scr screen.Screen = s
	_, markCmd := scr.Update(keyPress('c'))
	if markCmd == nil {
		t.Fatal("expected a mark-complete command")
	}
	scr.Update(keyPress('n'))

	msg := markCmd()
	result := msg.(markCompleteResultMsg)

	if result.Applied {
		t.Error("stale target must not apply")
	}
	if backend.markCalls != 0 {
		t.Errorf("mark calls = %d, want 0 (no request for the lesson left behind)", backend.markCalls)
	}
	if s.st.IsCompleted("l1") || s.st.IsCompleted("l2") {
		t.Error("neither lesson may enter the completed set")
	}
	if len(repo.completionEvents) != 0 {
		t.Errorf("completion events = %d, want 0", len(repo.completionEvents))
	}

	// The guard releases: marking the now-current lesson works.
	_, cmd := scr.Update(keyPress('c'))
	if cmd == nil {
		t.Fatal("expected a mark-complete command for the current lesson")
	}
	cmd()
	if !s.st.IsCompleted("l2") {
		t.Error("expected l2 completed after marking the current lesson")
	}
	if backend.markCalls != 1 {
		t.Errorf("mark calls = %d, want 1", backend.markCalls)
	}
}

func TestLearnScreen_InvalidSelectionDoesNotFlushWatch(t *testing.T) {
	backend := &fakeBackend{course: testCourse(), enrolled: true}
	repo := &mockEventRepo{}
	s := readyScreen(t, backend, repo)
	s.watchSecs = 17

	if cmd := s.selectLesson("no-such-lesson"); cmd != nil {
		t.Error("expected no command for an unknown lesson id")
	}

	if len(repo.watchEvents) != 0 {
		t.Errorf("watch events = %d, want 0 (span stays on the current lesson)", len(repo.watchEvents))
	}
	if s.watchSecs != 17 {
		t.Errorf("watchSecs = %d, want 17 (unchanged)", s.watchSecs)
	}
	if got := s.st.CurrentLessonID(); got != "l1" {
		t.Errorf("current lesson = %q, want unchanged %q", got, "l1")
	}
}

func TestLearnScreen_SidebarTruncationKeepsValidUTF8(t *testing.T) {
	c := testCourse()
	c.Sections[0].Lessons[0].Title = "Введение в Go: пакеты, модули и инструменты сборки"
	backend := &fakeBackend{course: c, enrolled: true}
	s := readyScreen(t, backend, &mockEventRepo{})

	view := s.View(80, 24)
	if !utf8.ValidString(view) {
		t.Error("sidebar rendering must not split multibyte runes")
	}
}

func TestLearnScreen_ToggleSectionDoesNotMoveLesson(t *testing.T) {
	backend := &fakeBackend{course: testCourse(), enrolled: true}
	s := readyScreen(t, backend, &mockEventRepo{})

	// Cursor row 0 is the first section header.
	s.cursor = 0
	var scr screen.Screen = s
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	ls := scr.(*LearnScreen)

	if ls.st.IsExpanded("sec-1") {
		t.Error("expected sec-1 collapsed after toggle")
	}
	if got := ls.st.CurrentLessonID(); got != "l1" {
		t.Errorf("current lesson = %q, want unchanged %q", got, "l1")
	}

	// Navigation still reaches the collapsed section's lessons.
	scr, _ = ls.Update(keyPress('n'))
	ls = scr.(*LearnScreen)
	if got := ls.st.CurrentLessonID(); got != "l2" {
		t.Errorf("current lesson = %q, want %q with section collapsed", got, "l2")
	}
}
