package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) EventRepo {
	t.Helper()
	repo, err := openTestStore(t).EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionSummaries_RoundTrip(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", CourseID: "crs-1", CourseTitle: "Intro", Action: "start",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", CourseID: "crs-1", CourseTitle: "Intro", Action: "end",
		LessonsCompleted: 2, WatchSecs: 340,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	summaries, err := repo.SessionSummaries(ctx, 10)
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("len(summaries) = %d, want 1 (start events excluded)", len(summaries))
	}
	got := summaries[0]
	if got.CourseTitle != "Intro" || got.LessonsCompleted != 2 || got.WatchSecs != 340 {
		t.Errorf("summary = %+v", got)
	}
}

func TestJournalTotals(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for _, secs := range []int{60, 90} {
		if err := repo.AppendWatchEvent(ctx, WatchEventData{
			SessionID: "s1", CourseID: "crs-1", LessonID: "l1", Seconds: secs,
		}); err != nil {
			t.Fatalf("append watch: %v", err)
		}
	}
	if err := repo.AppendCompletionEvent(ctx, CompletionEventData{
		SessionID: "s1", CourseID: "crs-1", LessonID: "l1", LessonTitle: "Hello",
	}); err != nil {
		t.Fatalf("append completion: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", CourseID: "crs-1", Action: "end",
	}); err != nil {
		t.Fatalf("append end: %v", err)
	}

	totals, err := repo.JournalTotals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.Sessions != 1 || totals.Completions != 1 || totals.WatchSecs != 150 {
		t.Errorf("totals = %+v, want 1 session, 1 completion, 150s", totals)
	}
}
