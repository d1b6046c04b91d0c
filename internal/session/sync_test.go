package session

import (
	"context"
	"testing"

	"github.com/abhisek/studyhall/internal/course"
)

func TestMarkComplete_Success(t *testing.T) {
	backend := &fakeBackend{course: testCourse()}
	st := freshState(backend.course)
	sync := NewSync(backend)

	applied, err := sync.MarkComplete(context.Background(), st, "l1")
	if err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}
	if !applied {
		t.Fatal("expected local update to apply")
	}

	if !st.IsCompleted("l1") {
		t.Error("l1 should be in the completed set")
	}
	if got := st.ProgressPercent(); got != 20 {
		t.Errorf("ProgressPercent = %d, want 20 (1/5)", got)
	}
	if st.Marking() {
		t.Error("busy flag should be cleared")
	}
	if backend.completeCalls != 1 {
		t.Errorf("completeCalls = %d, want 1", backend.completeCalls)
	}
}

func TestMarkComplete_SecondCallIsNoOp(t *testing.T) {
	backend := &fakeBackend{course: testCourse()}
	st := freshState(backend.course)
	sync := NewSync(backend)

	if _, err := sync.MarkComplete(context.Background(), st, "l1"); err != nil {
		t.Fatalf("first call: %v", err)
	}
	applied, err := sync.MarkComplete(context.Background(), st, "l1")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if applied {
		t.Error("second call should not apply")
	}
	if backend.completeCalls != 1 {
		t.Errorf("completeCalls = %d, want 1 (second call makes zero requests)", backend.completeCalls)
	}
	if got := st.CompletedCount(); got != 1 {
		t.Errorf("CompletedCount = %d, want 1 (increments exactly once)", got)
	}
}

func TestMarkComplete_FailureLeavesStateAndAllowsRetry(t *testing.T) {
	backend := &fakeBackend{course: testCourse(), completeErr: errNetwork}
	st := freshState(backend.course)
	sync := NewSync(backend)

	applied, err := sync.MarkComplete(context.Background(), st, "l1")
	if err == nil {
		t.Fatal("expected error from backend failure")
	}
	if applied {
		t.Error("failure must not apply the local update")
	}
	if st.IsCompleted("l1") {
		t.Error("completed set must be unchanged on failure")
	}
	if got := st.ProgressPercent(); got != 0 {
		t.Errorf("ProgressPercent = %d, want 0 (unchanged)", got)
	}
	if st.Marking() {
		t.Error("busy flag must clear so the user can retry")
	}

	// Retry after the backend recovers.
	backend.completeErr = nil
	applied, err = sync.MarkComplete(context.Background(), st, "l1")
	if err != nil || !applied {
		t.Fatalf("retry: applied=%v err=%v", applied, err)
	}
	if backend.completeCalls != 2 {
		t.Errorf("completeCalls = %d, want 2", backend.completeCalls)
	}
}

func TestMarkComplete_NoCurrentLesson(t *testing.T) {
	backend := &fakeBackend{}
	empty := &course.Course{ID: "crs-2"}
	st := NewState(empty, Reconcile(empty, nil, nil), nil, "s")
	sync := NewSync(backend)

	applied, err := sync.MarkComplete(context.Background(), st, "")
	if err != nil || applied {
		t.Errorf("empty course: applied=%v err=%v, want false, nil", applied, err)
	}
	if backend.completeCalls != 0 {
		t.Errorf("completeCalls = %d, want 0", backend.completeCalls)
	}
}

func TestMarkComplete_NavigatedAwayBeforeCall(t *testing.T) {
	backend := &fakeBackend{course: testCourse()}
	st := freshState(backend.course)
	sync := NewSync(backend)

	// The learner acted on l1, then navigation moved the session to l2
	// before the async call ran. The stale target must not be completed.
	st.SelectLesson("l2")

	applied, err := sync.MarkComplete(context.Background(), st, "l1")
	if err != nil || applied {
		t.Errorf("stale target: applied=%v err=%v, want false, nil", applied, err)
	}
	if backend.completeCalls != 0 {
		t.Errorf("completeCalls = %d, want 0 (no request for a stale target)", backend.completeCalls)
	}
	if st.IsCompleted("l1") || st.IsCompleted("l2") {
		t.Error("neither lesson may enter the completed set")
	}
	if st.Marking() {
		t.Error("busy flag must not be left set")
	}
}

func TestMarkComplete_BusyGuard(t *testing.T) {
	backend := &fakeBackend{course: testCourse()}
	st := freshState(backend.course)

	// Simulate an in-flight call holding the reservation.
	if !st.beginMark("l1") {
		t.Fatal("beginMark refused")
	}

	sync := NewSync(backend)
	applied, err := sync.MarkComplete(context.Background(), st, "l1")
	if err != nil || applied {
		t.Errorf("concurrent call: applied=%v err=%v, want false, nil", applied, err)
	}
	if backend.completeCalls != 0 {
		t.Errorf("completeCalls = %d, want 0 while busy", backend.completeCalls)
	}

	st.finishMark("l1", true)
	if !st.IsCompleted("l1") {
		t.Error("original in-flight call should still apply")
	}
}

func TestMarkComplete_NotAppliedAfterClose(t *testing.T) {
	backend := &fakeBackend{course: testCourse()}
	st := freshState(backend.course)

	if !st.beginMark("l1") {
		t.Fatal("beginMark refused")
	}
	st.Close()

	if st.finishMark("l1", true) {
		t.Error("finishMark after Close should not apply")
	}
	if st.IsCompleted("l1") {
		t.Error("completed set must not change after teardown")
	}
}

func TestSaveLastLesson_SendsCurrentLesson(t *testing.T) {
	backend := &fakeBackend{course: testCourse()}
	st := freshState(backend.course)
	st.SelectLesson("l3")
	sync := NewSync(backend)

	sync.SaveLastLesson(context.Background(), st, 75)

	if backend.lastLessonCalls != 1 {
		t.Fatalf("lastLessonCalls = %d, want 1", backend.lastLessonCalls)
	}
	if backend.lastSavedLesson != "l3" || backend.lastSavedSecs != 75 {
		t.Errorf("saved %s/%ds, want l3/75s", backend.lastSavedLesson, backend.lastSavedSecs)
	}
}

func TestSaveLastLesson_FailureIsAbsorbed(t *testing.T) {
	backend := &fakeBackend{course: testCourse(), lastLessonErr: errNetwork}
	st := freshState(backend.course)
	sync := NewSync(backend)

	// Must not panic or mutate state; failure is logged only.
	sync.SaveLastLesson(context.Background(), st, 10)

	if got := st.CurrentLessonID(); got != "l1" {
		t.Errorf("CurrentLessonID = %s, want l1 (navigation unaffected)", got)
	}
}
