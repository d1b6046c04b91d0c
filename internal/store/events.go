package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studyhall/ent"
	"github.com/abhisek/studyhall/ent/sessionevent"
	"github.com/abhisek/studyhall/ent/watchevent"
)

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetCourseID(data.CourseID).
		SetCourseTitle(data.CourseTitle).
		SetAction(data.Action).
		SetLessonsCompleted(data.LessonsCompleted).
		SetWatchSecs(data.WatchSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendWatchEvent(ctx context.Context, data WatchEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.WatchEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetCourseID(data.CourseID).
		SetLessonID(data.LessonID).
		SetSeconds(data.Seconds).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save watch event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendCompletionEvent(ctx context.Context, data CompletionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CompletionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetCourseID(data.CourseID).
		SetLessonID(data.LessonID).
		SetLessonTitle(data.LessonTitle).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save completion event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionSummaries(ctx context.Context, limit int) ([]SessionSummaryRecord, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	records := make([]SessionSummaryRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionSummaryRecord{
			SessionID:        e.SessionID,
			CourseID:         e.CourseID,
			CourseTitle:      e.CourseTitle,
			LessonsCompleted: e.LessonsCompleted,
			WatchSecs:        e.WatchSecs,
			Timestamp:        e.Timestamp,
		})
	}
	return records, nil
}

func (r *eventRepo) JournalTotals(ctx context.Context) (Totals, error) {
	sessions, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Count(ctx)
	if err != nil {
		return Totals{}, fmt.Errorf("count sessions: %w", err)
	}

	completions, err := r.client.CompletionEvent.Query().Count(ctx)
	if err != nil {
		return Totals{}, fmt.Errorf("count completions: %w", err)
	}

	// Sum returns an error on an empty table in some drivers; treat that
	// as zero rather than failing the stats view.
	watchSecs, err := r.client.WatchEvent.Query().
		Aggregate(ent.Sum(watchevent.FieldSeconds)).
		Int(ctx)
	if err != nil {
		watchSecs = 0
	}

	return Totals{Sessions: sessions, Completions: completions, WatchSecs: watchSecs}, nil
}
