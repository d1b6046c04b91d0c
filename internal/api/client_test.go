package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, Token: "test-token"})
}

func TestGetCourse_DecodesEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/courses/intro-go", r.URL.Path)
		assert.Equal(t, "curriculum", r.URL.Query().Get("include"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"message": "ok",
			"data": {
				"id": "crs-1",
				"slug": "intro-go",
				"title": "Intro to Go",
				"sections": [
					{"id": "sec-1", "title": "Basics", "lessons": [
						{"id": "l1", "title": "Hello", "duration_minutes": 5}
					]}
				]
			}
		}`))
	})

	c, err := client.GetCourse(context.Background(), "intro-go")
	require.NoError(t, err)
	assert.Equal(t, "crs-1", c.ID)
	require.Len(t, c.Sections, 1)
	require.Len(t, c.Sections[0].Lessons, 1)
	assert.Equal(t, 5, c.Sections[0].Lessons[0].DurationMin)
}

func TestGetProgress_404IsNoProgress(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success": false, "message": "no progress"}`))
	})

	p, err := client.GetProgress(context.Background(), "crs-1")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestGetProgress_ServerErrorIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success": false, "message": "boom"}`))
	})

	p, err := client.GetProgress(context.Background(), "crs-1")
	require.Error(t, err)
	assert.Nil(t, p)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Message)
}

func TestGetProgress_DecodesRecord(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"success": true,
			"data": {
				"course_id": "crs-1",
				"total_lessons": 5,
				"completed_lessons": 2,
				"progress_percent": 40,
				"last_lesson_id": "l3",
				"lessons": [
					{"lesson_id": "l1", "is_completed": true},
					{"lesson_id": "l2", "is_completed": true},
					{"lesson_id": "l3", "is_completed": false, "watch_duration_seconds": 90}
				]
			}
		}`))
	})

	p, err := client.GetProgress(context.Background(), "crs-1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "l3", p.LastLessonID)

	set := p.CompletedSet()
	assert.True(t, set["l1"])
	assert.True(t, set["l2"])
	assert.False(t, set["l3"])
}

func TestIsEnrolled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/courses/crs-1/enrollment", r.URL.Path)
		w.Write([]byte(`{"success": true, "data": {"enrolled": true}}`))
	})

	ok, err := client.IsEnrolled(context.Background(), "crs-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsEnrolled_UnauthorizedMapsToSentinel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	ok, err := client.IsEnrolled(context.Background(), "crs-1")
	assert.False(t, ok)
	require.True(t, errors.Is(err, ErrUnauthorized))
}

func TestMarkLessonComplete_PostsToLessonPath(t *testing.T) {
	var gotPath, gotMethod string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Write([]byte(`{"success": true}`))
	})

	err := client.MarkLessonComplete(context.Background(), "crs-1", "l2")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/courses/crs-1/lessons/l2/complete", gotPath)
}

func TestSetLastLesson_SendsBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body := make([]byte, r.ContentLength)
		r.Body.Read(body)
		assert.JSONEq(t, `{"lesson_id": "l2", "watch_seconds": 42}`, string(body))
		w.Write([]byte(`{"success": true}`))
	})

	err := client.SetLastLesson(context.Background(), "crs-1", "l2", 42)
	require.NoError(t, err)
}

func TestDecode_EnvelopeFailureWithOKStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "course unpublished"}`))
	})

	_, err := client.GetCourse(context.Background(), "intro-go")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "course unpublished", apiErr.Message)
}
