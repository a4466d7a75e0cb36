package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ytnote/internal/note/delivery"
	"ytnote/internal/note/domain"
	"ytnote/internal/note/repository"
	"ytnote/internal/note/usecase"
	"ytnote/pkg/database"
	"ytnote/pkg/youtube"
)

type fakeFetcher struct {
	segments []youtube.Segment
	err      error
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) ([]youtube.Segment, error) {
	return f.segments, f.err
}

type fakeSummarizer struct {
	summary string
	err     error
}

func (f *fakeSummarizer) SummarizeTranscript(_ context.Context, _ string) (string, error) {
	return f.summary, f.err
}

func newTestServer(t *testing.T) (*gin.Engine, *fakeFetcher, *fakeSummarizer, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: domain.Now,
		Logger:  logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection to :memory: would get its own database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	fetcher := &fakeFetcher{segments: []youtube.Segment{
		{Start: 5.0, Text: "Intro"},
		{Start: 62.3, Text: "Main content"},
	}}
	summarizer := &fakeSummarizer{summary: "# Test Summary\n\n- Bullet 1\n- Bullet 2"}

	repo := repository.NewGormNoteRepository(db)
	uc := usecase.NewNoteUsecase(fetcher, summarizer, repo)
	r := SetupRouter(delivery.NewNoteHandler(uc))

	return r, fetcher, summarizer, db
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTranscriptEndpointRendersHTMLAndWritesDB(t *testing.T) {
	r, _, _, db := newTestServer(t)
	url := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

	w := postJSON(r, "/transcript", `{"youtube_url": "`+url+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Summary")
	assert.Contains(t, w.Body.String(), "Transcript")
	assert.Contains(t, w.Body.String(), "Test Summary")

	var note domain.Note
	require.NoError(t, db.Where("youtube_url = ?", url).First(&note).Error)
	assert.Contains(t, note.Transcript, "[00:05] Intro")
	assert.Contains(t, note.Transcript, "[01:02] Main content")
	assert.NotEmpty(t, note.Summary)
	assert.Equal(t, "Test Summary", note.Title)
}

func TestTranscriptEndpointValidatesInput(t *testing.T) {
	r, _, _, _ := newTestServer(t)

	// Missing field
	w := postJSON(r, "/transcript", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Wrong type
	w = postJSON(r, "/transcript", `{"youtube_url": 12345}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestTranscriptEndpointRejectsInvalidURL(t *testing.T) {
	r, _, _, _ := newTestServer(t)

	w := postJSON(r, "/transcript", `{"youtube_url": "https://example.com/not-youtube"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "could not extract video ID")
}

func TestTranscriptEndpointHandlesYouTubeErrors(t *testing.T) {
	r, fetcher, _, _ := newTestServer(t)
	fetcher.segments = nil
	fetcher.err = errors.New("Could not retrieve a transcript for the video no-transcript")

	w := postJSON(r, "/transcript", `{"youtube_url": "https://www.youtube.com/watch?v=no-transcript"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No transcript available")
}

func TestTranscriptEndpointSummarizerFailureIs500(t *testing.T) {
	r, _, summarizer, db := newTestServer(t)
	summarizer.summary = ""
	summarizer.err = errors.New("model overloaded")

	w := postJSON(r, "/transcript", `{"youtube_url": "https://youtu.be/abc123"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var count int64
	require.NoError(t, db.Model(&domain.Note{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTranscriptUpsertOverwritesAndClearsNote(t *testing.T) {
	r, fetcher, summarizer, db := newTestServer(t)
	url := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

	w := postJSON(r, "/transcript", `{"youtube_url": "`+url+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// User writes a note on the saved row.
	require.NoError(t, db.Model(&domain.Note{}).
		Where("youtube_url = ?", url).
		Update("note", "my thoughts").Error)

	fetcher.segments = []youtube.Segment{{Start: 0, Text: "Re-fetched"}}
	summarizer.summary = "A newer summary."

	w = postJSON(r, "/transcript", `{"youtube_url": "`+url+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&domain.Note{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var note domain.Note
	require.NoError(t, db.Where("youtube_url = ?", url).First(&note).Error)
	assert.Equal(t, "[00:00] Re-fetched", note.Transcript)
	assert.Equal(t, "A newer summary.", note.Summary)
	assert.Equal(t, "A newer summary.", note.Title)
	assert.Empty(t, note.Note)
}

func TestIndexListsNewestFirst(t *testing.T) {
	r, _, summarizer, _ := newTestServer(t)

	summarizer.summary = "First video summary."
	w := postJSON(r, "/transcript", `{"youtube_url": "https://youtu.be/first"}`)
	require.Equal(t, http.StatusOK, w.Code)

	summarizer.summary = "Second video summary."
	w = postJSON(r, "/transcript", `{"youtube_url": "https://youtu.be/second"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	first := strings.Index(body, "https://youtu.be/first")
	second := strings.Index(body, "https://youtu.be/second")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, second, first, "newest note should render before the older one")
}

func TestSummarizeAndNoteStubs(t *testing.T) {
	r, _, _, _ := newTestServer(t)

	w := postJSON(r, "/summarize", `{"transcript": "anything"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"summary": "This is a dummy summary of the provided transcript."}`, w.Body.String())

	w = postJSON(r, "/note", `{"summary": "anything"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"note": "This is a dummy note based on the provided summary."}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	r, _, _, _ := newTestServer(t)

	w := get(r, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	r, _, _, _ := newTestServer(t)

	w := get(r, "/health")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "client-supplied", w.Header().Get("X-Request-ID"))
}
