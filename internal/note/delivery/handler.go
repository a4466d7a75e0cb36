package delivery

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ytnote/internal/note/dto"
	"ytnote/internal/note/usecase"
	"ytnote/pkg/youtube"
)

// NoteHandler handles the note endpoints
type NoteHandler struct {
	noteUsecase usecase.NoteUsecase
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(noteUsecase usecase.NoteUsecase) *NoteHandler {
	return &NoteHandler{noteUsecase: noteUsecase}
}

// POST /transcript
// CreateTranscript fetches and summarizes a video, saves the note, and
// responds with the rendered note-card fragment.
func (h *NoteHandler) CreateTranscript(c *gin.Context) {
	var req dto.TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	note, err := h.noteUsecase.CreateFromURL(c.Request.Context(), req.YoutubeURL)
	if err != nil {
		var invalidURL *youtube.InvalidURLError
		var transcriptErr *usecase.TranscriptError
		switch {
		case errors.As(err, &invalidURL):
			c.JSON(http.StatusBadRequest, gin.H{"error": invalidURL.Error()})
		case errors.As(err, &transcriptErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": transcriptErr.Message})
		default:
			log.Printf("Transcript request failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.HTML(http.StatusOK, "_note_card.html", gin.H{"Note": note})
}

// POST /summarize
// Summarize is a placeholder endpoint; it validates the body but returns
// a fixed dummy summary regardless of input.
func (h *NoteHandler) Summarize(c *gin.Context) {
	var req dto.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.SummaryResponse{Summary: "This is a dummy summary of the provided transcript."})
}

// POST /note
// WriteNote is a placeholder endpoint; it validates the body but returns
// a fixed dummy note regardless of input.
func (h *NoteHandler) WriteNote(c *gin.Context) {
	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NoteResponse{Note: "This is a dummy note based on the provided summary."})
}

// GET /
// Index renders the full page listing every saved note, newest first.
func (h *NoteHandler) Index(c *gin.Context) {
	notes, err := h.noteUsecase.ListNotes()
	if err != nil {
		log.Printf("Failed to list notes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"Notes": notes})
}
