package dto

// TranscriptRequest is the body of POST /transcript
type TranscriptRequest struct {
	YoutubeURL string `json:"youtube_url" binding:"required"`
}

// SummaryRequest is the body of POST /summarize
type SummaryRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

// SummaryResponse is the response of POST /summarize
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// NoteRequest is the body of POST /note
type NoteRequest struct {
	Summary string `json:"summary" binding:"required"`
}

// NoteResponse is the response of POST /note
type NoteResponse struct {
	Note string `json:"note"`
}
