package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/newsroom-agent/internal/pipeline"
	"github.com/jonathan/newsroom-agent/internal/render"
	"github.com/jonathan/newsroom-agent/internal/types"
	"github.com/jonathan/newsroom-agent/internal/wordcount"
)

// GenerateResponse is the response body for /generate.
type GenerateResponse struct {
	RequestID      string                `json:"request_id"`
	Topic          string                `json:"topic"`
	Research       pipeline.StageOutcome `json:"research_stage"`
	Draft          pipeline.StageOutcome `json:"draft_stage"`
	Final          pipeline.StageOutcome `json:"final_stage"`
	Headline       string                `json:"headline,omitempty"`
	HTML           string                `json:"html,omitempty"`
	ProcessingTime float64               `json:"processing_time"`
}

// StageResponse is the response body for the regenerate endpoints, keyed by
// the stage slot name.
type StageResponse struct {
	Research       *pipeline.StageOutcome `json:"research_stage,omitempty"`
	Draft          *pipeline.StageOutcome `json:"draft_stage,omitempty"`
	Final          *pipeline.StageOutcome `json:"final_stage,omitempty"`
	ProcessingTime float64                `json:"processing_time"`
}

// handleGenerate runs the full research -> draft -> edit pipeline.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	requestID := uuid.New().String()
	maxLength := s.cfg.ClampLength(req.MaxLength)
	log.Printf("Starting pipeline run %s: topic=%q max_length=%d", requestID, req.Topic, maxLength)

	start := time.Now()
	result := s.pipeline.Run(r.Context(), req.Topic, maxLength)
	elapsed := time.Since(start).Seconds()

	resp := GenerateResponse{
		RequestID:      requestID,
		Topic:          req.Topic,
		Research:       result.Research,
		Draft:          result.Draft,
		Final:          result.Edit,
		ProcessingTime: elapsed,
	}
	if result.Edit.Status == pipeline.StatusSuccess {
		article, err := render.FromMarkdown(result.Edit.Payload)
		if err != nil {
			log.Printf("Article rendering failed for run %s: %v", requestID, err)
		} else {
			resp.Headline = article.Headline
			resp.HTML = article.HTML
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleRegenerateResearch reruns only the research stage.
func (s *Server) handleRegenerateResearch(w http.ResponseWriter, r *http.Request) {
	var req types.RegenerateResearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	start := time.Now()
	outcome := s.pipeline.ResearchStage(r.Context(), req.Topic, s.cfg.ClampLength(req.MaxLength))

	s.jsonResponse(w, http.StatusOK, StageResponse{
		Research:       &outcome,
		ProcessingTime: time.Since(start).Seconds(),
	})
}

// handleRegenerateDraft reruns only the draft stage from provided research text.
func (s *Server) handleRegenerateDraft(w http.ResponseWriter, r *http.Request) {
	var req types.RegenerateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	start := time.Now()
	outcome := s.pipeline.DraftStage(r.Context(), req.Topic, req.ResearchData, s.cfg.ClampLength(req.MaxLength))

	s.jsonResponse(w, http.StatusOK, StageResponse{
		Draft:          &outcome,
		ProcessingTime: time.Since(start).Seconds(),
	})
}

// handleRegenerateEdit reruns only the edit stage for provided draft text.
// The word-count target is derived from the draft itself so the editor
// neither pads nor guts the article.
func (s *Server) handleRegenerateEdit(w http.ResponseWriter, r *http.Request) {
	var req types.RegenerateEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	maxLength := wordcount.Count(req.DraftContent)
	if maxLength < 100 {
		maxLength = 100
	}

	start := time.Now()
	outcome := s.pipeline.EditStage(r.Context(), req.Topic, req.DraftContent, maxLength)

	s.jsonResponse(w, http.StatusOK, StageResponse{
		Final:          &outcome,
		ProcessingTime: time.Since(start).Seconds(),
	})
}
