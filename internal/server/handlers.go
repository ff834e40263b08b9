package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/skillgap-analyzer/internal/config"
	"github.com/jonathan/skillgap-analyzer/internal/extraction"
	"github.com/jonathan/skillgap-analyzer/internal/pipeline"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// tokenSubject identifies the holder of the operator API key in issued
// bearer tokens.
const tokenSubject = "operator"

// handleToken exchanges the operator API key for a short-lived bearer token.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var req types.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "api_key is required")
		return
	}

	if !s.apiKeys.VerifyKey(req.APIKey) {
		s.errorResponse(w, HTTPStatus(ErrInvalidAPIKey), "Invalid API key")
		return
	}

	token, err := s.jwtService.GenerateToken(tokenSubject)
	if err != nil {
		log.Printf("Token generation failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.TokenResponse{Token: token})
}

// handleAnalyze runs a full gap analysis on the submitted documents.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(ErrInvalidRequest), "Invalid request: "+err.Error())
		return
	}

	opts := pipeline.Options{
		ResumeText:          req.ResumeText,
		JDText:              req.JDText,
		ConfidenceThreshold: req.ConfidenceThreshold,
		SimilarityThreshold: req.SimilarityThreshold,
		IncludeATS:          req.IncludeATS,
	}
	if opts.ConfidenceThreshold == 0 {
		opts.ConfidenceThreshold = config.DefaultConfidenceThreshold
	}
	if opts.SimilarityThreshold == 0 {
		opts.SimilarityThreshold = config.DefaultSimilarityThreshold
	}

	report, err := s.pipeline.Run(r.Context(), opts)
	if err != nil {
		log.Printf("Analysis failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), "Analysis failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleATS runs a standalone ATS compatibility check without the full
// gap analysis.
func (s *Server) handleATS(w http.ResponseWriter, r *http.Request) {
	var req types.ATSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(ErrInvalidRequest), "Invalid request: "+err.Error())
		return
	}

	extractor := extraction.New(s.vocab)
	resumeSkills := extractor.Extract(req.ResumeText, config.DefaultConfidenceThreshold)
	jdSkills := extractor.Extract(req.JDText, config.DefaultConfidenceThreshold)

	result := s.scorer.Score(req.ResumeText, req.JDText,
		types.SkillNames(resumeSkills), types.SkillNames(jdSkills))

	s.jsonResponse(w, http.StatusOK, result)
}

// handleListAnalyses returns recent report summaries from the database.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.database == nil {
		s.errorResponse(w, HTTPStatus(ErrHistoryDisabled), ErrHistoryDisabled.Error())
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	summaries, err := s.database.ListReports(r.Context(), limit)
	if err != nil {
		log.Printf("Listing analyses failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), "Failed to list analyses")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": summaries})
}

// handleGetAnalysis returns one stored report by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.database == nil {
		s.errorResponse(w, HTTPStatus(ErrHistoryDisabled), ErrHistoryDisabled.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID format")
		return
	}

	report, err := s.database.GetReport(r.Context(), id)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("Fetching analysis %s failed: %v", id, err)
			s.errorResponse(w, status, "Failed to fetch analysis")
			return
		}
		s.errorResponse(w, status, "Analysis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}
