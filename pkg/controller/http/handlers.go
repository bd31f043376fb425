package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/remedy/pkg/domain/model"
	"github.com/secmon-lab/remedy/pkg/domain/types"
	"github.com/secmon-lab/remedy/pkg/repository/memory"
	"github.com/secmon-lab/remedy/pkg/service/safety"
	"github.com/secmon-lab/remedy/pkg/usecase"
	"github.com/secmon-lab/remedy/pkg/utils/async"
	"github.com/secmon-lab/remedy/pkg/utils/errutil"
	"github.com/secmon-lab/remedy/pkg/utils/safe"
)

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}

type chatRequest struct {
	Message        string               `json:"message"`
	SessionID      string               `json:"session_id,omitempty"`
	DeviceInfo     *model.DeviceInfo    `json:"device_info,omitempty"`
	TechnicalLevel types.TechnicalLevel `json:"technical_level,omitempty"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	*model.Diagnosis
}

func (s *Server) chatHandler(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid chat request"), http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("message is required"), http.StatusBadRequest)
		return
	}

	level := req.TechnicalLevel
	if level == "" {
		level = types.TechnicalLevelBeginner
	}
	if err := level.Validate(); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	out, err := s.uc.Chat(r.Context(), usecase.ChatInput{
		SessionID:      model.SessionID(req.SessionID),
		Message:        req.Message,
		Device:         req.DeviceInfo,
		TechnicalLevel: level,
	})
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(r.Context(), w, http.StatusOK, chatResponse{
		SessionID: out.SessionID.String(),
		Diagnosis: out.Diagnosis,
	})
}

type analyzeRequest struct {
	Problem    string            `json:"problem"`
	DeviceInfo *model.DeviceInfo `json:"device_info,omitempty"`
}

func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid analyze request"), http.StatusBadRequest)
		return
	}
	if req.Problem == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("problem is required"), http.StatusBadRequest)
		return
	}

	analysis, err := s.uc.Analyze(r.Context(), req.Problem, req.DeviceInfo)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(r.Context(), w, http.StatusOK, analysis)
}

type searchHit struct {
	ID         string  `json:"id"`
	Similarity float64 `json:"similarity"`
	Problem    string  `json:"problem"`
	Category   string  `json:"category"`
	DeviceType string  `json:"device_type"`
	OS         string  `json:"os"`
}

type searchResponse struct {
	Results []searchHit `json:"results"`
	Count   int         `json:"count"`
}

func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("query parameter 'q' is required"), http.StatusBadRequest)
		return
	}

	filter := model.QueryFilter{
		DeviceType: r.URL.Query().Get("device_type"),
		OS:         r.URL.Query().Get("os"),
		Category:   r.URL.Query().Get("category"),
	}

	hits, err := s.uc.SearchSolutions(r.Context(), query, filter)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	results := make([]searchHit, len(hits))
	for i, hit := range hits {
		results[i] = searchHit{
			ID:         string(hit.ID),
			Similarity: hit.Similarity,
			Problem:    hit.Problem,
			Category:   hit.Category,
			DeviceType: hit.DeviceType,
			OS:         hit.OS,
		}
	}

	respondJSON(r.Context(), w, http.StatusOK, searchResponse{
		Results: results,
		Count:   len(results),
	})
}

func (s *Server) addKnowledgeHandler(w http.ResponseWriter, r *http.Request) {
	var record model.KnowledgeRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid knowledge record"), http.StatusBadRequest)
		return
	}

	if err := s.uc.AddKnowledge(r.Context(), &record); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, memory.ErrDuplicateID) {
			status = http.StatusConflict
		}
		errutil.HandleHTTP(r.Context(), w, err, status)
		return
	}

	respondJSON(r.Context(), w, http.StatusCreated, map[string]string{"id": string(record.ID)})
}

func (s *Server) feedbackHandler(w http.ResponseWriter, r *http.Request) {
	var fb usecase.Feedback
	if err := json.NewDecoder(r.Body).Decode(&fb); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid feedback request"), http.StatusBadRequest)
		return
	}
	if err := fb.Validate(); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	// Feedback must never slow down the chat path
	async.Dispatch(r.Context(), func(ctx context.Context) error {
		return s.uc.RecordFeedback(ctx, &fb)
	})

	respondJSON(r.Context(), w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

type commandCheckRequest struct {
	Command string `json:"command"`
}

func (s *Server) checkCommandHandler(w http.ResponseWriter, r *http.Request) {
	var req commandCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid command check request"), http.StatusBadRequest)
		return
	}
	if req.Command == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("command is required"), http.StatusBadRequest)
		return
	}

	respondJSON(r.Context(), w, http.StatusOK, safety.CheckCommandSafety(req.Command))
}

type actionCheckRequest struct {
	Action string `json:"action"`
}

func (s *Server) validateActionHandler(w http.ResponseWriter, r *http.Request) {
	var req actionCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid action check request"), http.StatusBadRequest)
		return
	}
	if req.Action == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("action is required"), http.StatusBadRequest)
		return
	}

	respondJSON(r.Context(), w, http.StatusOK, safety.ValidateUserAction(req.Action))
}

type sessionResponse struct {
	SessionID string          `json:"session_id"`
	Messages  []model.Message `json:"messages"`
}

func (s *Server) getSessionHandler(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(chi.URLParam(r, "sessionID"))

	history, err := s.uc.GetSession(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, memory.ErrNotFound) {
			status = http.StatusNotFound
		}
		errutil.HandleHTTP(r.Context(), w, err, status)
		return
	}

	respondJSON(r.Context(), w, http.StatusOK, sessionResponse{
		SessionID: id.String(),
		Messages:  history,
	})
}

func (s *Server) deleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(chi.URLParam(r, "sessionID"))

	if err := s.uc.DeleteSession(r.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, memory.ErrNotFound) {
			status = http.StatusNotFound
		}
		errutil.HandleHTTP(r.Context(), w, err, status)
		return
	}

	respondJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "deleted"})
}

type healthResponse struct {
	Status         string  `json:"status"`
	KnowledgeCount int     `json:"knowledge_count"`
	LLMConfigured  bool    `json:"llm_configured"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	status, err := s.uc.Status(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusServiceUnavailable)
		return
	}

	respondJSON(r.Context(), w, http.StatusOK, healthResponse{
		Status:         "healthy",
		KnowledgeCount: status.KnowledgeCount,
		LLMConfigured:  status.LLMConfigured,
		UptimeSeconds:  status.UptimeSeconds,
	})
}
