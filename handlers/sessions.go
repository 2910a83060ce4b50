// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/perma-check/auth"
	"github.com/danielhkuo/perma-check/cliparse"
	"github.com/danielhkuo/perma-check/db"
	"github.com/danielhkuo/perma-check/metrics"
	"github.com/danielhkuo/perma-check/middleware"
	"github.com/danielhkuo/perma-check/models"
	"github.com/danielhkuo/perma-check/registry"
	"github.com/danielhkuo/perma-check/survey"
)

type SessionHandler struct {
	reg   *registry.Registry
	store *db.SnapshotStore
	cfg   cliparse.Config
}

// NewSessionHandler creates the session handler. store may be nil, in which
// case exports are returned without being archived.
func NewSessionHandler(reg *registry.Registry, store *db.SnapshotStore, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{reg: reg, store: store, cfg: cfg}
}

// sessionFunc runs with the session locked.
type sessionFunc func(s *survey.Session, startedAt time.Time) error

// withSession authenticates the request and runs fn on the session named
// by the {id} path value. Errors are written to w; the return value reports
// whether fn ran successfully.
func (h *SessionHandler) withSession(w http.ResponseWriter, r *http.Request, fn sessionFunc) bool {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return false
	}

	key := r.Header.Get(middleware.SessionKeyHeader)
	if err := auth.ValidateSessionKey(sessionID, key, h.cfg.SessionKeySalt); err != nil {
		writeSessionError(w, err)
		return false
	}

	if err := h.reg.With(sessionID, fn); err != nil {
		writeSessionError(w, err)
		return false
	}
	return true
}

// respondState renders the session after a successful fn.
func (h *SessionHandler) respondState(w http.ResponseWriter, r *http.Request, fn sessionFunc) {
	sessionID := r.PathValue("id")

	var state models.SessionState
	ok := h.withSession(w, r, func(s *survey.Session, startedAt time.Time) error {
		if err := fn(s, startedAt); err != nil {
			return err
		}
		state = buildState(sessionID, s, startedAt)
		return nil
	})
	if ok {
		middleware.JSONResponse(w, http.StatusOK, state)
	}
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sessionID := h.reg.Create()

	var state models.SessionState
	err := h.reg.With(sessionID, func(s *survey.Session, startedAt time.Time) error {
		state = buildState(sessionID, s, startedAt)
		return nil
	})
	if err != nil {
		slog.Error("failed to read new session", "error", err, "session_id", sessionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start session")
		return
	}

	metrics.SessionsStarted.Inc()
	slog.Info("session started", "session_id", sessionID, "items", state.TotalItems)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID:  sessionID,
		SessionKey: auth.GenerateSessionKey(sessionID, h.cfg.SessionKeySalt),
		State:      state,
	})
}

// GetSession handles GET /sessions/{id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.respondState(w, r, func(*survey.Session, time.Time) error { return nil })
}

// DeleteSession handles DELETE /sessions/{id}
// Abandoning a session discards its answers.
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	key := r.Header.Get(middleware.SessionKeyHeader)
	if err := auth.ValidateSessionKey(sessionID, key, h.cfg.SessionKeySalt); err != nil {
		writeSessionError(w, err)
		return
	}

	if err := h.reg.Delete(sessionID); err != nil {
		writeSessionError(w, err)
		return
	}

	slog.Info("session abandoned", "session_id", sessionID)
	w.WriteHeader(http.StatusNoContent)
}

// AnswerCurrent handles PUT /sessions/{id}/answer
func (h *SessionHandler) AnswerCurrent(w http.ResponseWriter, r *http.Request) {
	value, ok := parseAnswer(w, r)
	if !ok {
		return
	}
	h.respondState(w, r, func(s *survey.Session, _ time.Time) error {
		return s.AnswerCurrent(value)
	})
}

// AnswerItem handles PUT /sessions/{id}/answers/{item}
// The cursor does not move.
func (h *SessionHandler) AnswerItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("item")
	value, ok := parseAnswer(w, r)
	if !ok {
		return
	}
	h.respondState(w, r, func(s *survey.Session, _ time.Time) error {
		return s.Answer(itemID, value)
	})
}

// Next handles POST /sessions/{id}/next
func (h *SessionHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.respondState(w, r, func(s *survey.Session, _ time.Time) error {
		return s.Next()
	})
}

// Previous handles POST /sessions/{id}/previous
func (h *SessionHandler) Previous(w http.ResponseWriter, r *http.Request) {
	h.respondState(w, r, func(s *survey.Session, _ time.Time) error {
		return s.Previous()
	})
}

// Submit handles POST /sessions/{id}/submit
// Returns the final score and the completed state.
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")

	var resp models.SubmitResponse
	ok := h.withSession(w, r, func(s *survey.Session, startedAt time.Time) error {
		result, err := s.Submit()
		if err != nil {
			return err
		}
		resp.Result = result
		resp.State = buildState(sessionID, s, startedAt)
		return nil
	})
	if !ok {
		return
	}

	metrics.SessionsSubmitted.WithLabelValues(string(resp.Result.Interpretation)).Inc()
	slog.Info("session submitted",
		"session_id", sessionID,
		"percentage", resp.Result.Percentage,
		"interpretation", resp.Result.Interpretation,
	)
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Review handles POST /sessions/{id}/review
func (h *SessionHandler) Review(w http.ResponseWriter, r *http.Request) {
	h.respondState(w, r, func(s *survey.Session, _ time.Time) error {
		return s.Review()
	})
}

// Preview handles GET /sessions/{id}/preview
// Scores the answers so far without changing the session.
func (h *SessionHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var result survey.ScoreResult
	ok := h.withSession(w, r, func(s *survey.Session, _ time.Time) error {
		var err error
		result, err = s.Export()
		return err
	})
	if ok {
		middleware.JSONResponse(w, http.StatusOK, result)
	}
}

// Export handles POST /sessions/{id}/export
// Only completed sessions can be exported. When the archive is configured
// the snapshot is stored and can be fetched by its share slug.
func (h *SessionHandler) Export(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")

	var result survey.ScoreResult
	ok := h.withSession(w, r, func(s *survey.Session, _ time.Time) error {
		if s.Phase() != survey.PhaseCompleted {
			return fmt.Errorf("%w: export requires a completed session", survey.ErrGuardViolation)
		}
		var err error
		result, err = s.Export()
		return err
	})
	if !ok {
		return
	}

	snapshotID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate snapshot ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export results")
		return
	}

	snap := models.ExportSnapshot{
		ID:         snapshotID,
		ComputedAt: time.Now().UTC(),
		Result:     result,
	}

	if h.store != nil {
		snap.ShareSlug = auth.GenerateShareSlug(snapshotID, h.cfg.ExportSlugSalt)
		clientHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.ExportSlugSalt)
		if err := h.store.Save(r.Context(), snap, clientHash); err != nil {
			slog.Error("failed to archive snapshot", "error", err, "session_id", sessionID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to archive results")
			return
		}
		snap.Archived = true
	}

	metrics.Exports.WithLabelValues(strconv.FormatBool(snap.Archived)).Inc()
	slog.Info("session exported",
		"session_id", sessionID,
		"snapshot_id", snapshotID,
		"archived", snap.Archived,
	)
	middleware.JSONResponse(w, http.StatusOK, snap)
}

func parseAnswer(w http.ResponseWriter, r *http.Request) (int, bool) {
	var req models.AnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return 0, false
	}
	if req.Value == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "value is required")
		return 0, false
	}
	return *req.Value, true
}

// writeSessionError maps registry, auth and engine errors to HTTP statuses.
// Unknown-item is checked before invalid-answer since answering an unknown
// id matches both.
func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrSessionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, auth.ErrInvalidSessionKey):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid session key")
	case errors.Is(err, survey.ErrUnknownItem):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, survey.ErrInvalidAnswer):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, survey.ErrGuardViolation):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	default:
		slog.Error("session operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}

func buildState(sessionID string, s *survey.Session, startedAt time.Time) models.SessionState {
	item := s.CurrentItem()
	total := s.Catalog().Len()

	var answer *int
	if v, answered, err := s.Responses().Get(item.ID); err == nil && answered {
		answer = &v
	}

	return models.SessionState{
		SessionID:     sessionID,
		Phase:         s.Phase(),
		Cursor:        s.Cursor(),
		TotalItems:    total,
		Progress:      s.Progress(),
		ProgressLabel: humanize.Ordinal(s.Cursor()+1) + " of " + humanize.Comma(int64(total)),
		CurrentItem: models.CurrentItem{
			ID:     item.ID,
			Text:   item.Text,
			Domain: item.Domain,
			Answer: answer,
		},
		Answers:     s.Responses().Snapshot(),
		CanAdvance:  s.CanAdvance(),
		CanSubmit:   s.CanSubmit(),
		AllAnswered: s.Responses().AllAnswered(),
		StartedAt:   startedAt,
		Started:     humanize.Time(startedAt),
	}
}
