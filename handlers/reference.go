// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/perma-check/dailytask"
	"github.com/danielhkuo/perma-check/db"
	"github.com/danielhkuo/perma-check/middleware"
	"github.com/danielhkuo/perma-check/models"
	"github.com/danielhkuo/perma-check/survey"
)

type CatalogHandler struct {
	catalog *survey.Catalog
}

func NewCatalogHandler(catalog *survey.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GetCatalog handles GET /catalog
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.CatalogResponse{
		Scale:      h.catalog.Scale(),
		ScaleSteps: h.catalog.Scale().Values(),
		TotalItems: h.catalog.Len(),
		Maximum:    h.catalog.Maximum(),
		Domains:    h.catalog.Domains(),
	})
}

type DailyTaskHandler struct{}

func NewDailyTaskHandler() *DailyTaskHandler {
	return &DailyTaskHandler{}
}

// ListTasks handles GET /daily-tasks
func (h *DailyTaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.DailyTasksResponse{
		Default: dailytask.DefaultDosage,
		Tasks:   dailytask.All(),
	})
}

// GetTask handles GET /daily-tasks/{dosage}
func (h *DailyTaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := dailytask.Lookup(r.PathValue("dosage"))
	if errors.Is(err, dailytask.ErrUnknownDosage) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown dosage")
		return
	}
	if err != nil {
		slog.Error("failed to look up task", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, task)
}

type ExportHandler struct {
	store *db.SnapshotStore
}

// NewExportHandler creates the archive reader. A nil store means the
// archive is disabled and every lookup is a 404.
func NewExportHandler(store *db.SnapshotStore) *ExportHandler {
	return &ExportHandler{store: store}
}

// GetExport handles GET /exports/{slug}
func (h *ExportHandler) GetExport(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Export archive is disabled")
		return
	}

	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	snap, err := h.store.GetBySlug(r.Context(), slug)
	if errors.Is(err, db.ErrSnapshotNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Export not found")
		return
	}
	if err != nil {
		slog.Error("failed to query snapshot", "error", err, "slug", slug)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, snap)
}
