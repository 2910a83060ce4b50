// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/perma-check/cliparse"
	"github.com/danielhkuo/perma-check/db"
	"github.com/danielhkuo/perma-check/handlers"
	"github.com/danielhkuo/perma-check/metrics"
	"github.com/danielhkuo/perma-check/middleware"
	"github.com/danielhkuo/perma-check/registry"
)

func NewRouter(reg *registry.Registry, store *db.SnapshotStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(reg, store, cfg)
	catalogHandler := handlers.NewCatalogHandler(reg.Catalog())
	taskHandler := handlers.NewDailyTaskHandler()
	exportHandler := handlers.NewExportHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", metrics.Handler())

	// Instrument
	mux.HandleFunc("GET /catalog", middleware.WithLogging(catalogHandler.GetCatalog))

	// Session lifecycle (requires X-Session-Key after creation)
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(sessionHandler.GetSession))
	mux.HandleFunc("DELETE /sessions/{id}", middleware.WithLogging(sessionHandler.DeleteSession))

	// Answering and navigation
	mux.HandleFunc("PUT /sessions/{id}/answer", middleware.WithLogging(sessionHandler.AnswerCurrent))
	mux.HandleFunc("PUT /sessions/{id}/answers/{item}", middleware.WithLogging(sessionHandler.AnswerItem))
	mux.HandleFunc("POST /sessions/{id}/next", middleware.WithLogging(sessionHandler.Next))
	mux.HandleFunc("POST /sessions/{id}/previous", middleware.WithLogging(sessionHandler.Previous))

	// Scoring
	mux.HandleFunc("POST /sessions/{id}/submit", middleware.WithLogging(sessionHandler.Submit))
	mux.HandleFunc("POST /sessions/{id}/review", middleware.WithLogging(sessionHandler.Review))
	mux.HandleFunc("GET /sessions/{id}/preview", middleware.WithLogging(sessionHandler.Preview))
	mux.HandleFunc("POST /sessions/{id}/export", middleware.WithLogging(sessionHandler.Export))

	// Archived exports (public, by share slug)
	mux.HandleFunc("GET /exports/{slug}", middleware.WithLogging(exportHandler.GetExport))

	// Daily tasks
	mux.HandleFunc("GET /daily-tasks", middleware.WithLogging(taskHandler.ListTasks))
	mux.HandleFunc("GET /daily-tasks/{dosage}", middleware.WithLogging(taskHandler.GetTask))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("perma-check API v1"))
	})

	return mux
}
