// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the PERMA Check API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(reg, store, cfg)

store may be nil when no export archive is configured.

# Endpoints

Health:

	GET /health

Instrument:

	GET /catalog - Domains, items and scale

Sessions (requires X-Session-Key after creation):

	POST   /sessions                     - Start a session
	GET    /sessions/{id}                - Current state
	DELETE /sessions/{id}                - Abandon
	PUT    /sessions/{id}/answer         - Answer the current item
	PUT    /sessions/{id}/answers/{item} - Answer by item id
	POST   /sessions/{id}/next           - Advance
	POST   /sessions/{id}/previous       - Go back
	POST   /sessions/{id}/submit         - Complete and score
	POST   /sessions/{id}/review         - Reopen a completed session
	GET    /sessions/{id}/preview        - Score so far
	POST   /sessions/{id}/export         - Export snapshot

Exports (public, uses share slug):

	GET /exports/{slug}

Daily tasks:

	GET /daily-tasks
	GET /daily-tasks/{dosage}

# Handler Initialization

The router creates handler instances with dependency injection:

	sessionHandler := handlers.NewSessionHandler(reg, store, cfg)
	catalogHandler := handlers.NewCatalogHandler(reg.Catalog())
	exportHandler := handlers.NewExportHandler(store)
*/
package router
