// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the PERMA Check API.

# Handler Types

Each handler is a struct holding only what it needs:

  - SessionHandler: session lifecycle, answering, navigation, scoring
  - CatalogHandler: the instrument definition
  - DailyTaskHandler: post-results dosage tasks
  - ExportHandler: archived export snapshots

Handlers are created via constructor functions:

	sessionHandler := handlers.NewSessionHandler(reg, store, cfg)

A nil store disables the export archive.

# Session Lifecycle

Sessions move between two phases: answering ⇄ completed

	POST /sessions                  → CreateSession (returns session_key)
	PUT  /sessions/{id}/answer      → AnswerCurrent
	POST /sessions/{id}/next        → Next (current item must be answered)
	POST /sessions/{id}/submit      → Submit (last item, answered)
	POST /sessions/{id}/review      → Review (completed only, answers kept)
	POST /sessions/{id}/export      → Export (completed only)

Session operations require the X-Session-Key header.

# Error Mapping

	registry.ErrSessionNotFound  → 404
	auth.ErrInvalidSessionKey    → 401
	survey.ErrUnknownItem        → 404
	survey.ErrInvalidAnswer      → 400
	survey.ErrGuardViolation     → 409 (includes ErrSessionCompleted)

Anything else is logged and returned as 500.
*/
package handlers
