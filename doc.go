// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the PERMA Check API server.

PERMA Check administers a multi-domain wellbeing questionnaire (Positive
Emotion, Engagement, Relationships, Meaning, Accomplishment) one item at a
time, then scores it per domain and overall with a qualitative band.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	SESSION_KEY_SALT=... EXPORT_SLUG_SALT=... go run .

Or with flags:

	go run . -p 3318 -session-salt ... -slug-salt ... -catalog perma.yaml

Values may also come from a .env file (see -env).

# Configuration

Required settings:

  - SESSION_KEY_SALT (-session-salt): Secret for session key HMAC
  - EXPORT_SLUG_SALT (-slug-salt): Secret for export share slugs

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - CATALOG_PATH (-catalog): YAML or JSON instrument (default: built-in PERMA)
  - SESSION_TTL (-session-ttl): Idle session lifetime (default: 30m)
  - DATABASE_URL (-d): Export archive; exports are not stored without it
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

Answers are never written to disk. A restart drops every session.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - survey: Catalog, responses, navigation, scoring, session state machine
  - instrument: Built-in PERMA catalog and file loader
  - registry: Per-session isolation and idle expiry
  - dailytask: Post-results dosage tasks
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Session keys and share slugs
  - db: Export archive
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
