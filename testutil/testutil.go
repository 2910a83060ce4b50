// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/perma-check/auth"
	"github.com/danielhkuo/perma-check/cliparse"
	"github.com/danielhkuo/perma-check/db"
	"github.com/danielhkuo/perma-check/instrument"
	"github.com/danielhkuo/perma-check/middleware"
	"github.com/danielhkuo/perma-check/registry"
	"github.com/danielhkuo/perma-check/survey"
)

// SetupTestDB creates a fresh SQLite export archive in a temp dir.
// It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "exports.db")
	conn, err := db.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseType:   "sqlite",
		SessionKeySalt: "test-session-salt",
		ExportSlugSalt: "test-slug-salt",
		SessionTTL:     30 * time.Minute,
	}
}

// TestCatalog returns the built-in PERMA catalog
func TestCatalog(t *testing.T) *survey.Catalog {
	t.Helper()

	c, err := instrument.Default()
	if err != nil {
		t.Fatalf("Failed to build catalog: %v", err)
	}
	return c
}

// NewTestRegistry returns a registry over the built-in catalog
func NewTestRegistry(t *testing.T, cfg cliparse.Config) *registry.Registry {
	t.Helper()
	return registry.New(TestCatalog(t), cfg.SessionTTL)
}

// CreateTestSession starts a session directly in the registry and returns
// its ID and key
func CreateTestSession(t *testing.T, reg *registry.Registry, cfg cliparse.Config) (sessionID, sessionKey string) {
	t.Helper()

	sessionID = reg.Create()
	sessionKey = auth.GenerateSessionKey(sessionID, cfg.SessionKeySalt)
	return sessionID, sessionKey
}

// AnswerAll answers every item with value and leaves the cursor on the last
// item, ready to submit
func AnswerAll(t *testing.T, reg *registry.Registry, sessionID string, value int) {
	t.Helper()

	err := reg.With(sessionID, func(s *survey.Session, _ time.Time) error {
		for {
			if err := s.AnswerCurrent(value); err != nil {
				return err
			}
			if s.AtLast() {
				return nil
			}
			if err := s.Next(); err != nil {
				return err
			}
		}
	})
	if err != nil {
		t.Fatalf("Failed to answer session: %v", err)
	}
}

// SessionHeaders returns the auth header for a session request
func SessionHeaders(sessionKey string) map[string]string {
	return map[string]string{middleware.SessionKeyHeader: sessionKey}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
