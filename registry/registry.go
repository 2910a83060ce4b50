// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package registry keeps in-memory survey sessions isolated per session id.
// Nothing here is persisted; a restart drops every session.
package registry

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/perma-check/metrics"
	"github.com/danielhkuo/perma-check/survey"
)

var ErrSessionNotFound = errors.New("session not found")

type entry struct {
	mu        sync.Mutex
	session   *survey.Session
	startedAt time.Time
	lastSeen  time.Time
}

// Registry owns every live session. The catalog is the only value shared
// between sessions.
type Registry struct {
	catalog *survey.Catalog
	ttl     time.Duration
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*entry
}

// New creates a registry. A zero ttl disables eviction.
func New(catalog *survey.Catalog, ttl time.Duration) *Registry {
	return &Registry{
		catalog:  catalog,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

// Catalog returns the shared catalog.
func (r *Registry) Catalog() *survey.Catalog { return r.catalog }

// Create starts a new session and returns its id.
func (r *Registry) Create() string {
	id := uuid.NewString()
	now := r.now()

	r.mu.Lock()
	r.sessions[id] = &entry{
		session:   survey.NewSession(r.catalog),
		startedAt: now,
		lastSeen:  now,
	}
	r.mu.Unlock()

	return id
}

// With runs fn while holding the session's lock. fn must not retain s.
func (r *Registry) With(id string, fn func(s *survey.Session, startedAt time.Time) error) error {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen = r.now()
	return fn(e.session, e.startedAt)
}

// Delete drops a session. Deleting an unknown id is an error.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep removes sessions idle for longer than the ttl and returns how many
// were removed.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.sessions {
		e.mu.Lock()
		idle := e.lastSeen.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if r.ttl <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				metrics.SessionsEvicted.Add(float64(n))
				slog.Info("expired idle sessions", "count", n, "remaining", r.Len())
			}
		}
	}
}
