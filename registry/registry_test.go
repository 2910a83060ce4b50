// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/perma-check/instrument"
	"github.com/danielhkuo/perma-check/survey"
)

func newTestRegistry(t *testing.T, ttl time.Duration) *Registry {
	t.Helper()
	c, err := instrument.Default()
	if err != nil {
		t.Fatal(err)
	}
	return New(c, ttl)
}

func TestCreateAndWith(t *testing.T) {
	r := newTestRegistry(t, 0)

	id := r.Create()
	if id == "" {
		t.Fatal("Create() returned empty id")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}

	err := r.With(id, func(s *survey.Session, _ time.Time) error {
		return s.AnswerCurrent(3)
	})
	if err != nil {
		t.Fatalf("With() error = %v", err)
	}

	var answered bool
	r.With(id, func(s *survey.Session, _ time.Time) error {
		answered = s.CurrentAnswered()
		return nil
	})
	if !answered {
		t.Error("answer did not persist between With calls")
	}
}

func TestWith_PropagatesError(t *testing.T) {
	r := newTestRegistry(t, 0)
	id := r.Create()

	err := r.With(id, func(s *survey.Session, _ time.Time) error {
		return s.Next()
	})
	if !errors.Is(err, survey.ErrGuardViolation) {
		t.Errorf("With() error = %v, want ErrGuardViolation", err)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	r := newTestRegistry(t, 0)
	a := r.Create()
	b := r.Create()

	if a == b {
		t.Fatal("Create() returned duplicate ids")
	}

	r.With(a, func(s *survey.Session, _ time.Time) error { return s.AnswerCurrent(4) })

	r.With(b, func(s *survey.Session, _ time.Time) error {
		if s.CurrentAnswered() {
			t.Error("answer in session a leaked into session b")
		}
		return nil
	})
}

func TestUnknownSession(t *testing.T) {
	r := newTestRegistry(t, 0)

	err := r.With("missing", func(*survey.Session, time.Time) error { return nil })
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("With() error = %v, want ErrSessionNotFound", err)
	}
	if err := r.Delete("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Delete() error = %v, want ErrSessionNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	r := newTestRegistry(t, 0)
	id := r.Create()

	if err := r.Delete(id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d after Delete", r.Len())
	}
}

func TestSweep(t *testing.T) {
	r := newTestRegistry(t, time.Minute)

	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	stale := r.Create()
	clock = clock.Add(45 * time.Second)
	fresh := r.Create()

	clock = clock.Add(30 * time.Second)
	if n := r.Sweep(); n != 1 {
		t.Errorf("Sweep() removed %d, want 1", n)
	}

	if err := r.With(stale, func(*survey.Session, time.Time) error { return nil }); !errors.Is(err, ErrSessionNotFound) {
		t.Error("stale session survived Sweep")
	}
	if err := r.With(fresh, func(*survey.Session, time.Time) error { return nil }); err != nil {
		t.Errorf("fresh session was swept: %v", err)
	}
}

func TestSweep_DisabledWithZeroTTL(t *testing.T) {
	r := newTestRegistry(t, 0)
	r.Create()
	r.now = func() time.Time { return time.Now().Add(24 * time.Hour) }

	if n := r.Sweep(); n != 0 {
		t.Errorf("Sweep() removed %d with eviction disabled", n)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	r := newTestRegistry(t, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Run(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestConcurrentSessions(t *testing.T) {
	r := newTestRegistry(t, 0)

	var wg sync.WaitGroup
	ids := make([]string, 20)
	for i := range ids {
		ids[i] = r.Create()
	}

	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			err := r.With(id, func(s *survey.Session, _ time.Time) error {
				for {
					if err := s.AnswerCurrent(2); err != nil {
						return err
					}
					if s.AtLast() {
						_, err := s.Submit()
						return err
					}
					if err := s.Next(); err != nil {
						return err
					}
				}
			})
			if err != nil {
				t.Errorf("session %s: %v", id, err)
			}
		}(id)
	}
	wg.Wait()

	for _, id := range ids {
		r.With(id, func(s *survey.Session, _ time.Time) error {
			if s.Phase() != survey.PhaseCompleted {
				t.Errorf("session %s phase = %s", id, s.Phase())
			}
			return nil
		})
	}
}
