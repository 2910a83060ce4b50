// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import "fmt"

// Phase is the macro state of a session.
type Phase string

const (
	PhaseAnswering Phase = "answering"
	PhaseCompleted Phase = "completed"
)

// Session administers one pass through a catalog. It is owned by a single
// caller and is not safe for concurrent use.
type Session struct {
	catalog   *Catalog
	responses *Responses
	nav       *Navigator
	phase     Phase
}

// NewSession starts in PhaseAnswering on the first item with nothing answered.
func NewSession(c *Catalog) *Session {
	r := NewResponses(c)
	return &Session{
		catalog:   c,
		responses: r,
		nav:       NewNavigator(c, r),
		phase:     PhaseAnswering,
	}
}

func (s *Session) Catalog() *Catalog { return s.catalog }
func (s *Session) Responses() *Responses { return s.responses }
func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Cursor() int { return s.nav.Cursor() }
func (s *Session) Progress() float64 { return s.nav.Progress() }
func (s *Session) CurrentItem() Item { return s.nav.Current() }
func (s *Session) CurrentAnswered() bool { return s.nav.CurrentAnswered() }
func (s *Session) AtLast() bool { return s.nav.AtLast() }

// CanAdvance reports whether Next would move the cursor.
func (s *Session) CanAdvance() bool {
	return s.phase == PhaseAnswering && s.nav.CurrentAnswered() && !s.nav.AtLast()
}

// CanSubmit reports whether Submit would succeed.
func (s *Session) CanSubmit() bool {
	return s.phase == PhaseAnswering && s.nav.AtLast() && s.nav.CurrentAnswered()
}

// AnswerCurrent records value for the item under the cursor.
func (s *Session) AnswerCurrent(value int) error {
	if s.phase == PhaseCompleted {
		return completedError{op: "answer"}
	}
	return s.responses.Set(s.nav.Current().ID, value)
}

// Answer records value for any item. The cursor does not move.
func (s *Session) Answer(itemID string, value int) error {
	if s.phase == PhaseCompleted {
		return completedError{op: "answer"}
	}
	return s.responses.Set(itemID, value)
}

// Next advances the cursor; see Navigator.Advance.
func (s *Session) Next() error {
	if s.phase == PhaseCompleted {
		return completedError{op: "next"}
	}
	return s.nav.Advance()
}

// Previous retreats the cursor. It never fails while answering.
func (s *Session) Previous() error {
	if s.phase == PhaseCompleted {
		return completedError{op: "previous"}
	}
	s.nav.Retreat()
	return nil
}

// Submit completes the session. The cursor must be on the last item and
// that item must be answered; earlier items may still be unanswered.
func (s *Session) Submit() (ScoreResult, error) {
	if s.phase == PhaseCompleted {
		return ScoreResult{}, completedError{op: "submit"}
	}
	if !s.nav.AtLast() {
		return ScoreResult{}, fmt.Errorf("%w: submit before last item (at %d of %d)",
			ErrGuardViolation, s.nav.Cursor()+1, s.catalog.Len())
	}
	if !s.nav.CurrentAnswered() {
		return ScoreResult{}, fmt.Errorf("%w: current item %q unanswered",
			ErrGuardViolation, s.nav.Current().ID)
	}

	result, err := Score(s.catalog, s.responses)
	if err != nil {
		return ScoreResult{}, err
	}
	s.phase = PhaseCompleted
	return result, nil
}

// Review returns a completed session to answering at the first item.
// Answers are kept.
func (s *Session) Review() error {
	if s.phase != PhaseCompleted {
		return fmt.Errorf("%w: review requires a completed session", ErrGuardViolation)
	}
	s.phase = PhaseAnswering
	s.nav.reset()
	return nil
}

// Export scores the current answers. It does not change the session.
func (s *Session) Export() (ScoreResult, error) {
	return Score(s.catalog, s.responses)
}
