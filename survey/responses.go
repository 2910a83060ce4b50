// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import "fmt"

// Responses maps every catalog item to an optional answer. The key set is
// fixed at construction to the catalog's item ids.
type Responses struct {
	catalog  *Catalog
	values   []int
	answered []bool
}

// NewResponses creates a store with every item unanswered.
func NewResponses(c *Catalog) *Responses {
	return &Responses{
		catalog:  c,
		values:   make([]int, c.Len()),
		answered: make([]bool, c.Len()),
	}
}

// Set stores value for itemID, replacing any previous answer.
func (r *Responses) Set(itemID string, value int) error {
	_, i, err := r.catalog.Lookup(itemID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAnswer, err)
	}
	scale := r.catalog.Scale()
	if !scale.Contains(value) {
		return fmt.Errorf("%w: %d is outside %d..%d", ErrInvalidAnswer, value, scale.Min, scale.Max)
	}
	r.values[i] = value
	r.answered[i] = true
	return nil
}

// Get returns the stored answer for itemID and whether one was given.
func (r *Responses) Get(itemID string) (int, bool, error) {
	_, i, err := r.catalog.Lookup(itemID)
	if err != nil {
		return 0, false, err
	}
	return r.values[i], r.answered[i], nil
}

// AllAnswered reports whether every item has an answer.
func (r *Responses) AllAnswered() bool {
	for _, ok := range r.answered {
		if !ok {
			return false
		}
	}
	return true
}

// Len is the number of keys, always equal to the catalog length.
func (r *Responses) Len() int { return len(r.values) }

// Snapshot copies the store. Unanswered items map to nil.
func (r *Responses) Snapshot() map[string]*int {
	out := make(map[string]*int, len(r.values))
	for i, it := range r.catalog.flat {
		if r.answered[i] {
			v := r.values[i]
			out[it.ID] = &v
		} else {
			out[it.ID] = nil
		}
	}
	return out
}

// valueAt returns the score contribution of position i; unanswered counts 0.
func (r *Responses) valueAt(i int) int {
	if !r.answered[i] {
		return 0
	}
	return r.values[i]
}

func (r *Responses) answeredAt(i int) bool { return r.answered[i] }
