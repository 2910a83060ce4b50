// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import "fmt"

// Navigator tracks the cursor into the catalog's flat sequence.
// Advancing requires the current item to be answered; retreating does not.
type Navigator struct {
	catalog   *Catalog
	responses *Responses
	cursor    int
}

func NewNavigator(c *Catalog, r *Responses) *Navigator {
	return &Navigator{catalog: c, responses: r}
}

// Cursor returns the 0-indexed position.
func (n *Navigator) Cursor() int { return n.cursor }

// Current returns the item under the cursor.
func (n *Navigator) Current() Item { return n.catalog.flat[n.cursor] }

// AtLast reports whether the cursor is on the final item.
func (n *Navigator) AtLast() bool { return n.cursor == n.catalog.Len()-1 }

// CurrentAnswered reports whether the item under the cursor has an answer.
func (n *Navigator) CurrentAnswered() bool { return n.responses.answeredAt(n.cursor) }

// Advance moves forward one item. On the last item it does nothing.
func (n *Navigator) Advance() error {
	if !n.CurrentAnswered() {
		return fmt.Errorf("%w: current item %q unanswered", ErrGuardViolation, n.Current().ID)
	}
	if !n.AtLast() {
		n.cursor++
	}
	return nil
}

// Retreat moves back one item, stopping at the first.
func (n *Navigator) Retreat() {
	if n.cursor > 0 {
		n.cursor--
	}
}

// Progress is (cursor+1)/len.
func (n *Navigator) Progress() float64 {
	return float64(n.cursor+1) / float64(n.catalog.Len())
}

func (n *Navigator) reset() { n.cursor = 0 }
