// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey implements the sequential multi-domain questionnaire engine.

# Catalog

A Catalog is built once from a Scale and an ordered list of Domains:

	catalog, err := survey.NewCatalog(survey.Scale{Min: 0, Max: 4}, domains...)

Items are flattened in domain order, then item order, and that flat
sequence is the only navigation order. NewCatalog rejects empty catalogs
with ErrDegenerateMaximum.

# Session Lifecycle

A Session composes a Responses store and a Navigator and moves between
two phases:

	answering → completed   Submit (last item, answered)
	completed → answering   Review (cursor back to 0, answers kept)

Next refuses to leave an unanswered item (ErrGuardViolation). Previous
never checks answers.

# Scoring

Score is a pure function of the catalog and the responses:

	result, err := survey.Score(catalog, responses)

Unanswered items count as 0 but still count toward the maximum.
Percentages round half up. Interpret maps a percentage to a Band:

	>= 75  High
	>= 50  Moderate
	>= 25  Low
	else   Very Low
*/
package survey
