// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package dailytask maps a chosen dosage to a small follow-up task shown
// alongside survey results.
package dailytask

import (
	"errors"
	"strings"
)

var ErrUnknownDosage = errors.New("unknown dosage")

// Dosage is how demanding the suggested task should be.
type Dosage string

const (
	DosageRest      Dosage = "Rest"
	DosageGrow      Dosage = "Grow"
	DosageChallenge Dosage = "Challenge"
)

// DefaultDosage is preselected before the user picks one.
const DefaultDosage = DosageGrow

type Task struct {
	Dosage Dosage `json:"dosage"`
	Title  string `json:"title"`
	Task   string `json:"task"`
}

var tasks = []Task{
	{Dosage: DosageRest, Title: "Grounding", Task: "Touch a textured object for 60 seconds."},
	{Dosage: DosageGrow, Title: "Reflection", Task: "Write down one thing you are tolerating today."},
	{Dosage: DosageChallenge, Title: "Action", Task: "Send that one email you have been avoiding."},
}

// All returns every task in display order: Rest, Grow, Challenge.
func All() []Task {
	return append([]Task(nil), tasks...)
}

// Lookup finds the task for a dosage, case-insensitively. An empty dosage
// returns the default.
func Lookup(dosage string) (Task, error) {
	if dosage == "" {
		dosage = string(DefaultDosage)
	}
	for _, t := range tasks {
		if strings.EqualFold(string(t.Dosage), dosage) {
			return t, nil
		}
	}
	return Task{}, ErrUnknownDosage
}
