// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dailytask

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		dosage    string
		wantTitle string
		wantErr   error
	}{
		{"rest", "Rest", "Grounding", nil},
		{"grow", "Grow", "Reflection", nil},
		{"challenge", "Challenge", "Action", nil},
		{"lowercase", "challenge", "Action", nil},
		{"empty uses default", "", "Reflection", nil},
		{"unknown", "Sprint", "", ErrUnknownDosage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := Lookup(tt.dosage)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Lookup(%q) error = %v, want %v", tt.dosage, err, tt.wantErr)
			}
			if task.Title != tt.wantTitle {
				t.Errorf("Lookup(%q).Title = %q, want %q", tt.dosage, task.Title, tt.wantTitle)
			}
		})
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 3 {
		t.Fatalf("All() returned %d tasks, want 3", len(all))
	}
	if all[0].Dosage != DosageRest || all[1].Dosage != DosageGrow || all[2].Dosage != DosageChallenge {
		t.Errorf("All() order = %s, %s, %s", all[0].Dosage, all[1].Dosage, all[2].Dosage)
	}

	all[0].Title = "changed"
	if All()[0].Title != "Grounding" {
		t.Error("All() exposes shared storage")
	}
}
