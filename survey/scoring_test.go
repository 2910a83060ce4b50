// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"errors"
	"testing"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		pct  int
		want Band
	}{
		{100, BandHigh},
		{75, BandHigh},
		{74, BandModerate},
		{50, BandModerate},
		{49, BandLow},
		{25, BandLow},
		{24, BandVeryLow},
		{0, BandVeryLow},
	}

	for _, tt := range tests {
		if got := Interpret(tt.pct); got != tt.want {
			t.Errorf("Interpret(%d) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestPercent_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		part, whole, want int
	}{
		{6, 8, 75},
		{1, 8, 13}, // 12.5
		{3, 8, 38}, // 37.5
		{1, 40, 3}, // 2.5
		{1, 3, 33}, // 33.33
		{2, 3, 67}, // 66.67
		{0, 40, 0},
		{40, 40, 100},
	}

	for _, tt := range tests {
		if got := percent(tt.part, tt.whole); got != tt.want {
			t.Errorf("percent(%d, %d) = %d, want %d", tt.part, tt.whole, got, tt.want)
		}
	}
}

func TestScore_AllTwos(t *testing.T) {
	c := fiveByTwo(t)
	r := NewResponses(c)
	for _, it := range c.Items() {
		if err := r.Set(it.ID, 2); err != nil {
			t.Fatal(err)
		}
	}

	result, err := Score(c, r)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	if result.Maximum != 40 || result.Total != 20 || result.Percentage != 50 {
		t.Errorf("Score() = %d/%d (%d%%), want 20/40 (50%%)", result.Total, result.Maximum, result.Percentage)
	}
	if result.Interpretation != BandModerate {
		t.Errorf("overall band = %s, want Moderate", result.Interpretation)
	}
	if len(result.Domains) != 5 {
		t.Fatalf("got %d domain scores, want 5", len(result.Domains))
	}
	for _, d := range result.Domains {
		if d.Sum != 4 || d.Count != 2 || d.Maximum != 8 || d.Percentage != 50 || d.Interpretation != BandModerate {
			t.Errorf("domain %s = %+v, want sum 4 count 2 max 8 50%% Moderate", d.Domain, d)
		}
	}
}

func TestScore_NothingAnswered(t *testing.T) {
	c := fiveByTwo(t)

	result, err := Score(c, NewResponses(c))
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if result.Total != 0 || result.Percentage != 0 || result.Interpretation != BandVeryLow {
		t.Errorf("Score() = %+v, want 0, 0%%, Very Low", result)
	}
	if result.Maximum != 40 {
		t.Errorf("unanswered items must not shrink the maximum, got %d", result.Maximum)
	}
}

func TestScore_DomainFourAndTwo(t *testing.T) {
	c := fiveByTwo(t)
	r := NewResponses(c)
	r.Set("m1", 4)
	r.Set("m2", 2)

	result, err := Score(c, r)
	if err != nil {
		t.Fatal(err)
	}

	var meaning *DomainScore
	for i := range result.Domains {
		if result.Domains[i].Domain == "Meaning" {
			meaning = &result.Domains[i]
		}
	}
	if meaning == nil {
		t.Fatal("Meaning domain missing")
	}
	if meaning.Sum != 6 || meaning.Maximum != 8 || meaning.Percentage != 75 || meaning.Interpretation != BandHigh {
		t.Errorf("Meaning = %+v, want sum 6 max 8 75%% High", *meaning)
	}

	// Domain order follows the catalog.
	if result.Domains[0].Domain != "Positive Emotion" || result.Domains[4].Domain != "Accomplishment" {
		t.Errorf("domain order = %s..%s", result.Domains[0].Domain, result.Domains[4].Domain)
	}
}

func TestScore_IndependentOfNavigation(t *testing.T) {
	c := fiveByTwo(t)

	direct := NewResponses(c)
	for i, it := range c.Items() {
		direct.Set(it.ID, i%5)
	}
	want, _ := Score(c, direct)

	s := NewSession(c)
	for i := 0; i < c.Len(); i++ {
		if err := s.AnswerCurrent(i % 5); err != nil {
			t.Fatal(err)
		}
		if err := s.Next(); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 4; i++ {
		s.Previous()
	}
	got, err := s.Export()
	if err != nil {
		t.Fatal(err)
	}

	if got.Total != want.Total || got.Percentage != want.Percentage {
		t.Errorf("session score %+v differs from direct score %+v", got, want)
	}
	for i := range want.Domains {
		if got.Domains[i] != want.Domains[i] {
			t.Errorf("domain %d: %+v != %+v", i, got.Domains[i], want.Domains[i])
		}
	}
}

func TestScore_DegenerateMaximum(t *testing.T) {
	c := &Catalog{scale: testScale}
	if _, err := Score(c, NewResponses(c)); !errors.Is(err, ErrDegenerateMaximum) {
		t.Errorf("Score() error = %v, want ErrDegenerateMaximum", err)
	}
}
