// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

// Band is a qualitative interpretation of a percentage.
type Band string

const (
	BandHigh     Band = "High"
	BandModerate Band = "Moderate"
	BandLow      Band = "Low"
	BandVeryLow  Band = "Very Low"
)

// bandThresholds are inclusive lower bounds, highest first.
var bandThresholds = []struct {
	min  int
	band Band
}{
	{75, BandHigh},
	{50, BandModerate},
	{25, BandLow},
}

// Interpret maps a percentage to its band.
func Interpret(pct int) Band {
	for _, t := range bandThresholds {
		if pct >= t.min {
			return t.band
		}
	}
	return BandVeryLow
}

// DomainScore is the sub-score of one domain.
type DomainScore struct {
	Domain         string `json:"domain"`
	Sum            int    `json:"sum"`
	Count          int    `json:"count"`
	Maximum        int    `json:"maximum"`
	Percentage     int    `json:"percentage"`
	Interpretation Band   `json:"interpretation"`
}

// ScoreResult is the derived outcome of a session. It is never stored.
type ScoreResult struct {
	Total          int           `json:"total"`
	Maximum        int           `json:"maximum"`
	Percentage     int           `json:"percentage"`
	Interpretation Band          `json:"interpretation"`
	Domains        []DomainScore `json:"domains"`
}

// Score computes totals over every catalog item. Unanswered items add 0 but
// still count toward the maximum.
func Score(c *Catalog, r *Responses) (ScoreResult, error) {
	maximum := c.Maximum()
	if maximum == 0 {
		return ScoreResult{}, ErrDegenerateMaximum
	}

	total := 0
	for i := range c.flat {
		total += r.valueAt(i)
	}

	pct := percent(total, maximum)
	result := ScoreResult{
		Total:          total,
		Maximum:        maximum,
		Percentage:     pct,
		Interpretation: Interpret(pct),
		Domains:        make([]DomainScore, 0, len(c.domains)),
	}

	for _, d := range c.domains {
		sum := 0
		for _, it := range d.Items {
			sum += r.valueAt(c.index[it.ID])
		}
		domainMax := len(d.Items) * c.scale.Max
		dpct := percent(sum, domainMax)
		result.Domains = append(result.Domains, DomainScore{
			Domain:         d.Name,
			Sum:            sum,
			Count:          len(d.Items),
			Maximum:        domainMax,
			Percentage:     dpct,
			Interpretation: Interpret(dpct),
		})
	}

	return result, nil
}

// percent returns round-half-up(part/whole*100) for non-negative inputs.
func percent(part, whole int) int {
	return (200*part + whole) / (2 * whole)
}
