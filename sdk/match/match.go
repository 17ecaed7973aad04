// Package match selects the best knowledge-base entry for a query using
// approximate string similarity.
package match

import (
	"github.com/thoughtful-ai/support-agent/sdk/knowledge"
)

// DefaultThreshold is the minimum similarity score, on a 0-100 scale,
// required to accept a predefined match.
const DefaultThreshold = 70.0

// Scorer computes a similarity score between two strings on a 0-100
// scale. Implementations must be deterministic.
type Scorer interface {
	Score(a, b string) float64
}

// Result is the outcome of matching one query against the knowledge base.
// On a miss Entry is nil and Score still reports the best value found.
type Result struct {
	Entry *knowledge.Entry
	Score float64
	Hit   bool
}

// Matcher scores a query against every knowledge-base entry and accepts
// the best one when it clears the threshold. It never mutates the base.
type Matcher struct {
	scorer    Scorer
	threshold float64
}

// New creates a matcher with the given scorer and threshold. A nil scorer
// defaults to the token-set ratio; a non-positive threshold defaults to
// DefaultThreshold.
func New(scorer Scorer, threshold float64) *Matcher {
	if scorer == nil {
		scorer = NewTokenSetRatio()
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{scorer: scorer, threshold: threshold}
}

// Threshold returns the acceptance threshold in effect.
func (m *Matcher) Threshold() float64 { return m.threshold }

// Match scores query against every entry and returns the best. Ties keep
// the first entry in dataset order; a score equal to the threshold is a
// hit. Callers must reject empty queries before calling.
func (m *Matcher) Match(query string, base *knowledge.Base) Result {
	entries := base.Entries()

	best := -1
	bestScore := 0.0
	for i := range entries {
		score := m.scorer.Score(query, entries[i].Question)
		if best < 0 || score > bestScore {
			best = i
			bestScore = score
		}
	}

	res := Result{Score: bestScore}
	if best >= 0 && bestScore >= m.threshold {
		res.Entry = &entries[best]
		res.Hit = true
	}
	return res
}
