package match

import (
	"sort"
	"strings"
	"unicode"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// TokenSetRatio scores two strings by comparing their token sets, in the
// manner of rapidfuzz's token_set_ratio: case-insensitive, stable under
// word reordering, and tolerant of typos and partial overlap. When one
// side's tokens are all contained in the other's, the score is 100.
type TokenSetRatio struct {
	lev *metrics.Levenshtein
}

// NewTokenSetRatio creates the default scorer.
func NewTokenSetRatio() *TokenSetRatio {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	return &TokenSetRatio{lev: lev}
}

// Score returns a similarity score between a and b on a 0-100 scale.
func (s *TokenSetRatio) Score(a, b string) float64 {
	ta := tokenize(a)
	tb := tokenize(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	sect := intersect(ta, tb)
	diffA := subtract(ta, tb)
	diffB := subtract(tb, ta)

	// One token set contained in the other is an exact match.
	if len(sect) > 0 && (len(diffA) == 0 || len(diffB) == 0) {
		return 100
	}

	joined := strings.Join(sect, " ")
	combinedA := joinNonEmpty(joined, strings.Join(diffA, " "))
	combinedB := joinNonEmpty(joined, strings.Join(diffB, " "))

	score := s.ratio(joined, combinedA)
	if r := s.ratio(joined, combinedB); r > score {
		score = r
	}
	if r := s.ratio(combinedA, combinedB); r > score {
		score = r
	}
	return score
}

// ratio is the pairwise normalized similarity, scaled to 0-100.
func (s *TokenSetRatio) ratio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return strutil.Similarity(a, b, s.lev) * 100
}

// tokenize lowercases the input, splits it into alphanumeric runs, and
// returns the sorted, deduplicated token set.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	sort.Strings(fields)

	tokens := fields[:0]
	prev := ""
	for _, f := range fields {
		if f != prev {
			tokens = append(tokens, f)
			prev = f
		}
	}
	return tokens
}

// intersect returns the sorted tokens present in both sets.
func intersect(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, t := range b {
		set[t] = true
	}
	var out []string
	for _, t := range a {
		if set[t] {
			out = append(out, t)
		}
	}
	return out
}

// subtract returns the sorted tokens of a not present in b.
func subtract(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, t := range b {
		set[t] = true
	}
	var out []string
	for _, t := range a {
		if !set[t] {
			out = append(out, t)
		}
	}
	return out
}

func joinNonEmpty(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + " " + b
}
