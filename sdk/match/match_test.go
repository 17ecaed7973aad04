package match

import (
	"testing"

	"github.com/thoughtful-ai/support-agent/sdk/knowledge"
)

func testBase(t *testing.T) *knowledge.Base {
	t.Helper()
	b, err := knowledge.New([]knowledge.Entry{
		{Question: "What does EVA do?", Answer: "EVA automates eligibility verification."},
		{Question: "What does CAM do?", Answer: "CAM automates claims processing."},
	})
	if err != nil {
		t.Fatalf("knowledge.New: %v", err)
	}
	return b
}

func fullBase(t *testing.T) *knowledge.Base {
	t.Helper()
	b, err := knowledge.Load()
	if err != nil {
		t.Fatalf("knowledge.Load: %v", err)
	}
	return b
}

func TestMatchSelfMatch(t *testing.T) {
	m := New(nil, 0)
	for _, base := range []*knowledge.Base{testBase(t), fullBase(t)} {
		for i := range base.Entries() {
			e := &base.Entries()[i]
			res := m.Match(e.Question, base)
			if !res.Hit {
				t.Errorf("self-match miss for %q (score %.1f)", e.Question, res.Score)
				continue
			}
			if res.Entry != e {
				t.Errorf("self-match for %q selected %q", e.Question, res.Entry.Question)
			}
			if res.Score != 100 {
				t.Errorf("self-match for %q scored %.1f, want 100", e.Question, res.Score)
			}
		}
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	m := New(nil, 0)
	base := testBase(t)

	lower := m.Match("what does eva do?", base)
	upper := m.Match("What does EVA do?", base)

	if !lower.Hit || !upper.Hit {
		t.Fatalf("expected hits, got lower=%v upper=%v", lower.Hit, upper.Hit)
	}
	if lower.Entry != upper.Entry {
		t.Errorf("case variants selected different entries: %q vs %q",
			lower.Entry.Question, upper.Entry.Question)
	}
	if lower.Score != upper.Score {
		t.Errorf("case variants scored differently: %.1f vs %.1f", lower.Score, upper.Score)
	}
}

func TestMatchTypoTolerance(t *testing.T) {
	m := New(nil, 0)
	base := testBase(t)

	tests := []struct {
		name  string
		query string
	}{
		{"transposed character", "waht does EVA do?"},
		{"omitted character", "wht does EVA do?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := m.Match(tt.query, base)
			if !res.Hit {
				t.Fatalf("expected hit for %q, score %.1f", tt.query, res.Score)
			}
			if res.Entry.Answer != "EVA automates eligibility verification." {
				t.Errorf("matched wrong entry: %q", res.Entry.Question)
			}
		})
	}
}

func TestMatchWordReordering(t *testing.T) {
	m := New(nil, 0)
	res := m.Match("EVA does what?", testBase(t))
	if !res.Hit {
		t.Fatalf("expected hit for reordered query, score %.1f", res.Score)
	}
	if res.Entry.Question != "What does EVA do?" {
		t.Errorf("matched wrong entry: %q", res.Entry.Question)
	}
}

func TestMatchShortQueryAgainstLongQuestion(t *testing.T) {
	// The dataset questions are long-form; a short query whose tokens are
	// all contained in one of them scores 100.
	m := New(nil, 0)
	base := fullBase(t)

	res := m.Match("what does eva do", base)
	if !res.Hit {
		t.Fatalf("expected hit, score %.1f", res.Score)
	}
	if res.Score != 100 {
		t.Errorf("expected containment score 100, got %.1f", res.Score)
	}
	if res.Entry != &base.Entries()[0] {
		t.Errorf("matched wrong entry: %q", res.Entry.Question)
	}
}

func TestMatchMiss(t *testing.T) {
	m := New(nil, 0)
	res := m.Match("tell me a joke", testBase(t))
	if res.Hit {
		t.Fatalf("expected miss, hit %q with %.1f", res.Entry.Question, res.Score)
	}
	if res.Entry != nil {
		t.Error("expected nil Entry on miss")
	}
	if res.Score < 0 || res.Score >= DefaultThreshold {
		t.Errorf("miss score %.1f out of expected range [0, %.0f)", res.Score, DefaultThreshold)
	}
}

func TestMatchDeterminism(t *testing.T) {
	m := New(nil, 0)
	base := fullBase(t)

	first := m.Match("how do thoughtful ai agents help?", base)
	for i := 0; i < 5; i++ {
		again := m.Match("how do thoughtful ai agents help?", base)
		if again.Hit != first.Hit || again.Score != first.Score || again.Entry != first.Entry {
			t.Fatalf("run %d diverged: %+v vs %+v", i, again, first)
		}
	}
}

func TestMatchTieKeepsFirstEntry(t *testing.T) {
	b, err := knowledge.New([]knowledge.Entry{
		{Question: "reset my password", Answer: "first"},
		{Question: "reset my password", Answer: "second"},
	})
	if err != nil {
		t.Fatalf("knowledge.New: %v", err)
	}

	m := New(nil, 0)
	res := m.Match("reset my password", b)
	if !res.Hit {
		t.Fatalf("expected hit, score %.1f", res.Score)
	}
	if res.Entry.Answer != "first" {
		t.Errorf("tie should keep first entry, got %q", res.Entry.Answer)
	}
}

func TestMatchThresholdBoundary(t *testing.T) {
	// A score equal to the threshold is a hit.
	b, err := knowledge.New([]knowledge.Entry{{Question: "anything", Answer: "a"}})
	if err != nil {
		t.Fatalf("knowledge.New: %v", err)
	}

	m := New(fixedScorer(DefaultThreshold), 0)
	if res := m.Match("query", b); !res.Hit {
		t.Errorf("score %.0f should be a hit at threshold %.0f", res.Score, DefaultThreshold)
	}

	m = New(fixedScorer(DefaultThreshold-0.5), 0)
	if res := m.Match("query", b); res.Hit {
		t.Errorf("score %.1f should be a miss at threshold %.0f", res.Score, DefaultThreshold)
	}
}

// fixedScorer always returns the same score.
type fixedScorer float64

func (f fixedScorer) Score(a, b string) float64 { return float64(f) }

func TestTokenSetRatioNoOverlap(t *testing.T) {
	s := NewTokenSetRatio()
	if got := s.Score("tell me a joke", "What does EVA do?"); got >= DefaultThreshold {
		t.Errorf("disjoint strings scored %.1f, want < %.0f", got, DefaultThreshold)
	}
	if got := s.Score("", "What does EVA do?"); got != 0 {
		t.Errorf("empty string scored %.1f, want 0", got)
	}
}

func TestTokenSetRatioSymmetricContainment(t *testing.T) {
	s := NewTokenSetRatio()
	long := "What does the eligibility verification agent (EVA) do?"
	if got := s.Score("what does eva do", long); got != 100 {
		t.Errorf("subset query scored %.1f, want 100", got)
	}
	if got := s.Score(long, "what does eva do"); got != 100 {
		t.Errorf("superset query scored %.1f, want 100", got)
	}
}
