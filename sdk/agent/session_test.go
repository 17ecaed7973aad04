package agent

import (
	"testing"

	"github.com/thoughtful-ai/support-agent/engine/model"
)

func TestTranscriptAppendOrder(t *testing.T) {
	tr := NewTranscript()

	tr.Append(model.RoleUser, "What does EVA do?", "")
	tr.Append(model.RoleAssistant, "EVA automates eligibility verification.", SourcePredefined)
	tr.Append(model.RoleUser, "tell me a joke", "")
	tr.Append(model.RoleAssistant, "Here is a joke.", SourceModel)

	turns := tr.Turns()
	if len(turns) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(turns))
	}
	if turns[0].Role != model.RoleUser || turns[1].Role != model.RoleAssistant {
		t.Errorf("unexpected roles: %q, %q", turns[0].Role, turns[1].Role)
	}
	if turns[1].Source != SourcePredefined || turns[3].Source != SourceModel {
		t.Errorf("unexpected sources: %q, %q", turns[1].Source, turns[3].Source)
	}

	seen := map[string]bool{}
	for _, turn := range turns {
		if turn.ID == "" {
			t.Error("turn has empty ID")
		}
		if seen[turn.ID] {
			t.Errorf("duplicate turn ID %q", turn.ID)
		}
		seen[turn.ID] = true
	}
}

func TestTranscriptTurnsReturnsCopy(t *testing.T) {
	tr := NewTranscript()
	tr.Append(model.RoleUser, "hi", "")

	turns := tr.Turns()
	turns[0].Text = "mutated"

	if tr.Turns()[0].Text != "hi" {
		t.Error("mutating the returned slice changed the transcript")
	}
}

func TestTranscriptClear(t *testing.T) {
	tr := NewTranscript()
	tr.Append(model.RoleUser, "hi", "")
	tr.Append(model.RoleAssistant, "hello", SourcePredefined)

	if tr.Len() != 2 {
		t.Fatalf("expected 2 turns, got %d", tr.Len())
	}
	tr.Clear()
	if tr.Len() != 0 {
		t.Errorf("expected empty transcript after Clear, got %d turns", tr.Len())
	}
}
