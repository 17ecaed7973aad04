package agent

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Turn is one message of an interactive session's transcript.
type Turn struct {
	ID     string    `json:"id"`
	Role   string    `json:"role"` // user or assistant
	Text   string    `json:"text"`
	Source string    `json:"source,omitempty"` // predefined, model, error
	At     time.Time `json:"at"`
}

// Transcript is the append-only turn history for one interactive session.
// It lives in memory only and is discarded when the process exits.
type Transcript struct {
	mu    sync.Mutex
	turns []Turn
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append records a turn and returns it with its assigned ID.
func (t *Transcript) Append(role, text, source string) Turn {
	t.mu.Lock()
	defer t.mu.Unlock()

	turn := Turn{
		ID:     ulid.Make().String(),
		Role:   role,
		Text:   text,
		Source: source,
		At:     time.Now(),
	}
	t.turns = append(t.turns, turn)
	return turn
}

// Turns returns a copy of the history in append order.
func (t *Transcript) Turns() []Turn {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Turn(nil), t.turns...)
}

// Len returns the number of recorded turns.
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.turns)
}

// Clear discards the history.
func (t *Transcript) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.turns = nil
}
