package knowledge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Len() != 5 {
		t.Fatalf("expected 5 entries, got %d", b.Len())
	}
	for i, e := range b.Entries() {
		if e.Question == "" || e.Answer == "" {
			t.Errorf("entry %d has empty question or answer", i)
		}
	}
	if !strings.Contains(b.Entries()[0].Question, "EVA") {
		t.Errorf("expected first entry to be about EVA, got %q", b.Entries()[0].Question)
	}
}

func TestLoadFile(t *testing.T) {
	yaml := `
entries:
  - question: What does EVA do?
    answer: EVA automates eligibility verification.
  - question: What does CAM do?
    answer: CAM automates claims processing.
`
	dir := t.TempDir()
	path := filepath.Join(dir, "kb.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	b, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", b.Len())
	}
	if b.Entries()[1].Answer != "CAM automates claims processing." {
		t.Errorf("unexpected answer: %q", b.Entries()[1].Answer)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty dataset", "entries: []"},
		{"missing answer", "entries:\n  - question: only a question"},
		{"invalid yaml", ":\n  - ["},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatalf("write dataset: %v", err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
