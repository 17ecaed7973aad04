// Package knowledge holds the predefined question/answer dataset the
// agent answers from before escalating to a model provider.
package knowledge

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var embeddedDataset []byte

// Entry is one predefined question/answer pair.
type Entry struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Base is an immutable, ordered collection of entries, loaded once at
// startup. It is safe for concurrent readers.
type Base struct {
	entries []Entry
}

type dataset struct {
	Entries []Entry `yaml:"entries"`
}

// New builds a base from entries supplied programmatically. The slice is
// copied; entries must have a non-empty question and answer.
func New(entries []Entry) (*Base, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries")
	}
	for i, e := range entries {
		if e.Question == "" || e.Answer == "" {
			return nil, fmt.Errorf("entry %d: question and answer are required", i)
		}
	}
	return &Base{entries: append([]Entry(nil), entries...)}, nil
}

// Load parses the embedded dataset.
func Load() (*Base, error) {
	b, err := parse(embeddedDataset)
	if err != nil {
		return nil, fmt.Errorf("embedded dataset: %w", err)
	}
	return b, nil
}

// LoadFile parses a dataset from an external YAML file with the same
// schema as the embedded one.
func LoadFile(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	b, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return b, nil
}

func parse(data []byte) (*Base, error) {
	var ds dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(ds.Entries) == 0 {
		return nil, fmt.Errorf("no entries")
	}
	for i, e := range ds.Entries {
		if e.Question == "" || e.Answer == "" {
			return nil, fmt.Errorf("entry %d: question and answer are required", i)
		}
	}
	return &Base{entries: ds.Entries}, nil
}

// Entries returns the dataset in load order. Callers must not modify the
// returned slice.
func (b *Base) Entries() []Entry { return b.entries }

// Len returns the number of entries.
func (b *Base) Len() int { return len(b.entries) }
