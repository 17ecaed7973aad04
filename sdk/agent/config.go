package agent

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thoughtful-ai/support-agent/engine/model"
	"github.com/thoughtful-ai/support-agent/sdk/knowledge"
	"github.com/thoughtful-ai/support-agent/sdk/match"
)

// Config is the YAML-serializable agent definition.
type Config struct {
	Name   string `yaml:"name,omitempty"`
	System string `yaml:"system_prompt,omitempty"`

	Model     ModelConfig     `yaml:"model,omitempty"`
	Match     MatchConfig     `yaml:"match,omitempty"`
	Knowledge KnowledgeConfig `yaml:"knowledge,omitempty"`
}

// ModelConfig describes which model provider and settings to use.
type ModelConfig struct {
	Provider    string  `yaml:"provider,omitempty"` // openai, compatible
	Model       string  `yaml:"model,omitempty"`
	APIKey      string  `yaml:"api_key,omitempty"` // literal or ${ENV_VAR}
	BaseURL     string  `yaml:"base_url,omitempty"`
	TimeoutSec  int     `yaml:"timeout_sec,omitempty"`
	MaxTokens   int     `yaml:"max_tokens,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty"`
}

// MatchConfig tunes the matcher.
type MatchConfig struct {
	Threshold float64 `yaml:"threshold,omitempty"` // 0-100, default 70
}

// KnowledgeConfig selects the dataset source.
type KnowledgeConfig struct {
	// Path to an external dataset YAML. Empty uses the embedded dataset.
	Path string `yaml:"path,omitempty"`
}

// Default returns the configuration used when no config file exists:
// OpenAI gpt-3.5-turbo keyed by $OPENAI_API_KEY.
func Default() *Config {
	return &Config{
		Name: "support-agent",
		Model: ModelConfig{
			Provider: "openai",
			Model:    "gpt-3.5-turbo",
			APIKey:   "${OPENAI_API_KEY}",
		},
	}
}

// LoadFile parses a YAML config file. With an empty path it searches
// .support-agent/config.yaml, config.yaml, and ~/.support-agent/config.yaml,
// and falls back to Default when none exists.
func LoadFile(path string) (*Config, error) {
	data, resolvedPath, err := readConfigFile(path)
	if err != nil {
		if path == "" {
			cfg := Default()
			expandEnvInConfig(cfg)
			return cfg, nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", resolvedPath, err)
	}
	expandEnvInConfig(cfg)
	return cfg, nil
}

func readConfigFile(path string) ([]byte, string, error) {
	candidates := []string{path}
	if path == "" {
		candidates = []string{
			".support-agent/config.yaml",
			".support-agent/config.yml",
			"config.yaml",
		}
		if home, err := os.UserHomeDir(); err == nil {
			candidates = append(candidates,
				filepath.Join(home, ".support-agent", "config.yaml"),
				filepath.Join(home, ".support-agent", "config.yml"),
			)
		}
	}

	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, p, nil
		}
	}

	if path != "" {
		return nil, path, fmt.Errorf("config file not found: %s", path)
	}
	return nil, "", fmt.Errorf("no config found (looked in: %s)", strings.Join(candidates, ", "))
}

// expandEnvInConfig replaces ${VAR} references with environment values.
func expandEnvInConfig(cfg *Config) {
	cfg.Name = os.ExpandEnv(cfg.Name)
	cfg.System = os.ExpandEnv(cfg.System)
	cfg.Model.APIKey = os.ExpandEnv(cfg.Model.APIKey)
	cfg.Model.BaseURL = os.ExpandEnv(cfg.Model.BaseURL)
	cfg.Knowledge.Path = os.ExpandEnv(cfg.Knowledge.Path)
}

// Build constructs a fully-wired agent from the config. A missing API key
// is not fatal: the agent comes back unconfigured for fallback and the
// caller decides how to surface that. A missing or invalid knowledge
// dataset is fatal.
func (cfg *Config) Build() (*Agent, error) {
	kb, err := cfg.loadKnowledge()
	if err != nil {
		return nil, fmt.Errorf("agent %q knowledge: %w", cfg.Name, err)
	}

	b := New(cfg.Name).
		WithKnowledge(kb).
		WithMatcher(match.New(nil, cfg.Match.Threshold))

	if cfg.System != "" {
		b.WithSystemPrompt(cfg.System)
	}
	if cfg.Model.MaxTokens > 0 {
		b.WithMaxTokens(cfg.Model.MaxTokens)
	}
	if cfg.Model.Temperature > 0 {
		b.WithTemperature(cfg.Model.Temperature)
	}

	provider, err := buildProvider(cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("agent %q model: %w", cfg.Name, err)
	}
	if provider != nil {
		b.WithModel(provider)
	}

	return b.Build()
}

func (cfg *Config) loadKnowledge() (*knowledge.Base, error) {
	if cfg.Knowledge.Path != "" {
		return knowledge.LoadFile(cfg.Knowledge.Path)
	}
	return knowledge.Load()
}

// buildProvider returns nil without error when no API key is configured.
func buildProvider(cfg ModelConfig) (model.Provider, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	switch strings.ToLower(cfg.Provider) {
	case "", "openai":
		return model.NewOpenAIWithConfig(model.ProviderConfig{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			TimeoutSec: cfg.TimeoutSec,
		}), nil
	case "compatible", "custom":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("compatible provider requires base_url")
		}
		return model.NewOpenAICompatibleWithConfig("compatible", model.ProviderConfig{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			TimeoutSec: cfg.TimeoutSec,
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (supported: openai, compatible)", cfg.Provider)
	}
}
