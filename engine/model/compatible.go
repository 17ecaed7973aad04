package model

import "context"

// OpenAICompatible implements Provider for any OpenAI-compatible API
// endpoint. Use this for self-hosted models (vLLM, LiteLLM, Ollama's
// OpenAI mode) or cloud providers that expose an OpenAI-compatible
// interface.
type OpenAICompatible struct {
	config       ProviderConfig
	providerName string
	http         *httpClient
}

// NewOpenAICompatible creates a provider for any OpenAI-compatible endpoint.
// name is a human-readable identifier (e.g., "vllm", "groq").
func NewOpenAICompatible(name, baseURL, apiKey, modelID string) *OpenAICompatible {
	return NewOpenAICompatibleWithConfig(name, ProviderConfig{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   modelID,
	})
}

// NewOpenAICompatibleWithConfig creates an OpenAI-compatible provider with
// full config.
func NewOpenAICompatibleWithConfig(name string, cfg ProviderConfig) *OpenAICompatible {
	headers := map[string]string{}
	if cfg.APIKey != "" {
		headers["Authorization"] = "Bearer " + cfg.APIKey
	}
	return &OpenAICompatible{
		config:       cfg,
		providerName: name,
		http:         newHTTPClient(cfg.BaseURL, cfg.TimeoutSec, headers),
	}
}

func (c *OpenAICompatible) Name() string  { return c.providerName }
func (c *OpenAICompatible) Model() string { return c.config.Model }

func (c *OpenAICompatible) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	return openAIChat(ctx, c.http, c.providerName, c.config.Model, req)
}
