package model

import (
	"context"
	"encoding/json"
	"net/http"
)

// OpenAI implements Provider for OpenAI chat completion endpoints.
type OpenAI struct {
	config ProviderConfig
	http   *httpClient
}

// NewOpenAI creates a new OpenAI provider with the given API key.
func NewOpenAI(apiKey string) *OpenAI {
	return NewOpenAIWithConfig(ProviderConfig{
		APIKey:  apiKey,
		BaseURL: "https://api.openai.com/v1",
		Model:   "gpt-3.5-turbo",
	})
}

// NewOpenAIWithConfig creates an OpenAI provider with full configuration.
func NewOpenAIWithConfig(cfg ProviderConfig) *OpenAI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-3.5-turbo"
	}
	headers := map[string]string{
		"Authorization": "Bearer " + cfg.APIKey,
	}
	if cfg.OrgID != "" {
		headers["OpenAI-Organization"] = cfg.OrgID
	}
	return &OpenAI{
		config: cfg,
		http:   newHTTPClient(cfg.BaseURL, cfg.TimeoutSec, headers),
	}
}

func (o *OpenAI) Name() string  { return "openai" }
func (o *OpenAI) Model() string { return o.config.Model }

func (o *OpenAI) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	return openAIChat(ctx, o.http, o.Name(), o.config.Model, req)
}

// openAIChat performs a chat completion against an OpenAI-style endpoint.
// Shared by OpenAI and OpenAICompatible.
func openAIChat(ctx context.Context, hc *httpClient, provider, defaultModel string, req *ChatRequest) (*ChatResponse, error) {
	body := buildOpenAIRequestBody(req, defaultModel)

	resp, err := hc.post(ctx, "/chat/completions", body)
	if err != nil {
		return nil, networkError(provider, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, apiErrorFromResponse(provider, resp)
	}

	var oaiResp openAIChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&oaiResp); err != nil {
		return nil, invalidResponseError(provider, "decode response", err)
	}

	cr := convertOpenAIResponse(&oaiResp)
	if cr.Content == "" {
		return nil, invalidResponseError(provider, "empty completion", nil)
	}
	return cr, nil
}

// buildOpenAIRequestBody converts a ChatRequest into the OpenAI API JSON body.
func buildOpenAIRequestBody(req *ChatRequest, defaultModel string) map[string]any {
	modelID := req.Model
	if modelID == "" {
		modelID = defaultModel
	}

	messages := make([]map[string]any, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, map[string]any{"role": m.Role, "content": m.Content})
	}

	body := map[string]any{
		"model":    modelID,
		"messages": messages,
	}
	if req.MaxTokens > 0 {
		body["max_tokens"] = req.MaxTokens
	}
	if req.Temperature > 0 {
		body["temperature"] = req.Temperature
	}
	if req.TopP > 0 {
		body["top_p"] = req.TopP
	}
	if len(req.Stop) > 0 {
		body["stop"] = req.Stop
	}
	return body
}

// openAIChatResponse is the raw OpenAI chat completion response.
type openAIChatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// convertOpenAIResponse maps the raw API response to a ChatResponse.
func convertOpenAIResponse(oai *openAIChatResponse) *ChatResponse {
	if len(oai.Choices) == 0 {
		return &ChatResponse{ID: oai.ID, Role: RoleAssistant}
	}
	choice := oai.Choices[0]
	return &ChatResponse{
		ID:      oai.ID,
		Content: choice.Message.Content,
		Role:    RoleAssistant,
		Usage: Usage{
			PromptTokens:     oai.Usage.PromptTokens,
			CompletionTokens: oai.Usage.CompletionTokens,
		},
		StopReason: mapOpenAIFinishReason(choice.FinishReason),
	}
}

func mapOpenAIFinishReason(reason string) StopReason {
	switch reason {
	case "length":
		return StopReasonMaxTokens
	case "content_filter":
		return StopReasonFilter
	default:
		return StopReasonEnd
	}
}
