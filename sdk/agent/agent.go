// Package agent wires the knowledge base, the matcher, and a model
// provider into the support agent's answer procedure.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thoughtful-ai/support-agent/engine/model"
	"github.com/thoughtful-ai/support-agent/sdk/knowledge"
	"github.com/thoughtful-ai/support-agent/sdk/match"
)

// Answer sources, surfaced to the user as transcript captions.
const (
	SourcePredefined = "predefined"
	SourceModel      = "model"
	SourceError      = "error"
)

// DefaultSystemPrompt anchors fallback answers to the support domain even
// though they are not drawn from the knowledge base.
const DefaultSystemPrompt = "You are a helpful customer support assistant for Thoughtful AI, " +
	"a company providing AI-powered healthcare automation agents such as EVA (eligibility " +
	"verification), CAM (claims processing), and PHIL (payment posting). Be concise and friendly."

const (
	defaultMaxTokens   = 300
	defaultTemperature = 0.7
)

// ErrEmptyQuery is returned for empty or whitespace-only queries. No
// matching and no provider call happens for such input.
var ErrEmptyQuery = errors.New("empty query")

// ErrNotConfigured is returned when a query misses the knowledge base and
// no model provider is configured. Predefined matching still functions.
var ErrNotConfigured = errors.New("model provider not configured")

// Agent answers one query at a time: knowledge-base match first, model
// escalation on a miss.
type Agent struct {
	Name string

	KB      *knowledge.Base
	Matcher *match.Matcher
	Model   model.Provider // nil when no credential is configured

	SystemPrompt string
	MaxTokens    int
	Temperature  float64
}

// Response is one resolved answer.
type Response struct {
	Text   string
	Source string
	// Score is the best similarity score found, also reported on misses.
	Score float64
}

// Builder provides a fluent API for constructing agents.
type Builder struct {
	agent *Agent
}

// New creates an agent builder.
func New(name string) *Builder {
	return &Builder{agent: &Agent{
		Name:         name,
		SystemPrompt: DefaultSystemPrompt,
		MaxTokens:    defaultMaxTokens,
		Temperature:  defaultTemperature,
	}}
}

func (b *Builder) WithKnowledge(kb *knowledge.Base) *Builder  { b.agent.KB = kb; return b }
func (b *Builder) WithMatcher(m *match.Matcher) *Builder      { b.agent.Matcher = m; return b }
func (b *Builder) WithModel(p model.Provider) *Builder        { b.agent.Model = p; return b }
func (b *Builder) WithSystemPrompt(prompt string) *Builder    { b.agent.SystemPrompt = prompt; return b }
func (b *Builder) WithMaxTokens(n int) *Builder               { b.agent.MaxTokens = n; return b }
func (b *Builder) WithTemperature(temp float64) *Builder      { b.agent.Temperature = temp; return b }

// Build validates and returns the agent. A model provider is optional;
// without one the agent still answers from the knowledge base.
func (b *Builder) Build() (*Agent, error) {
	if b.agent.KB == nil {
		return nil, fmt.Errorf("agent %q: knowledge base is required", b.agent.Name)
	}
	if b.agent.Matcher == nil {
		b.agent.Matcher = match.New(nil, 0)
	}
	return b.agent, nil
}

// Configured reports whether a model provider is available for fallback.
func (a *Agent) Configured() bool { return a.Model != nil }

// Respond resolves one query: a knowledge-base hit returns the predefined
// answer with zero provider calls; a miss makes exactly one provider call.
// Provider failures come back as *model.APIError; use ErrorMessage to
// render any returned error for the user.
func (a *Agent) Respond(ctx context.Context, query string) (*Response, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	res := a.Matcher.Match(query, a.KB)
	if res.Hit {
		return &Response{Text: res.Entry.Answer, Source: SourcePredefined, Score: res.Score}, nil
	}

	if a.Model == nil {
		return nil, ErrNotConfigured
	}

	resp, err := a.Model.Chat(ctx, &model.ChatRequest{
		Messages: []model.Message{
			{Role: model.RoleSystem, Content: a.SystemPrompt},
			{Role: model.RoleUser, Content: query},
		},
		MaxTokens:   a.MaxTokens,
		Temperature: a.Temperature,
	})
	if err != nil {
		return nil, err
	}
	return &Response{Text: resp.Content, Source: SourceModel, Score: res.Score}, nil
}

// ErrorMessage converts a Respond error into a short user-facing message.
// Messages never contain credential material and are safe to print into
// the transcript.
func ErrorMessage(err error) string {
	if errors.Is(err, ErrEmptyQuery) {
		return "Please enter a question."
	}
	if errors.Is(err, ErrNotConfigured) {
		return "I can only answer questions about Thoughtful AI's agents right now: " +
			"general questions need an API key (set OPENAI_API_KEY)."
	}

	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case model.KindAuth:
			return "I apologize, but my connection to the answer service was rejected. " +
				"Please check the configured API key."
		case model.KindRateLimit:
			return "I apologize, but I'm receiving too many requests right now. " +
				"Please try again in a moment."
		default:
			return "I apologize, but I'm having trouble reaching the answer service. " +
				"Please try again in a moment."
		}
	}
	return "I apologize, but something went wrong answering that. Please try again."
}
