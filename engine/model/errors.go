package model

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ErrorKind classifies a provider failure.
type ErrorKind string

const (
	// KindNetwork covers transport failures, including timeouts.
	KindNetwork ErrorKind = "network"
	// KindAuth covers missing or rejected credentials (401/403).
	KindAuth ErrorKind = "auth"
	// KindRateLimit covers quota and rate-limit rejections (429).
	KindRateLimit ErrorKind = "rate_limit"
	// KindServer covers provider-side failures (5xx).
	KindServer ErrorKind = "server"
	// KindInvalidResponse covers undecodable or empty completions.
	KindInvalidResponse ErrorKind = "invalid_response"
)

// APIError is the error type returned by all providers. The message comes
// from the provider's error body when one is present; it never includes
// request headers or credentials.
type APIError struct {
	Provider string
	Kind     ErrorKind
	Status   int
	Message  string
	Err      error
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: %s (status %d): %s", e.Provider, e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Provider, e.Kind, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

func classifyStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusTooManyRequests:
		return KindRateLimit
	case status >= 500:
		return KindServer
	default:
		return KindInvalidResponse
	}
}

// openAIErrorBody is the error envelope OpenAI-style APIs return.
type openAIErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// apiErrorFromResponse builds an APIError from a non-200 response,
// extracting the provider's error message when the body carries one.
func apiErrorFromResponse(provider string, resp *http.Response) *APIError {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := resp.Status
	if err == nil && len(body) > 0 {
		var eb openAIErrorBody
		if json.Unmarshal(body, &eb) == nil && eb.Error.Message != "" {
			msg = eb.Error.Message
		} else {
			msg = fmt.Sprintf("%s: %s", resp.Status, string(body))
		}
	}
	return &APIError{
		Provider: provider,
		Kind:     classifyStatus(resp.StatusCode),
		Status:   resp.StatusCode,
		Message:  msg,
	}
}

func networkError(provider string, err error) *APIError {
	return &APIError{
		Provider: provider,
		Kind:     KindNetwork,
		Message:  err.Error(),
		Err:      err,
	}
}

func invalidResponseError(provider, msg string, err error) *APIError {
	return &APIError{
		Provider: provider,
		Kind:     KindInvalidResponse,
		Message:  msg,
		Err:      err,
	}
}
