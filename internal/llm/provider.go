package llm

import (
	"context"
	"encoding/json"
)

// Provider is the model backend behind question generation. One request
// in, one structured response out.
type Provider interface {
	// Generate runs a single completion. When req carries a Schema the
	// returned Content is JSON already validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID names the configured model.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System is the system prompt.
	System string

	// Messages is the conversation so far. Question generation sends a
	// single user turn.
	Messages []Message

	// Schema constrains the output when set; without it Content is the
	// raw completion text.
	Schema *Schema

	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature in [0,1]; zero asks for deterministic output.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema the model must produce.
type Schema struct {
	// Name is a stable kebab-case identifier, also the validator cache key.
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema document.
	Definition map[string]any
}

// Response is one completion.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that served the request, which can differ from
	// the requested alias.
	Model string

	// StopReason is "end" or "max_tokens".
	StopReason string
}

// Usage is the token count for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
