// Package llm holds the provider-neutral request and response shapes shared by
// the dialogue policies and the LLM vendor clients.
package llm

import (
	"context"
	"encoding/json"
	"errors"
)

var ErrEmptyCompletion = errors.New("llm returned no choices")

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one conversational turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Tool is a function the model may call. Parameters is a JSON schema object.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
}

type Request struct {
	System   string
	Messages []Message
	Tools    []Tool
}

type ToolCall struct {
	ID        string
	Name      string
	Arguments json.RawMessage
}

type Response struct {
	Text      string
	ToolCalls []ToolCall
}

// Client sends one chat completion request.
type Client interface {
	Complete(ctx context.Context, req Request) (Response, error)
}
