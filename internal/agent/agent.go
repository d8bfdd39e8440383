package agent

//go:generate go run go.uber.org/mock/mockgen@latest -source=../llm/llm.go -destination=mocks_test.go -package=agent

import (
	"context"
	"errors"
	"fmt"

	"intake-agent/internal/intake"
	"intake-agent/internal/llm"
	"intake-agent/internal/observability"
)

var (
	ErrInvalidAgentConfig = errors.New("invalid agent config")
	ErrUnknownTool        = errors.New("llm called an unregistered tool")
)

const (
	goodbyeMessage = "Thank you for your time, we will get back to you shortly regarding your appointment. Goodbye!"
	repeatMessage  = "Sorry, I didn't catch that. Could you say that again?"
)

// Reply is the agent's answer to one caller utterance. Record is set, and Done
// is true, once the collect-data tool has produced the intake record.
type Reply struct {
	Text   string
	Record *intake.Record
	Done   bool
}

// Agent is a runnable dialogue policy with its actions registered as tools.
type Agent interface {
	Kind() Kind
	InitialMessage() string
	Respond(ctx context.Context, history []llm.Message, input string) (Reply, error)
}

// LLMAgent drives the conversation through an LLM client and runs the tools
// the model calls.
type LLMAgent struct {
	kind           Kind
	initialMessage string
	preamble       string
	client         llm.Client
	actions        map[string]intake.Action
	tools          []llm.Tool
	logger         *observability.Logger
}

func newLLMAgent(cfg Config, client llm.Client, actions []intake.Action, logger *observability.Logger) *LLMAgent {
	a := &LLMAgent{
		kind:           cfg.Kind,
		initialMessage: cfg.InitialMessage,
		preamble:       cfg.PromptPreamble,
		client:         client,
		actions:        make(map[string]intake.Action, len(actions)),
		logger:         logger,
	}
	for _, action := range actions {
		a.actions[action.Name()] = action
		a.tools = append(a.tools, llm.Tool{
			Name:        action.Name(),
			Description: action.Description(),
			Parameters:  action.JSONSchema(),
		})
	}
	return a
}

func (a *LLMAgent) Kind() Kind {
	return a.kind
}

func (a *LLMAgent) InitialMessage() string {
	return a.initialMessage
}

// Respond sends the conversation so far plus the caller's input to the model.
// The history slice is not modified.
func (a *LLMAgent) Respond(ctx context.Context, history []llm.Message, input string) (Reply, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_kind", Value: string(a.kind)})

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: input})

	resp, err := a.client.Complete(ctx, llm.Request{
		System:   a.preamble,
		Messages: messages,
		Tools:    a.tools,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("failed to get agent response: %w", err)
	}

	for _, call := range resp.ToolCalls {
		action, ok := a.actions[call.Name]
		if !ok {
			a.logger.Warn(ctx, fmt.Sprintf("model called unknown tool %q", call.Name))
			return Reply{}, fmt.Errorf("%w: %s", ErrUnknownTool, call.Name)
		}

		record, err := action.Execute(ctx, call.Arguments)
		if err != nil {
			return Reply{}, fmt.Errorf("failed to run %s: %w", call.Name, err)
		}

		text := resp.Text
		if text == "" {
			text = goodbyeMessage
		}
		return Reply{Text: text, Record: &record, Done: true}, nil
	}

	if resp.Text == "" {
		a.logger.Warn(ctx, "model returned an empty reply")
		return Reply{Text: repeatMessage}, nil
	}
	return Reply{Text: resp.Text}, nil
}
