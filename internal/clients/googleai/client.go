package googleai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"intake-agent/internal/llm"
	"intake-agent/internal/observability"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultChatModel = "gemini-1.5-flash"

// ChatClient runs Gemini chats with function calling.
type ChatClient struct {
	apiKey      string
	model       string
	temperature float32
	logger      *observability.Logger
}

func NewChatClient(apiKey string, model string, temperature float32, logger *observability.Logger) (*ChatClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Google AI API key is required")
	}
	if model == "" {
		model = DefaultChatModel
	}
	return &ChatClient{
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		logger:      logger,
	}, nil
}

func (g *ChatClient) Complete(ctx context.Context, req llm.Request) (llm.Response, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "llm_provider", Value: "gemini"},
		observability.Field{Key: "llm_model", Value: g.model},
	)

	if len(req.Messages) == 0 {
		return llm.Response{}, fmt.Errorf("gemini chat needs at least one message")
	}

	c, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		g.logger.Error(ctx, "Failed to create client", err)
		return llm.Response{}, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer c.Close()

	model := c.GenerativeModel(g.model)
	if req.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}
	if g.temperature > 0 {
		model.SetTemperature(g.temperature)
	}
	if len(req.Tools) > 0 {
		model.Tools = []*genai.Tool{{FunctionDeclarations: toFunctionDeclarations(req.Tools)}}
	}

	chat := model.StartChat()
	chat.History = toHistory(req.Messages[:len(req.Messages)-1])
	last := req.Messages[len(req.Messages)-1]

	resp, err := chat.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		g.logger.Error(ctx, "Failed to get Gemini response", err)
		return llm.Response{}, fmt.Errorf("failed to get Gemini response: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return llm.Response{}, llm.ErrEmptyCompletion
	}

	var out llm.Response
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			text.WriteString(string(p))
		case genai.FunctionCall:
			args, err := json.Marshal(p.Args)
			if err != nil {
				return llm.Response{}, fmt.Errorf("failed to marshal function call args: %w", err)
			}
			out.ToolCalls = append(out.ToolCalls, llm.ToolCall{
				ID:        p.Name,
				Name:      p.Name,
				Arguments: args,
			})
		}
	}
	out.Text = strings.TrimSpace(text.String())

	return out, nil
}

func toHistory(messages []llm.Message) []*genai.Content {
	history := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		role := "user"
		if m.Role == llm.RoleAssistant {
			role = "model" // Gemini SDK expects "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	return history
}

func toFunctionDeclarations(tools []llm.Tool) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  toSchema(t.Parameters),
		})
	}
	return decls
}

// toSchema converts a JSON schema object into the SDK's schema type. Only the
// keywords the intake tools use are mapped.
func toSchema(m map[string]any) *genai.Schema {
	if m == nil {
		return nil
	}
	s := &genai.Schema{}
	if t, ok := m["type"].(string); ok {
		s.Type = schemaType(t)
	}
	if d, ok := m["description"].(string); ok {
		s.Description = d
	}
	if props, ok := m["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, raw := range props {
			if prop, ok := raw.(map[string]any); ok {
				s.Properties[name] = toSchema(prop)
			}
		}
	}
	switch req := m["required"].(type) {
	case []string:
		s.Required = append([]string(nil), req...)
	case []any:
		for _, r := range req {
			if name, ok := r.(string); ok {
				s.Required = append(s.Required, name)
			}
		}
	}
	if items, ok := m["items"].(map[string]any); ok {
		s.Items = toSchema(items)
	}
	return s
}

func schemaType(t string) genai.Type {
	switch t {
	case "object":
		return genai.TypeObject
	case "string":
		return genai.TypeString
	case "boolean":
		return genai.TypeBoolean
	case "integer":
		return genai.TypeInteger
	case "number":
		return genai.TypeNumber
	case "array":
		return genai.TypeArray
	default:
		return genai.TypeUnspecified
	}
}
