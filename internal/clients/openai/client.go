package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"intake-agent/internal/llm"
	"intake-agent/internal/observability"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const DefaultChatModel = "gpt-4o"

// ChatClient runs chat completions with tool calling against the OpenAI API.
type ChatClient struct {
	apiKey      string
	model       string
	temperature float64
	logger      *observability.Logger
}

func NewChatClient(apiKey string, model string, temperature float64, logger *observability.Logger) (*ChatClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
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

func (c *ChatClient) Complete(ctx context.Context, req llm.Request) (llm.Response, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "llm_provider", Value: "openai"},
		observability.Field{Key: "llm_model", Value: c.model},
	)

	client := openai.NewClient(option.WithAPIKey(c.apiKey))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: toMessages(req),
	}
	if len(req.Tools) > 0 {
		params.Tools = toTools(req.Tools)
	}
	if c.temperature > 0 {
		params.Temperature = openai.Float(c.temperature)
	}

	completion, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		c.logger.Error(ctx, "failed to create chat completion", err)
		return llm.Response{}, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return llm.Response{}, llm.ErrEmptyCompletion
	}

	message := completion.Choices[0].Message
	resp := llm.Response{Text: message.Content}
	for _, call := range message.ToolCalls {
		resp.ToolCalls = append(resp.ToolCalls, llm.ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: json.RawMessage(call.Function.Arguments),
		})
	}

	c.logger.Debug(ctx, fmt.Sprintf("chat completion returned %d tool calls", len(resp.ToolCalls)))
	return resp, nil
}

func toMessages(req llm.Request) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	for _, m := range req.Messages {
		switch m.Role {
		case llm.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}
	return messages
}

func toTools(tools []llm.Tool) []openai.ChatCompletionToolParam {
	out := make([]openai.ChatCompletionToolParam, 0, len(tools))
	for _, t := range tools {
		out = append(out, openai.ChatCompletionToolParam{
			Function: openai.FunctionDefinitionParam{
				Name:        t.Name,
				Description: openai.String(t.Description),
				Parameters:  openai.FunctionParameters(t.Parameters),
			},
		})
	}
	return out
}
