package agent

import (
	"fmt"

	"intake-agent/internal/clients/googleai"
	"intake-agent/internal/clients/openai"
	"intake-agent/internal/intake"
	"intake-agent/internal/llm"
	"intake-agent/internal/observability"
)

// Factory turns a Config into a runnable Agent.
type Factory struct {
	actions *intake.ActionFactory
	logger  *observability.Logger

	newChatGPTClient func(ChatGPTConfig) (llm.Client, error)
	newGeminiClient  func(GeminiConfig) (llm.Client, error)
}

func NewFactory(actions *intake.ActionFactory, logger *observability.Logger) *Factory {
	return &Factory{
		actions: actions,
		logger:  logger,
		newChatGPTClient: func(cfg ChatGPTConfig) (llm.Client, error) {
			return openai.NewChatClient(cfg.APIKey, cfg.Model, cfg.Temperature, logger)
		},
		newGeminiClient: func(cfg GeminiConfig) (llm.Client, error) {
			return googleai.NewChatClient(cfg.APIKey, cfg.Model, cfg.Temperature, logger)
		},
	}
}

// CreateAgent builds the agent for cfg.Kind with every configured action
// registered as a tool. It returns ErrInvalidAgentConfig and no agent when the
// kind is unknown or its payload is missing.
func (f *Factory) CreateAgent(cfg Config) (Agent, error) {
	var (
		client llm.Client
		err    error
	)

	switch cfg.Kind {
	case KindChatGPT:
		if cfg.ChatGPT == nil {
			return nil, fmt.Errorf("%w: chatgpt settings missing", ErrInvalidAgentConfig)
		}
		client, err = f.newChatGPTClient(*cfg.ChatGPT)
	case KindGemini:
		if cfg.Gemini == nil {
			return nil, fmt.Errorf("%w: gemini settings missing", ErrInvalidAgentConfig)
		}
		client, err = f.newGeminiClient(*cfg.Gemini)
	default:
		return nil, fmt.Errorf("%w: unknown agent kind %q", ErrInvalidAgentConfig, cfg.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAgentConfig, err)
	}

	actions := make([]intake.Action, 0, len(cfg.Actions))
	for _, actionCfg := range cfg.Actions {
		action, err := f.actions.CreateAction(actionCfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAgentConfig, err)
		}
		actions = append(actions, action)
	}

	return newLLMAgent(cfg, client, actions, f.logger), nil
}
