package agent

import (
	"fmt"
	"strings"

	"intake-agent/internal/intake"
)

// Kind tags which dialogue policy a Config describes.
type Kind string

const (
	KindChatGPT Kind = "chatgpt"
	KindGemini  Kind = "gemini"
)

// ParseKind maps a configuration string onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindChatGPT, "":
		return KindChatGPT, nil
	case KindGemini:
		return KindGemini, nil
	default:
		return "", fmt.Errorf("%w: unknown agent kind %q", ErrInvalidAgentConfig, s)
	}
}

// Config describes a dialogue policy. Kind selects which payload is read;
// the payload for any other kind is ignored.
type Config struct {
	Kind           Kind
	InitialMessage string
	PromptPreamble string
	Actions        []intake.ActionConfig

	ChatGPT *ChatGPTConfig
	Gemini  *GeminiConfig
}

type ChatGPTConfig struct {
	APIKey      string
	Model       string
	Temperature float64
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
}
