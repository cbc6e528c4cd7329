package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

type LangChain struct {
	llm *openai.LLM // nil when no API key is configured
	cfg Config
}

func NewLangChain(cfg Config) (*LangChain, error) {
	cfg = cfg.withDefaults()
	if cfg.APIKey == "" {
		// langchaingo refuses to build a client without a token, so the missing key
		// is reported when the first completion is requested.
		return &LangChain{cfg: cfg}, nil
	}

	client, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
		openai.WithBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")),
		openai.WithHTTPClient(&http.Client{}),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create langchain openai client: %w", err)
	}

	return &LangChain{llm: client, cfg: cfg}, nil
}

func (l *LangChain) Model() string { return l.cfg.Model }

func (l *LangChain) Name() string { return ClientLangChain }

func (l *LangChain) Complete(ctx context.Context, messages []Message) (string, error) {
	if l.llm == nil {
		return "", ErrMissingAPIKey
	}

	ctx, cancel := callContext(ctx, l.cfg.Timeout)
	defer cancel()

	content := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		var role schema.ChatMessageType
		switch m.Role {
		case RoleSystem:
			role = schema.ChatMessageTypeSystem
		case RoleAssistant:
			role = schema.ChatMessageTypeAI
		default:
			role = schema.ChatMessageTypeHuman
		}
		content = append(content, llms.TextParts(role, m.Content))
	}

	resp, err := l.llm.GenerateContent(ctx, content,
		llms.WithTemperature(Temperature),
		llms.WithMaxTokens(MaxTokens),
	)
	if err != nil {
		slog.Error("chat completion failed", "client", l.Name(), "model", l.cfg.Model, "error", err)
		return "", &ServiceError{Cause: err}
	}

	if len(resp.Choices) == 0 {
		return "", &ServiceError{Cause: errors.New("chat completion returned no choices")}
	}

	return resp.Choices[0].Content, nil
}
