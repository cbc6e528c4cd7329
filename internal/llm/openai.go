package llm

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI talks to the OpenAI compatible Groq endpoint through the official SDK.
type OpenAI struct {
	client openai.Client
	cfg    Config
}

func NewOpenAI(cfg Config) *OpenAI {
	cfg = cfg.withDefaults()
	return &OpenAI{
		client: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")+"/"),
			option.WithMaxRetries(0),
		),
		cfg: cfg,
	}
}

func (o *OpenAI) Model() string { return o.cfg.Model }

func (o *OpenAI) Name() string { return ClientOpenAI }

func (o *OpenAI) Complete(ctx context.Context, messages []Message) (string, error) {
	if o.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	ctx, cancel := callContext(ctx, o.cfg.Timeout)
	defer cancel()

	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params = append(params, openai.SystemMessage(m.Content))
		case RoleAssistant:
			params = append(params, openai.AssistantMessage(m.Content))
		default:
			params = append(params, openai.UserMessage(m.Content))
		}
	}

	chatOpts := openai.ChatCompletionNewParams{
		Messages:    params,
		Model:       o.cfg.Model,
		Temperature: openai.Float(Temperature),
		MaxTokens:   openai.Int(MaxTokens),
	}

	res, err := o.client.Chat.Completions.New(ctx, chatOpts)
	if err != nil {
		slog.Error("chat completion failed", "client", o.Name(), "model", o.cfg.Model, "error", err)
		return "", &ServiceError{Cause: err}
	}

	if len(res.Choices) == 0 {
		return "", &ServiceError{Cause: errors.New("chat completion returned no choices")}
	}

	return res.Choices[0].Message.Content, nil
}
