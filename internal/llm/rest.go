package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"
)

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Temperature float64                 `json:"temperature"`
	MaxTokens   int                     `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// REST posts the chat completion payload directly, without an SDK in between.
type REST struct {
	client *resty.Client
	cfg    Config
}

func NewREST(cfg Config) *REST {
	cfg = cfg.withDefaults()
	return &REST{
		client: resty.New().
			SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
			SetHeader("Content-Type", "application/json"),
		cfg: cfg,
	}
}

func (r *REST) Model() string { return r.cfg.Model }

func (r *REST) Name() string { return ClientREST }

func (r *REST) Complete(ctx context.Context, messages []Message) (string, error) {
	if r.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	ctx, cancel := callContext(ctx, r.cfg.Timeout)
	defer cancel()

	payload := chatCompletionRequest{
		Model:       r.cfg.Model,
		Messages:    make([]chatCompletionMessage, 0, len(messages)),
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	}
	for _, m := range messages {
		payload.Messages = append(payload.Messages, chatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	var out chatCompletionResponse
	res, err := r.client.R().
		SetContext(ctx).
		SetAuthToken(r.cfg.APIKey).
		SetBody(payload).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		slog.Error("chat completion failed", "client", r.Name(), "model", r.cfg.Model, "error", err)
		return "", &ServiceError{Cause: err}
	}

	if res.IsError() {
		err := fmt.Errorf("unexpected status '%s' for url '%s'", res.Status(), res.Request.URL)
		slog.Error("chat completion failed", "client", r.Name(), "model", r.cfg.Model, "error", err, "body", res.String())
		return "", &ServiceError{Cause: err}
	}

	if len(out.Choices) == 0 {
		return "", &ServiceError{Cause: errors.New("chat completion returned no choices")}
	}

	return out.Choices[0].Message.Content, nil
}
