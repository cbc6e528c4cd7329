package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.1-8b-instant"
	DefaultTimeout = 30 * time.Second

	Temperature = 0.7
	MaxTokens   = 1024
)

const (
	ClientOpenAI    = "openai"
	ClientLangChain = "langchain"
	ClientREST      = "rest"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var ErrMissingAPIKey = errors.New("Groq API key not configured")

// ServiceError wraps any transport or non-2xx failure from the completion endpoint.
type ServiceError struct {
	Cause error
}

func (e *ServiceError) Error() string {
	return e.Cause.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

type Message struct {
	Role    string
	Content string
}

type Completer interface {
	// Complete returns the text of the first choice.
	Complete(ctx context.Context, messages []Message) (string, error)

	Model() string

	Name() string
}

type Config struct {
	Client  string
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.Client == "" {
		c.Client = ClientOpenAI
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

func New(cfg Config) (Completer, error) {
	cfg = cfg.withDefaults()

	switch cfg.Client {
	case ClientOpenAI:
		return NewOpenAI(cfg), nil
	case ClientLangChain:
		return NewLangChain(cfg)
	case ClientREST:
		return NewREST(cfg), nil
	default:
		return nil, fmt.Errorf("unknown completion client '%s': must be one of %s, %s, %s", cfg.Client, ClientOpenAI, ClientLangChain, ClientREST)
	}
}

// callContext detaches the outbound call from the caller's cancellation: a client
// that disconnects mid request does not abort the completion, only the timeout does.
func callContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), timeout)
}
