package config

import (
	"fmt"
	"log/slog"
	"time"

	"portfolio-backend/internal/llm"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        int    `env:"PORT" envDefault:"8000"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"./portfolio_chat.db"`
	ProfileFile string `env:"PROFILE_FILE"`

	// The key is optional at startup; a chat request without it fails with a
	// configuration error instead.
	GroqAPIKey string        `env:"GROQ_API_KEY"`
	GroqAPIURL string        `env:"GROQ_API_URL" envDefault:"https://api.groq.com/openai/v1"`
	GroqModel  string        `env:"GROQ_MODEL" envDefault:"llama-3.1-8b-instant"`
	LLMClient  string        `env:"LLM_CLIENT" envDefault:"openai"`
	LLMTimeout time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.GroqAPIKey == "" {
		slog.Warn("GROQ_API_KEY is not set, chat requests will fail until it is configured")
	}

	return cfg, nil
}

func (c Config) LLM() llm.Config {
	return llm.Config{
		Client:  c.LLMClient,
		APIKey:  c.GroqAPIKey,
		BaseURL: c.GroqAPIURL,
		Model:   c.GroqModel,
		Timeout: c.LLMTimeout,
	}
}
