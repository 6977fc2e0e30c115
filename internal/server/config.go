// ABOUTME: Environment configuration for the analyze server.
// ABOUTME: Parsed with caarlos0/env; the API key stays optional at startup.
package server

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Config is read from the environment at startup. A missing OPENAI_API_KEY
// is not a startup error: the server boots and reports it per request, so a
// misconfigured deploy still answers health checks.
type Config struct {
	Addr          string `env:"LEVELUP_ADDR" envDefault:":8787"`
	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4.1-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
}

// LoadConfig parses the server configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
