package clients

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/spacesedan/sentimeter/config"
)

// NewOpenAIClient builds the client used by the openai classifier backend.
// Retries are disabled; a failed call fails the request that made it.
func NewOpenAIClient(cfg config.OpenAIConfig) *openai.Client {
	endpoint := cfg.APIEndpoint
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(endpoint),
		option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		option.WithMaxRetries(0),
	)

	slog.Info("[OpenAIClient] OpenAI client initialized",
		slog.String("endpoint", endpoint),
		slog.Duration("timeout", cfg.Timeout))
	return client
}
