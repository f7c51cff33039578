package sentiment

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spacesedan/sentimeter/config"
	"github.com/spacesedan/sentimeter/internal/clients"
)

// Classifier assigns one Label to one piece of text. Implementations are
// built once at startup and must be safe for concurrent use.
type Classifier interface {
	Classify(ctx context.Context, text string) (Label, error)
}

// New builds the classifier backend selected by cfg.Classifier.Backend.
// The returned classifier may also implement io.Closer.
func New(cfg *config.Config) (Classifier, error) {
	slog.Info("[Classifier] Loading sentiment classifier",
		slog.String("backend", cfg.Classifier.Backend))

	switch cfg.Classifier.Backend {
	case config.BackendHugot:
		return NewHugotClassifier(cfg.Classifier)
	case config.BackendVader:
		return NewVaderClassifier(), nil
	case config.BackendOpenAI:
		client := clients.NewOpenAIClient(cfg.OpenAI)
		return NewOpenAIClassifier(client, cfg.OpenAI.Model), nil
	default:
		return nil, fmt.Errorf("unknown classifier backend %q", cfg.Classifier.Backend)
	}
}

// Close releases c if it holds resources.
func Close(c Classifier) error {
	if closer, ok := c.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
