package sentiment

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
)

const openAISystemPrompt = `You are a sentiment classifier for social media posts.
Reply with exactly one word: Positive, Negative or Neutral.`

// OpenAIClassifier asks a chat model for a one-word label.
type OpenAIClassifier struct {
	client *openai.Client
	model  string
}

func NewOpenAIClassifier(client *openai.Client, model string) *OpenAIClassifier {
	return &OpenAIClassifier{
		client: client,
		model:  model,
	}
}

func (o *OpenAIClassifier) Classify(ctx context.Context, text string) (Label, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.F(openai.ChatModel(o.model)),
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(openAISystemPrompt),
			openai.UserMessage(CleanText(text)),
		}),
		Temperature: openai.F(0.0),
		MaxTokens:   openai.F(int64(3)),
	})
	if err != nil {
		return Unknown, err
	}

	if len(resp.Choices) == 0 {
		return Unknown, errors.New("model returned no choices")
	}

	reply := strings.Trim(strings.TrimSpace(resp.Choices[0].Message.Content), ".")
	label, ok := ParseLabel(reply)
	if !ok {
		slog.Debug("[OpenAIClassifier] Reply outside label set",
			slog.String("reply", reply))
	}
	return label, nil
}
