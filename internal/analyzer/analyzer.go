package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spacesedan/sentimeter/internal/models"
	"github.com/spacesedan/sentimeter/internal/sentiment"
)

// PageSize is how many recent posts are fetched per analysis.
const PageSize = 10

type PostFetcher interface {
	FetchRecentPosts(ctx context.Context, username string, limit int) ([]models.Post, error)
}

type AnalysisResult struct {
	Username string            `json:"user_id"`
	Posts    []string          `json:"tweets"`
	Labels   []sentiment.Label `json:"labels"`
	Tally    sentiment.Tally   `json:"tally"`
}

type Analyzer struct {
	fetcher    PostFetcher
	classifier sentiment.Classifier
}

func New(fetcher PostFetcher, classifier sentiment.Classifier) *Analyzer {
	return &Analyzer{
		fetcher:    fetcher,
		classifier: classifier,
	}
}

// Analyze fetches the user's recent posts, classifies each one in order and
// tallies the labels. Any failure aborts the whole analysis.
func (a *Analyzer) Analyze(ctx context.Context, req models.AnalysisRequest) (*AnalysisResult, error) {
	username := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(req.Username), "@"))
	if username == "" {
		return nil, &Error{Kind: ErrValidation, Message: "Twitter username is required"}
	}

	slog.Info("[Analyzer] Fetching tweets", slog.String("user_id", username))
	start := time.Now()

	posts, err := a.fetcher.FetchRecentPosts(ctx, username, PageSize)
	if err != nil {
		slog.Error("[Analyzer] Failed to fetch tweets",
			slog.String("user_id", username),
			slog.String("error", err.Error()))
		return nil, &Error{
			Kind:    ErrUpstreamFetch,
			Message: fmt.Sprintf("Error fetching tweets: %s", err),
			Err:     err,
		}
	}

	if len(posts) == 0 {
		slog.Warn("[Analyzer] No tweets found", slog.String("user_id", username))
		return nil, &Error{
			Kind:    ErrNoContent,
			Message: fmt.Sprintf("No tweets found for user %s.", username),
		}
	}

	slog.Info("[Analyzer] Successfully fetched tweets",
		slog.String("user_id", username),
		slog.Int("count", len(posts)))

	texts := models.Texts(posts)
	labels := make([]sentiment.Label, 0, len(texts))
	for i, text := range texts {
		label, err := a.classifier.Classify(ctx, text)
		if err != nil {
			slog.Error("[Analyzer] Sentiment analysis failed",
				slog.Int("post", i),
				slog.String("error", err.Error()))
			return nil, &Error{
				Kind:    ErrClassification,
				Message: fmt.Sprintf("Error during sentiment analysis: %s", err),
				Err:     err,
			}
		}

		if label == sentiment.Unknown {
			slog.Warn("[Analyzer] Label outside known set, excluded from counts",
				slog.String("post_id", posts[i].ID))
		}
		labels = append(labels, label)
	}

	tally := sentiment.TallyLabels(labels)

	slog.Info("[Analyzer] Analysis complete",
		slog.String("user_id", username),
		slog.Int("positive", tally.Positive),
		slog.Int("negative", tally.Negative),
		slog.Int("neutral", tally.Neutral),
		slog.Int("discarded", tally.Discarded),
		slog.Duration("elapsed", time.Since(start)))

	return &AnalysisResult{
		Username: username,
		Posts:    texts,
		Labels:   labels,
		Tally:    tally,
	}, nil
}
