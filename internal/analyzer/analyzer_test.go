package analyzer

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentimeter/internal/models"
	"github.com/spacesedan/sentimeter/internal/sentiment"
)

type fakeFetcher struct {
	posts []models.Post
	err   error
	calls int
	limit int
}

func (f *fakeFetcher) FetchRecentPosts(_ context.Context, _ string, limit int) ([]models.Post, error) {
	f.calls++
	f.limit = limit
	return f.posts, f.err
}

// labelClassifier answers from a text -> label table.
type labelClassifier struct {
	labels map[string]sentiment.Label
	errOn  string
	calls  []string
}

func (c *labelClassifier) Classify(_ context.Context, text string) (sentiment.Label, error) {
	c.calls = append(c.calls, text)
	if text == c.errOn {
		return sentiment.Unknown, errors.New("model exploded")
	}
	return c.labels[text], nil
}

func alicePosts() []models.Post {
	return []models.Post{
		{ID: "1", Text: "great day!"},
		{ID: "2", Text: "worst ever"},
		{ID: "3", Text: "ok I guess"},
	}
}

func aliceLabels() map[string]sentiment.Label {
	return map[string]sentiment.Label{
		"great day!": sentiment.Positive,
		"worst ever": sentiment.Negative,
		"ok I guess": sentiment.Neutral,
	}
}

func TestAnalyzeScenario(t *testing.T) {
	fetcher := &fakeFetcher{posts: alicePosts()}
	classifier := &labelClassifier{labels: aliceLabels()}

	result, err := New(fetcher, classifier).Analyze(context.Background(), models.AnalysisRequest{Username: "alice"})
	require.NoError(t, err)

	assert.Equal(t, "alice", result.Username)
	assert.Equal(t, []string{"great day!", "worst ever", "ok I guess"}, result.Posts)
	assert.Equal(t, sentiment.Tally{Positive: 1, Negative: 1, Neutral: 1}, result.Tally)
	assert.Equal(t, PageSize, fetcher.limit)
	assert.Equal(t, result.Posts, classifier.calls, "classifier runs once per post, in order")
}

func TestAnalyzeCountsSumToPosts(t *testing.T) {
	posts := make([]models.Post, 0, PageSize)
	labels := map[string]sentiment.Label{}
	cycle := []sentiment.Label{sentiment.Positive, sentiment.Negative, sentiment.Neutral}
	for i := 0; i < PageSize; i++ {
		text := string(rune('a' + i))
		posts = append(posts, models.Post{ID: text, Text: text})
		labels[text] = cycle[i%len(cycle)]
	}

	result, err := New(&fakeFetcher{posts: posts}, &labelClassifier{labels: labels}).
		Analyze(context.Background(), models.AnalysisRequest{Username: "bob"})
	require.NoError(t, err)

	assert.Equal(t, len(posts), result.Tally.Positive+result.Tally.Negative+result.Tally.Neutral)
}

func TestAnalyzeEmptyUsername(t *testing.T) {
	for _, username := range []string{"", "   ", "@", " @ "} {
		fetcher := &fakeFetcher{posts: alicePosts()}
		classifier := &labelClassifier{labels: aliceLabels()}

		result, err := New(fetcher, classifier).Analyze(context.Background(), models.AnalysisRequest{Username: username})
		assert.Nil(t, result)
		require.Error(t, err)

		var analysisErr *Error
		require.True(t, errors.As(err, &analysisErr))
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, "Twitter username is required", err.Error())
		assert.Equal(t, http.StatusBadRequest, analysisErr.StatusCode())
		assert.Zero(t, fetcher.calls, "no upstream call for invalid input")
		assert.Empty(t, classifier.calls)
	}
}

func TestAnalyzeUpstreamError(t *testing.T) {
	upstream := errors.New("401 Unauthorized: Unauthorized")
	fetcher := &fakeFetcher{err: upstream}

	_, err := New(fetcher, &labelClassifier{}).Analyze(context.Background(), models.AnalysisRequest{Username: "alice"})
	require.Error(t, err)

	var analysisErr *Error
	require.True(t, errors.As(err, &analysisErr))
	assert.ErrorIs(t, err, ErrUpstreamFetch)
	assert.ErrorIs(t, err, upstream)
	assert.Equal(t, "Error fetching tweets: 401 Unauthorized: Unauthorized", err.Error())
	assert.Equal(t, http.StatusInternalServerError, analysisErr.StatusCode())
}

func TestAnalyzeNoPosts(t *testing.T) {
	classifier := &labelClassifier{}
	_, err := New(&fakeFetcher{}, classifier).Analyze(context.Background(), models.AnalysisRequest{Username: "quiet"})
	require.Error(t, err)

	var analysisErr *Error
	require.True(t, errors.As(err, &analysisErr))
	assert.ErrorIs(t, err, ErrNoContent)
	assert.Equal(t, "No tweets found for user quiet.", err.Error())
	assert.Equal(t, http.StatusNotFound, analysisErr.StatusCode())
	assert.Empty(t, classifier.calls)
}

func TestAnalyzeClassifierErrorAbortsRequest(t *testing.T) {
	classifier := &labelClassifier{labels: aliceLabels(), errOn: "ok I guess"}

	result, err := New(&fakeFetcher{posts: alicePosts()}, classifier).
		Analyze(context.Background(), models.AnalysisRequest{Username: "alice"})
	assert.Nil(t, result, "no partial tally")
	require.Error(t, err)

	var analysisErr *Error
	require.True(t, errors.As(err, &analysisErr))
	assert.ErrorIs(t, err, ErrClassification)
	assert.Equal(t, "Error during sentiment analysis: model exploded", err.Error())
	assert.Equal(t, http.StatusInternalServerError, analysisErr.StatusCode())
}

func TestAnalyzeUnknownLabelsAreExcluded(t *testing.T) {
	labels := aliceLabels()
	labels["ok I guess"] = sentiment.Unknown

	result, err := New(&fakeFetcher{posts: alicePosts()}, &labelClassifier{labels: labels}).
		Analyze(context.Background(), models.AnalysisRequest{Username: "alice"})
	require.NoError(t, err)

	assert.Equal(t, sentiment.Tally{Positive: 1, Negative: 1, Discarded: 1}, result.Tally)
	assert.Len(t, result.Posts, 3)
}

func TestAnalyzeTrimsUsername(t *testing.T) {
	result, err := New(&fakeFetcher{posts: alicePosts()}, &labelClassifier{labels: aliceLabels()}).
		Analyze(context.Background(), models.AnalysisRequest{Username: "  alice "})
	require.NoError(t, err)
	assert.Equal(t, "alice", result.Username)
}

func TestAnalyzeStripsHandlePrefix(t *testing.T) {
	fetcher := &fakeFetcher{}
	_, err := New(fetcher, &labelClassifier{}).Analyze(context.Background(), models.AnalysisRequest{Username: "@quiet"})
	require.Error(t, err)
	assert.Equal(t, "No tweets found for user quiet.", err.Error())
	assert.Equal(t, 1, fetcher.calls)
}
