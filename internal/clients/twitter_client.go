package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/spacesedan/sentimeter/config"
	"github.com/spacesedan/sentimeter/internal/models"
)

// APIError is a non-successful answer from the Twitter API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

type TwitterClient struct {
	Client  *http.Client
	BaseURL string
}

// NewTwitterClient returns a client that authenticates every request with
// the app-only bearer token.
func NewTwitterClient(cfg config.TwitterConfig) (*TwitterClient, error) {
	if cfg.BearerToken == "" {
		return nil, errors.New("twitter bearer token is missing")
	}

	baseURL := strings.TrimRight(cfg.APIURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid twitter api url: %w", err)
	}

	source := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.BearerToken,
		TokenType:   "Bearer",
	})
	client := oauth2.NewClient(context.Background(), source)
	client.Timeout = cfg.Timeout

	slog.Info("[TwitterClient] Authentication configured",
		slog.String("base_url", baseURL),
		slog.Duration("timeout", cfg.Timeout))

	return &TwitterClient{
		Client:  client,
		BaseURL: baseURL,
	}, nil
}

// FetchRecentPosts returns up to limit of the user's most recent tweets.
// A purely numeric username is taken to be a user ID and is not looked up.
func (tc *TwitterClient) FetchRecentPosts(ctx context.Context, username string, limit int) ([]models.Post, error) {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")

	userID := username
	if !isUserID(username) {
		user, err := tc.LookupUser(ctx, username)
		if err != nil {
			return nil, err
		}
		userID = user.ID
	}

	return tc.FetchUserTweets(ctx, userID, limit)
}

func (tc *TwitterClient) LookupUser(ctx context.Context, username string) (*models.TwitterUser, error) {
	var res models.TwitterUserLookupResponse
	path := "/2/users/by/username/" + url.PathEscape(username)
	if err := tc.getJSON(ctx, path, nil, &res); err != nil {
		return nil, err
	}

	if res.Data == nil {
		return nil, firstError(res.Errors, fmt.Sprintf("could not find user with username: [%s]", username))
	}

	return res.Data, nil
}

func (tc *TwitterClient) FetchUserTweets(ctx context.Context, userID string, limit int) ([]models.Post, error) {
	query := url.Values{}
	query.Set("max_results", strconv.Itoa(clampResults(limit)))
	query.Set("tweet.fields", "text")

	var res models.TwitterTimelineResponse
	path := "/2/users/" + url.PathEscape(userID) + "/tweets"
	if err := tc.getJSON(ctx, path, query, &res); err != nil {
		return nil, err
	}

	if len(res.Data) == 0 && len(res.Errors) > 0 {
		return nil, firstError(res.Errors, "timeline request failed")
	}

	posts := make([]models.Post, 0, len(res.Data))
	for _, tweet := range res.Data {
		posts = append(posts, models.Post{ID: tweet.ID, Text: tweet.Text})
	}
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}

	slog.Info("[TwitterClient] Successfully fetched tweets",
		slog.String("user_id", userID),
		slog.Int("count", len(posts)))

	return posts, nil
}

func (tc *TwitterClient) getJSON(ctx context.Context, path string, query url.Values, output interface{}) error {
	endpoint := tc.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", USER_AGENT)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := tc.Client.Do(req)
	if err != nil {
		slog.Error("[TwitterClient] Request failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		slog.Warn("[TwitterClient] Unexpected response",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Duration("elapsed", time.Since(start)),
			getPreview(body))
		return problemFromBody(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, output); err != nil {
		slog.Error("[TwitterClient] Failed to unmarshal response",
			slog.String("path", path),
			slog.String("error", err.Error()),
			getPreview(body))
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

func problemFromBody(status int, body []byte) error {
	var problem models.TwitterProblem
	if err := json.Unmarshal(body, &problem); err == nil {
		if msg := problemMessage(problem.TwitterError); msg != "" {
			return &APIError{StatusCode: status, Message: msg}
		}
		if len(problem.Errors) > 0 {
			if msg := problemMessage(problem.Errors[0]); msg != "" {
				return &APIError{StatusCode: status, Message: msg}
			}
		}
	}
	return &APIError{StatusCode: status, Message: http.StatusText(status)}
}

func problemMessage(e models.TwitterError) string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Title
}

func firstError(errs []models.TwitterError, fallback string) error {
	for _, e := range errs {
		if msg := problemMessage(e); msg != "" {
			return &APIError{Message: msg}
		}
	}
	return &APIError{Message: fallback}
}

func isUserID(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func clampResults(limit int) int {
	return min(max(limit, TWITTER_MIN_RESULTS), TWITTER_MAX_RESULTS)
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}
