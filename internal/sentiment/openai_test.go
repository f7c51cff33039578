package sentiment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentimeter/config"
	"github.com/spacesedan/sentimeter/internal/clients"
)

func newTestOpenAIClassifier(t *testing.T, reply string, status int) (*OpenAIClassifier, *int) {
	t.Helper()
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4o-mini", body["model"])

		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"upstream exploded","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "gpt-4o-mini",
			"choices": []map[string]interface{}{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]interface{}{"role": "assistant", "content": reply},
			}},
			"usage": map[string]interface{}{"prompt_tokens": 10, "completion_tokens": 1, "total_tokens": 11},
		})
	}))
	t.Cleanup(ts.Close)

	client := clients.NewOpenAIClient(config.OpenAIConfig{
		APIKey:      "test-key",
		APIEndpoint: ts.URL,
		Model:       "gpt-4o-mini",
		Timeout:     5 * time.Second,
	})
	return NewOpenAIClassifier(client, "gpt-4o-mini"), &calls
}

func TestOpenAIClassifier(t *testing.T) {
	tests := []struct {
		reply string
		want  Label
	}{
		{"Positive", Positive},
		{" Negative.\n", Negative},
		{"Neutral", Neutral},
		{"Mixed feelings", Unknown},
	}

	for _, tt := range tests {
		c, _ := newTestOpenAIClassifier(t, tt.reply, http.StatusOK)
		got, err := c.Classify(context.Background(), "some post")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "reply %q", tt.reply)
	}
}

func TestOpenAIClassifierErrorIsNotRetried(t *testing.T) {
	c, calls := newTestOpenAIClassifier(t, "", http.StatusInternalServerError)

	_, err := c.Classify(context.Background(), "some post")
	assert.Error(t, err)
	assert.Equal(t, 1, *calls)
}
