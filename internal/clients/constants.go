package clients

const (
	USER_AGENT = "sentimeter/0.1 (+https://github.com/spacesedan/sentimeter)"

	// Bounds the v2 timeline endpoint accepts for max_results.
	TWITTER_MIN_RESULTS = 5
	TWITTER_MAX_RESULTS = 100
)
