package models

// Twitter API v2 payloads. Only the fields we read are mapped.

type TwitterUserLookupResponse struct {
	Data   *TwitterUser   `json:"data,omitempty"`
	Errors []TwitterError `json:"errors,omitempty"`
}

type TwitterUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type TwitterTimelineResponse struct {
	Data   []TwitterTweet `json:"data,omitempty"`
	Meta   TwitterMeta    `json:"meta"`
	Errors []TwitterError `json:"errors,omitempty"`
}

type TwitterTweet struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type TwitterMeta struct {
	ResultCount int    `json:"result_count"`
	NextToken   string `json:"next_token,omitempty"`
}

// TwitterError covers both the problem-details body returned with non-2xx
// statuses and the partial errors listed inside a 200 response.
type TwitterError struct {
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
	Type   string `json:"type,omitempty"`
	Status int    `json:"status,omitempty"`
}

type TwitterProblem struct {
	TwitterError
	Errors []TwitterError `json:"errors,omitempty"`
}
