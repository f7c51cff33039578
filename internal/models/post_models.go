package models

// Post is one item returned by the social API for a user.
type Post struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Texts returns the post bodies in order.
func Texts(posts []Post) []string {
	texts := make([]string, 0, len(posts))
	for _, p := range posts {
		texts = append(texts, p.Text)
	}
	return texts
}
