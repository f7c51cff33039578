package sentiment

import (
	"fmt"
	"strings"
)

// Label is the closed set of sentiment classes a post can be assigned.
// Unknown stands for any classifier output outside the three known classes.
type Label int

const (
	Unknown Label = iota
	Positive
	Negative
	Neutral
)

func (l Label) String() string {
	switch l {
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Label) UnmarshalText(b []byte) error {
	parsed, ok := ParseLabel(string(b))
	if !ok && string(b) != Unknown.String() {
		return fmt.Errorf("invalid sentiment label %q", string(b))
	}
	*l = parsed
	return nil
}

// ParseLabel matches s exactly against "Positive", "Negative" and "Neutral".
// Anything else yields Unknown and false.
func ParseLabel(s string) (Label, bool) {
	switch s {
	case "Positive":
		return Positive, true
	case "Negative":
		return Negative, true
	case "Neutral":
		return Neutral, true
	default:
		return Unknown, false
	}
}

// ParseModelLabel maps a raw model output onto a Label. Explicit mappings
// win; after that common spellings ("positive", "POS", "neu") are accepted.
func ParseModelLabel(raw string, mappings map[string]string) Label {
	if canonical, ok := mappings[raw]; ok {
		l, _ := ParseLabel(canonical)
		return l
	}

	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "positive", "pos":
		return Positive
	case "negative", "neg":
		return Negative
	case "neutral", "neu":
		return Neutral
	default:
		return Unknown
	}
}
