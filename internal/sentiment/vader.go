package sentiment

import (
	"context"

	"github.com/jonreiter/govader"
)

const (
	VADER_POSITIVE_THRESHOLD = 0.20
	VADER_NEGATIVE_THRESHOLD = -0.20
)

// VaderClassifier scores text with the VADER lexicon bundled in govader.
type VaderClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderClassifier) Classify(ctx context.Context, text string) (Label, error) {
	if err := ctx.Err(); err != nil {
		return Unknown, err
	}
	_, label := v.Score(text)
	return label, nil
}

// Score returns the compound polarity of the cleaned text and its label.
func (v *VaderClassifier) Score(text string) (float64, Label) {
	sentiment := v.analyzer.PolarityScores(CleanText(text))
	score := sentiment.Compound

	return score, labelForCompound(score)
}

func labelForCompound(score float64) Label {
	if score >= VADER_POSITIVE_THRESHOLD {
		return Positive
	} else if score <= VADER_NEGATIVE_THRESHOLD {
		return Negative
	}
	return Neutral
}
