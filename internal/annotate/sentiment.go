package annotate

import (
	"strings"

	"github.com/jonreiter/govader"

	"textwatch/internal/model"
)

// Compound score thresholds for the positive/negative labels.
const (
	positiveThreshold = 0.5
	negativeThreshold = -0.5
)

// Classifier labels text polarity using the VADER lexicon. The underlying
// analyzer is built once and reused; scoring is deterministic for a fixed
// lexicon version.
type Classifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewClassifier creates a classifier with the default VADER lexicon.
func NewClassifier() *Classifier {
	return &Classifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Classify maps the text's compound score in [-1, 1] to a sentiment label:
// >= 0.5 positive, <= -0.5 negative, otherwise neutral. Blank input and any
// scorer failure degrade to neutral rather than aborting the batch.
func (c *Classifier) Classify(text string) (sentiment model.Sentiment) {
	if strings.TrimSpace(text) == "" {
		return model.SentimentNeutral
	}

	// A record with text the lexicon cannot score must not fail the batch.
	defer func() {
		if recover() != nil {
			sentiment = model.SentimentNeutral
		}
	}()

	scores := c.analyzer.PolarityScores(text)
	switch {
	case scores.Compound >= positiveThreshold:
		return model.SentimentPositive
	case scores.Compound <= negativeThreshold:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}
