package enums

import "fmt"

// Sentiment is the qualitative tag a manager attaches to a feedback entry.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

var validSentiments = []Sentiment{
	SentimentPositive,
	SentimentNeutral,
	SentimentNegative,
}

// String implements fmt.Stringer.
func (s Sentiment) String() string {
	return string(s)
}

// IsValid reports whether the value is a known Sentiment.
func (s Sentiment) IsValid() bool {
	for _, candidate := range validSentiments {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSentiment converts raw input into a Sentiment.
func ParseSentiment(value string) (Sentiment, error) {
	for _, candidate := range validSentiments {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sentiment %q", value)
}
