// Package sentiment tags text as positive, negative or neutral by counting
// words from two fixed lists. It is a word-list heuristic, not a model.
package sentiment

import (
	"strings"

	"github.com/julianstephens/mindmate/internal/models"
)

var (
	// DefaultPositive is the built-in positive word list
	DefaultPositive = []string{"happy", "joy", "love", "great", "wonderful", "amazing", "good", "excited", "grateful"}
	// DefaultNegative is the built-in negative word list
	DefaultNegative = []string{"sad", "angry", "hate", "bad", "terrible", "awful", "depressed", "worried", "anxious"}
)

var results = map[models.Sentiment]models.Analysis{
	models.SentimentPositive: {Sentiment: models.SentimentPositive, Emoji: "😊", Color: "green"},
	models.SentimentNegative: {Sentiment: models.SentimentNegative, Emoji: "😢", Color: "red"},
	models.SentimentNeutral:  {Sentiment: models.SentimentNeutral, Emoji: "😐", Color: "yellow"},
}

// Classifier counts matches against a positive and a negative word set
type Classifier struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// New builds a classifier from the given word lists. Words are matched
// case-insensitively.
func New(positive, negative []string) *Classifier {
	return &Classifier{
		positive: toSet(positive),
		negative: toSet(negative),
	}
}

// Default returns a classifier using the built-in word lists
func Default() *Classifier {
	return New(DefaultPositive, DefaultNegative)
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// Counts returns how many whitespace-separated tokens of text appear in each
// list. Tokens keep their punctuation, so "happy!" does not match "happy".
func (c *Classifier) Counts(text string) (positive, negative int) {
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		if _, ok := c.positive[tok]; ok {
			positive++
		}
		if _, ok := c.negative[tok]; ok {
			negative++
		}
	}
	return positive, negative
}

// Analyze labels text. Blank input is rejected with models.ErrEmptyText.
func (c *Classifier) Analyze(text string) (models.Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return models.Analysis{}, models.ErrEmptyText
	}

	pos, neg := c.Counts(text)
	switch {
	case pos > neg:
		return results[models.SentimentPositive], nil
	case neg > pos:
		return results[models.SentimentNegative], nil
	default:
		return results[models.SentimentNeutral], nil
	}
}

// Message returns the encouragement shown next to an analysis
func Message(s models.Sentiment) string {
	switch s {
	case models.SentimentPositive:
		return "Your writing radiates positivity! Keep focusing on the good things."
	case models.SentimentNegative:
		return "It's okay to feel this way. Writing about it is a great first step."
	default:
		return "Your writing shows a balanced perspective on things."
	}
}
