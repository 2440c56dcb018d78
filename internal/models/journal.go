package models

import "time"

// Sentiment is the label produced by the word-list classifier
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// Analysis is the sentiment result attached to a journal entry
type Analysis struct {
	Sentiment Sentiment `json:"sentiment"`
	Emoji     string    `json:"emoji"`
	Color     string    `json:"color"`
}

// JournalEntry is a saved piece of freeform writing
type JournalEntry struct {
	Date     time.Time `json:"date"`
	Text     string    `json:"text"`
	Analysis *Analysis `json:"analysis"`
}
