// Package classifier defines the interface for intent classification.
//
// A classifier takes a transcribed utterance and its language, then returns
// an intent label with a confidence score. shopvoice ships with a built-in
// corpus classifier and three remote LLM backends (OpenAI, a local
// OpenAI-compatible or Ollama server, and Gemini).
package classifier

import (
	"context"
	"errors"

	"github.com/nadzzz/shopvoice/internal/intent"
	"github.com/nadzzz/shopvoice/internal/message"
)

// ErrUnavailable is returned when a backend cannot be reached or its circuit
// breaker is open. The pipeline treats it as an absent intent.
var ErrUnavailable = errors.New("classifier unavailable")

// Classifier is the interface for intent classification backends.
type Classifier interface {
	// Name returns the backend identifier (e.g., "corpus", "openai").
	Name() string

	// Classify returns the intent of text. An empty label means unknown.
	Classify(ctx context.Context, lang, text string) (message.Classification, error)

	// Close releases any resources held by the classifier.
	Close() error
}

// Verdict turns a raw backend answer into a Classification. Labels the
// dispatcher doesn't know become absent and the score is clamped to [0,1].
func Verdict(label string, score float64) message.Classification {
	switch {
	case score < 0:
		score = 0
	case score > 1:
		score = 1
	}
	if !intent.IsKnown(label) {
		return message.Classification{Score: score}
	}
	return message.Classification{Label: label, Score: score}
}
