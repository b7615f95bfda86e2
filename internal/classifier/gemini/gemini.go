// Package gemini implements the Classifier interface using Google's Gemini
// API with structured JSON output.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/nadzzz/shopvoice/internal/classifier"
	"github.com/nadzzz/shopvoice/internal/intent"
	"github.com/nadzzz/shopvoice/internal/message"
)

const defaultModel = "gemini-2.5-flash-lite"

// Config holds Gemini API settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // overrides the API endpoint, used in tests
}

// Classifier asks Gemini for the intent of an utterance.
type Classifier struct {
	client *genai.Client
	model  string
	schema *genai.Schema
}

// New creates a Gemini client.
func New(ctx context.Context, cfg Config) (*Classifier, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Classifier{client: client, model: model, schema: replySchema()}, nil
}

// replySchema constrains the answer to a known label and a confidence.
func replySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"intent": {
				Type: genai.TypeString,
				Enum: append(intent.Labels(), "None"),
			},
			"confidence": {
				Type:        genai.TypeNumber,
				Description: "Confidence between 0 and 1.",
			},
		},
		Required:         []string{"intent", "confidence"},
		PropertyOrdering: []string{"intent", "confidence"},
	}
}

// Name returns the backend identifier.
func (c *Classifier) Name() string { return "gemini" }

// Classify sends the utterance to Gemini.
func (c *Classifier) Classify(ctx context.Context, lang, text string) (message.Classification, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(classifier.SystemPrompt(lang), genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    c.schema,
		Temperature:       genai.Ptr[float32](0),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}, config)
	if err != nil {
		return message.Classification{}, fmt.Errorf("%w: gemini: %v", classifier.ErrUnavailable, err)
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return message.Classification{}, fmt.Errorf("empty response from gemini")
	}

	var r classifier.Reply
	if err := json.Unmarshal([]byte(result.Text()), &r); err != nil {
		return message.Classification{}, fmt.Errorf("failed to parse gemini reply: %w (response: %.200s)", err, result.Text())
	}
	cls := classifier.Verdict(r.Intent, r.Confidence)
	slog.Debug("gemini classification complete", "model", c.model, "label", cls.Label, "score", cls.Score)
	return cls, nil
}

// Close is a no-op; the genai client holds no connections of its own.
func (c *Classifier) Close() error { return nil }
