// Package openai implements the Classifier interface using OpenAI's Chat
// Completions API in JSON mode.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nadzzz/shopvoice/internal/classifier"
	"github.com/nadzzz/shopvoice/internal/message"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Config holds OpenAI API settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Classifier asks a chat model for the intent of an utterance.
type Classifier struct {
	model  string
	client *resty.Client
}

// New creates a new OpenAI classifier from config.
func New(cfg Config) *Classifier {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Classifier{
		model: model,
		client: resty.New().
			SetBaseURL(base).
			SetTimeout(timeout).
			SetAuthToken(cfg.APIKey).
			SetHeader("Content-Type", "application/json"),
	}
}

// Name returns the backend identifier.
func (c *Classifier) Name() string { return "openai" }

// Classify sends the utterance to the Chat Completions API.
func (c *Classifier) Classify(ctx context.Context, lang, text string) (message.Classification, error) {
	var chatResp chatResponse
	res, err := c.client.R().
		SetContext(ctx).
		SetBody(chatRequest{
			Model: c.model,
			Messages: []chatMessage{
				{Role: "system", Content: classifier.SystemPrompt(lang)},
				{Role: "user", Content: text},
			},
			ResponseFormat: &responseFormat{Type: "json_object"},
			Temperature:    0,
		}).
		SetResult(&chatResp).
		Post("/chat/completions")
	if err != nil {
		return message.Classification{}, fmt.Errorf("%w: chat request: %v", classifier.ErrUnavailable, err)
	}
	if res.IsError() {
		return message.Classification{}, fmt.Errorf("chat failed (status %d): %.2048s", res.StatusCode(), res.String())
	}
	if len(chatResp.Choices) == 0 {
		return message.Classification{}, fmt.Errorf("no choices returned from chat API")
	}

	cls, err := classifier.ParseReply(chatResp.Choices[0].Message.Content)
	if err != nil {
		return message.Classification{}, err
	}
	slog.Debug("openai classification complete", "label", cls.Label, "score", cls.Score)
	return cls, nil
}

// Close is a no-op for the OpenAI classifier.
func (c *Classifier) Close() error { return nil }

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	Temperature    float64         `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
