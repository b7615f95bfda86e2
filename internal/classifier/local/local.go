// Package local implements the Classifier interface using a self-hosted model.
//
// It supports Ollama's /api/generate endpoint and any OpenAI-compatible chat
// endpoint (Ollama, vLLM, llama.cpp server).
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nadzzz/shopvoice/internal/classifier"
	"github.com/nadzzz/shopvoice/internal/message"
)

// Config holds self-hosted LLM settings.
type Config struct {
	Endpoint string // full URL, e.g. http://localhost:11434/api/generate
	Model    string // Ollama model name (e.g., "llama3.2:1b")
	Timeout  time.Duration
}

// Classifier asks a self-hosted model for the intent of an utterance.
type Classifier struct {
	endpoint string
	model    string
	client   *resty.Client
}

// New creates a new local classifier from config.
func New(cfg Config) *Classifier {
	model := cfg.Model
	if model == "" {
		model = "llama3"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Classifier{
		endpoint: cfg.Endpoint,
		model:    model,
		client: resty.New().
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
	}
}

// Name returns the backend identifier.
func (c *Classifier) Name() string { return "local" }

// Classify sends the utterance to the configured endpoint. An endpoint ending
// in /api/generate gets the Ollama request format; anything else gets the
// chat completions format.
func (c *Classifier) Classify(ctx context.Context, lang, text string) (message.Classification, error) {
	prompt := classifier.SystemPrompt(lang)

	var body any = map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": prompt},
			{"role": "user", "content": text},
		},
		"temperature": 0,
		"stream":      false,
	}
	if strings.HasSuffix(c.endpoint, "/api/generate") {
		body = map[string]any{
			"model":  c.model,
			"system": prompt,
			"prompt": text,
			"stream": false,
			"format": "json",
		}
	}

	res, err := c.client.R().SetContext(ctx).SetBody(body).Post(c.endpoint)
	if err != nil {
		return message.Classification{}, fmt.Errorf("%w: local LLM request: %v", classifier.ErrUnavailable, err)
	}
	if res.IsError() {
		return message.Classification{}, fmt.Errorf("local LLM failed (status %d): %.2048s", res.StatusCode(), res.String())
	}

	content := extractContent(res.Body())
	if content == "" {
		return message.Classification{}, fmt.Errorf("empty response from local LLM")
	}

	cls, err := classifier.ParseReply(content)
	if err != nil {
		return message.Classification{}, err
	}
	slog.Debug("local classification complete", "label", cls.Label, "score", cls.Score)
	return cls, nil
}

// Close is a no-op for the local classifier.
func (c *Classifier) Close() error { return nil }

// extractContent pulls the model text out of either response format.
func extractContent(data []byte) string {
	// OpenAI-compatible: {"choices": [{"message": {"content": "..."}}]}
	var chat struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &chat); err == nil && len(chat.Choices) > 0 {
		return chat.Choices[0].Message.Content
	}

	// Ollama: {"response": "..."}
	var gen struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(data, &gen); err == nil {
		return gen.Response
	}
	return ""
}
