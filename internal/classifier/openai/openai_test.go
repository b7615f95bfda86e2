package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadzzz/shopvoice/internal/classifier"
	"github.com/nadzzz/shopvoice/internal/intent"
)

func TestClassify(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"intent\":\"shopping.add_item\",\"confidence\":0.93}"}}]}`))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "sk-test", BaseURL: srv.URL})
	cls, err := c.Classify(context.Background(), "es", "agregar leche")
	require.NoError(t, err)

	assert.Equal(t, intent.AddItem, cls.Label)
	assert.InDelta(t, 0.93, cls.Score, 1e-9)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Contains(t, got.Messages[0].Content, "The user speaks es.")
	assert.Equal(t, "agregar leche", got.Messages[1].Content)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
}

func TestClassifyErrors(t *testing.T) {
	tests := map[string]struct {
		status int
		body   string
	}{
		"server error": {status: http.StatusInternalServerError, body: `{"error":"down"}`},
		"no choices":   {status: http.StatusOK, body: `{"choices":[]}`},
		"not json":     {status: http.StatusOK, body: `{"choices":[{"message":{"content":"add milk"}}]}`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(Config{BaseURL: srv.URL}).Classify(context.Background(), "en", "add milk")
			assert.Error(t, err)
		})
	}
}

func TestClassifyUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(Config{BaseURL: url}).Classify(context.Background(), "en", "add milk")
	assert.ErrorIs(t, err, classifier.ErrUnavailable)
}
