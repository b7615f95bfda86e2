// Package http implements the REST transport for shopvoice.
//
// The transport exposes the voice API used by the web client: command
// processing, the supported-language list, per-user history, statistics
// and language preferences. Swagger UI is served under /swagger/.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/nadzzz/shopvoice/internal/history"
	"github.com/nadzzz/shopvoice/internal/lexicon"
	"github.com/nadzzz/shopvoice/internal/message"
	"github.com/nadzzz/shopvoice/internal/transport"

	_ "github.com/nadzzz/shopvoice/docs"
)

const maxBody = 1 << 20

// Options configures the HTTP transport.
type Options struct {
	Port int

	// DefaultUser is used when a request names no user. Empty keeps such
	// requests anonymous.
	DefaultUser string

	// History backs the history, stats and language routes. Nil disables them.
	History history.Store
}

// Transport implements transport.Transport over HTTP.
type Transport struct {
	opts Options
	now  func() time.Time

	mu     sync.Mutex
	server *http.Server
}

// New creates a new HTTP transport.
func New(opts Options) *Transport {
	return &Transport{opts: opts, now: time.Now}
}

// Name returns the transport identifier.
func (t *Transport) Name() string { return "http" }

// Listen starts the HTTP server and routes incoming requests to the handler.
func (t *Transport) Listen(ctx context.Context, handler transport.Handler) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", t.opts.Port),
		Handler:           t.Routes(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}
	t.mu.Lock()
	t.server = srv
	t.mu.Unlock()

	slog.Info("http transport listening", "port", t.opts.Port)

	go func() {
		<-ctx.Done()
		slog.Info("http transport shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("http listen: %w", err)
	}
	return nil
}

// Routes builds the API mux.
func (t *Transport) Routes(handler transport.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/voice/process", func(w http.ResponseWriter, r *http.Request) {
		t.handleProcess(w, r, handler)
	})
	mux.HandleFunc("GET /api/voice/languages", t.handleLanguages)
	mux.HandleFunc("GET /api/voice/history", t.handleHistory)
	mux.HandleFunc("GET /api/voice/history/{userId}", t.handleHistory)
	mux.HandleFunc("GET /api/voice/stats/{userId}", t.handleStats)
	mux.HandleFunc("PUT /api/voice/language", t.handleSetLanguage)
	mux.HandleFunc("PUT /api/voice/language/{userId}", t.handleSetLanguage)
	mux.HandleFunc("POST /api/voice/test", t.handleTest)

	// Swagger UI serves the registered OpenAPI docs.
	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return mux
}

// ProcessRequest is the body of POST /api/voice/process.
type ProcessRequest struct {
	Command  string `json:"command" example:"add 2 bottles of water"`
	UserID   string `json:"user_id,omitempty" example:"1"`
	Language string `json:"language,omitempty" example:"en-US"`
}

// LanguageRequest is the body of PUT /api/voice/language.
type LanguageRequest struct {
	Language string `json:"language" example:"es-ES"`
}

// ErrorResponse is returned by every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// LanguagesResponse lists the supported languages.
type LanguagesResponse struct {
	Success   bool                        `json:"success"`
	Languages []lexicon.SupportedLanguage `json:"languages"`
}

// HistoryResponse lists a user's recent commands.
type HistoryResponse struct {
	Success  bool            `json:"success"`
	Commands []history.Entry `json:"commands"`
}

// StatsResponse summarizes a user's commands.
type StatsResponse struct {
	Success bool          `json:"success"`
	Stats   history.Stats `json:"stats"`
}

// MessageResponse acknowledges a request.
type MessageResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
}

// handleProcess interprets one voice command.
//
// @Summary     Process a voice command
// @Description Classifies the pre-transcribed utterance, extracts the shopping items and returns
// @Description the action payload with a confirmation in the request language. Without a language
// @Description the user's stored preference is used, then English.
// @Tags        voice
// @Accept      json
// @Produce     json
// @Param       request  body      ProcessRequest  true  "Voice command"
// @Success     200  {object}  message.VoiceCommandResult  "Interpreted command"
// @Failure     400  {object}  ErrorResponse  "Missing command"
// @Failure     500  {object}  ErrorResponse  "Internal processing error"
// @Router      /api/voice/process [post]
func (t *Transport) handleProcess(w http.ResponseWriter, r *http.Request, handler transport.Handler) {
	var req ProcessRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Command) == "" {
		writeError(w, http.StatusBadRequest, "Voice command is required")
		return
	}

	cmd := &message.Command{
		Text:      req.Command,
		UserID:    t.user(req.UserID),
		Language:  req.Language,
		Timestamp: t.now(),
	}
	if cmd.Language == "" && cmd.UserID != "" && t.opts.History != nil {
		lang, err := t.opts.History.Language(r.Context(), cmd.UserID)
		if err != nil {
			slog.Warn("failed to load language preference", "user_id", cmd.UserID, "error", err)
		}
		cmd.Language = lang
	}

	result, err := handler(r.Context(), cmd)
	if err != nil {
		slog.Error("processing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleLanguages lists the supported languages.
//
// @Summary     List supported languages
// @Tags        voice
// @Produce     json
// @Success     200  {object}  LanguagesResponse
// @Router      /api/voice/languages [get]
func (t *Transport) handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LanguagesResponse{Success: true, Languages: lexicon.Supported()})
}

// handleHistory returns the user's recent commands, newest first.
//
// @Summary     Voice command history
// @Tags        history
// @Produce     json
// @Param       userId  path   string  true   "User ID"
// @Param       limit   query  int     false  "Maximum entries (default 50)"
// @Success     200  {object}  HistoryResponse
// @Failure     400  {object}  ErrorResponse  "Missing user or bad limit"
// @Failure     503  {object}  ErrorResponse  "History disabled"
// @Router      /api/voice/history/{userId} [get]
func (t *Transport) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := t.requireHistory(w, r)
	if !ok {
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	entries, err := t.opts.History.History(r.Context(), userID, limit)
	if err != nil {
		slog.Error("history query failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, HistoryResponse{Success: true, Commands: entries})
}

// handleStats summarizes the user's commands.
//
// @Summary     Voice command statistics
// @Tags        history
// @Produce     json
// @Param       userId  path  string  true  "User ID"
// @Success     200  {object}  StatsResponse
// @Failure     503  {object}  ErrorResponse  "History disabled"
// @Router      /api/voice/stats/{userId} [get]
func (t *Transport) handleStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := t.requireHistory(w, r)
	if !ok {
		return
	}
	st, err := t.opts.History.Stats(r.Context(), userID)
	if err != nil {
		slog.Error("stats query failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, StatsResponse{Success: true, Stats: st})
}

// handleSetLanguage stores the user's preferred language.
//
// @Summary     Update language preference
// @Tags        voice
// @Accept      json
// @Produce     json
// @Param       userId   path  string           true  "User ID"
// @Param       request  body  LanguageRequest  true  "Preferred language"
// @Success     200  {object}  MessageResponse
// @Failure     400  {object}  ErrorResponse  "Missing or unsupported language"
// @Failure     503  {object}  ErrorResponse  "History disabled"
// @Router      /api/voice/language/{userId} [put]
func (t *Transport) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	userID, ok := t.requireHistory(w, r)
	if !ok {
		return
	}
	var req LanguageRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Language) == "" {
		writeError(w, http.StatusBadRequest, "Language is required")
		return
	}
	if !lexicon.IsSupported(req.Language) {
		writeError(w, http.StatusBadRequest, "Unsupported language: "+req.Language)
		return
	}
	if err := t.opts.History.SetLanguage(r.Context(), userID, req.Language); err != nil {
		slog.Error("saving language failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Language updated successfully"})
}

// handleTest is a liveness probe for the voice client.
//
// @Summary     Test voice recognition
// @Tags        voice
// @Produce     json
// @Success     200  {object}  MessageResponse
// @Router      /api/voice/test [post]
func (t *Transport) handleTest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{
		Success:   true,
		Message:   "Voice recognition is working properly",
		Timestamp: t.now().UTC().Format(time.RFC3339),
	})
}

// requireHistory resolves the user of a history route. It writes the error
// response itself when the route cannot be served.
func (t *Transport) requireHistory(w http.ResponseWriter, r *http.Request) (string, bool) {
	if t.opts.History == nil {
		writeError(w, http.StatusServiceUnavailable, "History is disabled")
		return "", false
	}
	userID := t.user(r.PathValue("userId"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return "", false
	}
	return userID, true
}

func (t *Transport) user(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return t.opts.DefaultUser
}

// Close gracefully shuts down the HTTP server.
func (t *Transport) Close() error {
	t.mu.Lock()
	srv := t.server
	t.mu.Unlock()
	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func decode(r *http.Request, v any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(v)
	if errors.Is(err, io.EOF) {
		return errors.New("empty body")
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Success: false, Error: msg})
}
