// Package pipeline implements the command interpretation engine.
//
// The processor receives commands from transports, classifies the utterance,
// extracts the shopping items, then builds the action payload and the
// spoken confirmation. A result is always returned to the caller: classifier
// outages degrade to the unknown action and internal faults become a
// success:false result with an apology.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/nadzzz/shopvoice/internal/classifier"
	"github.com/nadzzz/shopvoice/internal/extract"
	"github.com/nadzzz/shopvoice/internal/history"
	"github.com/nadzzz/shopvoice/internal/intent"
	"github.com/nadzzz/shopvoice/internal/message"
	"github.com/nadzzz/shopvoice/internal/metrics"
)

// Recorder receives processed commands for the history store. Record must
// not block.
type Recorder interface {
	Record(e history.Entry)
}

// Processor is the central interpretation engine. It holds no per-request
// state and is safe for concurrent use.
type Processor struct {
	classifier classifier.Classifier
	extractor  *extract.Extractor
	intents    *intent.Dispatcher
	recorder   Recorder // nil if history is disabled
	now        func() time.Time
}

// New creates a Processor. recorder may be nil.
func New(c classifier.Classifier, ex *extract.Extractor, d *intent.Dispatcher, recorder Recorder) *Processor {
	return &Processor{
		classifier: c,
		extractor:  ex,
		intents:    d,
		recorder:   recorder,
		now:        time.Now,
	}
}

// Handle adapts Process to the transport handler signature.
func (p *Processor) Handle(ctx context.Context, cmd *message.Command) (*message.VoiceCommandResult, error) {
	return p.Process(ctx, cmd), nil
}

// Process interprets one command.
func (p *Processor) Process(ctx context.Context, cmd *message.Command) (result *message.VoiceCommandResult) {
	start := p.now()
	if cmd.ID == "" {
		cmd.ID = ulid.Make().String()
	}
	if cmd.Timestamp.IsZero() {
		cmd.Timestamp = start
	}
	lang := cmd.Lang()
	logger := slog.With("request_id", cmd.ID, "user_id", cmd.UserID, "language", lang)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("pipeline panic", "panic", r)
			result = p.fail(cmd, fmt.Errorf("internal error: %v", r))
		}
		metrics.PipelineDuration.Observe(time.Since(start).Seconds())
	}()

	logger.Debug("processing command", "text_length", len(cmd.Text))

	// Step 1: Classify. An unreachable classifier means an unknown intent.
	cls, err := p.classifier.Classify(ctx, lang, cmd.Text)
	if err != nil {
		logger.Warn("classification failed, treating intent as unknown", "backend", p.classifier.Name(), "error", err)
		metrics.ClassifierErrors.WithLabelValues(p.classifier.Name()).Inc()
		cls = message.Classification{}
	}

	// Step 2: Extract items.
	items := p.extractor.ExtractItems(cmd.Text, lang)

	// Step 3: Build the action and the response.
	out, err := p.intents.Dispatch(cls.Label, items, lang)
	if err != nil {
		logger.Error("building response failed", "error", err)
		return p.fail(cmd, err)
	}

	result = &message.VoiceCommandResult{
		ID:       cmd.ID,
		Success:  true,
		Action:   out.Action,
		Items:    items,
		ItemInfo: out.Info,
		Response: out.Response,
		Language: lang,
	}
	if out.Recognized() {
		result.Intent = cls.Label
		result.Confidence = cls.Score
	}

	// Step 4: Record the command. Failures stay inside the recorder.
	if p.recorder != nil && cmd.UserID != "" {
		p.recorder.Record(history.Entry{
			UserID:      cmd.UserID,
			Text:        cmd.Text,
			Action:      out.Action,
			Success:     out.Recognized(),
			ProcessedAt: cmd.Timestamp,
		})
	}

	metrics.CommandsTotal.WithLabelValues(out.Action, metrics.StatusOK).Inc()
	logger.Info("command processed",
		"action", out.Action,
		"items", len(items),
		"confidence", result.Confidence,
		"duration", time.Since(start))
	return result
}

func (p *Processor) fail(cmd *message.Command, err error) *message.VoiceCommandResult {
	metrics.CommandsTotal.WithLabelValues(intent.Unknown, metrics.StatusError).Inc()
	return &message.VoiceCommandResult{
		ID:       cmd.ID,
		Success:  false,
		Action:   intent.Unknown,
		Items:    []message.ExtractedItem{},
		Response: p.intents.Apology(cmd.Lang()),
		Language: cmd.Lang(),
		Error:    err.Error(),
	}
}
