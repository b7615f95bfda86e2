// Shopvoice is a voice-command interpretation daemon for shopping lists. It
// turns pre-transcribed utterances into intents, structured items and a
// confirmation in the speaker's language.
//
// Usage:
//
//	shopvoice [flags]
//	shopvoice --config /path/to/shopvoice.yaml
//
// @title       shopvoice API
// @version     1.0
// @description Voice command interpretation for shopping lists.
// @BasePath    /
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/nadzzz/shopvoice/internal/classifier"
	"github.com/nadzzz/shopvoice/internal/classifier/corpus"
	"github.com/nadzzz/shopvoice/internal/classifier/gemini"
	"github.com/nadzzz/shopvoice/internal/classifier/local"
	"github.com/nadzzz/shopvoice/internal/classifier/openai"
	"github.com/nadzzz/shopvoice/internal/config"
	"github.com/nadzzz/shopvoice/internal/extract"
	"github.com/nadzzz/shopvoice/internal/health"
	"github.com/nadzzz/shopvoice/internal/history"
	"github.com/nadzzz/shopvoice/internal/intent"
	"github.com/nadzzz/shopvoice/internal/lexicon"
	"github.com/nadzzz/shopvoice/internal/metrics"
	"github.com/nadzzz/shopvoice/internal/pipeline"
	"github.com/nadzzz/shopvoice/internal/transport"
	grpctransport "github.com/nadzzz/shopvoice/internal/transport/grpc"
	httptransport "github.com/nadzzz/shopvoice/internal/transport/http"
	natstransport "github.com/nadzzz/shopvoice/internal/transport/nats"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "", "path to config file (e.g. configs/shopvoice.yaml)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("shopvoice %s\n", version)
		os.Exit(0)
	}

	// Load configuration.
	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging.
	config.SetupLogging(cfg.Logging)
	slog.Info("shopvoice starting", "version", version)

	// Create root context with signal handling for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		slog.Error("shopvoice stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("shopvoice stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	// Lexicon tables are built once and shared read-only.
	lex := lexicon.Default()
	if cfg.Lexicon.File != "" {
		var err error
		if lex, err = lexicon.Load(cfg.Lexicon.File); err != nil {
			return err
		}
		slog.Info("loaded lexicon", "path", cfg.Lexicon.File, "languages", lex.Codes())
	}

	clf, err := newClassifier(ctx, cfg.Classifier, lex)
	if err != nil {
		return err
	}
	defer clf.Close()

	intents, err := intent.New()
	if err != nil {
		return err
	}

	// History is optional; without it commands are not recorded.
	var store history.Store
	var recorder *history.Recorder
	if cfg.History.Enabled {
		s, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
		recorder = history.NewRecorder(s, cfg.History.WriteTimeout, func(error) { metrics.HistoryFailures.Inc() })
		defer recorder.Wait()
		slog.Info("history enabled", "path", cfg.History.Path)
	}

	var rec pipeline.Recorder
	if recorder != nil {
		rec = recorder
	}
	processor := pipeline.New(clf, extract.New(lex), intents, rec)

	// Initialize enabled transports.
	var transports []transport.Transport
	if cfg.Transports.HTTP.Enabled {
		transports = append(transports, httptransport.New(httptransport.Options{
			Port:        cfg.Transports.HTTP.Port,
			DefaultUser: cfg.History.DefaultUser,
			History:     store,
		}))
	}
	if cfg.Transports.GRPC.Enabled {
		transports = append(transports, grpctransport.New(cfg.Transports.GRPC.Port))
	}
	if cfg.Transports.NATS.Enabled {
		transports = append(transports, natstransport.New(natstransport.Options{
			URL:     cfg.Transports.NATS.URL,
			Subject: cfg.Transports.NATS.Subject,
			Queue:   cfg.Transports.NATS.Queue,
			Timeout: cfg.Transports.NATS.Timeout,
		}))
	}

	g, ctx := errgroup.WithContext(ctx)

	// Start health check server.
	healthServer := health.New(cfg.Server.HealthPort)
	g.Go(func() error {
		return healthServer.ListenAndServe(ctx)
	})

	// Start all transports. One failing transport stops the others.
	for _, t := range transports {
		g.Go(func() error {
			slog.Info("starting transport", "name", t.Name())
			if err := t.Listen(ctx, processor.Handle); err != nil {
				return fmt.Errorf("transport %s: %w", t.Name(), err)
			}
			return nil
		})
	}

	healthServer.SetReady(true)
	slog.Info("shopvoice ready",
		"transports", len(transports),
		"classifier", clf.Name(),
		"breaker", classifier.State(clf),
		"health_port", cfg.Server.HealthPort)

	<-ctx.Done()
	healthServer.SetReady(false)
	slog.Info("shutdown signal received, draining...")

	for _, t := range transports {
		if err := t.Close(); err != nil {
			slog.Error("transport close error", "name", t.Name(), "error", err)
		}
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newClassifier builds the configured backend. Remote backends are wrapped
// in a circuit breaker.
func newClassifier(ctx context.Context, cfg config.ClassifierConfig, lex *lexicon.Set) (classifier.Classifier, error) {
	breaker := classifier.BreakerSettings{
		MaxRequests:  cfg.Breaker.MaxRequests,
		Interval:     cfg.Breaker.Interval,
		Timeout:      cfg.Breaker.Timeout,
		MinRequests:  cfg.Breaker.MinRequests,
		FailureRatio: cfg.Breaker.FailureRatio,
	}

	switch cfg.Backend {
	case "corpus":
		var (
			clf *corpus.Classifier
			err error
		)
		if cfg.CorpusFile == "" {
			clf, err = corpus.NewDefault(lex, cfg.MinScore)
		} else {
			var c corpus.Corpus
			if c, err = corpus.Load(cfg.CorpusFile); err == nil {
				clf, err = corpus.New(c, lex, cfg.MinScore)
			}
		}
		if err != nil {
			return nil, err
		}
		slog.Info("using corpus classifier", "min_score", cfg.MinScore, "corpus_file", cfg.CorpusFile)
		return clf, nil
	case "openai":
		slog.Info("using OpenAI classifier", "model", cfg.OpenAI.Model)
		return classifier.WithBreaker(openai.New(openai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
			Timeout: cfg.OpenAI.Timeout,
		}), breaker), nil
	case "local":
		slog.Info("using local classifier", "endpoint", cfg.Local.Endpoint, "model", cfg.Local.Model)
		return classifier.WithBreaker(local.New(local.Config{
			Endpoint: cfg.Local.Endpoint,
			Model:    cfg.Local.Model,
			Timeout:  cfg.Local.Timeout,
		}), breaker), nil
	case "gemini":
		clf, err := gemini.New(ctx, gemini.Config{APIKey: cfg.Gemini.APIKey, Model: cfg.Gemini.Model})
		if err != nil {
			return nil, err
		}
		slog.Info("using Gemini classifier", "model", cfg.Gemini.Model)
		return classifier.WithBreaker(clf, breaker), nil
	default:
		return nil, fmt.Errorf("unknown classifier backend %q", cfg.Backend)
	}
}
