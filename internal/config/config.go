// Package config handles loading and validating the shopvoice configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration for the shopvoice daemon.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Transports TransportsConfig `mapstructure:"transports"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Lexicon    LexiconConfig    `mapstructure:"lexicon"`
	History    HistoryConfig    `mapstructure:"history"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig holds the health check server settings.
type ServerConfig struct {
	HealthPort int `mapstructure:"health_port"`
}

// TransportsConfig holds the configuration for each transport layer.
type TransportsConfig struct {
	HTTP HTTPConfig `mapstructure:"http"`
	GRPC GRPCConfig `mapstructure:"grpc"`
	NATS NATSConfig `mapstructure:"nats"`
}

// HTTPConfig configures the REST transport.
type HTTPConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// GRPCConfig configures the gRPC transport.
type GRPCConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// NATSConfig configures the NATS request/reply transport.
type NATSConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	URL     string        `mapstructure:"url"`
	Subject string        `mapstructure:"subject"`
	Queue   string        `mapstructure:"queue"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ClassifierConfig selects and configures the intent classifier.
type ClassifierConfig struct {
	Backend    string        `mapstructure:"backend"` // "corpus", "openai", "local" or "gemini"
	MinScore   float64       `mapstructure:"min_score"`
	CorpusFile string        `mapstructure:"corpus_file"` // replaces the embedded training corpus
	OpenAI     OpenAIConfig  `mapstructure:"openai"`
	Local      LocalConfig   `mapstructure:"local"`
	Gemini     GeminiConfig  `mapstructure:"gemini"`
	Breaker    BreakerConfig `mapstructure:"breaker"`
}

// OpenAIConfig holds OpenAI API settings.
type OpenAIConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LocalConfig holds self-hosted LLM settings.
type LocalConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Model    string        `mapstructure:"model"` // Ollama model name (e.g., "llama3.2:1b")
	Timeout  time.Duration `mapstructure:"timeout"`
}

// GeminiConfig holds Gemini API settings.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// BreakerConfig configures the circuit breaker around remote classifiers.
type BreakerConfig struct {
	MaxRequests  uint32        `mapstructure:"max_requests"`
	Interval     time.Duration `mapstructure:"interval"`
	Timeout      time.Duration `mapstructure:"timeout"`
	MinRequests  uint32        `mapstructure:"min_requests"`
	FailureRatio float64       `mapstructure:"failure_ratio"`
}

// LexiconConfig points at an optional YAML lexicon replacing the built-in tables.
type LexiconConfig struct {
	File string `mapstructure:"file"`
}

// HistoryConfig configures the command history store.
type HistoryConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Path         string        `mapstructure:"path"`
	DefaultUser  string        `mapstructure:"default_user"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

var backends = map[string]bool{"corpus": true, "openai": true, "local": true, "gemini": true}

// Load reads the configuration from file, environment variables, and defaults.
// If configFile is non-empty it is used directly; otherwise the standard
// search order applies: ./shopvoice.yaml, ./configs/shopvoice.yaml, /etc/shopvoice/shopvoice.yaml.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.health_port", 8081)
	v.SetDefault("transports.http.enabled", true)
	v.SetDefault("transports.http.port", 8080)
	v.SetDefault("transports.grpc.enabled", false)
	v.SetDefault("transports.grpc.port", 50051)
	v.SetDefault("transports.nats.enabled", false)
	v.SetDefault("transports.nats.url", "nats://localhost:4222")
	v.SetDefault("transports.nats.subject", "shopvoice.process")
	v.SetDefault("transports.nats.queue", "shopvoice")
	v.SetDefault("transports.nats.timeout", 30*time.Second)
	v.SetDefault("classifier.backend", "corpus")
	v.SetDefault("classifier.min_score", 0.3)
	v.SetDefault("classifier.openai.model", "gpt-4o-mini")
	v.SetDefault("classifier.openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("classifier.openai.timeout", 10*time.Second)
	v.SetDefault("classifier.local.endpoint", "http://localhost:11434/api/generate")
	v.SetDefault("classifier.local.model", "llama3")
	v.SetDefault("classifier.local.timeout", 30*time.Second)
	v.SetDefault("classifier.gemini.model", "gemini-2.5-flash-lite")
	v.SetDefault("classifier.breaker.max_requests", 1)
	v.SetDefault("classifier.breaker.interval", time.Minute)
	v.SetDefault("classifier.breaker.timeout", 30*time.Second)
	v.SetDefault("classifier.breaker.min_requests", 3)
	v.SetDefault("classifier.breaker.failure_ratio", 0.6)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", "shopvoice.db")
	v.SetDefault("history.default_user", "")
	v.SetDefault("history.write_timeout", 5*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("shopvoice")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/shopvoice")
	}

	// Environment variables: SHOPVOICE_SERVER_HEALTH_PORT, SHOPVOICE_CLASSIFIER_BACKEND, etc.
	v.SetEnvPrefix("SHOPVOICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional: env vars and defaults are sufficient)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Info("no config file found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Resolve env var references in sensitive fields (e.g., "${OPENAI_API_KEY}")
	cfg.Classifier.OpenAI.APIKey = resolveEnvRef(cfg.Classifier.OpenAI.APIKey)
	cfg.Classifier.Gemini.APIKey = resolveEnvRef(cfg.Classifier.Gemini.APIKey)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the daemon cannot start with.
func (c *Config) Validate() error {
	if !backends[c.Classifier.Backend] {
		return fmt.Errorf("config: unknown classifier backend %q", c.Classifier.Backend)
	}
	if c.Classifier.MinScore < 0 || c.Classifier.MinScore > 1 {
		return fmt.Errorf("config: classifier.min_score must be within [0,1], got %v", c.Classifier.MinScore)
	}
	if !c.Transports.HTTP.Enabled && !c.Transports.GRPC.Enabled && !c.Transports.NATS.Enabled {
		return fmt.Errorf("config: no transports enabled")
	}
	if c.History.Enabled && c.History.Path == "" {
		return fmt.Errorf("config: history.path is required when history is enabled")
	}
	return nil
}

// resolveEnvRef replaces "${VAR_NAME}" patterns with the corresponding env var value.
func resolveEnvRef(val string) string {
	if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
		envKey := val[2 : len(val)-1]
		if envVal := os.Getenv(envKey); envVal != "" {
			return envVal
		}
	}
	return val
}

// SetupLogging configures the global slog logger based on config.
func SetupLogging(cfg LoggingConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
