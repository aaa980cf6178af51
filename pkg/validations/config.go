package validations

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/validations/pkg/config"
	"github.com/dmitrymomot/validations/pkg/logger"
	"github.com/dmitrymomot/validations/pkg/messages"
)

// Config describes how the engine renders messages and logs.
type Config struct {
	// Locale used by the catalog transformer.
	Locale string `env:"VALIDATIONS_LOCALE" envDefault:"en"`
	// MessagesPath is a catalog file or a directory of catalog files.
	// When empty, messages come from DefaultMessages.
	MessagesPath string `env:"VALIDATIONS_MESSAGES_PATH"`
	LogLevel     string `env:"VALIDATIONS_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"VALIDATIONS_LOG_FORMAT" envDefault:"json"`
	Environment  string `env:"APP_ENV" envDefault:"development"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Engine bundles what Setup builds from a Config.
type Engine struct {
	Logger      *slog.Logger
	Transformer MessageTransformer
}

// NewRuleSet creates a rule set logging through the engine's logger.
func (e *Engine) NewRuleSet(opts ...RuleSetOption) *RuleSet {
	return NewRuleSet(append([]RuleSetOption{WithLogger(e.Logger)}, opts...)...)
}

// Setup builds the logger and transformer described by cfg and installs the
// transformer as the process-wide default. Call it once at startup.
func Setup(ctx context.Context, cfg Config) (*Engine, error) {
	format := logger.FormatJSON
	if cfg.LogFormat == string(logger.FormatText) {
		format = logger.FormatText
	}
	log := logger.New(
		logger.WithEnvironment(cfg.Environment, "validations"),
		logger.WithFormat(format),
		logger.WithLevelName(cfg.LogLevel),
	)

	t, err := newTransformer(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	SetDefaultTransformer(t)

	log.InfoContext(ctx, "validation engine configured",
		logger.Component("validations"),
		logger.Locale(cfg.Locale),
		slog.Bool("catalog", cfg.MessagesPath != ""),
	)
	return &Engine{Logger: log, Transformer: t}, nil
}

func newTransformer(ctx context.Context, cfg Config, log *slog.Logger) (MessageTransformer, error) {
	if cfg.MessagesPath == "" {
		return NewDefaultMessages(), nil
	}

	info, err := os.Stat(cfg.MessagesPath)
	if err != nil {
		return nil, fmt.Errorf("messages path: %w", err)
	}
	var adapter messages.Adapter = messages.FileAdapter{Path: cfg.MessagesPath}
	if info.IsDir() {
		adapter = messages.NewDirectoryAdapter(cfg.MessagesPath)
	}

	catalog, err := messages.NewCatalog(ctx, adapter,
		messages.WithDefaultLocale(cfg.Locale),
		messages.WithLogger(log),
		messages.WithMissingLogging(true),
	)
	if err != nil {
		return nil, err
	}
	return NewCatalogTransformer(catalog, cfg.Locale, nil), nil
}
