package logger

import (
	"fmt"
	"log/slog"

	envconfig "github.com/dmitrymomot/fsmkit/pkg/config"
)

// envConfig is the environment surface of the factory.
type envConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format Format `env:"LOG_FORMAT" envDefault:"json"`
}

// NewFromEnv builds a logger from the LOG_LEVEL and LOG_FORMAT environment
// variables, then applies opts on top, so explicit options win over the
// environment. Unset variables fall back to the production defaults of New.
func NewFromEnv(opts ...Option) (*slog.Logger, error) {
	var cfg envConfig
	if err := envconfig.Load(&cfg); err != nil {
		return nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Level, err)
	}

	switch cfg.Format {
	case FormatJSON, FormatText:
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be %q or %q", cfg.Format, FormatJSON, FormatText)
	}

	merged := append([]Option{WithLevel(level), WithFormat(cfg.Format)}, opts...)
	return New(merged...), nil
}
