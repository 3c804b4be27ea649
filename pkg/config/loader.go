package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// LoadEnv loads the named .env files into the process environment.
// Without arguments it loads the default .env from the working directory.
// Unlike the implicit load performed by Load, a missing file is an error here.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnv, err)
	}
	return nil
}

// Load populates the configuration struct from the process environment,
// driven entirely by env struct tags. The default .env file, when present,
// is merged into the environment once per process; a missing file is not an
// error. Every call re-reads the environment, so variables changed between
// calls show up in later loads.
//
// Example:
//
//	type LoggerConfig struct {
//		Level  string `env:"LOG_LEVEL" envDefault:"info"`
//		Format string `env:"LOG_FORMAT" envDefault:"json"`
//	}
//
//	var cfg LoggerConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// The default .env is optional
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics when loading fails.
// This is useful for configuration the process cannot run without.
//
// Example:
//
//	var cfg LoggerConfig
//	config.MustLoad(&cfg)
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
