// Package config provides a type-safe, generic way to load configuration
// from environment variables.
//
// It wraps popular libraries `github.com/joho/godotenv` and
// `github.com/caarlos0/env/v11` to deliver a convenient API that:
//
//   - Loads values from one or more `.env` files, falling back to the
//     default `.env` in the current working directory.
//   - Parses the environment into any Go struct using field tags.
//   - Exposes a helper that panics on failure (`MustLoad`) for configuration
//     the process cannot run without.
//
// Unlike process-wide config registries, nothing is cached: every Load call
// re-reads the environment, so tests can flip variables with t.Setenv and
// observe the change on the next load.
//
// # Usage
//
// Create a struct describing your configuration and annotate its fields with
// `env` tags:
//
//	type LoggerConfig struct {
//	    Level  string `env:"LOG_LEVEL" envDefault:"info"`
//	    Format string `env:"LOG_FORMAT" envDefault:"json"`
//	}
//
// Then populate it:
//
//	import "github.com/dmitrymomot/fsmkit/pkg/config"
//
//	var cfg LoggerConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Additional `.env` files can be merged in explicitly before parsing:
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig` – failed to parse env vars into the struct.
//   - `ErrLoadingEnv`    – a named .env file could not be loaded.
//   - `ErrNilPointer`    – nil pointer passed to `Load`/`MustLoad`.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
