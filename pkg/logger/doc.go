// Package logger provides a thin factory around Go's slog package with
// functional options for configuration and helper attribute constructors.
//
// The package standardises structured logging across consumers of this kit
// by exposing a single factory – New – that creates a *slog.Logger
// configured by a set of Option functions. These options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Apply development or production preset bundles
//
// Library packages in this kit never log on their own: they accept a
// *slog.Logger through their WithLogger options and stay silent without
// one. This factory is the matching producer side for applications that
// want those traces.
//
// # Architecture
//
// New determines the concrete slog.Handler implementation –
// slog.NewTextHandler or slog.NewJSONHandler – based on the configured
// Format, applies any static attributes, and wraps it in a *slog.Logger.
// NewFromEnv layers environment-driven configuration (LOG_LEVEL,
// LOG_FORMAT) underneath explicit options using the config package.
//
// Helper constructors such as Group, Error, Machine, and Threshold live in
// attr.go and return commonly-used slog.Attr instances to keep attribute
// naming consistent across a codebase.
//
// # Usage
//
//	import "github.com/dmitrymomot/fsmkit/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithDevelopment("fsm-playground"),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.Info("machine built",
//	        logger.Machine("mod_three"),
//	        logger.Component("startup"),
//	    )
//	}
//
// # Configuration
//
// The behaviour of New can be tuned with a variety of Option helpers:
//
//   - WithDevelopment / WithProduction – sensible defaults per environment.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – override output format.
//   - WithLevel – set a custom slog.Level.
//   - WithAttr – attach static attributes.
//   - WithOutput – redirect output, e.g. to a buffer in tests.
//
// NewFromEnv reads LOG_LEVEL and LOG_FORMAT instead, for processes that
// configure logging purely through the environment.
//
// # Error Handling
//
// Helper functions Error and Errors produce attributes only when the
// supplied error value is non-nil allowing calls like:
//
//	log.Info("operation finished", logger.Error(err))
//
// without an additional nil check.
package logger
