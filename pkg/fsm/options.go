package fsm

import (
	"fmt"
	"log/slog"
)

// Option configures a machine during construction.
type Option func(*Machine)

// New validates and compiles a definition into a runnable machine.
// Validation failures are reported with a *ValidationError aggregating
// every issue found. On success the machine starts in the initial state.
func New(def Definition, opts ...Option) (*Machine, error) {
	if verr := validate(def); verr != nil {
		return nil, verr
	}

	m := compile(def)
	for _, opt := range opts {
		opt(m)
	}

	if m.log == nil {
		m.log = slog.New(slog.DiscardHandler)
	}

	return m, nil
}

// MustNew creates a new machine from the given definition and options.
// Panics if the definition is invalid, following FSMKit's fail-fast pattern.
func MustNew(def Definition, opts ...Option) *Machine {
	m, err := New(def, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create machine: %v", err))
	}
	return m
}

// WithName sets the machine name carried in log records.
func WithName(name string) Option {
	return func(m *Machine) {
		m.name = name
	}
}

// WithLogger sets the logger used for transition and run tracing.
// Nil loggers are ignored; without one the machine logs nothing.
func WithLogger(log *slog.Logger) Option {
	return func(m *Machine) {
		if log != nil {
			m.log = log
		}
	}
}
