package modthree

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

// States of the remainder machine. After consuming any prefix of the input,
// the machine sits in the state whose index is that prefix's value mod 3.
const (
	StateS0 = fsm.StringState("S0")
	StateS1 = fsm.StringState("S1")
	StateS2 = fsm.StringState("S2")
)

const machineName = "mod_three"

// definition is the fixed machine: reading bit b in state Sr moves to
// S((2r+b) mod 3), the long-division step applied digit by digit.
func definition() fsm.Definition {
	return fsm.Definition{
		States:    []fsm.State{StateS0, StateS1, StateS2},
		Alphabet:  []fsm.Symbol{'0', '1'},
		Initial:   StateS0,
		Accepting: []fsm.State{StateS0, StateS1, StateS2},
		Transitions: []fsm.Transition{
			{From: StateS0, On: '0', To: StateS0},
			{From: StateS0, On: '1', To: StateS1},
			{From: StateS1, On: '0', To: StateS2},
			{From: StateS1, On: '1', To: StateS0},
			{From: StateS2, On: '0', To: StateS1},
			{From: StateS2, On: '1', To: StateS2},
		},
	}
}

// Calculator computes remainders of unsigned binary numbers divided by
// three. A Calculator is not safe for concurrent use; the package-level
// Remainder helper builds a fresh one per call and carries no such
// restriction.
type Calculator struct {
	machine *fsm.Machine
	log     *slog.Logger
}

// Option configures a Calculator during construction.
type Option func(*Calculator)

// WithLogger sets the logger passed through to the underlying machine.
// Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(c *Calculator) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a calculator backed by the fixed three-state machine.
// The definition is a program constant, so construction cannot fail.
func New(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}

	machineOpts := []fsm.Option{fsm.WithName(machineName)}
	if c.log != nil {
		machineOpts = append(machineOpts, fsm.WithLogger(c.log))
	}
	c.machine = fsm.MustNew(definition(), machineOpts...)

	return c
}

// Remainder returns the value of the binary string modulo three, reading
// digits most significant first. The whole input is validated before the
// machine moves: any character outside '0' and '1' rejects the entire
// input with a *fsm.ErrInvalidSymbol carrying the first offending
// character and its position. The empty string is rejected with
// fsm.ErrEmptyInput. The calculator resets itself before returning, so a
// single instance can be reused call after call.
func (c *Calculator) Remainder(binary string) (int, error) {
	if binary == "" {
		return 0, fsm.ErrEmptyInput
	}

	// Whole-input check first: invalid input must never move the machine
	for i, r := range binary {
		if r != '0' && r != '1' {
			return 0, fsm.NewErrInvalidSymbol(fsm.Symbol(r), i)
		}
	}

	final, err := c.machine.Run(binary)
	c.machine.Reset()
	if err != nil {
		return 0, err
	}

	switch final {
	case StateS0:
		return 0, nil
	case StateS1:
		return 1, nil
	case StateS2:
		return 2, nil
	}
	return 0, fmt.Errorf("unmapped final state '%s'", final.Name())
}

// Remainder returns the value of the binary string modulo three using a
// fresh calculator per call. Safe for concurrent callers since nothing is
// shared between calls.
func Remainder(binary string) (int, error) {
	return New().Remainder(binary)
}
