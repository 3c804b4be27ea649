package fsm

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyInput = errors.New("input is empty")
)

// ValidationError reports every problem found in a Definition during New.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	switch len(e.Issues) {
	case 0:
		return "invalid machine definition"
	case 1:
		return "invalid machine definition: " + e.Issues[0]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "invalid machine definition: %d issues:", len(e.Issues))
	for i, issue := range e.Issues {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, issue)
	}
	return b.String()
}

func NewValidationError(issues ...string) *ValidationError {
	return &ValidationError{Issues: issues}
}

// ErrInvalidSymbol indicates an input symbol outside the machine's alphabet.
// Pos is the rune index within the offending input, or -1 when the symbol
// was not part of a larger input.
type ErrInvalidSymbol struct {
	Symbol Symbol
	Pos    int
}

func (e *ErrInvalidSymbol) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("symbol '%s' at position %d is not in the alphabet", e.Symbol, e.Pos)
	}
	return fmt.Sprintf("symbol '%s' is not in the alphabet", e.Symbol)
}

func NewErrInvalidSymbol(sym Symbol, pos int) *ErrInvalidSymbol {
	return &ErrInvalidSymbol{
		Symbol: sym,
		Pos:    pos,
	}
}

// ErrUndefinedTransition indicates the transition table has no entry for the
// given state/symbol combination. Only partial tables can produce it.
type ErrUndefinedTransition struct {
	State  string
	Symbol Symbol
}

func (e *ErrUndefinedTransition) Error() string {
	return fmt.Sprintf("no transition defined from state '%s' on symbol '%s'", e.State, e.Symbol)
}

func NewErrUndefinedTransition(state string, sym Symbol) *ErrUndefinedTransition {
	return &ErrUndefinedTransition{
		State:  state,
		Symbol: sym,
	}
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsInvalidSymbolError(err error) bool {
	var e *ErrInvalidSymbol
	return errors.As(err, &e)
}

func IsUndefinedTransitionError(err error) bool {
	var e *ErrUndefinedTransition
	return errors.As(err, &e)
}
