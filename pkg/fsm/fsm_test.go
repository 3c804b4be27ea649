package fsm_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

func TestMachine(t *testing.T) {
	t.Parallel()
	// Define states
	const (
		Even = fsm.StringState("even")
		Odd  = fsm.StringState("odd")
	)

	// Parity machine: accepts strings with an even number of ones
	def := fsm.Definition{
		States:    []fsm.State{Even, Odd},
		Alphabet:  []fsm.Symbol{'0', '1'},
		Initial:   Even,
		Accepting: []fsm.State{Even},
		Transitions: []fsm.Transition{
			{From: Even, On: '0', To: Even},
			{From: Even, On: '1', To: Odd},
			{From: Odd, On: '0', To: Odd},
			{From: Odd, On: '1', To: Even},
		},
	}

	t.Run("Basic Stepping", func(t *testing.T) {
		t.Parallel()
		m := fsm.MustNew(def)

		// Initial state should be Even
		if m.Current() != Even {
			t.Fatalf("Expected initial state to be %s, got %s", Even, m.Current())
		}

		if !m.IsAccepting() {
			t.Fatal("Expected initial state to be accepting")
		}

		// Test CanStep
		if !m.CanStep('1') {
			t.Fatal("Expected CanStep to return true for '1' in Even state")
		}

		next, err := m.Step('1')
		if err != nil {
			t.Fatalf("Failed to step on '1': %v", err)
		}
		if next != Odd {
			t.Fatalf("Expected state to be %s, got %s", Odd, next)
		}

		if m.IsAccepting() {
			t.Fatal("Expected Odd state to be non-accepting")
		}

		if _, err := m.Step('1'); err != nil {
			t.Fatalf("Failed to step on '1': %v", err)
		}

		// State should be back to Even
		if m.Current() != Even {
			t.Fatalf("Expected state to be %s, got %s", Even, m.Current())
		}

		m.Reset()

		if m.Current() != Even {
			t.Fatalf("Expected state to be %s after reset, got %s", Even, m.Current())
		}
	})

	t.Run("Whole String Run", func(t *testing.T) {
		t.Parallel()
		m := fsm.MustNew(def)

		// Three ones: odd parity
		final, err := m.Run("1101")
		if err != nil {
			t.Fatalf("Failed to run input: %v", err)
		}
		if final != Odd {
			t.Fatalf("Expected final state to be %s, got %s", Odd, final)
		}
		if m.IsAccepting() {
			t.Fatal("Expected final state to be non-accepting")
		}

		// Runs continue from the current state; reset first
		m.Reset()

		final, err = m.Run("1100")
		if err != nil {
			t.Fatalf("Failed to run input: %v", err)
		}
		if final != Even {
			t.Fatalf("Expected final state to be %s, got %s", Even, final)
		}
		if !m.IsAccepting() {
			t.Fatal("Expected final state to be accepting")
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		t.Parallel()
		m := fsm.MustNew(def)

		_, err := m.Run("")
		if !errors.Is(err, fsm.ErrEmptyInput) {
			t.Fatalf("Expected ErrEmptyInput, got: %v", err)
		}

		// State should be untouched
		if m.Current() != Even {
			t.Fatalf("Expected state to be %s, got %s", Even, m.Current())
		}
	})

	t.Run("Invalid Symbol", func(t *testing.T) {
		t.Parallel()
		m := fsm.MustNew(def)

		if m.CanStep('x') {
			t.Fatal("Expected CanStep to return false for symbol outside the alphabet")
		}

		_, err := m.Step('x')
		if !fsm.IsInvalidSymbolError(err) {
			t.Fatalf("Expected InvalidSymbolError, got: %v", err)
		}

		// Failed step must not move the machine
		if m.Current() != Even {
			t.Fatalf("Expected state to be %s after failed step, got %s", Even, m.Current())
		}

		var symErr *fsm.ErrInvalidSymbol
		if !errors.As(err, &symErr) {
			t.Fatalf("Expected *ErrInvalidSymbol, got: %T", err)
		}
		if symErr.Symbol != 'x' {
			t.Fatalf("Expected offending symbol 'x', got '%s'", symErr.Symbol)
		}
		if symErr.Pos != -1 {
			t.Fatalf("Expected position -1 for a single step, got %d", symErr.Pos)
		}
	})

	t.Run("Undefined Transition", func(t *testing.T) {
		t.Parallel()
		const (
			A = fsm.StringState("A")
			B = fsm.StringState("B")
		)

		// Partial table: nothing leaves B, and A only consumes 'a'
		m := fsm.MustNew(fsm.Definition{
			States:    []fsm.State{A, B},
			Alphabet:  []fsm.Symbol{'a', 'b'},
			Initial:   A,
			Accepting: []fsm.State{B},
			Transitions: []fsm.Transition{
				{From: A, On: 'a', To: B},
			},
		})

		if m.CanStep('b') {
			t.Fatal("Expected CanStep to return false for a missing table entry")
		}

		_, err := m.Step('b')
		if !fsm.IsUndefinedTransitionError(err) {
			t.Fatalf("Expected UndefinedTransitionError, got: %v", err)
		}

		// Failed step must not move the machine
		if m.Current() != A {
			t.Fatalf("Expected state to be %s after failed step, got %s", A, m.Current())
		}

		var trErr *fsm.ErrUndefinedTransition
		if !errors.As(err, &trErr) {
			t.Fatalf("Expected *ErrUndefinedTransition, got: %T", err)
		}
		if trErr.State != "A" || trErr.Symbol != 'b' {
			t.Fatalf("Expected transition error for ('A', 'b'), got ('%s', '%s')", trErr.State, trErr.Symbol)
		}

		// The defined pair still works
		if _, err := m.Step('a'); err != nil {
			t.Fatalf("Failed to step on 'a': %v", err)
		}
		if !m.IsAccepting() {
			t.Fatal("Expected B to be accepting")
		}

		// Run wraps holes in the table with the failing position
		m.Reset()
		_, err = m.Run("ab")
		if !fsm.IsUndefinedTransitionError(err) {
			t.Fatalf("Expected UndefinedTransitionError, got: %v", err)
		}
		if !strings.Contains(err.Error(), "input position 1") {
			t.Fatalf("Expected error to contain 'input position 1', got: %v", err)
		}
	})

	t.Run("No Rollback On Failed Run", func(t *testing.T) {
		t.Parallel()
		m := fsm.MustNew(def)

		// 'x' at rune position 2; the first two symbols already ran
		_, err := m.Run("10x1")
		if !fsm.IsInvalidSymbolError(err) {
			t.Fatalf("Expected InvalidSymbolError, got: %v", err)
		}

		// Whole-string failures carry the position on the typed error
		var symErr *fsm.ErrInvalidSymbol
		if !errors.As(err, &symErr) {
			t.Fatalf("Expected *ErrInvalidSymbol, got: %T", err)
		}
		if symErr.Symbol != 'x' || symErr.Pos != 2 {
			t.Fatalf("Expected symbol 'x' at position 2, got '%s' at %d", symErr.Symbol, symErr.Pos)
		}

		// Machine stays where the last successful step left it
		if m.Current() != Odd {
			t.Fatalf("Expected state to be %s after failed run, got %s", Odd, m.Current())
		}

		// Reset recovers the machine
		m.Reset()
		if _, err := m.Run("11"); err != nil {
			t.Fatalf("Failed to run after reset: %v", err)
		}
		if m.Current() != Even {
			t.Fatalf("Expected state to be %s, got %s", Even, m.Current())
		}
	})

	t.Run("MustNew Panic", func(t *testing.T) {
		t.Parallel()
		// Test that MustNew panics on an invalid definition
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("Expected MustNew to panic with an empty definition")
			}
		}()

		_ = fsm.MustNew(fsm.Definition{})
	})

	t.Run("Logging", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		m := fsm.MustNew(def, fsm.WithName("parity"), fsm.WithLogger(log))

		if _, err := m.Run("10"); err != nil {
			t.Fatalf("Failed to run input: %v", err)
		}

		out := buf.String()
		for _, want := range []string{"run started", "transition", "run finished", "machine=parity", "run_id="} {
			if !strings.Contains(out, want) {
				t.Fatalf("Expected log output to contain %q, got:\n%s", want, out)
			}
		}
	})
}

func TestValidation(t *testing.T) {
	t.Parallel()
	const (
		A = fsm.StringState("A")
		B = fsm.StringState("B")
	)

	tests := []struct {
		name      string
		def       fsm.Definition
		wantIssue string
	}{
		{
			name: "empty state set",
			def: fsm.Definition{
				Alphabet: []fsm.Symbol{'a'},
				Initial:  A,
			},
			wantIssue: "state set is empty",
		},
		{
			name: "nil state",
			def: fsm.Definition{
				States:   []fsm.State{A, nil},
				Alphabet: []fsm.Symbol{'a'},
				Initial:  A,
			},
			wantIssue: "states[1] is nil",
		},
		{
			name: "duplicate state",
			def: fsm.Definition{
				States:   []fsm.State{A, A},
				Alphabet: []fsm.Symbol{'a'},
				Initial:  A,
			},
			wantIssue: "duplicate state 'A'",
		},
		{
			name: "empty alphabet",
			def: fsm.Definition{
				States:  []fsm.State{A},
				Initial: A,
			},
			wantIssue: "alphabet is empty",
		},
		{
			name: "duplicate symbol",
			def: fsm.Definition{
				States:   []fsm.State{A},
				Alphabet: []fsm.Symbol{'a', 'a'},
				Initial:  A,
			},
			wantIssue: "duplicate symbol 'a' in alphabet",
		},
		{
			name: "nil initial state",
			def: fsm.Definition{
				States:   []fsm.State{A},
				Alphabet: []fsm.Symbol{'a'},
			},
			wantIssue: "initial state is nil",
		},
		{
			name: "initial state not in set",
			def: fsm.Definition{
				States:   []fsm.State{A},
				Alphabet: []fsm.Symbol{'a'},
				Initial:  B,
			},
			wantIssue: "initial state 'B' is not in the state set",
		},
		{
			name: "accepting state not in set",
			def: fsm.Definition{
				States:    []fsm.State{A},
				Alphabet:  []fsm.Symbol{'a'},
				Initial:   A,
				Accepting: []fsm.State{B},
			},
			wantIssue: "accepting state 'B' is not in the state set",
		},
		{
			name: "transition source not in set",
			def: fsm.Definition{
				States:   []fsm.State{A},
				Alphabet: []fsm.Symbol{'a'},
				Initial:  A,
				Transitions: []fsm.Transition{
					{From: B, On: 'a', To: A},
				},
			},
			wantIssue: "transitions[0]: source state 'B' is not in the state set",
		},
		{
			name: "transition symbol not in alphabet",
			def: fsm.Definition{
				States:   []fsm.State{A},
				Alphabet: []fsm.Symbol{'a'},
				Initial:  A,
				Transitions: []fsm.Transition{
					{From: A, On: 'z', To: A},
				},
			},
			wantIssue: "symbol 'z' is not in the alphabet",
		},
		{
			name: "transition target not in set",
			def: fsm.Definition{
				States:   []fsm.State{A},
				Alphabet: []fsm.Symbol{'a'},
				Initial:  A,
				Transitions: []fsm.Transition{
					{From: A, On: 'a', To: B},
				},
			},
			wantIssue: "target state 'B' is not in the state set",
		},
		{
			name: "nil transition endpoint",
			def: fsm.Definition{
				States:   []fsm.State{A},
				Alphabet: []fsm.Symbol{'a'},
				Initial:  A,
				Transitions: []fsm.Transition{
					{From: A, On: 'a', To: nil},
				},
			},
			wantIssue: "transitions[0]: from and to cannot be nil",
		},
		{
			name: "nondeterministic pair",
			def: fsm.Definition{
				States:    []fsm.State{A, B},
				Alphabet:  []fsm.Symbol{'a'},
				Initial:   A,
				Accepting: []fsm.State{B},
				Transitions: []fsm.Transition{
					{From: A, On: 'a', To: B},
					{From: A, On: 'a', To: A},
				},
			},
			wantIssue: "transitions[1]: duplicate transition from 'A' on 'a'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := fsm.New(tt.def)
			if !fsm.IsValidationError(err) {
				t.Fatalf("Expected ValidationError, got: %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantIssue) {
				t.Fatalf("Expected error to contain %q, got: %v", tt.wantIssue, err)
			}
		})
	}

	t.Run("aggregates all issues", func(t *testing.T) {
		t.Parallel()
		// Empty states, empty alphabet, and nil initial in one definition
		_, err := fsm.New(fsm.Definition{})

		var verr *fsm.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Expected *ValidationError, got: %T", err)
		}
		if len(verr.Issues) != 3 {
			t.Fatalf("Expected 3 issues, got %d: %v", len(verr.Issues), verr.Issues)
		}
	})

	t.Run("valid definition", func(t *testing.T) {
		t.Parallel()
		m, err := fsm.New(fsm.Definition{
			States:    []fsm.State{A, B},
			Alphabet:  []fsm.Symbol{'a'},
			Initial:   A,
			Accepting: []fsm.State{B},
			Transitions: []fsm.Transition{
				{From: A, On: 'a', To: B},
				{From: B, On: 'a', To: A},
			},
		})
		if err != nil {
			t.Fatalf("Expected valid definition to compile, got: %v", err)
		}
		if m.Current() != A {
			t.Fatalf("Expected initial state to be %s, got %s", A, m.Current())
		}
	})
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()
	plain := errors.New("some other error")

	if fsm.IsValidationError(plain) {
		t.Fatal("Expected IsValidationError to return false for an unrelated error")
	}
	if fsm.IsInvalidSymbolError(plain) {
		t.Fatal("Expected IsInvalidSymbolError to return false for an unrelated error")
	}
	if fsm.IsUndefinedTransitionError(plain) {
		t.Fatal("Expected IsUndefinedTransitionError to return false for an unrelated error")
	}

	// Predicates must see through wrapping
	wrapped := fmt.Errorf("context: %w", fsm.NewErrInvalidSymbol('x', 3))
	if !fsm.IsInvalidSymbolError(wrapped) {
		t.Fatal("Expected IsInvalidSymbolError to see through wrapping")
	}
	if !strings.Contains(wrapped.Error(), "at position 3") {
		t.Fatalf("Expected positional message, got: %v", wrapped)
	}
	if !strings.Contains(fsm.NewErrInvalidSymbol('x', -1).Error(), "symbol 'x' is not in the alphabet") {
		t.Fatalf("Expected positionless message, got: %v", fsm.NewErrInvalidSymbol('x', -1))
	}
}

// Serial on purpose: AllocsPerRun needs the process quiet.
func TestStepAllocations(t *testing.T) {
	m := parityMachine()

	allocs := testing.AllocsPerRun(1000, func() {
		if _, err := m.Step('1'); err != nil {
			t.Fatalf("Failed to step on '1': %v", err)
		}
	})
	if allocs != 0 {
		t.Fatalf("Expected stepping without a logger to allocate nothing, got %v allocations per step", allocs)
	}
}
