// Package fsm provides a small, deterministic finite-state-machine engine
// driven by single-character input symbols.
//
// A machine is described up front by a Definition – the state set, the input
// alphabet, the initial state, the accepting subset, and the transition
// table – and compiled by New, which validates the definition as a whole
// before anything can run. The library handles:
//  1. Whole-definition validation with aggregated error reporting
//  2. O(1) transition lookup via a composite (state, symbol) key
//  3. Symbol-by-symbol stepping and whole-string runs
//  4. Accepting-state queries against the compiled accepting set
//
// The State interface is minimal – just Name() – so domain packages can
// model states as typed constants via StringState or as richer structs.
//
// # Architecture
//
// Definitions are compiled into a flat map keyed by (state name, symbol).
// Because a map holds one value per key, determinism is a property of the
// representation, not a runtime check: a definition with two targets for
// the same pair is rejected during New. Partial tables are legal; stepping
// into a missing pair fails with ErrUndefinedTransition and leaves the
// machine where it was.
//
// # Usage
//
//	import "github.com/dmitrymomot/fsmkit/pkg/fsm"
//
//	const (
//	    Even = fsm.StringState("even")
//	    Odd  = fsm.StringState("odd")
//	)
//
//	machine := fsm.MustNew(fsm.Definition{
//	    States:    []fsm.State{Even, Odd},
//	    Alphabet:  []fsm.Symbol{'0', '1'},
//	    Initial:   Even,
//	    Accepting: []fsm.State{Even},
//	    Transitions: []fsm.Transition{
//	        {From: Even, On: '0', To: Even},
//	        {From: Even, On: '1', To: Odd},
//	        {From: Odd, On: '0', To: Odd},
//	        {From: Odd, On: '1', To: Even},
//	    },
//	})
//
//	final, err := machine.Run("1101")
//
// # Error Handling
//
// Errors are part of the API. Construction failures aggregate into a
// *ValidationError; runtime failures are typed per cause and can be
// inspected with helper predicates:
//
//	if fsm.IsInvalidSymbolError(err) { /* symbol outside the alphabet */ }
//	if fsm.IsUndefinedTransitionError(err) { /* hole in a partial table */ }
//	if errors.Is(err, fsm.ErrEmptyInput) { /* Run("") */ }
//
// A failed Run does not roll back: the machine stays in the state the last
// successful step produced. Reset returns it to the initial state.
//
// # Concurrency
//
// A Machine is not synchronized. It is built for single-owner use; share
// one across goroutines only behind your own lock, or give each goroutine
// its own machine (construction is cheap).
package fsm
