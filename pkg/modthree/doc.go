// Package modthree computes the remainder of an unsigned binary number
// divided by three without ever materializing the number itself.
//
// The classic construction runs a three-state machine over the digits,
// most significant first. Each state stands for the value of the digits
// consumed so far modulo three; appending a bit b maps remainder r to
// (2r + b) mod 3, which is exactly the transition table wired into the
// underlying fsm engine:
//
//	state  '0'  '1'
//	  S0    S0   S1
//	  S1    S2   S0
//	  S2    S1   S2
//
// All three states are accepting: every well-formed binary string has a
// remainder. The final state decodes directly to the answer (S0 is 0, S1
// is 1, S2 is 2), so inputs far beyond 64 bits cost only one table lookup
// per digit.
//
// # Usage
//
//	import "github.com/dmitrymomot/fsmkit/pkg/modthree"
//
//	r, err := modthree.Remainder("1101") // 13 % 3 = 1
//
// A reusable instance avoids rebuilding the machine per call:
//
//	calc := modthree.New()
//	r1, _ := calc.Remainder("110")
//	r2, _ := calc.Remainder("1110")
//
// # Error Handling
//
// The empty string fails with fsm.ErrEmptyInput. Input containing any
// character other than '0' or '1' fails with *fsm.ErrInvalidSymbol before
// the machine takes a single step; the whole input is rejected, never a
// prefix of it:
//
//	_, err := modthree.Remainder("102")
//	fsm.IsInvalidSymbolError(err) // true, offending '2' at position 2
//
// # Concurrency
//
// A Calculator is not synchronized and belongs to one goroutine at a time.
// The package-level Remainder builds a fresh calculator per call and may be
// used from any number of goroutines.
package modthree
