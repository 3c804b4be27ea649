package fsm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// transitionKey is the composite lookup key of the compiled table. One map
// entry per (state, symbol) pair makes determinism structural: the table
// cannot hold two targets for the same pair.
type transitionKey struct {
	state  string
	symbol Symbol
}

// Machine executes a validated Definition against input symbols.
// A Machine is not safe for concurrent use; callers that share one across
// goroutines must provide their own synchronization.
type Machine struct {
	name      string
	initial   State
	current   State
	alphabet  map[Symbol]struct{}
	accepting map[string]struct{}
	table     map[transitionKey]State
	log       *slog.Logger
}

// Current returns the state the machine is in.
func (m *Machine) Current() State {
	return m.current
}

// Reset returns the machine to its initial state. It never fails and is the
// only way to recover a machine after a failed Run.
func (m *Machine) Reset() {
	m.current = m.initial
}

// Step consumes a single symbol and advances the machine. It fails with
// *ErrInvalidSymbol when the symbol is outside the alphabet and with
// *ErrUndefinedTransition when the table has no entry for the current
// state and symbol. On failure the current state is left unchanged.
func (m *Machine) Step(sym Symbol) (State, error) {
	if _, ok := m.alphabet[sym]; !ok {
		return nil, NewErrInvalidSymbol(sym, -1)
	}

	next, ok := m.table[transitionKey{state: m.current.Name(), symbol: sym}]
	if !ok {
		return nil, NewErrUndefinedTransition(m.current.Name(), sym)
	}

	if m.log.Enabled(context.Background(), slog.LevelDebug) {
		m.log.Debug("transition",
			slog.String("machine", m.name),
			slog.String("from", m.current.Name()),
			slog.String("symbol", sym.String()),
			slog.String("to", next.Name()))
	}

	m.current = next
	return next, nil
}

// CanStep reports whether Step would succeed for the given symbol without
// advancing the machine.
func (m *Machine) CanStep(sym Symbol) bool {
	if _, ok := m.alphabet[sym]; !ok {
		return false
	}
	_, ok := m.table[transitionKey{state: m.current.Name(), symbol: sym}]
	return ok
}

// Run consumes the input left to right, one symbol per rune, and returns
// the final state. The empty string is rejected with ErrEmptyInput. A step
// failure is returned immediately carrying the failing rune position:
// invalid symbols report it on the error itself, other failures are
// wrapped with it. The machine stays in the state the last successful step
// produced, so callers must Reset before reusing it after a failed run.
func (m *Machine) Run(input string) (State, error) {
	if input == "" {
		return nil, ErrEmptyInput
	}

	var runID string
	debug := m.log.Enabled(context.Background(), slog.LevelDebug)
	if debug {
		runID = uuid.New().String()
		m.log.Debug("run started",
			slog.String("machine", m.name),
			slog.String("run_id", runID),
			slog.String("input", input),
			slog.String("state", m.current.Name()))
	}

	pos := 0
	for _, r := range input {
		if _, err := m.Step(Symbol(r)); err != nil {
			if IsInvalidSymbolError(err) {
				err = NewErrInvalidSymbol(Symbol(r), pos)
			} else {
				err = fmt.Errorf("input position %d: %w", pos, err)
			}
			if debug {
				m.log.Debug("run failed",
					slog.String("machine", m.name),
					slog.String("run_id", runID),
					slog.Int("position", pos),
					slog.Any("error", err))
			}
			return nil, err
		}
		pos++
	}

	if debug {
		m.log.Debug("run finished",
			slog.String("machine", m.name),
			slog.String("run_id", runID),
			slog.String("state", m.current.Name()),
			slog.Bool("accepting", m.IsAccepting()))
	}

	return m.current, nil
}

// IsAccepting reports whether the current state is in the accepting set.
func (m *Machine) IsAccepting() bool {
	_, ok := m.accepting[m.current.Name()]
	return ok
}

// validate checks a Definition as a whole and reports every issue found,
// not just the first one.
func validate(def Definition) *ValidationError {
	var issues []string

	states := make(map[string]struct{}, len(def.States))
	if len(def.States) == 0 {
		issues = append(issues, "state set is empty")
	}
	for i, s := range def.States {
		if s == nil {
			issues = append(issues, fmt.Sprintf("states[%d] is nil", i))
			continue
		}
		if _, ok := states[s.Name()]; ok {
			issues = append(issues, fmt.Sprintf("duplicate state '%s'", s.Name()))
			continue
		}
		states[s.Name()] = struct{}{}
	}

	alphabet := make(map[Symbol]struct{}, len(def.Alphabet))
	if len(def.Alphabet) == 0 {
		issues = append(issues, "alphabet is empty")
	}
	for _, sym := range def.Alphabet {
		if _, ok := alphabet[sym]; ok {
			issues = append(issues, fmt.Sprintf("duplicate symbol '%s' in alphabet", sym))
			continue
		}
		alphabet[sym] = struct{}{}
	}

	if def.Initial == nil {
		issues = append(issues, "initial state is nil")
	} else if _, ok := states[def.Initial.Name()]; !ok {
		issues = append(issues, fmt.Sprintf("initial state '%s' is not in the state set", def.Initial.Name()))
	}

	for i, s := range def.Accepting {
		if s == nil {
			issues = append(issues, fmt.Sprintf("accepting[%d] is nil", i))
			continue
		}
		if _, ok := states[s.Name()]; !ok {
			issues = append(issues, fmt.Sprintf("accepting state '%s' is not in the state set", s.Name()))
		}
	}

	seen := make(map[transitionKey]struct{}, len(def.Transitions))
	for i, t := range def.Transitions {
		if t.From == nil || t.To == nil {
			issues = append(issues, fmt.Sprintf("transitions[%d]: from and to cannot be nil", i))
			continue
		}
		if _, ok := states[t.From.Name()]; !ok {
			issues = append(issues, fmt.Sprintf("transitions[%d]: source state '%s' is not in the state set", i, t.From.Name()))
		}
		if _, ok := alphabet[t.On]; !ok {
			issues = append(issues, fmt.Sprintf("transitions[%d]: symbol '%s' is not in the alphabet", i, t.On))
		}
		if _, ok := states[t.To.Name()]; !ok {
			issues = append(issues, fmt.Sprintf("transitions[%d]: target state '%s' is not in the state set", i, t.To.Name()))
		}
		key := transitionKey{state: t.From.Name(), symbol: t.On}
		if _, ok := seen[key]; ok {
			issues = append(issues, fmt.Sprintf("transitions[%d]: duplicate transition from '%s' on '%s'", i, t.From.Name(), t.On))
			continue
		}
		seen[key] = struct{}{}
	}

	if len(issues) > 0 {
		return NewValidationError(issues...)
	}
	return nil
}

func compile(def Definition) *Machine {
	m := &Machine{
		initial:   def.Initial,
		current:   def.Initial,
		alphabet:  make(map[Symbol]struct{}, len(def.Alphabet)),
		accepting: make(map[string]struct{}, len(def.Accepting)),
		table:     make(map[transitionKey]State, len(def.Transitions)),
	}

	for _, sym := range def.Alphabet {
		m.alphabet[sym] = struct{}{}
	}
	for _, s := range def.Accepting {
		m.accepting[s.Name()] = struct{}{}
	}
	for _, t := range def.Transitions {
		m.table[transitionKey{state: t.From.Name(), symbol: t.On}] = t.To
	}

	return m
}
