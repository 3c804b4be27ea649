package fsm

// State represents a state in the machine.
type State interface {
	Name() string
}

// Symbol is a single input character consumed by the machine.
type Symbol rune

func (s Symbol) String() string {
	return string(s)
}

// Transition defines one row of the transition table: reading On in From
// moves the machine to To.
type Transition struct {
	From State
	On   Symbol
	To   State
}

// Definition describes a complete machine: the state set, the input
// alphabet, the initial state, the accepting subset, and the transition
// table. All five parts are required; New validates them as a whole.
type Definition struct {
	States      []State
	Alphabet    []Symbol
	Initial     State
	Accepting   []State
	Transitions []Transition
}

// StringState provides a simple string-based state implementation for basic use cases.
type StringState string

func (s StringState) Name() string {
	return string(s)
}
