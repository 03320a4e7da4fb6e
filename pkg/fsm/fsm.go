// Package fsm provides a small deterministic Mealy machine.
// It sequences pointer gestures for interactive shapes: each input symbol
// moves the machine to a new phase and yields the action to perform.
package fsm

import (
	"fmt"
	"strings"
)

// Transition represents a phase change on one input, producing one output.
type Transition struct {
	From   string `json:"from"`
	Input  string `json:"input"`
	To     string `json:"to"`
	Output string `json:"output"`
}

// FSM represents a deterministic Mealy machine.
type FSM struct {
	Name        string       `json:"name,omitempty"`
	States      []string     `json:"states"`
	Alphabet    []string     `json:"alphabet"`
	Outputs     []string     `json:"outputs"`
	Initial     string       `json:"initial"`
	Transitions []Transition `json:"transitions"`
}

// New creates an empty machine with the given name.
func New(name string) *FSM {
	return &FSM{
		Name:        name,
		States:      make([]string, 0),
		Alphabet:    make([]string, 0),
		Outputs:     make([]string, 0),
		Transitions: make([]Transition, 0),
	}
}

// AddState adds a state to the FSM.
func (f *FSM) AddState(name string) {
	if indexOf(f.States, name) < 0 {
		f.States = append(f.States, name)
	}
}

// AddInput adds an input symbol to the alphabet.
func (f *FSM) AddInput(symbol string) {
	if indexOf(f.Alphabet, symbol) < 0 {
		f.Alphabet = append(f.Alphabet, symbol)
	}
}

// AddOutput adds an output symbol.
func (f *FSM) AddOutput(symbol string) {
	if indexOf(f.Outputs, symbol) < 0 {
		f.Outputs = append(f.Outputs, symbol)
	}
}

// AddTransition adds a transition, registering any state or symbol it
// mentions. The first state ever added becomes the initial state unless
// SetInitial was called.
func (f *FSM) AddTransition(from, input, to, output string) {
	f.AddState(from)
	f.AddState(to)
	f.AddInput(input)
	f.AddOutput(output)
	if f.Initial == "" {
		f.Initial = from
	}
	f.Transitions = append(f.Transitions, Transition{
		From:   from,
		Input:  input,
		To:     to,
		Output: output,
	})
}

// SetInitial sets the initial state.
func (f *FSM) SetInitial(state string) {
	f.Initial = state
}

// Validate checks that the FSM is well-formed and deterministic.
func (f *FSM) Validate() error {
	if len(f.States) == 0 {
		return fmt.Errorf("FSM has no states")
	}
	if f.Initial == "" {
		return fmt.Errorf("FSM has no initial state")
	}
	if indexOf(f.States, f.Initial) < 0 {
		return fmt.Errorf("initial state %q not in states", f.Initial)
	}

	seen := make(map[[2]string]int)
	for i, t := range f.Transitions {
		if indexOf(f.States, t.From) < 0 {
			return fmt.Errorf("transition %d: from state %q not in states", i, t.From)
		}
		if indexOf(f.States, t.To) < 0 {
			return fmt.Errorf("transition %d: to state %q not in states", i, t.To)
		}
		if indexOf(f.Alphabet, t.Input) < 0 {
			return fmt.Errorf("transition %d: input %q not in alphabet", i, t.Input)
		}
		if indexOf(f.Outputs, t.Output) < 0 {
			return fmt.Errorf("transition %d: output %q not in outputs", i, t.Output)
		}
		key := [2]string{t.From, t.Input}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("transition %d: duplicates transition %d (%s on %q)", i, prev, t.From, t.Input)
		}
		seen[key] = i
	}

	return nil
}

// Complete reports whether every state has a transition for every input.
func (f *FSM) Complete() bool {
	for _, s := range f.States {
		for _, in := range f.Alphabet {
			if _, ok := f.Lookup(s, in); !ok {
				return false
			}
		}
	}
	return true
}

// Lookup returns the transition taken from a state on an input.
func (f *FSM) Lookup(from, input string) (Transition, bool) {
	for _, t := range f.Transitions {
		if t.From == from && t.Input == input {
			return t, true
		}
	}
	return Transition{}, false
}

// StateIndex returns the index of a state, or -1 if not found.
func (f *FSM) StateIndex(state string) int {
	return indexOf(f.States, state)
}

// String returns a string representation of the FSM.
func (f *FSM) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("FSM: %s\n", f.Name))
	sb.WriteString(fmt.Sprintf("  States: %v\n", f.States))
	sb.WriteString(fmt.Sprintf("  Alphabet: %v\n", f.Alphabet))
	sb.WriteString(fmt.Sprintf("  Outputs: %v\n", f.Outputs))
	sb.WriteString(fmt.Sprintf("  Initial: %s\n", f.Initial))
	sb.WriteString(fmt.Sprintf("  Transitions: %d\n", len(f.Transitions)))
	return sb.String()
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
