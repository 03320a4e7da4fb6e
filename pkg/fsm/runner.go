package fsm

import (
	"fmt"
)

// historyLimit bounds the number of steps a Runner remembers.
const historyLimit = 50

// Runner executes an FSM one input at a time.
type Runner struct {
	fsm     *FSM
	current string
	history []Step
}

// Step records one step of execution.
type Step struct {
	From   string
	Input  string
	To     string
	Output string
}

// NewRunner creates a runner for the given FSM.
func NewRunner(f *FSM) (*Runner, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid FSM: %w", err)
	}

	return &Runner{
		fsm:     f,
		current: f.Initial,
		history: make([]Step, 0),
	}, nil
}

// CurrentState returns the current state.
func (r *Runner) CurrentState() string {
	return r.current
}

// Step processes an input and returns the output of the transition taken.
// Returns an error and leaves the state unchanged if no transition exists.
func (r *Runner) Step(input string) (string, error) {
	t, ok := r.fsm.Lookup(r.current, input)
	if !ok {
		return "", fmt.Errorf("no transition from state %s on input %q", r.current, input)
	}

	r.current = t.To
	r.history = append(r.history, Step{
		From:   t.From,
		Input:  input,
		To:     t.To,
		Output: t.Output,
	})
	if len(r.history) > historyLimit {
		r.history = r.history[len(r.history)-historyLimit:]
	}

	return t.Output, nil
}

// Reset returns the runner to the initial state.
func (r *Runner) Reset() {
	r.current = r.fsm.Initial
	r.history = r.history[:0]
}

// History returns the most recent steps, oldest first.
func (r *Runner) History() []Step {
	return r.history
}

// Run processes a sequence of inputs and returns all outputs.
func (r *Runner) Run(inputs []string) ([]string, error) {
	var outputs []string

	for _, input := range inputs {
		output, err := r.Step(input)
		if err != nil {
			return outputs, err
		}
		outputs = append(outputs, output)
	}

	return outputs, nil
}

// Status returns a status string for the current state.
func (r *Runner) Status() string {
	status := fmt.Sprintf("State: %s", r.current)
	if n := len(r.history); n > 0 {
		status += fmt.Sprintf(" (last: %s -> %s)", r.history[n-1].Input, r.history[n-1].Output)
	}
	return status
}
