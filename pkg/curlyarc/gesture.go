package curlyarc

import (
	"github.com/ha1tch/curlyarc-toolkit/pkg/fsm"
)

// Gesture phases.
const (
	PhaseIdle      = "idle"
	PhaseArmed     = "armed"
	PhaseDragging  = "dragging"
	PhaseCommitted = "committed"
)

// Gesture inputs.
const (
	inputPress   = "press"
	inputHover   = "hover"
	inputDrag    = "drag"
	inputRelease = "release"
)

// Gesture outputs.
const (
	outArm     = "arm"
	outPick    = "pick"
	outDrag    = "drag"
	outCommit  = "commit"
	outIgnore  = "ignore"
	outAbandon = "abandon"
)

// Gesture returns the Mealy machine that sequences pointer gestures on an
// arc. Every (phase, input) pair has exactly one transition.
func Gesture() *fsm.FSM {
	g := fsm.New("curlyarc-gesture")

	for _, rest := range []string{PhaseIdle, PhaseCommitted} {
		g.AddTransition(rest, inputPress, PhaseArmed, outArm)
		g.AddTransition(rest, inputHover, PhaseIdle, outPick)
		g.AddTransition(rest, inputDrag, rest, outIgnore)
		g.AddTransition(rest, inputRelease, rest, outIgnore)
	}

	for _, active := range []string{PhaseArmed, PhaseDragging} {
		g.AddTransition(active, inputPress, PhaseArmed, outArm)
		g.AddTransition(active, inputHover, PhaseIdle, outAbandon)
		g.AddTransition(active, inputDrag, PhaseDragging, outDrag)
		g.AddTransition(active, inputRelease, PhaseCommitted, outCommit)
	}

	g.SetInitial(PhaseIdle)
	return g
}
