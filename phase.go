package montecarlo

import "fmt"

// Phase is the lifecycle state of a Sampler, derived from its paused and
// complete flags.
type Phase uint8

const (
	// PhaseRunning generates samples on every Advance.
	PhaseRunning Phase = iota

	// PhasePaused ignores Advance until Resume is called.
	PhasePaused

	// PhaseComplete ignores Advance until Reset is called.
	PhaseComplete
)

func phaseOf(paused, complete bool) Phase {
	switch {
	case complete:
		return PhaseComplete
	case paused:
		return PhasePaused
	default:
		return PhaseRunning
	}
}

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseComplete:
		return "Complete"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// PhaseChanged is sent whenever the phase of a Sampler changes.
type PhaseChanged struct {
	From, To Phase

	// Stats at the time of the transition.
	Stats Stats
}

// Entered returns true if this message describes entering the given phase.
func (p PhaseChanged) Entered(phase Phase) bool {
	return p.To == phase && p.From != phase
}

// Exited returns true if this message describes leaving the given phase.
func (p PhaseChanged) Exited(phase Phase) bool {
	return p.From == phase && p.To != phase
}
