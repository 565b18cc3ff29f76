// Package booking implements the reservation workflow as a small state
// machine over the store's append-only reservation slot.
package booking

// State represents the current state of a booking attempt.
type State string

const (
	StateIdle           State = "idle"
	StateFlightSelected State = "flight_selected"
	StateConfirming     State = "confirming"
)

// FSM manages state transitions for the booking workflow.
type FSM struct {
	transitions map[State][]State
}

// NewFSM creates the FSM with the workflow's allowed transitions.
// Cancellation returns to Idle from any non-terminal state.
func NewFSM() *FSM {
	return &FSM{
		transitions: map[State][]State{
			StateIdle:           {StateFlightSelected},
			StateFlightSelected: {StateConfirming, StateIdle},
			StateConfirming:     {StateIdle},
		},
	}
}

// CanTransition checks if a transition is allowed.
func (f *FSM) CanTransition(from, to State) bool {
	for _, s := range f.transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
