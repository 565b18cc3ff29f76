package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"flightdesk/internal/models"
)

// ErrBlankPassengerName rejects a confirmation with an empty (after
// trimming) passenger name. Nothing is persisted and the workflow state
// does not change.
var ErrBlankPassengerName = errors.New("passenger name must not be blank")

// ErrInvalidTransition is returned when an operation is invoked outside
// the state it belongs to.
var ErrInvalidTransition = errors.New("invalid workflow transition")

// ReservationAppender is the slice of the store the workflow needs.
type ReservationAppender interface {
	AddReservation(ctx context.Context, r models.Reservation) error
}

// resCounter keeps reservation ids distinct within one clock tick.
var resCounter atomic.Int64

// NewReservation builds a reservation record with a time-derived id. The
// flight id is recorded as given and deliberately not validated against
// the schedule.
func NewReservation(flightID, passengerName string) models.Reservation {
	now := time.Now()
	return models.Reservation{
		ID:              fmt.Sprintf("%d-%d", now.UnixNano(), resCounter.Add(1)),
		FlightID:        flightID,
		PassengerName:   passengerName,
		ReservationTime: now,
	}
}

// Workflow drives one booking attempt: Idle → FlightSelected →
// Confirming → Idle, with cancellation back to Idle from any non-terminal
// state.
//
// The workflow never consults the booked-seat count: the presentation
// layer disables booking at zero availability, but a direct call can
// still push a flight past capacity. That asymmetry matches the observed
// product behavior and is pending product-owner clarification.
type Workflow struct {
	fsm      *FSM
	appender ReservationAppender
	state    State
	selected *models.Flight
}

// NewWorkflow creates an idle workflow over the given store.
func NewWorkflow(appender ReservationAppender) *Workflow {
	return &Workflow{fsm: NewFSM(), appender: appender, state: StateIdle}
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	return w.state
}

// SelectedFlight returns the flight under consideration, if any.
func (w *Workflow) SelectedFlight() *models.Flight {
	return w.selected
}

// SelectFlight moves the workflow from Idle to FlightSelected.
func (w *Workflow) SelectFlight(f models.Flight) error {
	if !w.fsm.CanTransition(w.state, StateFlightSelected) {
		return fmt.Errorf("%w: select flight in state %s", ErrInvalidTransition, w.state)
	}
	w.selected = &f
	w.state = StateFlightSelected
	return nil
}

// Confirm validates the passenger name, appends the reservation and
// returns the workflow to Idle. A blank name is rejected with no state
// change so the initiator can correct it.
func (w *Workflow) Confirm(ctx context.Context, passengerName string) (models.Reservation, error) {
	if w.state != StateFlightSelected && w.state != StateConfirming {
		return models.Reservation{}, fmt.Errorf("%w: confirm in state %s", ErrInvalidTransition, w.state)
	}

	name := strings.TrimSpace(passengerName)
	if name == "" {
		return models.Reservation{}, ErrBlankPassengerName
	}

	w.state = StateConfirming
	r := NewReservation(w.selected.ID, name)
	if err := w.appender.AddReservation(ctx, r); err != nil {
		return models.Reservation{}, fmt.Errorf("append reservation: %w", err)
	}

	w.selected = nil
	w.state = StateIdle
	return r, nil
}

// Cancel aborts the attempt from any non-terminal state.
func (w *Workflow) Cancel() {
	w.selected = nil
	w.state = StateIdle
}
