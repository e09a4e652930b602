package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> Preparing ──> ReadyForPickup ──> AssignedToDelivery ──> PickedUp ──> InTransit ──> Delivered
//	   │
//	   ├──> Rejected (terminal, only from Pending)
//	   └──> Cancelled (terminal, from any non-terminal state)
//
// Delivered, Cancelled and Rejected are terminal: no further transition is
// valid from them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	// The vendor has not yet accepted it.
	Pending

	// Accepted indicates the vendor has accepted the order.
	Accepted

	// Preparing indicates the vendor is preparing the order.
	Preparing

	// ReadyForPickup indicates the order is prepared and waiting for a courier.
	// Courier matching runs while an order is in this status.
	ReadyForPickup

	// AssignedToDelivery indicates a courier has accepted the order.
	AssignedToDelivery

	// PickedUp indicates the courier has collected the order from the vendor.
	PickedUp

	// InTransit indicates the courier is on the way to the delivery address.
	InTransit

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled. Terminal.
	Cancelled

	// Rejected indicates the vendor declined the order. Terminal,
	// reachable only from Pending.
	Rejected
)

// ErrInvalidTransition is the unwrap target for all transition validation failures.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a requested transition that is not in the
// allowed successor set of the current status. It carries both statuses so
// callers can surface them for debugging.
type InvalidTransitionError struct {
	Current   Status
	Requested Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.Current, e.Requested)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		Pending:            "Pending",
		Accepted:           "Accepted",
		Preparing:          "Preparing",
		ReadyForPickup:     "ReadyForPickup",
		AssignedToDelivery: "AssignedToDelivery",
		PickedUp:           "PickedUp",
		InTransit:          "InTransit",
		Delivered:          "Delivered",
		Cancelled:          "Cancelled",
		Rejected:           "Rejected",
	}
}

// getSuccessors returns the allowed successor set for each valid status.
// Cancelled is reachable from every non-terminal status; Rejected only from
// Pending. Terminal statuses have empty successor sets.
func getSuccessors() map[Status][]Status {
	return map[Status][]Status{
		Pending:            {Accepted, Cancelled, Rejected},
		Accepted:           {Preparing, Cancelled},
		Preparing:          {ReadyForPickup, Cancelled},
		ReadyForPickup:     {AssignedToDelivery, Cancelled},
		AssignedToDelivery: {PickedUp, Cancelled},
		PickedUp:           {InTransit, Cancelled},
		InTransit:          {Delivered, Cancelled},
		Delivered:          {},
		Cancelled:          {},
		Rejected:           {},
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and values outside the defined range are invalid.
func (s Status) Validate() error {
	if _, ok := getSuccessors()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is valid from s.
// Invalid statuses are not terminal; they fail Validate instead.
func (s Status) IsTerminal() bool {
	successors, ok := getSuccessors()[s]
	return ok && len(successors) == 0
}

// CanTransitionTo reports whether requested is in the allowed successor set of s.
func (s Status) CanTransitionTo(requested Status) bool {
	for _, next := range getSuccessors()[s] {
		if next == requested {
			return true
		}
	}
	return false
}

// ValidateTransition fails with an InvalidTransitionError if requested is not
// in the allowed successor set of s. It never mutates state.
func (s Status) ValidateTransition(requested Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := requested.Validate(); err != nil {
		return err
	}
	if !s.CanTransitionTo(requested) {
		return &InvalidTransitionError{Current: s, Requested: requested}
	}
	return nil
}
