package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	PENDING -> CONFIRMED -> PREPARING -> READY -> IN_TRANSIT -> DELIVERED
//	   |           |            |          |          |
//	   +-----------+------------+----------+----------+--> CANCELLED
//
// READY -> IN_TRANSIT and IN_TRANSIT -> DELIVERED are driven by the delivery
// of the order. IN_TRANSIT -> READY happens only when that delivery fails or is
// withdrawn, see Order.ReturnToReady.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	Ready
	InTransit
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Preparing: "PREPARING",
		Ready:     "READY",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getAllowedTransitions lists the forward moves. Cancellation is handled separately.
func getAllowedTransitions() map[Status]Status {
	//nolint:exhaustive // terminal states have no forward move
	return map[Status]Status{
		Pending:   Confirmed,
		Confirmed: Preparing,
		Preparing: Ready,
		Ready:     InTransit,
		InTransit: Delivered,
	}
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, Ready, InTransit, Delivered, Cancelled}
}

// ParseStatus converts a name such as "IN_TRANSIT" into a Status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, status := range AllStatuses() {
		if status.String() == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", s))
}

func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s Status) CanTransitionTo(target Status) bool {
	if target == Cancelled {
		return s.Validate() == nil && !s.IsTerminal()
	}
	next, ok := getAllowedTransitions()[s]
	return ok && next == target
}

// TransitionTo returns target if the move is allowed, otherwise an
// InvalidStateTransitionError carrying both states.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidStateTransitionError("order", s.String(), target.String())
	}
	return target, nil
}
