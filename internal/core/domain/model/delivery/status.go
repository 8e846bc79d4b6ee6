package delivery

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery.
//
//	ASSIGNED -> IN_TRANSIT -> DELIVERED
//	    |           |
//	    +-----------+--> FAILED
//
// ASSIGNED and FAILED deliveries can be handed to another courier, which puts
// them back in ASSIGNED.
type Status int

const (
	Unknown Status = iota
	Assigned
	InTransit
	Delivered
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Assigned:  "ASSIGNED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Failed:    "FAILED",
	}
}

func getAllowedTransitions() map[Status][]Status {
	//nolint:exhaustive // DELIVERED and FAILED have no forward move
	return map[Status][]Status{
		Assigned:  {InTransit, Failed},
		InTransit: {Delivered, Failed},
	}
}

func AllStatuses() []Status {
	return []Status{Assigned, InTransit, Delivered, Failed}
}

func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, status := range AllStatuses() {
		if status.String() == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a delivery status", s))
}

func (s Status) Validate() error {
	if s < Assigned || s > Failed {
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

func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getAllowedTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidStateTransitionError("delivery", s.String(), target.String())
	}
	return target, nil
}

// CanBeReassigned reports whether the delivery may be handed to another courier.
func (s Status) CanBeReassigned() bool {
	return s == Assigned || s == Failed
}

// CanBeDeleted reports whether the record may be removed. IN_TRANSIT and
// DELIVERED records are kept for audit.
func (s Status) CanBeDeleted() bool {
	return s == Assigned || s == Failed
}
