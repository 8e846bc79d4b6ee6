package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrChangeCourierStatusCommandIsNotConstructed = errors.New(
		"ChangeCourierStatusCommand must be created via NewChangeCourierStatusCommand constructor",
	)
	ErrSetCourierAvailabilityCommandIsNotConstructed = errors.New(
		"SetCourierAvailabilityCommand must be created via NewSetCourierAvailabilityCommand constructor",
	)
)

// ChangeCourierStatusCommand sets FREE, BUSY or INACTIVE directly. Couriers
// manage their own status; this is the manual counterpart of syncCourier.
type ChangeCourierStatusCommand struct {
	principal account.Principal
	courierID kernel.UUID
	status    courier.Status

	guard guard.ConstructorGuard
}

func NewChangeCourierStatusCommand(
	principal account.Principal,
	courierID kernel.UUID,
	status courier.Status,
) (ChangeCourierStatusCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("courier id", courierID),
		status.Validate(),
	); err != nil {
		return ChangeCourierStatusCommand{}, err
	}

	return ChangeCourierStatusCommand{
		principal: principal,
		courierID: courierID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeCourierStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeCourierStatusCommandIsNotConstructed)
}

func (c ChangeCourierStatusCommand) Principal() account.Principal { return c.principal }
func (c ChangeCourierStatusCommand) CourierID() kernel.UUID       { return c.courierID }
func (c ChangeCourierStatusCommand) Status() courier.Status       { return c.status }

// SetCourierAvailabilityCommand starts (available) or ends a courier's shift.
type SetCourierAvailabilityCommand struct {
	principal account.Principal
	courierID kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

func NewSetCourierAvailabilityCommand(
	principal account.Principal,
	courierID kernel.UUID,
	available bool,
) (SetCourierAvailabilityCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("courier id", courierID),
	); err != nil {
		return SetCourierAvailabilityCommand{}, err
	}

	return SetCourierAvailabilityCommand{
		principal: principal,
		courierID: courierID,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetCourierAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierAvailabilityCommandIsNotConstructed)
}

func (c SetCourierAvailabilityCommand) Principal() account.Principal { return c.principal }
func (c SetCourierAvailabilityCommand) CourierID() kernel.UUID       { return c.courierID }
func (c SetCourierAvailabilityCommand) Available() bool              { return c.available }
