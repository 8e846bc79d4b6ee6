package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand creates the delivery of a READY order and hands it to a FREE courier.
//
// Example:
//
//	cmd, err := NewAssignCourierCommand(principal, kernel.NewUUID(), orderID, courierID, true)
//	if err != nil {
//	    return err
//	}
//	handler := NewAssignCourierCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidStateTransition):
//	    log.Println("order is not READY")
//	case errors.Is(err, errs.ErrInvariantViolation):
//	    log.Println("order already has a delivery or the courier is not FREE")
//	}
type AssignCourierCommand struct {
	principal   account.Principal
	deliveryID  kernel.UUID
	orderID     kernel.UUID
	courierID   kernel.UUID
	syncCourier bool

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand builds the command. With syncCourier the courier is
// marked BUSY in the same transaction; without it, courier status is left to the caller.
func NewAssignCourierCommand(
	principal account.Principal,
	deliveryID, orderID, courierID kernel.UUID,
	syncCourier bool,
) (AssignCourierCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("delivery id", deliveryID),
		requireID("order id", orderID),
		requireID("courier id", courierID),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		principal:   principal,
		deliveryID:  deliveryID,
		orderID:     orderID,
		courierID:   courierID,
		syncCourier: syncCourier,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCourierCommandIsNotConstructed if validation fails.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

func (c AssignCourierCommand) Principal() account.Principal { return c.principal }
func (c AssignCourierCommand) DeliveryID() kernel.UUID      { return c.deliveryID }
func (c AssignCourierCommand) OrderID() kernel.UUID         { return c.orderID }
func (c AssignCourierCommand) CourierID() kernel.UUID       { return c.courierID }
func (c AssignCourierCommand) SyncCourier() bool            { return c.syncCourier }
