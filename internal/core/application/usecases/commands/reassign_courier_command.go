package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrReassignCourierCommandIsNotConstructed = errors.New(
	"ReassignCourierCommand must be created via NewReassignCourierCommand constructor",
)

// ReassignCourierCommand hands an ASSIGNED or FAILED delivery to another FREE courier.
type ReassignCourierCommand struct {
	principal   account.Principal
	deliveryID  kernel.UUID
	courierID   kernel.UUID
	syncCourier bool

	guard guard.ConstructorGuard
}

func NewReassignCourierCommand(
	principal account.Principal,
	deliveryID, courierID kernel.UUID,
	syncCourier bool,
) (ReassignCourierCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("delivery id", deliveryID),
		requireID("courier id", courierID),
	); err != nil {
		return ReassignCourierCommand{}, err
	}

	return ReassignCourierCommand{
		principal:   principal,
		deliveryID:  deliveryID,
		courierID:   courierID,
		syncCourier: syncCourier,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ReassignCourierCommand) Validate() error {
	return c.guard.Validate(ErrReassignCourierCommandIsNotConstructed)
}

func (c ReassignCourierCommand) Principal() account.Principal { return c.principal }
func (c ReassignCourierCommand) DeliveryID() kernel.UUID      { return c.deliveryID }
func (c ReassignCourierCommand) CourierID() kernel.UUID       { return c.courierID }
func (c ReassignCourierCommand) SyncCourier() bool            { return c.syncCourier }
