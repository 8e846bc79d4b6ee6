package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeleteDeliveryCommandIsNotConstructed = errors.New(
	"DeleteDeliveryCommand must be created via NewDeleteDeliveryCommand constructor",
)

// DeleteDeliveryCommand removes an ASSIGNED or FAILED delivery.
// IN_TRANSIT and DELIVERED deliveries are kept for the record.
type DeleteDeliveryCommand struct {
	principal   account.Principal
	deliveryID  kernel.UUID
	syncCourier bool

	guard guard.ConstructorGuard
}

func NewDeleteDeliveryCommand(
	principal account.Principal,
	deliveryID kernel.UUID,
	syncCourier bool,
) (DeleteDeliveryCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("delivery id", deliveryID),
	); err != nil {
		return DeleteDeliveryCommand{}, err
	}

	return DeleteDeliveryCommand{
		principal:   principal,
		deliveryID:  deliveryID,
		syncCourier: syncCourier,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeliveryCommandIsNotConstructed)
}

func (c DeleteDeliveryCommand) Principal() account.Principal { return c.principal }
func (c DeleteDeliveryCommand) DeliveryID() kernel.UUID      { return c.deliveryID }
func (c DeleteDeliveryCommand) SyncCourier() bool            { return c.syncCourier }
