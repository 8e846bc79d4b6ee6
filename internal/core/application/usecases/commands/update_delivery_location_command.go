package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateDeliveryLocationCommandIsNotConstructed = errors.New(
	"UpdateDeliveryLocationCommand must be created via NewUpdateDeliveryLocationCommand constructor",
)

// UpdateDeliveryLocationCommand reports where the courier of an IN_TRANSIT delivery is.
type UpdateDeliveryLocationCommand struct {
	principal  account.Principal
	deliveryID kernel.UUID
	point      kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryLocationCommand(
	principal account.Principal,
	deliveryID kernel.UUID,
	latitude, longitude float64,
) (UpdateDeliveryLocationCommand, error) {
	point, pointErr := kernel.NewGeoPoint(latitude, longitude)
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("delivery id", deliveryID),
		pointErr,
	); err != nil {
		return UpdateDeliveryLocationCommand{}, err
	}

	return UpdateDeliveryLocationCommand{
		principal:  principal,
		deliveryID: deliveryID,
		point:      point,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryLocationCommandIsNotConstructed)
}

func (c UpdateDeliveryLocationCommand) Principal() account.Principal { return c.principal }
func (c UpdateDeliveryLocationCommand) DeliveryID() kernel.UUID      { return c.deliveryID }
func (c UpdateDeliveryLocationCommand) Point() kernel.GeoPoint       { return c.point }
