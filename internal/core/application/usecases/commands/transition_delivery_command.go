package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrTransitionDeliveryCommandIsNotConstructed = errors.New(
	"TransitionDeliveryCommand must be created via NewTransitionDeliveryCommand constructor",
)

// TransitionDeliveryCommand moves a delivery to IN_TRANSIT, DELIVERED or FAILED.
type TransitionDeliveryCommand struct {
	principal   account.Principal
	deliveryID  kernel.UUID
	target      delivery.Status
	comments    string
	syncCourier bool

	guard guard.ConstructorGuard
}

func NewTransitionDeliveryCommand(
	principal account.Principal,
	deliveryID kernel.UUID,
	target delivery.Status,
	comments string,
	syncCourier bool,
) (TransitionDeliveryCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("delivery id", deliveryID),
		target.Validate(),
	); err != nil {
		return TransitionDeliveryCommand{}, err
	}

	return TransitionDeliveryCommand{
		principal:   principal,
		deliveryID:  deliveryID,
		target:      target,
		comments:    comments,
		syncCourier: syncCourier,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c TransitionDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrTransitionDeliveryCommandIsNotConstructed)
}

func (c TransitionDeliveryCommand) Principal() account.Principal { return c.principal }
func (c TransitionDeliveryCommand) DeliveryID() kernel.UUID      { return c.deliveryID }
func (c TransitionDeliveryCommand) Target() delivery.Status      { return c.target }
func (c TransitionDeliveryCommand) Comments() string             { return c.comments }
func (c TransitionDeliveryCommand) SyncCourier() bool            { return c.syncCourier }
