package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateOrderDetailsCommandIsNotConstructed = errors.New(
	"UpdateOrderDetailsCommand must be created via NewUpdateOrderDetailsCommand constructor",
)

// UpdateOrderDetailsCommand corrects the address or notes of an open order. ADMIN only.
type UpdateOrderDetailsCommand struct {
	principal account.Principal
	orderID   kernel.UUID
	address   string
	notes     string

	guard guard.ConstructorGuard
}

func NewUpdateOrderDetailsCommand(
	principal account.Principal,
	orderID kernel.UUID,
	address, notes string,
) (UpdateOrderDetailsCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("order id", orderID),
	); err != nil {
		return UpdateOrderDetailsCommand{}, err
	}

	return UpdateOrderDetailsCommand{
		principal: principal,
		orderID:   orderID,
		address:   address,
		notes:     notes,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailsCommandIsNotConstructed)
}

func (c UpdateOrderDetailsCommand) Principal() account.Principal { return c.principal }
func (c UpdateOrderDetailsCommand) OrderID() kernel.UUID         { return c.orderID }
func (c UpdateOrderDetailsCommand) Address() string              { return c.address }
func (c UpdateOrderDetailsCommand) Notes() string                { return c.notes }
