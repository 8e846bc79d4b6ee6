package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand changes the price and/or availability of a dish.
// Nil fields are left untouched. Orders already placed keep the price they were placed with.
type UpdateMenuItemCommand struct {
	principal  account.Principal
	menuItemID kernel.UUID
	price      *kernel.Money
	available  *bool

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(
	principal account.Principal,
	menuItemID kernel.UUID,
	price *kernel.Money,
	available *bool,
) (UpdateMenuItemCommand, error) {
	var changeErr error
	if price == nil && available == nil {
		changeErr = errs.NewValueIsRequiredError("price or availability")
	}
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("menu item id", menuItemID),
		changeErr,
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return UpdateMenuItemCommand{
		principal:  principal,
		menuItemID: menuItemID,
		price:      price,
		available:  available,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) Principal() account.Principal { return c.principal }
func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID      { return c.menuItemID }
func (c UpdateMenuItemCommand) Price() *kernel.Money         { return c.price }
func (c UpdateMenuItemCommand) Available() *bool             { return c.available }
