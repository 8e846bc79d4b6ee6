package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

type CreateMenuItemCommand struct {
	principal    account.Principal
	menuItemID   kernel.UUID
	restaurantID kernel.UUID
	details      catalog.MenuItemDetails
	price        kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(
	principal account.Principal,
	menuItemID, restaurantID kernel.UUID,
	details catalog.MenuItemDetails,
	price kernel.Money,
) (CreateMenuItemCommand, error) {
	var priceErr error
	if err := price.Validate(); err != nil {
		priceErr = errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("menu item id", menuItemID),
		requireID("restaurant id", restaurantID),
		priceErr,
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return CreateMenuItemCommand{
		principal:    principal,
		menuItemID:   menuItemID,
		restaurantID: restaurantID,
		details:      details,
		price:        price,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) Principal() account.Principal     { return c.principal }
func (c CreateMenuItemCommand) MenuItemID() kernel.UUID          { return c.menuItemID }
func (c CreateMenuItemCommand) RestaurantID() kernel.UUID        { return c.restaurantID }
func (c CreateMenuItemCommand) Details() catalog.MenuItemDetails { return c.details }
func (c CreateMenuItemCommand) Price() kernel.Money              { return c.price }
