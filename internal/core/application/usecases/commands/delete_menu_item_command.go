package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

type DeleteMenuItemCommand struct {
	principal  account.Principal
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(principal account.Principal, menuItemID kernel.UUID) (DeleteMenuItemCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("menu item id", menuItemID),
	); err != nil {
		return DeleteMenuItemCommand{}, err
	}

	return DeleteMenuItemCommand{
		principal:  principal,
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) Principal() account.Principal { return c.principal }
func (c DeleteMenuItemCommand) MenuItemID() kernel.UUID      { return c.menuItemID }
