package commands

import (
	"context"

	"fooddelivery/internal/core/domain/services"
)

// DeleteMenuItemCommandHandler removes a dish. Orders placed with it are not
// affected because line items carry their own name and unit price.
type DeleteMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

func NewDeleteMenuItemCommandHandler(uowFactory CatalogUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuItemRepository()
	item, err := menuRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	restaurant, err := uow.RestaurantRepository().Get(ctx, item.RestaurantID())
	if err != nil {
		return err
	}
	if err = h.policy.CheckRestaurantManagement(cmd.Principal(), restaurant); err != nil {
		return err
	}

	if err = menuRepo.Delete(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
