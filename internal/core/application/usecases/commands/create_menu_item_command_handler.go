package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/services"
)

type CreateMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

func NewCreateMenuItemCommandHandler(uowFactory CatalogUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle adds a dish to a restaurant's menu. The category, when given, must exist.
func (h CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := catalog.NewMenuItem(cmd.MenuItemID(), cmd.RestaurantID(), cmd.Details(), cmd.Price())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurant, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}
	if err = h.policy.CheckRestaurantManagement(cmd.Principal(), restaurant); err != nil {
		return err
	}

	if categoryID := item.CategoryID(); categoryID != nil {
		if _, err = uow.CategoryRepository().Get(ctx, *categoryID); err != nil {
			return err
		}
	}

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
