package commands

import (
	"context"

	"fooddelivery/internal/core/domain/services"
)

type UpdateMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

func NewUpdateMenuItemCommandHandler(uowFactory CatalogUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
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

	if price := cmd.Price(); price != nil {
		if err = item.ChangePrice(*price); err != nil {
			return err
		}
	}
	if available := cmd.Available(); available != nil {
		item.SetAvailable(*available)
	}

	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
