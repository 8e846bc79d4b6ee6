package commands

import (
	"context"

	"fooddelivery/internal/core/domain/services"
)

type SetRestaurantActiveCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

func NewSetRestaurantActiveCommandHandler(uowFactory CatalogUoWFactory) SetRestaurantActiveCommandHandler {
	return SetRestaurantActiveCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h SetRestaurantActiveCommandHandler) Handle(ctx context.Context, cmd SetRestaurantActiveCommand) error {
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

	restaurantRepo := uow.RestaurantRepository()
	restaurant, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}
	if err = h.policy.CheckRestaurantManagement(cmd.Principal(), restaurant); err != nil {
		return err
	}

	restaurant.SetActive(cmd.Active())
	if err = restaurantRepo.Update(ctx, restaurant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
