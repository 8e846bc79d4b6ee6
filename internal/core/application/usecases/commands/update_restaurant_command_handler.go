package commands

import (
	"context"

	"fooddelivery/internal/core/domain/services"
)

type UpdateRestaurantCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

func NewUpdateRestaurantCommandHandler(uowFactory CatalogUoWFactory) UpdateRestaurantCommandHandler {
	return UpdateRestaurantCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h UpdateRestaurantCommandHandler) Handle(ctx context.Context, cmd UpdateRestaurantCommand) error {
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

	if err = restaurant.UpdateProfile(cmd.Profile()); err != nil {
		return err
	}
	if err = restaurantRepo.Update(ctx, restaurant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
