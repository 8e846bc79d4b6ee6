package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/promotion"
	"fooddelivery/internal/core/domain/services"
)

type CreatePromotionCommandHandler struct {
	uowFactory PromotionUoWFactory
	policy     services.AccessPolicy
}

func NewCreatePromotionCommandHandler(uowFactory PromotionUoWFactory) CreatePromotionCommandHandler {
	return CreatePromotionCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle publishes the promotion. Codes are unique across restaurants; a clash
// is reported by the repository as an InvariantViolationError.
func (h CreatePromotionCommandHandler) Handle(ctx context.Context, cmd CreatePromotionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := promotion.NewPromotion(cmd.PromotionID(), cmd.RestaurantID(), cmd.Terms(), time.Now())
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

	if err = uow.PromotionRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
