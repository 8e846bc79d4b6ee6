package commands

import (
	"context"
)

type ExpirePromotionsCommandHandler struct {
	uowFactory PromotionUoWFactory
}

func NewExpirePromotionsCommandHandler(uowFactory PromotionUoWFactory) ExpirePromotionsCommandHandler {
	return ExpirePromotionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns how many promotions were deactivated.
func (h ExpirePromotionsCommandHandler) Handle(ctx context.Context, cmd ExpirePromotionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	promotionRepo := uow.PromotionRepository()
	active, err := promotionRepo.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, p := range active {
		if !p.Expire(cmd.Now()) {
			continue
		}
		if err = promotionRepo.Update(ctx, p); err != nil {
			return 0, err
		}
		expired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return expired, nil
}
