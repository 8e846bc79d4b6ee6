package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promotion"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreatePromotionCommandIsNotConstructed = errors.New(
	"CreatePromotionCommand must be created via NewCreatePromotionCommand constructor",
)

type CreatePromotionCommand struct {
	principal    account.Principal
	promotionID  kernel.UUID
	restaurantID kernel.UUID
	terms        promotion.Terms

	guard guard.ConstructorGuard
}

func NewCreatePromotionCommand(
	principal account.Principal,
	promotionID, restaurantID kernel.UUID,
	terms promotion.Terms,
) (CreatePromotionCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("promotion id", promotionID),
		requireID("restaurant id", restaurantID),
	); err != nil {
		return CreatePromotionCommand{}, err
	}

	return CreatePromotionCommand{
		principal:    principal,
		promotionID:  promotionID,
		restaurantID: restaurantID,
		terms:        terms,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePromotionCommand) Validate() error {
	return c.guard.Validate(ErrCreatePromotionCommandIsNotConstructed)
}

func (c CreatePromotionCommand) Principal() account.Principal { return c.principal }
func (c CreatePromotionCommand) PromotionID() kernel.UUID     { return c.promotionID }
func (c CreatePromotionCommand) RestaurantID() kernel.UUID    { return c.restaurantID }
func (c CreatePromotionCommand) Terms() promotion.Terms       { return c.terms }
