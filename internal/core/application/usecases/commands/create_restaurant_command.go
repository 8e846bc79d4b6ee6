package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand opens a restaurant owned by the calling account.
type CreateRestaurantCommand struct {
	principal    account.Principal
	restaurantID kernel.UUID
	profile      catalog.RestaurantProfile

	guard guard.ConstructorGuard
}

func NewCreateRestaurantCommand(
	principal account.Principal,
	restaurantID kernel.UUID,
	profile catalog.RestaurantProfile,
) (CreateRestaurantCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("restaurant id", restaurantID),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return CreateRestaurantCommand{
		principal:    principal,
		restaurantID: restaurantID,
		profile:      profile,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) Principal() account.Principal       { return c.principal }
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID          { return c.restaurantID }
func (c CreateRestaurantCommand) Profile() catalog.RestaurantProfile { return c.profile }
