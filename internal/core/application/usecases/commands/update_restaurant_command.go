package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateRestaurantCommandIsNotConstructed = errors.New(
	"UpdateRestaurantCommand must be created via NewUpdateRestaurantCommand constructor",
)

// UpdateRestaurantCommand replaces the profile of a restaurant. The active flag
// and the owner are not part of the profile.
type UpdateRestaurantCommand struct {
	principal    account.Principal
	restaurantID kernel.UUID
	profile      catalog.RestaurantProfile

	guard guard.ConstructorGuard
}

func NewUpdateRestaurantCommand(
	principal account.Principal,
	restaurantID kernel.UUID,
	profile catalog.RestaurantProfile,
) (UpdateRestaurantCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("restaurant id", restaurantID),
	); err != nil {
		return UpdateRestaurantCommand{}, err
	}

	return UpdateRestaurantCommand{
		principal:    principal,
		restaurantID: restaurantID,
		profile:      profile,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRestaurantCommandIsNotConstructed)
}

func (c UpdateRestaurantCommand) Principal() account.Principal       { return c.principal }
func (c UpdateRestaurantCommand) RestaurantID() kernel.UUID          { return c.restaurantID }
func (c UpdateRestaurantCommand) Profile() catalog.RestaurantProfile { return c.profile }
