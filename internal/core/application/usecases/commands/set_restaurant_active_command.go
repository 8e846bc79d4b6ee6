package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrSetRestaurantActiveCommandIsNotConstructed = errors.New(
	"SetRestaurantActiveCommand must be created via NewSetRestaurantActiveCommand constructor",
)

// SetRestaurantActiveCommand opens or closes a restaurant for new orders.
type SetRestaurantActiveCommand struct {
	principal    account.Principal
	restaurantID kernel.UUID
	active       bool

	guard guard.ConstructorGuard
}

func NewSetRestaurantActiveCommand(
	principal account.Principal,
	restaurantID kernel.UUID,
	active bool,
) (SetRestaurantActiveCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("restaurant id", restaurantID),
	); err != nil {
		return SetRestaurantActiveCommand{}, err
	}

	return SetRestaurantActiveCommand{
		principal:    principal,
		restaurantID: restaurantID,
		active:       active,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c SetRestaurantActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetRestaurantActiveCommandIsNotConstructed)
}

func (c SetRestaurantActiveCommand) Principal() account.Principal { return c.principal }
func (c SetRestaurantActiveCommand) RestaurantID() kernel.UUID    { return c.restaurantID }
func (c SetRestaurantActiveCommand) Active() bool                 { return c.active }
