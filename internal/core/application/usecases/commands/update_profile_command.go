package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand changes the contact details of the calling account.
type UpdateProfileCommand struct {
	principal account.Principal
	name      string
	address   string
	phone     string

	guard guard.ConstructorGuard
}

func NewUpdateProfileCommand(principal account.Principal, name, address, phone string) (UpdateProfileCommand, error) {
	if err := requirePrincipal(principal); err != nil {
		return UpdateProfileCommand{}, err
	}

	return UpdateProfileCommand{
		principal: principal,
		name:      name,
		address:   address,
		phone:     phone,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) Principal() account.Principal { return c.principal }
func (c UpdateProfileCommand) Name() string                 { return c.name }
func (c UpdateProfileCommand) Address() string              { return c.address }
func (c UpdateProfileCommand) Phone() string                { return c.phone }
