package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateCategoryCommandIsNotConstructed = errors.New(
	"UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor",
)

// UpdateCategoryCommand renames, reorders, or switches a category on and off.
type UpdateCategoryCommand struct {
	principal    account.Principal
	categoryID   kernel.UUID
	name         string
	description  string
	displayOrder int
	active       bool

	guard guard.ConstructorGuard
}

func NewUpdateCategoryCommand(
	principal account.Principal,
	categoryID kernel.UUID,
	name, description string,
	displayOrder int,
	active bool,
) (UpdateCategoryCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("category id", categoryID),
	); err != nil {
		return UpdateCategoryCommand{}, err
	}

	return UpdateCategoryCommand{
		principal:    principal,
		categoryID:   categoryID,
		name:         name,
		description:  description,
		displayOrder: displayOrder,
		active:       active,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCategoryCommandIsNotConstructed)
}

func (c UpdateCategoryCommand) Principal() account.Principal { return c.principal }
func (c UpdateCategoryCommand) CategoryID() kernel.UUID      { return c.categoryID }
func (c UpdateCategoryCommand) Name() string                 { return c.name }
func (c UpdateCategoryCommand) Description() string          { return c.description }
func (c UpdateCategoryCommand) DisplayOrder() int            { return c.displayOrder }
func (c UpdateCategoryCommand) Active() bool                 { return c.active }
