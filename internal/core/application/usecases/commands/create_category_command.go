package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

type CreateCategoryCommand struct {
	principal    account.Principal
	categoryID   kernel.UUID
	name         string
	description  string
	displayOrder int

	guard guard.ConstructorGuard
}

func NewCreateCategoryCommand(
	principal account.Principal,
	categoryID kernel.UUID,
	name, description string,
	displayOrder int,
) (CreateCategoryCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("category id", categoryID),
	); err != nil {
		return CreateCategoryCommand{}, err
	}

	return CreateCategoryCommand{
		principal:    principal,
		categoryID:   categoryID,
		name:         name,
		description:  description,
		displayOrder: displayOrder,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

func (c CreateCategoryCommand) Principal() account.Principal { return c.principal }
func (c CreateCategoryCommand) CategoryID() kernel.UUID      { return c.categoryID }
func (c CreateCategoryCommand) Name() string                 { return c.name }
func (c CreateCategoryCommand) Description() string          { return c.description }
func (c CreateCategoryCommand) DisplayOrder() int            { return c.displayOrder }
