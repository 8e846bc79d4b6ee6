package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/services"
)

// CreateCategoryCommandHandler adds a menu category. Only ADMIN creates categories.
type CreateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

func NewCreateCategoryCommandHandler(uowFactory CatalogUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.RequireRole(cmd.Principal(), account.RoleAdmin); err != nil {
		return err
	}

	category, err := catalog.NewCategory(cmd.CategoryID(), cmd.Name(), cmd.Description(), cmd.DisplayOrder(), true)
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

	if err = uow.CategoryRepository().Add(ctx, category); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
