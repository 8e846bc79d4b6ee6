package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/services"
)

// UpdateCategoryCommandHandler edits a menu category. Only ADMIN manages categories.
type UpdateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AccessPolicy
}

func NewUpdateCategoryCommandHandler(uowFactory CatalogUoWFactory) UpdateCategoryCommandHandler {
	return UpdateCategoryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h UpdateCategoryCommandHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.RequireRole(cmd.Principal(), account.RoleAdmin); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	categoryRepo := uow.CategoryRepository()
	category, err := categoryRepo.Get(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}

	if err = category.Update(cmd.Name(), cmd.Description(), cmd.DisplayOrder(), cmd.Active()); err != nil {
		return err
	}
	if err = categoryRepo.Update(ctx, category); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
