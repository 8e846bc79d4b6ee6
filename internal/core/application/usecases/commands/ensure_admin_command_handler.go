package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

type EnsureAdminCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
}

func NewEnsureAdminCommandHandler(uowFactory AccountUoWFactory, hasher ports.PasswordHasher) EnsureAdminCommandHandler {
	return EnsureAdminCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle creates the administrator, or grants ADMIN to an existing account with the same email.
// Running it again is a no-op.
func (h EnsureAdminCommandHandler) Handle(ctx context.Context, cmd EnsureAdminCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	existing, err := accountRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		if existing.HasRole(account.RoleAdmin) {
			return nil
		}
		if err = existing.GrantRole(account.RoleAdmin); err != nil {
			return err
		}
		err = accountRepo.Update(ctx, existing)
	case errors.Is(err, errs.ErrObjectNotFound):
		err = h.createAdmin(ctx, accountRepo, cmd)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h EnsureAdminCommandHandler) createAdmin(
	ctx context.Context,
	repo ports.AccountRepository,
	cmd EnsureAdminCommand,
) error {
	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}
	admin, err := account.NewAccount(cmd.AccountID(), "Administrator", cmd.Email(), hash, "", "",
		[]account.Role{account.RoleAdmin}, time.Now())
	if err != nil {
		return err
	}
	return repo.Add(ctx, admin)
}
