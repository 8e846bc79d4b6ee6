package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterAccountCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle creates the account. An email already in use fails with an InvariantViolationError.
func (h RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	acc, err := account.NewAccount(cmd.AccountID(), cmd.Name(), cmd.Email(), hash,
		cmd.Address(), cmd.Phone(), []account.Role{cmd.Role()}, time.Now())
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

	accountRepo := uow.AccountRepository()
	if err = ensureEmailIsFree(ctx, accountRepo, acc.Email()); err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func ensureEmailIsFree(ctx context.Context, repo ports.AccountRepository, email string) error {
	_, err := repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return errs.NewInvariantViolationError("email is already registered")
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil
	default:
		return err
	}
}
