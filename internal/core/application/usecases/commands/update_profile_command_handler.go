package commands

import (
	"context"
)

type UpdateProfileCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewUpdateProfileCommandHandler(uowFactory AccountUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{uowFactory: uowFactory}
}

func (h UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
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
	acc, err := accountRepo.Get(ctx, cmd.Principal().AccountID())
	if err != nil {
		return err
	}

	if err = acc.UpdateProfile(cmd.Name(), cmd.Address(), cmd.Phone()); err != nil {
		return err
	}
	if err = accountRepo.Update(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
