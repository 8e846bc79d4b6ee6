package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// RegisterCourierCommandHandler creates the courier and grants its account the REPARTIDOR role.
// New couriers start FREE and available.
type RegisterCourierCommandHandler struct {
	uowFactory CourierUoWFactory
	policy     services.AccessPolicy
}

func NewRegisterCourierCommandHandler(uowFactory CourierUoWFactory) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h RegisterCourierCommandHandler) Handle(ctx context.Context, cmd RegisterCourierCommand) error {
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

	accountRepo := uow.AccountRepository()
	courierRepo := uow.CourierRepository()

	acc, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	_, err = courierRepo.GetByAccount(ctx, acc.ID())
	switch {
	case err == nil:
		return errs.NewInvariantViolationError(fmt.Sprintf("account %s is already a courier", acc.ID()))
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	c, err := courier.NewCourier(cmd.CourierID(), acc.ID(), cmd.Vehicle(), cmd.Plate(), time.Now())
	if err != nil {
		return err
	}
	if err = acc.GrantRole(account.RoleCourier); err != nil {
		return err
	}

	if err = courierRepo.Add(ctx, c); err != nil {
		return err
	}
	if err = accountRepo.Update(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
