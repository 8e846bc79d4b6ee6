package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
)

type ChangeCourierStatusCommandHandler struct {
	uowFactory CourierUoWFactory
	policy     services.AccessPolicy
}

func NewChangeCourierStatusCommandHandler(uowFactory CourierUoWFactory) ChangeCourierStatusCommandHandler {
	return ChangeCourierStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h ChangeCourierStatusCommandHandler) Handle(ctx context.Context, cmd ChangeCourierStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateCourier(ctx, h.uowFactory, h.policy, cmd.Principal(), cmd.CourierID(), func(c *courier.Courier) error {
		return c.ChangeStatus(cmd.Status(), time.Now())
	})
}

type SetCourierAvailabilityCommandHandler struct {
	uowFactory CourierUoWFactory
	policy     services.AccessPolicy
}

func NewSetCourierAvailabilityCommandHandler(uowFactory CourierUoWFactory) SetCourierAvailabilityCommandHandler {
	return SetCourierAvailabilityCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h SetCourierAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetCourierAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateCourier(ctx, h.uowFactory, h.policy, cmd.Principal(), cmd.CourierID(), func(c *courier.Courier) error {
		c.SetAvailability(cmd.Available(), time.Now())
		return nil
	})
}

func updateCourier(
	ctx context.Context,
	uowFactory CourierUoWFactory,
	policy services.AccessPolicy,
	principal account.Principal,
	courierID kernel.UUID,
	change func(c *courier.Courier) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	c, err := courierRepo.Get(ctx, courierID)
	if err != nil {
		return err
	}
	if err = policy.CheckCourierAccount(principal, c); err != nil {
		return err
	}

	if err = change(c); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
