package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// TransitionDeliveryCommandHandler lets the assigned courier move its delivery.
// DELIVERED completes the order; FAILED returns it to READY for reassignment.
type TransitionDeliveryCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	tracker     ports.LocationTracker
	logger      *slog.Logger
	policy      services.AccessPolicy
	fulfillment services.Fulfillment
}

func NewTransitionDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	tracker ports.LocationTracker,
	logger *slog.Logger,
) TransitionDeliveryCommandHandler {
	return TransitionDeliveryCommandHandler{
		uowFactory:  uowFactory,
		tracker:     tracker,
		logger:      logger,
		policy:      services.NewAccessPolicy(),
		fulfillment: services.NewFulfillment(),
	}
}

func (h TransitionDeliveryCommandHandler) Handle(ctx context.Context, cmd TransitionDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	o, d, err := lockOrderAndDelivery(ctx, orderRepo, deliveryRepo, cmd.DeliveryID())
	if err != nil {
		return err
	}

	c, err := courierRepo.Get(ctx, d.CourierID())
	if err != nil {
		return err
	}
	if err = h.policy.CheckCourierAccount(cmd.Principal(), c); err != nil {
		return err
	}

	err = h.fulfillment.Transition(d, o, c, cmd.Target(), cmd.Comments(), cmd.SyncCourier(), time.Now())
	if err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	if cmd.SyncCourier() {
		if err = courierRepo.Update(ctx, c); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if d.Status() != delivery.InTransit {
		forgetLocation(ctx, h.tracker, h.logger, d.ID())
	}
	return nil
}
