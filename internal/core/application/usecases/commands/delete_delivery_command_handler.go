package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

type DeleteDeliveryCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	tracker     ports.LocationTracker
	logger      *slog.Logger
	policy      services.AccessPolicy
	fulfillment services.Fulfillment
}

func NewDeleteDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	tracker ports.LocationTracker,
	logger *slog.Logger,
) DeleteDeliveryCommandHandler {
	return DeleteDeliveryCommandHandler{
		uowFactory:  uowFactory,
		tracker:     tracker,
		logger:      logger,
		policy:      services.NewAccessPolicy(),
		fulfillment: services.NewFulfillment(),
	}
}

// Handle deletes the delivery. Deleting an ASSIGNED delivery returns its order to READY.
func (h DeleteDeliveryCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryCommand) error {
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

	restaurant, err := uow.RestaurantRepository().Get(ctx, o.RestaurantID())
	if err != nil {
		return err
	}
	if err = h.policy.CheckDeliveryDispatch(cmd.Principal(), o, restaurant); err != nil {
		return err
	}

	var c *courier.Courier
	if cmd.SyncCourier() {
		if c, err = courierRepo.Get(ctx, d.CourierID()); err != nil {
			return err
		}
	}

	if err = h.fulfillment.Withdraw(d, o, c, cmd.SyncCourier(), time.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Delete(ctx, d); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	if c != nil {
		if err = courierRepo.Update(ctx, c); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	forgetLocation(ctx, h.tracker, h.logger, d.ID())
	return nil
}
