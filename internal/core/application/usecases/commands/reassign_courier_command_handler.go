package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// ReassignCourierCommandHandler swaps the courier of a delivery. Reassigning a
// FAILED delivery reopens the order (READY -> IN_TRANSIT). Comments and the last
// known location, cached one included, are discarded.
type ReassignCourierCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	tracker     ports.LocationTracker
	logger      *slog.Logger
	policy      services.AccessPolicy
	fulfillment services.Fulfillment
}

func NewReassignCourierCommandHandler(
	uowFactory DeliveryUoWFactory,
	tracker ports.LocationTracker,
	logger *slog.Logger,
) ReassignCourierCommandHandler {
	return ReassignCourierCommandHandler{
		uowFactory:  uowFactory,
		tracker:     tracker,
		logger:      logger,
		policy:      services.NewAccessPolicy(),
		fulfillment: services.NewFulfillment(),
	}
}

func (h ReassignCourierCommandHandler) Handle(ctx context.Context, cmd ReassignCourierCommand) error {
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

	var next, previous *courier.Courier
	if cmd.SyncCourier() {
		couriers, lockErr := lockCouriers(ctx, courierRepo, cmd.CourierID(), d.CourierID())
		if lockErr != nil {
			return lockErr
		}
		next, previous = couriers[0], couriers[1]
	} else if next, err = courierRepo.Get(ctx, cmd.CourierID()); err != nil {
		return err
	}

	if err = h.fulfillment.Reassign(d, o, previous, next, cmd.SyncCourier(), time.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	if cmd.SyncCourier() {
		if err = courierRepo.Update(ctx, previous); err != nil {
			return err
		}
		if err = courierRepo.Update(ctx, next); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	forgetLocation(ctx, h.tracker, h.logger, d.ID())
	return nil
}
