package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler drives the order state machine on behalf of
// restaurants and customers.
//
// Cancelling settles the order's delivery in the same transaction: an ASSIGNED
// or FAILED delivery is deleted, an IN_TRANSIT one is marked FAILED.
type ChangeOrderStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	policy      services.AccessPolicy
	fulfillment services.Fulfillment
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		policy:      services.NewAccessPolicy(),
		fulfillment: services.NewFulfillment(),
	}
}

func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	restaurant, err := uow.RestaurantRepository().Get(ctx, o.RestaurantID())
	if err != nil {
		return err
	}
	if err = h.policy.CheckOrderStatusChange(cmd.Principal(), o, restaurant, cmd.Target()); err != nil {
		return err
	}

	if cmd.Target() == order.Cancelled {
		err = h.cancel(ctx, uow, o, cmd.SyncCourier())
	} else {
		err = o.ChangeStatus(cmd.Target(), time.Now())
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ChangeOrderStatusCommandHandler) cancel(ctx context.Context, uow OrderUoW, o *order.Order, sync bool) error {
	deliveryRepo := uow.DeliveryRepository()
	courierRepo := uow.CourierRepository()

	d, err := deliveryRepo.GetByOrder(ctx, o.ID())
	if d, err = optional(d, err); err != nil {
		return err
	}

	var c *courier.Courier
	if d != nil && sync {
		if c, err = courierRepo.Get(ctx, d.CourierID()); err != nil {
			return err
		}
	}

	remove, err := h.fulfillment.CancelOrder(o, d, c, sync, time.Now())
	if err != nil {
		return err
	}

	switch {
	case d == nil:
		return nil
	case remove:
		err = deliveryRepo.Delete(ctx, d)
	default:
		err = deliveryRepo.Update(ctx, d)
	}
	if err != nil {
		return err
	}

	if c != nil {
		return courierRepo.Update(ctx, c)
	}
	return nil
}
