package commands

import (
	"context"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// AssignCourierCommandHandler orchestrates the courier assignment process.
// The order moves READY -> IN_TRANSIT and the delivery is created ASSIGNED in one transaction.
// A concurrent assignment of the same order is stopped by the unique index on
// deliveries.order_id, which the repository reports as an InvariantViolationError.
type AssignCourierCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	policy      services.AccessPolicy
	fulfillment services.Fulfillment
}

// NewAssignCourierCommandHandler creates a handler for courier assignment operations.
func NewAssignCourierCommandHandler(uowFactory DeliveryUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory:  uowFactory,
		policy:      services.NewAccessPolicy(),
		fulfillment: services.NewFulfillment(),
	}
}

// Handle processes the courier assignment command.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
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
	deliveryRepo := uow.DeliveryRepository()
	courierRepo := uow.CourierRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
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

	existing, err := deliveryRepo.GetByOrder(ctx, o.ID())
	if existing, err = optional(existing, err); err != nil {
		return err
	}
	if existing != nil {
		return errs.NewInvariantViolationError(fmt.Sprintf("order %s already has delivery %s", o.ID(), existing.ID()))
	}

	c, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	d, err := h.fulfillment.Assign(o, c, cmd.DeliveryID(), cmd.SyncCourier(), time.Now())
	if err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, d); err != nil {
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

	return uow.Commit(ctx)
}
