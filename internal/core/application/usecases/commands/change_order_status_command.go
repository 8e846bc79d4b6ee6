package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand requests CONFIRMED, PREPARING, READY or CANCELLED.
// IN_TRANSIT and DELIVERED follow the delivery and cannot be requested here.
type ChangeOrderStatusCommand struct {
	principal   account.Principal
	orderID     kernel.UUID
	target      order.Status
	syncCourier bool

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	principal account.Principal,
	orderID kernel.UUID,
	target order.Status,
	syncCourier bool,
) (ChangeOrderStatusCommand, error) {
	var targetErr error
	switch {
	case target.Validate() != nil:
		targetErr = target.Validate()
	case target == order.InTransit || target == order.Delivered:
		targetErr = errs.NewInvariantViolationError(
			fmt.Sprintf("order status %s is set by its delivery", target))
	}

	if err := errors.Join(
		requirePrincipal(principal),
		requireID("order id", orderID),
		targetErr,
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		principal:   principal,
		orderID:     orderID,
		target:      target,
		syncCourier: syncCourier,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) Principal() account.Principal { return c.principal }
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID         { return c.orderID }
func (c ChangeOrderStatusCommand) Target() order.Status         { return c.target }

// SyncCourier tells a cancellation to release the courier of the order's delivery.
func (c ChangeOrderStatusCommand) SyncCourier() bool { return c.syncCourier }
