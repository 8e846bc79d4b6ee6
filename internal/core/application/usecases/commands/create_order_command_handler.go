package commands

import (
	"context"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// CreateOrderCommandHandler places PENDING orders.
//
// Guards, all checked before anything is written:
//   - the caller is a customer
//   - the restaurant exists and is active
//   - every menu item exists, belongs to the restaurant and is available
//   - every quantity is at least 1
//
// Unit prices are snapshotted from the menu; the total is computed once by the order.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.RequireRole(cmd.Principal(), account.RoleCustomer); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurant, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}
	if !restaurant.IsActive() {
		return errs.NewInvariantViolationError(fmt.Sprintf("restaurant %s is not accepting orders", restaurant.ID()))
	}

	items, err := h.snapshotLineItems(ctx, uow, restaurant, cmd.Lines())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Principal().AccountID(), restaurant.ID(),
		cmd.Details(), cmd.DeliveryFee(), items, time.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CreateOrderCommandHandler) snapshotLineItems(
	ctx context.Context,
	uow OrderUoW,
	restaurant *catalog.Restaurant,
	lines []OrderLine,
) ([]order.LineItem, error) {
	ids := make([]kernel.UUID, 0, len(lines))
	seen := make(map[kernel.UUID]bool, len(lines))
	for _, line := range lines {
		if !seen[line.MenuItemID] {
			seen[line.MenuItemID] = true
			ids = append(ids, line.MenuItemID)
		}
	}

	menuItems, err := uow.MenuItemRepository().GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[kernel.UUID]*catalog.MenuItem, len(menuItems))
	for _, item := range menuItems {
		byID[item.ID()] = item
	}

	items := make([]order.LineItem, 0, len(lines))
	for _, line := range lines {
		menuItem, ok := byID[line.MenuItemID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("menu item", line.MenuItemID)
		}
		if !menuItem.BelongsTo(restaurant.ID()) {
			return nil, errs.NewInvariantViolationError(
				fmt.Sprintf("menu item %s does not belong to restaurant %s", menuItem.ID(), restaurant.ID()))
		}
		if !menuItem.IsAvailable() {
			return nil, errs.NewInvariantViolationError(fmt.Sprintf("menu item %s is not available", menuItem.ID()))
		}

		item, err := order.NewLineItem(menuItem.ID(), menuItem.Name(), line.Quantity, menuItem.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
