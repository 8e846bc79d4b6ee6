package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one cart entry: a menu item and how many of it.
type OrderLine struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// CreateOrderCommand represents a customer submitting a cart to one restaurant.
// Prices are not part of the command: they are read from the menu when the order is placed.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(principal, kernel.NewUUID(), restaurantID,
//	    order.Details{Address: "Calle 80 #15-20", PaymentMethod: "EFECTIVO"},
//	    deliveryFee,
//	    []OrderLine{{MenuItemID: burgerID, Quantity: 2}, {MenuItemID: sodaID, Quantity: 1}},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct {
	principal    account.Principal
	orderID      kernel.UUID
	restaurantID kernel.UUID
	details      order.Details
	deliveryFee  kernel.Money
	lines        []OrderLine

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	principal account.Principal,
	orderID, restaurantID kernel.UUID,
	details order.Details,
	deliveryFee kernel.Money,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requirePrincipal(principal),
		requireID("order id", orderID),
		requireID("restaurant id", restaurantID),
		cmd.setDeliveryFee(deliveryFee),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.principal = principal
	cmd.orderID = orderID
	cmd.restaurantID = restaurantID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Principal() account.Principal { return c.principal }
func (c CreateOrderCommand) OrderID() kernel.UUID         { return c.orderID }
func (c CreateOrderCommand) RestaurantID() kernel.UUID    { return c.restaurantID }
func (c CreateOrderCommand) Details() order.Details       { return c.details }
func (c CreateOrderCommand) DeliveryFee() kernel.Money    { return c.deliveryFee }

func (c CreateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

func (c *CreateOrderCommand) setDeliveryFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery fee", err)
	}
	c.deliveryFee = fee
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewInvariantViolationError("order must contain at least one line item")
	}
	for _, line := range lines {
		if err := requireID("menu item id", line.MenuItemID); err != nil {
			return err
		}
	}
	c.lines = append([]OrderLine(nil), lines...)
	return nil
}
