package order

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// LineItem is one menu item and quantity within an order. The unit price is
// copied from the menu when the order is placed and never changes afterwards.
type LineItem struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	name       string
	quantity   int
	unitPrice  kernel.Money
}

func NewLineItem(menuItemID kernel.UUID, name string, quantity int, unitPrice kernel.Money) (LineItem, error) {
	return RestoreLineItem(kernel.NewUUID(), menuItemID, name, quantity, unitPrice)
}

func RestoreLineItem(
	id, menuItemID kernel.UUID,
	name string,
	quantity int,
	unitPrice kernel.Money,
) (LineItem, error) {
	var quantityErr error
	if quantity < 1 {
		quantityErr = errs.NewInvariantViolationError("line item quantity must be at least 1")
	}

	if err := errors.Join(
		id.Validate(),
		menuItemID.Validate(),
		quantityErr,
		unitPrice.Validate(),
	); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		id:         id,
		menuItemID: menuItemID,
		name:       name,
		quantity:   quantity,
		unitPrice:  unitPrice,
	}, nil
}

func (li LineItem) ID() kernel.UUID         { return li.id }
func (li LineItem) MenuItemID() kernel.UUID { return li.menuItemID }
func (li LineItem) Name() string            { return li.name }
func (li LineItem) Quantity() int           { return li.quantity }
func (li LineItem) UnitPrice() kernel.Money { return li.unitPrice }

// Subtotal is quantity × unit price.
func (li LineItem) Subtotal() kernel.Money {
	return li.unitPrice.Multiply(li.quantity)
}
