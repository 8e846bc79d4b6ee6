package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Storage enforces at most one delivery per order; a second Add for the same
// order fails with an InvariantViolationError.
type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error
	Update(ctx context.Context, aggregate *delivery.Delivery) error
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// OrderIDOf returns the order a delivery belongs to without locking the
	// delivery, so callers can lock the order row first.
	OrderIDOf(ctx context.Context, id kernel.UUID) (kernel.UUID, error)

	// GetByOrder returns the delivery of an order, or an ObjectNotFoundError
	// when the order has none.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	Delete(ctx context.Context, aggregate *delivery.Delivery) error
}
