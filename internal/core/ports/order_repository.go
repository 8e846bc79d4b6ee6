package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Line items are written together with their order and never updated afterwards.
type OrderRepository interface {
	// Add persists a new order with all of its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, details and timestamps of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items and locks it for the
	// rest of the transaction where the database supports row locks.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
