package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
// An account backs at most one courier.
type CourierRepository interface {
	Add(ctx context.Context, aggregate *courier.Courier) error
	Update(ctx context.Context, aggregate *courier.Courier) error
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
	GetByAccount(ctx context.Context, accountID kernel.UUID) (*courier.Courier, error)
}
