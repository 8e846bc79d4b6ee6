package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
)

type RatingRepository interface {
	Add(ctx context.Context, aggregate *rating.Rating) error
	Update(ctx context.Context, aggregate *rating.Rating) error
	Get(ctx context.Context, id kernel.UUID) (*rating.Rating, error)
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)
}
