package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/promotion"
)

type PromotionRepository interface {
	Add(ctx context.Context, aggregate *promotion.Promotion) error
	Update(ctx context.Context, aggregate *promotion.Promotion) error

	// ListActive returns every promotion still flagged active, oldest first.
	ListActive(ctx context.Context) ([]*promotion.Promotion, error)
}
