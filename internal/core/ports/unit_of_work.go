package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories handed out after Begin share its transaction. Domain events of
// the aggregates they wrote are published only after a successful Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	AccountRepository() AccountRepository
	RestaurantRepository() RestaurantRepository
	CategoryRepository() CategoryRepository
	MenuItemRepository() MenuItemRepository
	OrderRepository() OrderRepository
	DeliveryRepository() DeliveryRepository
	CourierRepository() CourierRepository
	RatingRepository() RatingRepository
	PromotionRepository() PromotionRepository
}
