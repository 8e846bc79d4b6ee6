package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
)

type RestaurantRepository interface {
	Add(ctx context.Context, aggregate *catalog.Restaurant) error
	Update(ctx context.Context, aggregate *catalog.Restaurant) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error)
}

type CategoryRepository interface {
	Add(ctx context.Context, aggregate *catalog.Category) error
	Update(ctx context.Context, aggregate *catalog.Category) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Category, error)
}

// MenuItemRepository stores the dishes restaurants offer.
type MenuItemRepository interface {
	Add(ctx context.Context, aggregate *catalog.MenuItem) error
	Update(ctx context.Context, aggregate *catalog.MenuItem) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error)

	// GetMany returns the menu items with the given ids. Unknown ids are
	// reported with an ObjectNotFoundError naming the first one missing.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.MenuItem, error)

	// Delete removes a dish from the menu. Placed orders keep their own copy
	// of its name and price.
	Delete(ctx context.Context, aggregate *catalog.MenuItem) error
}
