package postgres

import (
	"fooddelivery/internal/adapters/out/postgres/accountrepo"
	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/courierrepo"
	"fooddelivery/internal/adapters/out/postgres/deliveryrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/promotionrepo"
	"fooddelivery/internal/adapters/out/postgres/ratingrepo"

	"gorm.io/gorm"
)

// Models lists every table the repositories write, parents before children.
func Models() []any {
	return []any{
		&accountrepo.AccountDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.CategoryDTO{},
		&catalogrepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&deliveryrepo.DeliveryDTO{},
		&courierrepo.CourierDTO{},
		&ratingrepo.RatingDTO{},
		&promotionrepo.PromotionDTO{},
	}
}

// Migrate creates or alters the schema to match the DTOs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
