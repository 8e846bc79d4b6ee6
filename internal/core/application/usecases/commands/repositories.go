// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composition covering the aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	PromotionRepoFactory interface {
		PromotionRepository() ports.PromotionRepository
	}

	// AccountUoW manages transactions for registration and login.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// CatalogUoW manages transactions over restaurants, categories and menu items.
	CatalogUoW interface {
		TxManager
		RestaurantRepoFactory
		CategoryRepoFactory
		MenuItemRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderUoW manages order placement and status changes. It reaches
	// deliveries and couriers because cancelling an order settles its delivery.
	OrderUoW interface {
		TxManager
		RestaurantRepoFactory
		MenuItemRepoFactory
		OrderRepoFactory
		DeliveryRepoFactory
		CourierRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryUoW manages the delivery engine: every delivery write also
	// touches its order and, when courier status is synced, the couriers.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   deliveryRepo := uow.DeliveryRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		RestaurantRepoFactory
		OrderRepoFactory
		DeliveryRepoFactory
		CourierRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// CourierUoW manages courier registration and shift changes.
	CourierUoW interface {
		TxManager
		AccountRepoFactory
		CourierRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}

	RatingUoW interface {
		TxManager
		OrderRepoFactory
		RatingRepoFactory
	}

	RatingUoWFactory interface {
		Create() RatingUoW
	}

	PromotionUoW interface {
		TxManager
		RestaurantRepoFactory
		PromotionRepoFactory
	}

	PromotionUoWFactory interface {
		Create() PromotionUoW
	}
)

// optional turns a not-found lookup into a nil result.
func optional[T any](aggregate *T, err error) (*T, error) {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	return aggregate, err
}
