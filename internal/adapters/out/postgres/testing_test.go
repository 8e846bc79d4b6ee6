package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	postgres_adapter "fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/ddd"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...ddd.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

var testNow = time.Date(2025, 5, 10, 18, 30, 0, 0, time.UTC)

// openSQLite returns a migrated database in a per-test file.
func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fooddelivery.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, postgres_adapter.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func newFactory(db *gorm.DB, publisher ports.EventPublisher) *postgres_adapter.GormUnitOfWorkFactory {
	return postgres_adapter.NewGormUnitOfWorkFactory(db, publisher, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func money(t require.TestingT, amount string) kernel.Money {
	m, err := kernel.MoneyFromString(amount)
	require.NoError(t, err)
	return m
}

func newTestAccount(t require.TestingT, email string, roles ...account.Role) *account.Account {
	acc, err := account.NewAccount(kernel.NewUUID(), "Ana Pérez", email, "$2a$10$hash", "Calle 1", "555-0101", roles, testNow)
	require.NoError(t, err)
	return acc
}

func newTestRestaurant(t require.TestingT, ownerID kernel.UUID) *catalog.Restaurant {
	r, err := catalog.NewRestaurant(kernel.NewUUID(), ownerID, catalog.RestaurantProfile{
		Name:        "La Esquina",
		Description: "Comida casera",
		Address:     "Av. Central 12",
		Phone:       "555-0199",
		OpeningTime: "08:00",
		ClosingTime: "22:00",
	}, testNow)
	require.NoError(t, err)
	return r
}

func newTestMenuItem(t require.TestingT, restaurantID kernel.UUID, name, price string) *catalog.MenuItem {
	item, err := catalog.NewMenuItem(kernel.NewUUID(), restaurantID, catalog.MenuItemDetails{Name: name}, money(t, price))
	require.NoError(t, err)
	return item
}

func newTestOrder(t require.TestingT, customerID, restaurantID kernel.UUID) *order.Order {
	first, err := order.NewLineItem(kernel.NewUUID(), "Bandeja", 2, money(t, "10.00"))
	require.NoError(t, err)
	second, err := order.NewLineItem(kernel.NewUUID(), "Limonada", 1, money(t, "5.00"))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID, order.Details{
		Address:       "Carrera 7 #45",
		PaymentMethod: "CASH",
	}, money(t, "3.00"), []order.LineItem{first, second}, testNow)
	require.NoError(t, err)
	return o
}

func newTestCourier(t require.TestingT) *courier.Courier {
	c, err := courier.NewCourier(kernel.NewUUID(), kernel.NewUUID(), "moto", "ABC123", testNow)
	require.NoError(t, err)
	return c
}
