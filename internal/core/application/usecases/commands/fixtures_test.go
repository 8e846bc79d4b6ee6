package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2025, 5, 10, 19, 0, 0, 0, time.UTC)

// uowFixture wires a MockUoW to one mock repository per aggregate.
type uowFixture struct {
	uow         *MockUoW
	accounts    *MockAccountRepository
	restaurants *MockRestaurantRepository
	categories  *MockCategoryRepository
	menu        *MockMenuItemRepository
	orders      *MockOrderRepository
	deliveries  *MockDeliveryRepository
	couriers    *MockCourierRepository
	ratings     *MockRatingRepository
	promotions  *MockPromotionRepository
}

func newUoWFixture(ctx context.Context) *uowFixture {
	f := &uowFixture{
		uow:         new(MockUoW),
		accounts:    new(MockAccountRepository),
		restaurants: new(MockRestaurantRepository),
		categories:  new(MockCategoryRepository),
		menu:        new(MockMenuItemRepository),
		orders:      new(MockOrderRepository),
		deliveries:  new(MockDeliveryRepository),
		couriers:    new(MockCourierRepository),
		ratings:     new(MockRatingRepository),
		promotions:  new(MockPromotionRepository),
	}

	f.uow.On("AccountRepository").Return(f.accounts).Maybe()
	f.uow.On("RestaurantRepository").Return(f.restaurants).Maybe()
	f.uow.On("CategoryRepository").Return(f.categories).Maybe()
	f.uow.On("MenuItemRepository").Return(f.menu).Maybe()
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("DeliveryRepository").Return(f.deliveries).Maybe()
	f.uow.On("CourierRepository").Return(f.couriers).Maybe()
	f.uow.On("RatingRepository").Return(f.ratings).Maybe()
	f.uow.On("PromotionRepository").Return(f.promotions).Maybe()
	f.uow.On("Rollback", ctx).Return(nil).Maybe()

	return f
}

func (f *uowFixture) assertExpectations(t *testing.T) {
	t.Helper()
	mock.AssertExpectationsForObjects(t,
		f.uow, f.accounts, f.restaurants, f.categories, f.menu,
		f.orders, f.deliveries, f.couriers, f.ratings, f.promotions)
}

func factoryFor[T any](uow T) *MockUoWFactory[T] {
	factory := new(MockUoWFactory[T])
	factory.On("Create").Return(uow).Once()
	return factory
}

func deliveryFactory(f *uowFixture) commands.DeliveryUoWFactory {
	return factoryFor[commands.DeliveryUoW](f.uow)
}

func orderFactory(f *uowFixture) commands.OrderUoWFactory {
	return factoryFor[commands.OrderUoW](f.uow)
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func customerOf(o *order.Order) account.Principal {
	return account.NewPrincipal(o.CustomerID(), account.RoleCustomer)
}

func ownerOf(r *catalog.Restaurant) account.Principal {
	return account.NewPrincipal(r.OwnerID(), account.RoleRestaurant)
}

func courierPrincipal(c *courier.Courier) account.Principal {
	return account.NewPrincipal(c.AccountID(), account.RoleCourier)
}

func admin() account.Principal {
	return account.NewPrincipal(kernel.NewUUID(), account.RoleAdmin)
}

func newRestaurant(t *testing.T, active bool) *catalog.Restaurant {
	t.Helper()
	r, err := catalog.RestoreRestaurant(kernel.NewUUID(), kernel.NewUUID(), catalog.RestaurantProfile{
		Name:        "El Corral",
		Address:     "Av. 19 #120-45",
		OpeningTime: "10:00",
		ClosingTime: "23:00",
	}, active, fixtureTime)
	require.NoError(t, err)
	return r
}

func newMenuItem(t *testing.T, r *catalog.Restaurant, price string, available bool) *catalog.MenuItem {
	t.Helper()
	item, err := catalog.RestoreMenuItem(kernel.NewUUID(), r.ID(),
		catalog.MenuItemDetails{Name: "Hamburguesa"}, money(t, price), available)
	require.NoError(t, err)
	return item
}

func orderAt(t *testing.T, r *catalog.Restaurant, status order.Status) *order.Order {
	t.Helper()
	price := money(t, "12.50")
	item, err := order.NewLineItem(kernel.NewUUID(), "Hamburguesa", 1, price)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), r.ID(),
		order.Details{Address: "Calle 80 #15-20", PaymentMethod: "EFECTIVO"},
		kernel.ZeroMoney(), price, status, []order.LineItem{item}, fixtureTime, fixtureTime)
	require.NoError(t, err)
	return o
}

func newCourier(t *testing.T, status courier.Status) *courier.Courier {
	t.Helper()
	c, err := courier.RestoreCourier(kernel.NewUUID(), kernel.NewUUID(), "moto", "XYZ987",
		true, status, fixtureTime, fixtureTime)
	require.NoError(t, err)
	return c
}

func deliveryAt(t *testing.T, o *order.Order, c *courier.Courier, status delivery.Status) *delivery.Delivery {
	t.Helper()
	d, err := delivery.RestoreDelivery(delivery.Snapshot{
		ID:         kernel.NewUUID(),
		OrderID:    o.ID(),
		CourierID:  c.ID(),
		Status:     status,
		AssignedAt: fixtureTime,
		UpdatedAt:  fixtureTime,
	})
	require.NoError(t, err)
	return d
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
