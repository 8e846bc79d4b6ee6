package queries_test

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
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/core/domain/services"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, 5, 10, 18, 30, 0, 0, time.UTC)

type MockLocationTracker struct {
	mock.Mock
}

func (m *MockLocationTracker) Track(ctx context.Context, deliveryID kernel.UUID, point kernel.GeoPoint, at time.Time) error {
	args := m.Called(ctx, deliveryID, point, at)
	return args.Error(0)
}

func (m *MockLocationTracker) Last(ctx context.Context, deliveryID kernel.UUID) (*kernel.GeoPoint, error) {
	args := m.Called(ctx, deliveryID)
	if p := args.Get(0); p != nil {
		return p.(*kernel.GeoPoint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLocationTracker) Forget(ctx context.Context, deliveryID kernel.UUID) error {
	args := m.Called(ctx, deliveryID)
	return args.Error(0)
}

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "queries.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, postgres_adapter.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// world is a small marketplace: one open and one closed restaurant, two
// customers, two couriers and a handful of orders in different states.
type world struct {
	db *gorm.DB

	admin         account.Principal
	customer      account.Principal
	otherCustomer account.Principal
	owner         account.Principal
	otherOwner    account.Principal
	rider         account.Principal
	idleRider     account.Principal

	restaurant       *catalog.Restaurant
	closedRestaurant *catalog.Restaurant
	category         *catalog.Category
	bandeja          *catalog.MenuItem
	limonada         *catalog.MenuItem

	busyCourier *courier.Courier
	freeCourier *courier.Courier

	delivered *order.Order // customer at restaurant, DELIVERED
	pending   *order.Order // customer at restaurant, PENDING
	foreign   *order.Order // otherCustomer at closedRestaurant, PENDING
	inTransit *order.Order // customer at restaurant, IN_TRANSIT

	finishedDelivery *delivery.Delivery
	activeDelivery   *delivery.Delivery
}

func money(t require.TestingT, amount string) kernel.Money {
	m, err := kernel.MoneyFromString(amount)
	require.NoError(t, err)
	return m
}

func newAccount(t *testing.T, name, email string, roles ...account.Role) *account.Account {
	acc, err := account.NewAccount(kernel.NewUUID(), name, email, "$2a$10$hash", "Calle 1", "555-0101", roles, testNow)
	require.NoError(t, err)
	return acc
}

func principalOf(acc *account.Account) account.Principal {
	return account.NewPrincipal(acc.ID(), acc.Roles()...)
}

func newRestaurant(t *testing.T, ownerID kernel.UUID, name string) *catalog.Restaurant {
	r, err := catalog.NewRestaurant(kernel.NewUUID(), ownerID, catalog.RestaurantProfile{
		Name:        name,
		Description: "Comida casera",
		Address:     "Av. Central 12",
		Phone:       "555-0199",
		OpeningTime: "08:00",
		ClosingTime: "22:00",
	}, testNow)
	require.NoError(t, err)
	return r
}

func newOrder(t *testing.T, customerID, restaurantID kernel.UUID, bandeja *catalog.MenuItem, at time.Time) *order.Order {
	first, err := order.NewLineItem(bandeja.ID(), bandeja.Name(), 2, bandeja.Price())
	require.NoError(t, err)
	second, err := order.NewLineItem(kernel.NewUUID(), "Limonada", 1, money(t, "5.00"))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID, order.Details{
		Address:       "Carrera 7 #45",
		PaymentMethod: "CASH",
	}, money(t, "3.00"), []order.LineItem{first, second}, at)
	require.NoError(t, err)
	return o
}

func makeReady(t *testing.T, o *order.Order, at time.Time) {
	require.NoError(t, o.Confirm(at))
	require.NoError(t, o.StartPreparing(at))
	require.NoError(t, o.MarkReady(at))
}

func seedWorld(t *testing.T) *world {
	t.Helper()

	ctx := context.Background()
	w := &world{db: openSQLite(t)}

	adminAcc := newAccount(t, "Root", "admin@example.com", account.RoleAdmin)
	customerAcc := newAccount(t, "Ana", "ana@example.com", account.RoleCustomer)
	otherCustomerAcc := newAccount(t, "Beto", "beto@example.com", account.RoleCustomer)
	ownerAcc := newAccount(t, "Carla", "carla@example.com", account.RoleRestaurant)
	otherOwnerAcc := newAccount(t, "Dario", "dario@example.com", account.RoleRestaurant)
	riderAcc := newAccount(t, "Elena", "elena@example.com", account.RoleCourier)
	idleRiderAcc := newAccount(t, "Fabio", "fabio@example.com", account.RoleCourier)
	accounts := []*account.Account{adminAcc, customerAcc, otherCustomerAcc, ownerAcc, otherOwnerAcc, riderAcc, idleRiderAcc}

	w.admin = principalOf(adminAcc)
	w.customer = principalOf(customerAcc)
	w.otherCustomer = principalOf(otherCustomerAcc)
	w.owner = principalOf(ownerAcc)
	w.otherOwner = principalOf(otherOwnerAcc)
	w.rider = principalOf(riderAcc)
	w.idleRider = principalOf(idleRiderAcc)

	w.restaurant = newRestaurant(t, ownerAcc.ID(), "La Esquina")
	w.closedRestaurant = newRestaurant(t, otherOwnerAcc.ID(), "El Cerrado")
	w.closedRestaurant.SetActive(false)

	var err error
	w.category, err = catalog.NewCategory(kernel.NewUUID(), "Platos fuertes", "", 1, true)
	require.NoError(t, err)
	categoryID := w.category.ID()
	w.bandeja, err = catalog.NewMenuItem(kernel.NewUUID(), w.restaurant.ID(), catalog.MenuItemDetails{
		CategoryID: &categoryID,
		Name:       "Bandeja",
	}, money(t, "10.00"))
	require.NoError(t, err)
	w.limonada, err = catalog.NewMenuItem(kernel.NewUUID(), w.restaurant.ID(), catalog.MenuItemDetails{
		Name: "Limonada",
	}, money(t, "5.00"))
	require.NoError(t, err)
	w.limonada.SetAvailable(false)

	w.busyCourier, err = courier.NewCourier(kernel.NewUUID(), riderAcc.ID(), "moto", "ABC123", testNow)
	require.NoError(t, err)
	w.freeCourier, err = courier.NewCourier(kernel.NewUUID(), idleRiderAcc.ID(), "bici", "", testNow)
	require.NoError(t, err)

	fulfillment := services.NewFulfillment()

	w.delivered = newOrder(t, customerAcc.ID(), w.restaurant.ID(), w.bandeja, testNow)
	makeReady(t, w.delivered, testNow)
	w.finishedDelivery, err = fulfillment.Assign(w.delivered, w.busyCourier, kernel.NewUUID(), false, testNow)
	require.NoError(t, err)
	require.NoError(t, w.finishedDelivery.StartTransit(testNow.Add(10*time.Minute)))
	require.NoError(t, w.finishedDelivery.MarkDelivered("entregado en porteria", testNow.Add(30*time.Minute)))
	require.NoError(t, w.delivered.MarkDelivered(testNow.Add(30*time.Minute)))

	w.pending = newOrder(t, customerAcc.ID(), w.restaurant.ID(), w.bandeja, testNow.Add(time.Hour))
	w.foreign = newOrder(t, otherCustomerAcc.ID(), w.closedRestaurant.ID(), w.bandeja, testNow.Add(2*time.Hour))

	w.inTransit = newOrder(t, customerAcc.ID(), w.restaurant.ID(), w.bandeja, testNow.Add(3*time.Hour))
	makeReady(t, w.inTransit, testNow.Add(3*time.Hour))
	w.activeDelivery, err = fulfillment.Assign(w.inTransit, w.busyCourier, kernel.NewUUID(), true, testNow.Add(3*time.Hour))
	require.NoError(t, err)
	require.NoError(t, w.activeDelivery.StartTransit(testNow.Add(3*time.Hour+5*time.Minute)))
	stored, err := kernel.NewGeoPoint(4.60, -74.08)
	require.NoError(t, err)
	require.NoError(t, w.activeDelivery.UpdateLocation(stored, testNow.Add(3*time.Hour+6*time.Minute)))

	score, err := rating.NewRating(kernel.NewUUID(), w.delivered.ID(), customerAcc.ID(), w.restaurant.ID(), 4, "rico", testNow)
	require.NoError(t, err)

	uow := postgres_adapter.NewGormUnitOfWorkFactory(w.db, nil, slog.New(slog.NewTextHandler(io.Discard, nil))).Create()
	require.NoError(t, uow.Begin(ctx))
	for _, acc := range accounts {
		require.NoError(t, uow.AccountRepository().Add(ctx, acc))
	}
	require.NoError(t, uow.RestaurantRepository().Add(ctx, w.restaurant))
	require.NoError(t, uow.RestaurantRepository().Add(ctx, w.closedRestaurant))
	require.NoError(t, uow.CategoryRepository().Add(ctx, w.category))
	require.NoError(t, uow.MenuItemRepository().Add(ctx, w.bandeja))
	require.NoError(t, uow.MenuItemRepository().Add(ctx, w.limonada))
	require.NoError(t, uow.CourierRepository().Add(ctx, w.busyCourier))
	require.NoError(t, uow.CourierRepository().Add(ctx, w.freeCourier))
	for _, o := range []*order.Order{w.delivered, w.pending, w.foreign, w.inTransit} {
		require.NoError(t, uow.OrderRepository().Add(ctx, o))
	}
	require.NoError(t, uow.DeliveryRepository().Add(ctx, w.finishedDelivery))
	require.NoError(t, uow.DeliveryRepository().Add(ctx, w.activeDelivery))
	require.NoError(t, uow.RatingRepository().Add(ctx, score))
	require.NoError(t, uow.Commit(ctx))

	return w
}
