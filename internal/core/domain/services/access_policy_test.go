package services_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restaurantOf(t *testing.T, o *order.Order, owner kernel.UUID) *catalog.Restaurant {
	t.Helper()
	r, err := catalog.RestoreRestaurant(o.RestaurantID(), owner, catalog.RestaurantProfile{
		Name:        "La Perla",
		Address:     "Calle 10 #5-51",
		OpeningTime: "11:00",
		ClosingTime: "22:00",
	}, true, now)
	require.NoError(t, err)
	return r
}

func TestAccessPolicy_CheckOrderStatusChange(t *testing.T) {
	policy := services.NewAccessPolicy()
	o := orderIn(t, order.Pending)
	owner := kernel.NewUUID()
	r := restaurantOf(t, o, owner)

	tests := []struct {
		name    string
		p       account.Principal
		target  order.Status
		allowed bool
	}{
		{"admin confirms", account.NewPrincipal(kernel.NewUUID(), account.RoleAdmin), order.Confirmed, true},
		{"restaurant confirms", account.NewPrincipal(owner, account.RoleRestaurant), order.Confirmed, true},
		{"other restaurant", account.NewPrincipal(kernel.NewUUID(), account.RoleRestaurant), order.Confirmed, false},
		{"customer confirms", account.NewPrincipal(o.CustomerID(), account.RoleCustomer), order.Confirmed, false},
		{"customer cancels", account.NewPrincipal(o.CustomerID(), account.RoleCustomer), order.Cancelled, true},
		{"stranger cancels", account.NewPrincipal(kernel.NewUUID(), account.RoleCustomer), order.Cancelled, false},
		{"courier cancels", account.NewPrincipal(kernel.NewUUID(), account.RoleCourier), order.Cancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.CheckOrderStatusChange(tt.p, o, r, tt.target)
			if tt.allowed {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrOwnershipViolation)
		})
	}
}

func TestAccessPolicy_CheckDeliveryDispatch(t *testing.T) {
	policy := services.NewAccessPolicy()
	o := orderIn(t, order.Ready)
	owner := kernel.NewUUID()
	r := restaurantOf(t, o, owner)

	require.NoError(t, policy.CheckDeliveryDispatch(account.NewPrincipal(owner, account.RoleRestaurant), o, r))
	require.ErrorIs(t,
		policy.CheckDeliveryDispatch(account.NewPrincipal(owner, account.RoleCustomer), o, r),
		errs.ErrOwnershipViolation)

	otherOrder := orderIn(t, order.Ready)
	require.ErrorIs(t,
		policy.CheckDeliveryDispatch(account.NewPrincipal(owner, account.RoleRestaurant), otherOrder, r),
		errs.ErrOwnershipViolation)
}

func TestAccessPolicy_CheckCourierAccount(t *testing.T) {
	policy := services.NewAccessPolicy()
	c := freeCourier(t)

	require.NoError(t, policy.CheckCourierAccount(account.NewPrincipal(c.AccountID(), account.RoleCourier), c))
	require.NoError(t, policy.CheckCourierAccount(account.NewPrincipal(kernel.NewUUID(), account.RoleAdmin), c))

	err := policy.CheckCourierAccount(account.NewPrincipal(kernel.NewUUID(), account.RoleCourier), c)
	require.ErrorIs(t, err, errs.ErrOwnershipViolation)
}

func TestAccessPolicy_Ratings(t *testing.T) {
	policy := services.NewAccessPolicy()
	o := orderIn(t, order.Delivered)
	customer := account.NewPrincipal(o.CustomerID(), account.RoleCustomer)

	require.NoError(t, policy.CheckRatingAuthor(customer, o))
	require.ErrorIs(t,
		policy.CheckRatingAuthor(account.NewPrincipal(kernel.NewUUID(), account.RoleAdmin), o),
		errs.ErrOwnershipViolation)

	r, err := rating.NewRating(kernel.NewUUID(), o.ID(), o.CustomerID(), o.RestaurantID(), 4, "", now)
	require.NoError(t, err)
	require.NoError(t, policy.CheckRatingRevision(customer, r))
	require.ErrorIs(t,
		policy.CheckRatingRevision(account.NewPrincipal(kernel.NewUUID(), account.RoleCustomer), r),
		errs.ErrOwnershipViolation)
}

func TestAccessPolicy_RequireRole(t *testing.T) {
	policy := services.NewAccessPolicy()

	assert.NoError(t, policy.RequireRole(account.NewPrincipal(kernel.NewUUID(), account.RoleAdmin), account.RoleRestaurant))
	assert.NoError(t, policy.RequireRole(
		account.NewPrincipal(kernel.NewUUID(), account.RoleRestaurant), account.RoleRestaurant))
	assert.ErrorIs(t,
		policy.RequireRole(account.NewPrincipal(kernel.NewUUID(), account.RoleCustomer), account.RoleRestaurant),
		errs.ErrOwnershipViolation)
}
