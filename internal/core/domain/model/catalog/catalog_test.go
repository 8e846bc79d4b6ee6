package catalog_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewRestaurant(t *testing.T) {
	owner := kernel.NewUUID()

	t.Run("starts active", func(t *testing.T) {
		r, err := catalog.NewRestaurant(kernel.NewUUID(), owner, catalog.RestaurantProfile{
			Name:        "La Brasa",
			Address:     "Cra 7 #45-10",
			OpeningTime: "11:00",
			ClosingTime: "22:30",
		}, time.Now())

		require.NoError(t, err)
		assert.True(t, r.IsActive())
		assert.True(t, r.IsOwnedBy(owner))
		assert.False(t, r.IsOwnedBy(kernel.NewUUID()))

		r.SetActive(false)
		assert.False(t, r.IsActive())
	})

	t.Run("validates profile", func(t *testing.T) {
		_, err := catalog.NewRestaurant(kernel.NewUUID(), kernel.UUID{}, catalog.RestaurantProfile{
			OpeningTime: "25:99",
		}, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "owner id")
		assert.Contains(t, err.Error(), "opening time")
	})
}

func TestRestaurant_UpdateProfile(t *testing.T) {
	created := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	r, err := catalog.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), catalog.RestaurantProfile{
		Name:    "La Brasa",
		Address: "Cra 7 #45-10",
	}, created)
	require.NoError(t, err)
	r.SetActive(false)

	err = r.UpdateProfile(catalog.RestaurantProfile{Name: "", Address: "Calle 10", OpeningTime: "7pm"})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, "La Brasa", r.Name())
	assert.Equal(t, "Cra 7 #45-10", r.Address())

	require.NoError(t, r.UpdateProfile(catalog.RestaurantProfile{
		Name:        " La Brasa Norte ",
		Address:     "Calle 140 #9-20",
		Phone:       "6015550101",
		OpeningTime: "12:00",
		ClosingTime: "23:00",
	}))
	assert.Equal(t, "La Brasa Norte", r.Name())
	assert.Equal(t, "12:00", r.OpeningTime())
	assert.False(t, r.IsActive(), "profile edits keep the active flag")
	assert.Equal(t, created, r.CreatedAt())
}

func TestCategory_Update(t *testing.T) {
	c, err := catalog.NewCategory(kernel.NewUUID(), "Postres", "", 2, true)
	require.NoError(t, err)
	id := c.ID()

	require.Error(t, c.Update("Postres", "", -3, true))
	assert.Equal(t, 2, c.DisplayOrder())

	require.NoError(t, c.Update("Dulces", "tortas y helados", 5, false))
	assert.Equal(t, id, c.ID())
	assert.Equal(t, "Dulces", c.Name())
	assert.Equal(t, "tortas y helados", c.Description())
	assert.Equal(t, 5, c.DisplayOrder())
	assert.False(t, c.IsActive())
}

func TestNewCategory(t *testing.T) {
	c, err := catalog.NewCategory(kernel.NewUUID(), " Postres ", "", 2, true)
	require.NoError(t, err)
	assert.Equal(t, "Postres", c.Name())
	assert.Equal(t, 2, c.DisplayOrder())

	_, err = catalog.NewCategory(kernel.NewUUID(), "", "", -1, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "display order")
}

func TestMenuItem(t *testing.T) {
	restaurantID := kernel.NewUUID()

	t.Run("requires positive price", func(t *testing.T) {
		_, err := catalog.NewMenuItem(kernel.NewUUID(), restaurantID,
			catalog.MenuItemDetails{Name: "Agua"}, kernel.ZeroMoney())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("price and availability can change", func(t *testing.T) {
		item, err := catalog.NewMenuItem(kernel.NewUUID(), restaurantID,
			catalog.MenuItemDetails{Name: "Bandeja paisa"}, money(t, "32.50"))
		require.NoError(t, err)
		assert.True(t, item.IsAvailable())
		assert.True(t, item.BelongsTo(restaurantID))

		require.NoError(t, item.ChangePrice(money(t, "35.00")))
		item.SetAvailable(false)

		assert.Equal(t, "35.00", item.Price().String())
		assert.False(t, item.IsAvailable())
		require.Error(t, item.ChangePrice(kernel.Money{}))
		assert.Equal(t, "35.00", item.Price().String())
	})
}
