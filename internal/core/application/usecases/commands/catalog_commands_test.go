package commands_test

import (
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func catalogFactory(f *uowFixture) commands.CatalogUoWFactory {
	return factoryFor[commands.CatalogUoW](f.uow)
}

func TestCreateRestaurantCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	owner := account.NewPrincipal(kernel.NewUUID(), account.RoleRestaurant)
	cmd, err := commands.NewCreateRestaurantCommand(owner, kernel.NewUUID(), catalog.RestaurantProfile{
		Name:        "Crepes & Waffles",
		Address:     "Calle 85 #11-53",
		OpeningTime: "11:00",
		ClosingTime: "22:00",
	})
	require.NoError(t, err)

	f := newUoWFixture(ctx)
	var added *catalog.Restaurant
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.restaurants.On("Add", ctx, mock.AnythingOfType("*catalog.Restaurant")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*catalog.Restaurant) }).
			Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
	)

	err = commands.NewCreateRestaurantCommandHandler(catalogFactory(f)).Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)
	require.NotNil(t, added)
	assert.True(t, added.IsOwnedBy(owner.AccountID()))
	assert.True(t, added.IsActive())
}

func TestCreateRestaurantCommandHandler_Handle_RequiresRestaurantRole(t *testing.T) {
	cmd, err := commands.NewCreateRestaurantCommand(
		account.NewPrincipal(kernel.NewUUID(), account.RoleCustomer),
		kernel.NewUUID(), catalog.RestaurantProfile{Name: "Nope", Address: "Nowhere"})
	require.NoError(t, err)

	factory := new(MockUoWFactory[commands.CatalogUoW])
	err = commands.NewCreateRestaurantCommandHandler(factory).Handle(context.Background(), cmd)

	require.ErrorIs(t, err, errs.ErrOwnershipViolation)
	factory.AssertNotCalled(t, "Create")
}

func TestSetRestaurantActiveCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name      string
		principal func(r *catalog.Restaurant) account.Principal
		wantErr   error
	}{
		{name: "owner", principal: ownerOf},
		{name: "admin", principal: func(*catalog.Restaurant) account.Principal { return admin() }},
		{
			name: "another restaurant",
			principal: func(*catalog.Restaurant) account.Principal {
				return account.NewPrincipal(kernel.NewUUID(), account.RoleRestaurant)
			},
			wantErr: errs.ErrOwnershipViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			r := newRestaurant(t, true)

			f := newUoWFixture(ctx)
			f.uow.On("Begin", ctx).Return(nil).Once()
			f.restaurants.On("Get", ctx, r.ID()).Return(r, nil).Once()
			if tt.wantErr == nil {
				f.restaurants.On("Update", ctx, r).Return(nil).Once()
				f.uow.On("Commit", ctx).Return(nil).Once()
			}

			cmd, err := commands.NewSetRestaurantActiveCommand(tt.principal(r), r.ID(), false)
			require.NoError(t, err)

			err = commands.NewSetRestaurantActiveCommandHandler(catalogFactory(f)).Handle(ctx, cmd)

			f.assertExpectations(t)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, r.IsActive())
				return
			}
			require.NoError(t, err)
			assert.False(t, r.IsActive())
		})
	}
}

func TestCreateCategoryCommandHandler_Handle_AdminOnly(t *testing.T) {
	ctx := context.Background()

	f := newUoWFixture(ctx)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.categories.On("Add", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewCreateCategoryCommand(admin(), kernel.NewUUID(), "Postres", "Dulces", 3)
	require.NoError(t, err)
	require.NoError(t, commands.NewCreateCategoryCommandHandler(catalogFactory(f)).Handle(ctx, cmd))
	f.assertExpectations(t)

	r := newRestaurant(t, true)
	cmd, err = commands.NewCreateCategoryCommand(ownerOf(r), kernel.NewUUID(), "Postres", "", 3)
	require.NoError(t, err)
	factory := new(MockUoWFactory[commands.CatalogUoW])
	err = commands.NewCreateCategoryCommandHandler(factory).Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrOwnershipViolation)
}

func TestCreateMenuItemCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	r := newRestaurant(t, true)
	category, err := catalog.NewCategory(kernel.NewUUID(), "Hamburguesas", "", 1, true)
	require.NoError(t, err)
	categoryID := category.ID()

	cmd, err := commands.NewCreateMenuItemCommand(ownerOf(r), kernel.NewUUID(), r.ID(),
		catalog.MenuItemDetails{CategoryID: &categoryID, Name: "Hamburguesa doble"}, money(t, "24.90"))
	require.NoError(t, err)

	f := newUoWFixture(ctx)
	var added *catalog.MenuItem
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.restaurants.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		f.categories.On("Get", ctx, categoryID).Return(category, nil).Once(),
		f.menu.On("Add", ctx, mock.AnythingOfType("*catalog.MenuItem")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*catalog.MenuItem) }).
			Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
	)

	err = commands.NewCreateMenuItemCommandHandler(catalogFactory(f)).Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)
	require.NotNil(t, added)
	assert.True(t, added.BelongsTo(r.ID()))
	assert.True(t, added.IsAvailable())
	assert.Equal(t, "24.90", added.Price().String())
}

func TestCreateMenuItemCommandHandler_Handle_UnknownCategory(t *testing.T) {
	ctx := context.Background()
	r := newRestaurant(t, true)
	categoryID := kernel.NewUUID()

	cmd, err := commands.NewCreateMenuItemCommand(ownerOf(r), kernel.NewUUID(), r.ID(),
		catalog.MenuItemDetails{CategoryID: &categoryID, Name: "Limonada"}, money(t, "6.00"))
	require.NoError(t, err)

	f := newUoWFixture(ctx)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.restaurants.On("Get", ctx, r.ID()).Return(r, nil).Once()
	f.categories.On("Get", ctx, categoryID).Return(nil, errs.NewObjectNotFoundError("category", categoryID)).Once()

	err = commands.NewCreateMenuItemCommandHandler(catalogFactory(f)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.menu.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewUpdateMenuItemCommand_NothingToChange(t *testing.T) {
	_, err := commands.NewUpdateMenuItemCommand(admin(), kernel.NewUUID(), nil, nil)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUpdateMenuItemCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	r := newRestaurant(t, true)
	item := newMenuItem(t, r, "10.00", true)
	price := money(t, "12.00")
	unavailable := false

	cmd, err := commands.NewUpdateMenuItemCommand(ownerOf(r), item.ID(), &price, &unavailable)
	require.NoError(t, err)

	f := newUoWFixture(ctx)
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.menu.On("Get", ctx, item.ID()).Return(item, nil).Once(),
		f.restaurants.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		f.menu.On("Update", ctx, item).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
	)

	err = commands.NewUpdateMenuItemCommandHandler(catalogFactory(f)).Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)
	assert.Equal(t, "12.00", item.Price().String())
	assert.False(t, item.IsAvailable())
}

func TestUpdateRestaurantCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	r := newRestaurant(t, false)
	profile := catalog.RestaurantProfile{
		Name:        "El Corral Gourmet",
		Address:     "Calle 93 #13-20",
		OpeningTime: "12:00",
		ClosingTime: "23:00",
	}

	cmd, err := commands.NewUpdateRestaurantCommand(ownerOf(r), r.ID(), profile)
	require.NoError(t, err)

	f := newUoWFixture(ctx)
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.restaurants.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		f.restaurants.On("Update", ctx, r).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
	)

	err = commands.NewUpdateRestaurantCommandHandler(catalogFactory(f)).Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)
	assert.Equal(t, "El Corral Gourmet", r.Name())
	assert.Equal(t, "Calle 93 #13-20", r.Address())
	assert.False(t, r.IsActive())
}

func TestUpdateRestaurantCommandHandler_Handle_OtherOwner(t *testing.T) {
	ctx := context.Background()
	r := newRestaurant(t, true)

	cmd, err := commands.NewUpdateRestaurantCommand(
		account.NewPrincipal(kernel.NewUUID(), account.RoleRestaurant),
		r.ID(), catalog.RestaurantProfile{Name: "Robado", Address: "Otra calle"})
	require.NoError(t, err)

	f := newUoWFixture(ctx)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.restaurants.On("Get", ctx, r.ID()).Return(r, nil).Once()

	err = commands.NewUpdateRestaurantCommandHandler(catalogFactory(f)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrOwnershipViolation)
	f.restaurants.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, "El Corral", r.Name())
}

func TestUpdateCategoryCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	category, err := catalog.NewCategory(kernel.NewUUID(), "Postres", "", 3, true)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateCategoryCommand(admin(), category.ID(), "Postres y helados", "Dulces", 1, false)
	require.NoError(t, err)

	f := newUoWFixture(ctx)
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.categories.On("Get", ctx, category.ID()).Return(category, nil).Once(),
		f.categories.On("Update", ctx, category).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
	)

	err = commands.NewUpdateCategoryCommandHandler(catalogFactory(f)).Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)
	assert.Equal(t, "Postres y helados", category.Name())
	assert.Equal(t, 1, category.DisplayOrder())
	assert.False(t, category.IsActive())
}

func TestUpdateCategoryCommandHandler_Handle_AdminOnly(t *testing.T) {
	r := newRestaurant(t, true)
	cmd, err := commands.NewUpdateCategoryCommand(ownerOf(r), kernel.NewUUID(), "Postres", "", 1, true)
	require.NoError(t, err)

	factory := new(MockUoWFactory[commands.CatalogUoW])
	err = commands.NewUpdateCategoryCommandHandler(factory).Handle(context.Background(), cmd)

	require.ErrorIs(t, err, errs.ErrOwnershipViolation)
	factory.AssertNotCalled(t, "Create")
}

func TestDeleteMenuItemCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name      string
		principal func(r *catalog.Restaurant) account.Principal
		wantErr   error
	}{
		{name: "owner", principal: ownerOf},
		{name: "admin", principal: func(*catalog.Restaurant) account.Principal { return admin() }},
		{
			name: "another restaurant",
			principal: func(*catalog.Restaurant) account.Principal {
				return account.NewPrincipal(kernel.NewUUID(), account.RoleRestaurant)
			},
			wantErr: errs.ErrOwnershipViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			r := newRestaurant(t, true)
			item := newMenuItem(t, r, "18.50", true)

			f := newUoWFixture(ctx)
			f.uow.On("Begin", ctx).Return(nil).Once()
			f.menu.On("Get", ctx, item.ID()).Return(item, nil).Once()
			f.restaurants.On("Get", ctx, r.ID()).Return(r, nil).Once()
			if tt.wantErr == nil {
				f.menu.On("Delete", ctx, item).Return(nil).Once()
				f.uow.On("Commit", ctx).Return(nil).Once()
			}

			cmd, err := commands.NewDeleteMenuItemCommand(tt.principal(r), item.ID())
			require.NoError(t, err)

			err = commands.NewDeleteMenuItemCommandHandler(catalogFactory(f)).Handle(ctx, cmd)

			f.assertExpectations(t)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				f.menu.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
		})
	}
}
