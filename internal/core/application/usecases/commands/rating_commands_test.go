package commands_test

import (
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ratingFactory(f *uowFixture) commands.RatingUoWFactory {
	return factoryFor[commands.RatingUoW](f.uow)
}

func TestNewCreateRatingCommand_ScoreOutOfRange(t *testing.T) {
	for _, score := range []int{0, 6, -1} {
		_, err := commands.NewCreateRatingCommand(admin(), kernel.NewUUID(), kernel.NewUUID(), score, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "score %d", score)
	}
}

func TestCreateRatingCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	o := orderAt(t, newRestaurant(t, true), order.Delivered)
	cmd, err := commands.NewCreateRatingCommand(customerOf(o), kernel.NewUUID(), o.ID(), 5, "Llegó caliente")
	require.NoError(t, err)

	f := newUoWFixture(ctx)
	var added *rating.Rating
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		f.ratings.On("ExistsForOrder", ctx, o.ID()).Return(false, nil).Once(),
		f.ratings.On("Add", ctx, mock.AnythingOfType("*rating.Rating")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*rating.Rating) }).
			Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
	)

	err = commands.NewCreateRatingCommandHandler(ratingFactory(f)).Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)
	require.NotNil(t, added)
	assert.Equal(t, 5, added.Score())
	assert.Equal(t, o.RestaurantID(), added.RestaurantID())
	assert.True(t, added.IsAuthoredBy(o.CustomerID()))
}

func TestCreateRatingCommandHandler_Handle_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		status  order.Status
		exists  bool
		byAdmin bool
		wantErr error
	}{
		{name: "order not delivered", status: order.InTransit, wantErr: errs.ErrInvariantViolation},
		{name: "already rated", status: order.Delivered, exists: true, wantErr: errs.ErrInvariantViolation},
		{name: "admin is not the author", status: order.Delivered, byAdmin: true, wantErr: errs.ErrOwnershipViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			o := orderAt(t, newRestaurant(t, true), tt.status)
			author := customerOf(o)
			if tt.byAdmin {
				author = admin()
			}
			cmd, err := commands.NewCreateRatingCommand(author, kernel.NewUUID(), o.ID(), 4, "")
			require.NoError(t, err)

			f := newUoWFixture(ctx)
			f.uow.On("Begin", ctx).Return(nil).Once()
			f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
			f.ratings.On("ExistsForOrder", ctx, o.ID()).Return(tt.exists, nil).Maybe()

			err = commands.NewCreateRatingCommandHandler(ratingFactory(f)).Handle(ctx, cmd)

			require.ErrorIs(t, err, tt.wantErr)
			f.ratings.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			f.uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestUpdateRatingCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	o := orderAt(t, newRestaurant(t, true), order.Delivered)
	r, err := rating.RestoreRating(kernel.NewUUID(), o.ID(), o.CustomerID(), o.RestaurantID(),
		3, "Regular", fixtureTime, fixtureTime)
	require.NoError(t, err)

	f := newUoWFixture(ctx)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.ratings.On("Get", ctx, r.ID()).Return(r, nil).Once()
	f.ratings.On("Update", ctx, r).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewUpdateRatingCommand(customerOf(o), r.ID(), 4, "Mejoró el empaque")
	require.NoError(t, err)

	err = commands.NewUpdateRatingCommandHandler(ratingFactory(f)).Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)
	assert.Equal(t, 4, r.Score())
	assert.Equal(t, "Mejoró el empaque", r.Comment())
}

func TestUpdateRatingCommandHandler_Handle_OtherCustomer(t *testing.T) {
	ctx := context.Background()
	o := orderAt(t, newRestaurant(t, true), order.Delivered)
	r, err := rating.RestoreRating(kernel.NewUUID(), o.ID(), o.CustomerID(), o.RestaurantID(),
		3, "", fixtureTime, fixtureTime)
	require.NoError(t, err)

	f := newUoWFixture(ctx)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.ratings.On("Get", ctx, r.ID()).Return(r, nil).Once()

	cmd, err := commands.NewUpdateRatingCommand(customerOf(orderAt(t, newRestaurant(t, true), order.Delivered)),
		r.ID(), 1, "")
	require.NoError(t, err)

	err = commands.NewUpdateRatingCommandHandler(ratingFactory(f)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrOwnershipViolation)
	assert.Equal(t, 3, r.Score())
}
