package commands_test

import (
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newChangeOrderStatusCommand(
	t *testing.T,
	p account.Principal,
	o *order.Order,
	target order.Status,
) commands.ChangeOrderStatusCommand {
	t.Helper()
	cmd, err := commands.NewChangeOrderStatusCommand(p, o.ID(), target, true)
	require.NoError(t, err)
	return cmd
}

func TestNewChangeOrderStatusCommand_DeliveryDrivenTargets(t *testing.T) {
	o := orderAt(t, newRestaurant(t, true), order.Ready)

	for _, target := range []order.Status{order.InTransit, order.Delivered} {
		_, err := commands.NewChangeOrderStatusCommand(admin(), o.ID(), target, true)
		require.ErrorIs(t, err, errs.ErrInvariantViolation, target.String())
	}
}

func TestNewChangeOrderStatusCommand_UnknownTarget(t *testing.T) {
	o := orderAt(t, newRestaurant(t, true), order.Ready)

	_, err := commands.NewChangeOrderStatusCommand(admin(), o.ID(), order.Unknown, true)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestChangeOrderStatusCommandHandler_Handle_Advance(t *testing.T) {
	tests := []struct {
		from, to order.Status
	}{
		{order.Pending, order.Confirmed},
		{order.Confirmed, order.Preparing},
		{order.Preparing, order.Ready},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			ctx := context.Background()
			r := newRestaurant(t, true)
			o := orderAt(t, r, tt.from)

			f := newUoWFixture(ctx)
			mock.InOrder(
				f.uow.On("Begin", ctx).Return(nil).Once(),
				f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
				f.restaurants.On("Get", ctx, r.ID()).Return(r, nil).Once(),
				f.orders.On("Update", ctx, o).Return(nil).Once(),
				f.uow.On("Commit", ctx).Return(nil).Once(),
			)

			err := commands.NewChangeOrderStatusCommandHandler(orderFactory(f)).
				Handle(ctx, newChangeOrderStatusCommand(t, ownerOf(r), o, tt.to))

			require.NoError(t, err)
			f.assertExpectations(t)
			assert.Equal(t, tt.to, o.Status())
		})
	}
}

func TestChangeOrderStatusCommandHandler_Handle_SkippingAStep(t *testing.T) {
	ctx := context.Background()
	r := newRestaurant(t, true)
	o := orderAt(t, r, order.Pending)

	f := newUoWFixture(ctx)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.restaurants.On("Get", ctx, r.ID()).Return(r, nil).Once()

	err := commands.NewChangeOrderStatusCommandHandler(orderFactory(f)).
		Handle(ctx, newChangeOrderStatusCommand(t, ownerOf(r), o, order.Ready))

	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	assert.Equal(t, order.Pending, o.Status())
	f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_CustomerMayOnlyCancel(t *testing.T) {
	ctx := context.Background()
	r := newRestaurant(t, true)
	o := orderAt(t, r, order.Pending)

	f := newUoWFixture(ctx)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.restaurants.On("Get", ctx, r.ID()).Return(r, nil).Once()

	err := commands.NewChangeOrderStatusCommandHandler(orderFactory(f)).
		Handle(ctx, newChangeOrderStatusCommand(t, customerOf(o), o, order.Confirmed))

	require.ErrorIs(t, err, errs.ErrOwnershipViolation)
	assert.Equal(t, order.Pending, o.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_CancelWithoutDelivery(t *testing.T) {
	ctx := context.Background()
	r := newRestaurant(t, true)
	o := orderAt(t, r, order.Pending)

	f := newUoWFixture(ctx)
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		f.restaurants.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		f.deliveries.On("GetByOrder", ctx, o.ID()).
			Return(nil, errs.NewObjectNotFoundError("delivery", o.ID())).Once(),
		f.orders.On("Update", ctx, o).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
	)

	err := commands.NewChangeOrderStatusCommandHandler(orderFactory(f)).
		Handle(ctx, newChangeOrderStatusCommand(t, customerOf(o), o, order.Cancelled))

	require.NoError(t, err)
	f.assertExpectations(t)
	assert.Equal(t, order.Cancelled, o.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_CancelInTransit(t *testing.T) {
	ctx := context.Background()
	r := newRestaurant(t, true)
	o := orderAt(t, r, order.InTransit)
	c := newCourier(t, courier.Busy)
	d := deliveryAt(t, o, c, delivery.InTransit)

	f := newUoWFixture(ctx)
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		f.restaurants.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		f.deliveries.On("GetByOrder", ctx, o.ID()).Return(d, nil).Once(),
		f.couriers.On("Get", ctx, c.ID()).Return(c, nil).Once(),
		f.deliveries.On("Update", ctx, d).Return(nil).Once(),
		f.couriers.On("Update", ctx, c).Return(nil).Once(),
		f.orders.On("Update", ctx, o).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
	)

	err := commands.NewChangeOrderStatusCommandHandler(orderFactory(f)).
		Handle(ctx, newChangeOrderStatusCommand(t, ownerOf(r), o, order.Cancelled))

	require.NoError(t, err)
	f.assertExpectations(t)
	assert.Equal(t, order.Cancelled, o.Status())
	assert.Equal(t, delivery.Failed, d.Status())
	assert.Equal(t, services.CancellationNote, d.Comments())
	assert.Equal(t, courier.Free, c.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_CancelRemovesAssignedDelivery(t *testing.T) {
	ctx := context.Background()
	r := newRestaurant(t, true)
	o := orderAt(t, r, order.InTransit)
	c := newCourier(t, courier.Busy)
	d := deliveryAt(t, o, c, delivery.Assigned)

	f := newUoWFixture(ctx)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.restaurants.On("Get", ctx, r.ID()).Return(r, nil).Once()
	f.deliveries.On("GetByOrder", ctx, o.ID()).Return(d, nil).Once()
	f.couriers.On("Get", ctx, c.ID()).Return(c, nil).Once()
	f.deliveries.On("Delete", ctx, d).Return(nil).Once()
	f.couriers.On("Update", ctx, c).Return(nil).Once()
	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	err := commands.NewChangeOrderStatusCommandHandler(orderFactory(f)).
		Handle(ctx, newChangeOrderStatusCommand(t, admin(), o, order.Cancelled))

	require.NoError(t, err)
	f.assertExpectations(t)
	assert.Equal(t, order.Cancelled, o.Status())
	assert.Equal(t, courier.Free, c.Status())
	f.deliveries.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_CancelTerminal(t *testing.T) {
	for _, status := range []order.Status{order.Delivered, order.Cancelled} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := context.Background()
			r := newRestaurant(t, true)
			o := orderAt(t, r, status)

			f := newUoWFixture(ctx)
			f.uow.On("Begin", ctx).Return(nil).Once()
			f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
			f.restaurants.On("Get", ctx, r.ID()).Return(r, nil).Once()
			f.deliveries.On("GetByOrder", ctx, o.ID()).
				Return(nil, errs.NewObjectNotFoundError("delivery", o.ID())).Maybe()

			err := commands.NewChangeOrderStatusCommandHandler(orderFactory(f)).
				Handle(ctx, newChangeOrderStatusCommand(t, ownerOf(r), o, order.Cancelled))

			require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
			assert.Equal(t, status, o.Status())
			f.uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}
