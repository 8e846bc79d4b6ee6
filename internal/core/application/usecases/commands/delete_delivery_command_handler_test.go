package commands_test

import (
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteDeliveryCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name          string
		orderStatus   order.Status
		status        delivery.Status
		courierStatus courier.Status
		wantOrder     order.Status
		wantCourier   courier.Status
		wantErr       error
	}{
		{
			name:          "assigned returns order to ready",
			orderStatus:   order.InTransit,
			status:        delivery.Assigned,
			courierStatus: courier.Busy,
			wantOrder:     order.Ready,
			wantCourier:   courier.Free,
		},
		{
			name:          "failed leaves courier alone",
			orderStatus:   order.Ready,
			status:        delivery.Failed,
			courierStatus: courier.Busy,
			wantOrder:     order.Ready,
			wantCourier:   courier.Busy,
		},
		{
			name:          "in transit is kept",
			orderStatus:   order.InTransit,
			status:        delivery.InTransit,
			courierStatus: courier.Busy,
			wantOrder:     order.InTransit,
			wantCourier:   courier.Busy,
			wantErr:       errs.ErrInvariantViolation,
		},
		{
			name:          "delivered is kept",
			orderStatus:   order.Delivered,
			status:        delivery.Delivered,
			courierStatus: courier.Free,
			wantOrder:     order.Delivered,
			wantCourier:   courier.Free,
			wantErr:       errs.ErrInvariantViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			r := newRestaurant(t, true)
			o := orderAt(t, r, tt.orderStatus)
			c := newCourier(t, tt.courierStatus)
			d := deliveryAt(t, o, c, tt.status)
			tracker := new(MockLocationTracker)

			f := newUoWFixture(ctx)
			f.uow.On("Begin", ctx).Return(nil).Once()
			mock.InOrder(
				f.deliveries.On("OrderIDOf", ctx, d.ID()).Return(o.ID(), nil).Once(),
				f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
				f.deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once(),
			)
			f.restaurants.On("Get", ctx, r.ID()).Return(r, nil).Once()
			f.couriers.On("Get", ctx, c.ID()).Return(c, nil).Once()
			if tt.wantErr == nil {
				f.deliveries.On("Delete", ctx, d).Return(nil).Once()
				f.orders.On("Update", ctx, o).Return(nil).Once()
				f.couriers.On("Update", ctx, c).Return(nil).Once()
				f.uow.On("Commit", ctx).Return(nil).Once()
				tracker.On("Forget", ctx, d.ID()).Return(nil).Once()
			}

			cmd, err := commands.NewDeleteDeliveryCommand(ownerOf(r), d.ID(), true)
			require.NoError(t, err)

			err = commands.NewDeleteDeliveryCommandHandler(deliveryFactory(f), tracker, discardLogger()).
				Handle(ctx, cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				f.deliveries.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
			}
			f.assertExpectations(t)
			tracker.AssertExpectations(t)
			assert.Equal(t, tt.wantOrder, o.Status())
			assert.Equal(t, tt.wantCourier, c.Status())
		})
	}
}

func TestDeleteDeliveryCommandHandler_Handle_CustomerIsRejected(t *testing.T) {
	ctx := context.Background()
	r := newRestaurant(t, true)
	o := orderAt(t, r, order.InTransit)
	d := deliveryAt(t, o, newCourier(t, courier.Busy), delivery.Assigned)

	f := newUoWFixture(ctx)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.deliveries.On("OrderIDOf", ctx, d.ID()).Return(o.ID(), nil).Once()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()
	f.restaurants.On("Get", ctx, r.ID()).Return(r, nil).Once()

	cmd, err := commands.NewDeleteDeliveryCommand(customerOf(o), d.ID(), true)
	require.NoError(t, err)

	err = commands.NewDeleteDeliveryCommandHandler(deliveryFactory(f), new(MockLocationTracker), discardLogger()).
		Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrOwnershipViolation)
	f.assertExpectations(t)
}
