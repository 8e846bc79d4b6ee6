package commands_test

import (
	"context"
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateDeliveryLocationCommand_OutOfRange(t *testing.T) {
	_, err := commands.NewUpdateDeliveryLocationCommand(admin(), kernel.NewUUID(), 91, 0)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestUpdateDeliveryLocationCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name     string
		status   delivery.Status
		trackErr error
		wantErr  error
	}{
		{name: "in transit", status: delivery.InTransit},
		{name: "cache failure is not fatal", status: delivery.InTransit, trackErr: errors.New("redis down")},
		{name: "assigned", status: delivery.Assigned, wantErr: errs.ErrInvalidStateTransition},
		{name: "delivered", status: delivery.Delivered, wantErr: errs.ErrInvalidStateTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			o := orderAt(t, newRestaurant(t, true), order.InTransit)
			c := newCourier(t, courier.Busy)
			d := deliveryAt(t, o, c, tt.status)
			tracker := new(MockLocationTracker)

			f := newUoWFixture(ctx)
			f.uow.On("Begin", ctx).Return(nil).Once()
			f.deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()
			f.couriers.On("Get", ctx, c.ID()).Return(c, nil).Once()
			if tt.wantErr == nil {
				f.deliveries.On("Update", ctx, d).Return(nil).Once()
				f.uow.On("Commit", ctx).Return(nil).Once()
				tracker.On("Track", ctx, d.ID(), mock.AnythingOfType("kernel.GeoPoint"), mock.AnythingOfType("time.Time")).
					Return(tt.trackErr).Once()
			}

			cmd, err := commands.NewUpdateDeliveryLocationCommand(courierPrincipal(c), d.ID(), 4.6482, -74.2478)
			require.NoError(t, err)

			err = commands.NewUpdateDeliveryLocationCommandHandler(deliveryFactory(f), tracker, discardLogger()).
				Handle(ctx, cmd)

			f.assertExpectations(t)
			tracker.AssertExpectations(t)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, d.Location())
				tracker.AssertNotCalled(t, "Track", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, d.Location())
			assert.InDelta(t, 4.6482, d.Location().Latitude(), 1e-9)
			assert.InDelta(t, -74.2478, d.Location().Longitude(), 1e-9)
		})
	}
}
