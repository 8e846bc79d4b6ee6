package commands_test

import (
	"context"
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTransitionDeliveryCommand(
	t *testing.T,
	p account.Principal,
	d *delivery.Delivery,
	target delivery.Status,
) commands.TransitionDeliveryCommand {
	t.Helper()
	cmd, err := commands.NewTransitionDeliveryCommand(p, d.ID(), target, "", true)
	require.NoError(t, err)
	return cmd
}

type transitionFixture struct {
	*uowFixture
	order    *order.Order
	courier  *courier.Courier
	delivery *delivery.Delivery
	tracker  *MockLocationTracker
}

func newTransitionFixture(t *testing.T, status delivery.Status) *transitionFixture {
	t.Helper()
	ctx := context.Background()
	r := newRestaurant(t, true)
	o := orderAt(t, r, order.InTransit)
	c := newCourier(t, courier.Busy)
	d := deliveryAt(t, o, c, status)

	f := &transitionFixture{
		uowFixture: newUoWFixture(ctx),
		order:      o,
		courier:    c,
		delivery:   d,
		tracker:    new(MockLocationTracker),
	}
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.deliveries.On("OrderIDOf", ctx, d.ID()).Return(o.ID(), nil).Once(),
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		f.deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		f.couriers.On("Get", ctx, c.ID()).Return(c, nil).Once(),
	)
	return f
}

func (f *transitionFixture) handler() commands.TransitionDeliveryCommandHandler {
	return commands.NewTransitionDeliveryCommandHandler(deliveryFactory(f.uowFixture), f.tracker, discardLogger())
}

func (f *transitionFixture) expectSaved(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	f.deliveries.On("Update", ctx, f.delivery).Return(nil).Once()
	f.orders.On("Update", ctx, f.order).Return(nil).Once()
	f.couriers.On("Update", ctx, f.courier).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
}

func TestTransitionDeliveryCommandHandler_Handle_StartTransit(t *testing.T) {
	ctx := context.Background()
	f := newTransitionFixture(t, delivery.Assigned)
	f.expectSaved(t)

	cmd := newTransitionDeliveryCommand(t, courierPrincipal(f.courier), f.delivery, delivery.InTransit)
	err := f.handler().Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)
	assert.Equal(t, delivery.InTransit, f.delivery.Status())
	assert.NotNil(t, f.delivery.StartedAt())
	assert.Equal(t, order.InTransit, f.order.Status())
	assert.Equal(t, courier.Busy, f.courier.Status())
	f.tracker.AssertNotCalled(t, "Forget", mock.Anything, mock.Anything)
}

func TestTransitionDeliveryCommandHandler_Handle_Delivered(t *testing.T) {
	ctx := context.Background()
	f := newTransitionFixture(t, delivery.InTransit)
	f.expectSaved(t)
	f.tracker.On("Forget", ctx, f.delivery.ID()).Return(nil).Once()

	cmd := newTransitionDeliveryCommand(t, courierPrincipal(f.courier), f.delivery, delivery.Delivered)
	err := f.handler().Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)
	f.tracker.AssertExpectations(t)
	assert.Equal(t, delivery.Delivered, f.delivery.Status())
	assert.NotNil(t, f.delivery.DeliveredAt())
	assert.Equal(t, order.Delivered, f.order.Status())
	assert.Equal(t, courier.Free, f.courier.Status())
}

func TestTransitionDeliveryCommandHandler_Handle_FailedReturnsOrderToReady(t *testing.T) {
	ctx := context.Background()
	f := newTransitionFixture(t, delivery.InTransit)
	f.expectSaved(t)
	f.tracker.On("Forget", ctx, f.delivery.ID()).Return(errors.New("redis down")).Once()

	cmd, err := commands.NewTransitionDeliveryCommand(courierPrincipal(f.courier), f.delivery.ID(),
		delivery.Failed, "customer not at the address", true)
	require.NoError(t, err)

	err = f.handler().Handle(ctx, cmd)

	require.NoError(t, err, "a cache failure after commit must not fail the command")
	f.assertExpectations(t)
	assert.Equal(t, delivery.Failed, f.delivery.Status())
	assert.Equal(t, "customer not at the address", f.delivery.Comments())
	assert.Equal(t, order.Ready, f.order.Status())
	assert.Equal(t, courier.Free, f.courier.Status())
}

func TestTransitionDeliveryCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := context.Background()
	f := newTransitionFixture(t, delivery.Assigned)

	cmd := newTransitionDeliveryCommand(t, courierPrincipal(f.courier), f.delivery, delivery.Delivered)
	err := f.handler().Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	f.assertExpectations(t)
	assert.Equal(t, delivery.Assigned, f.delivery.Status())
	assert.Equal(t, order.InTransit, f.order.Status())
	f.deliveries.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionDeliveryCommandHandler_Handle_OtherCourier(t *testing.T) {
	ctx := context.Background()
	f := newTransitionFixture(t, delivery.Assigned)
	intruder := newCourier(t, courier.Free)

	cmd := newTransitionDeliveryCommand(t, courierPrincipal(intruder), f.delivery, delivery.InTransit)
	err := f.handler().Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrOwnershipViolation)
	f.assertExpectations(t)
	f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, delivery.Assigned, f.delivery.Status())
}

func TestTransitionDeliveryCommandHandler_Handle_DeliveryNotFound(t *testing.T) {
	ctx := context.Background()
	d := deliveryAt(t, orderAt(t, newRestaurant(t, true), order.InTransit), newCourier(t, courier.Busy), delivery.Assigned)

	f := newUoWFixture(ctx)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.deliveries.On("OrderIDOf", ctx, d.ID()).Return(kernel.UUID{}, errs.NewObjectNotFoundError("delivery", d.ID())).Once()

	cmd := newTransitionDeliveryCommand(t, admin(), d, delivery.InTransit)
	err := commands.NewTransitionDeliveryCommandHandler(deliveryFactory(f), new(MockLocationTracker), discardLogger()).
		Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.assertExpectations(t)
}
