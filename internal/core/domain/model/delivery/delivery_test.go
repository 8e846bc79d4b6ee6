package delivery_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var assignedAt = time.Date(2025, 5, 10, 19, 0, 0, 0, time.UTC)

func newDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), assignedAt)
	require.NoError(t, err)
	return d
}

func point(t *testing.T) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(4.65, -74.05)
	require.NoError(t, err)
	return p
}

func TestNewDelivery(t *testing.T) {
	d := newDelivery(t)

	assert.Equal(t, delivery.Assigned, d.Status())
	assert.Equal(t, assignedAt, d.AssignedAt())
	assert.Nil(t, d.Location())
	require.Len(t, d.DomainEvents(), 1)
	assert.Equal(t, delivery.AssignedEventName, d.DomainEvents()[0].EventName())

	_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), assignedAt)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestDelivery_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    []delivery.Status
		to      delivery.Status
		allowed bool
	}{
		{name: "assigned to in transit", to: delivery.InTransit, allowed: true},
		{name: "assigned to failed", to: delivery.Failed, allowed: true},
		{name: "assigned to delivered", to: delivery.Delivered},
		{name: "in transit to delivered", from: []delivery.Status{delivery.InTransit}, to: delivery.Delivered, allowed: true},
		{name: "in transit to failed", from: []delivery.Status{delivery.InTransit}, to: delivery.Failed, allowed: true},
		{name: "in transit back to assigned", from: []delivery.Status{delivery.InTransit}, to: delivery.Assigned},
		{
			name: "delivered to failed",
			from: []delivery.Status{delivery.InTransit, delivery.Delivered},
			to:   delivery.Failed,
		},
		{name: "failed to failed", from: []delivery.Status{delivery.Failed}, to: delivery.Failed},
		{name: "failed to in transit", from: []delivery.Status{delivery.Failed}, to: delivery.InTransit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDelivery(t)
			for _, s := range tt.from {
				require.NoError(t, d.Transition(s, "", assignedAt))
			}
			before := d.Status()

			err := d.Transition(tt.to, "", assignedAt.Add(time.Minute))

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, d.Status())
				return
			}
			require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
			assert.Equal(t, before, d.Status())
		})
	}
}

func TestDelivery_Timestamps(t *testing.T) {
	d := newDelivery(t)
	started := assignedAt.Add(5 * time.Minute)
	done := assignedAt.Add(25 * time.Minute)

	require.NoError(t, d.StartTransit(started))
	require.NoError(t, d.MarkDelivered("entregado en portería", done))

	require.NotNil(t, d.StartedAt())
	require.NotNil(t, d.DeliveredAt())
	assert.Equal(t, started, *d.StartedAt())
	assert.Equal(t, done, *d.DeliveredAt())
	assert.Equal(t, "entregado en portería", d.Comments())
}

func TestDelivery_UpdateLocation(t *testing.T) {
	t.Run("rejected while assigned", func(t *testing.T) {
		d := newDelivery(t)

		err := d.UpdateLocation(point(t), assignedAt)

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		var transitionErr *errs.InvalidStateTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "ASSIGNED", transitionErr.Current)
		assert.Nil(t, d.Location())
	})

	t.Run("accepted in transit", func(t *testing.T) {
		d := newDelivery(t)
		require.NoError(t, d.StartTransit(assignedAt))

		require.NoError(t, d.UpdateLocation(point(t), assignedAt))

		require.NotNil(t, d.Location())
		assert.True(t, d.Location().IsEqual(point(t)))
	})

	t.Run("rejects unconstructed points", func(t *testing.T) {
		d := newDelivery(t)
		require.NoError(t, d.StartTransit(assignedAt))

		require.ErrorIs(t, d.UpdateLocation(kernel.GeoPoint{}, assignedAt), errs.ErrValueIsRequired)
	})
}

func TestDelivery_Reassign(t *testing.T) {
	t.Run("from failed clears history", func(t *testing.T) {
		d := newDelivery(t)
		original := d.CourierID()
		require.NoError(t, d.StartTransit(assignedAt))
		require.NoError(t, d.UpdateLocation(point(t), assignedAt))
		require.NoError(t, d.MarkFailed("moto averiada", assignedAt))
		d.ClearDomainEvents()

		replacement := kernel.NewUUID()
		previous, err := d.Reassign(replacement, assignedAt.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, original, previous)
		assert.Equal(t, delivery.Assigned, d.Status())
		assert.True(t, d.IsHandledBy(replacement))
		assert.Empty(t, d.Comments())
		assert.Nil(t, d.Location())
		assert.Nil(t, d.StartedAt())
		require.Len(t, d.DomainEvents(), 2)
		assert.Equal(t, delivery.ReassignedEventName, d.DomainEvents()[0].EventName())
	})

	t.Run("from in transit is rejected", func(t *testing.T) {
		d := newDelivery(t)
		require.NoError(t, d.StartTransit(assignedAt))

		_, err := d.Reassign(kernel.NewUUID(), assignedAt)

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("to the same courier is rejected", func(t *testing.T) {
		d := newDelivery(t)

		_, err := d.Reassign(d.CourierID(), assignedAt)

		require.ErrorIs(t, err, errs.ErrInvariantViolation)
	})
}

func TestDelivery_CheckDeletable(t *testing.T) {
	d := newDelivery(t)
	require.NoError(t, d.CheckDeletable())

	require.NoError(t, d.StartTransit(assignedAt))
	require.ErrorIs(t, d.CheckDeletable(), errs.ErrInvariantViolation)

	require.NoError(t, d.MarkFailed("", assignedAt))
	require.NoError(t, d.CheckDeletable())
}

func TestRestoreDelivery(t *testing.T) {
	p := point(t)
	d, err := delivery.RestoreDelivery(delivery.Snapshot{
		ID:         kernel.NewUUID(),
		OrderID:    kernel.NewUUID(),
		CourierID:  kernel.NewUUID(),
		Status:     delivery.InTransit,
		Location:   &p,
		AssignedAt: assignedAt,
		UpdatedAt:  assignedAt,
	})

	require.NoError(t, err)
	assert.Equal(t, delivery.InTransit, d.Status())
	assert.Empty(t, d.DomainEvents())

	_, err = delivery.RestoreDelivery(delivery.Snapshot{})
	require.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	s, err := delivery.ParseStatus("failed")
	require.NoError(t, err)
	assert.Equal(t, delivery.Failed, s)

	_, err = delivery.ParseStatus("LOST")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
