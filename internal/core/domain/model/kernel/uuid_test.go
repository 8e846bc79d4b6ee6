package kernel_test

import (
	"encoding/json"
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderIDText = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

var orderIDBytes = []byte{
	0x7c, 0x9e, 0x66, 0x79, 0x74, 0x25, 0x40, 0xde,
	0x94, 0x4b, 0xe0, 0x7f, 0xc1, 0xf9, 0x0a, 0xe7,
}

func TestNewUUID_IdentifiesDistinctOrders(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, id.String())
		assert.False(t, seen[id.String()], "duplicate id %s", id)
		seen[id.String()] = true
	}
}

func TestUUIDFromString(t *testing.T) {
	accepted := map[string]string{
		"canonical":  orderIDText,
		"braced":     "{" + orderIDText + "}",
		"urn":        "urn:uuid:" + orderIDText,
		"no hyphens": "7c9e6679742540de944be07fc1f90ae7",
		"upper case": "7C9E6679-7425-40DE-944B-E07FC1F90AE7",
	}
	for name, input := range accepted {
		t.Run(name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(input)

			require.NoError(t, err)
			assert.Equal(t, orderIDText, id.String())
		})
	}

	for _, input := range []string{
		"",
		"order-1",
		"7c9e6679-7425-40de-944b",
		orderIDText + "-delivery",
		"7c9e6679-7425-40de-944b-e07fc1f90aeZ",
	} {
		_, err := kernel.UUIDFromString(input)
		require.Error(t, err, input)
		assert.Contains(t, err.Error(), "invalid UUID format")
	}
}

func TestUUIDFromString_NilParsesButIsNotAnID(t *testing.T) {
	id, err := kernel.UUIDFromString(uuid.Nil.String())

	require.NoError(t, err)
	require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
}

func TestUUIDFromBytes_ReadsStoredColumn(t *testing.T) {
	id, err := kernel.UUIDFromBytes(orderIDBytes)
	require.NoError(t, err)
	assert.Equal(t, orderIDText, id.String())

	stored := id.Bytes()
	assert.Equal(t, orderIDBytes, stored[:])

	_, err = kernel.UUIDFromBytes(orderIDBytes[:8])
	assert.ErrorContains(t, err, "invalid UUID format")

	_, err = kernel.UUIDFromBytes(make([]byte, 16))
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_IsEqual(t *testing.T) {
	fromText, err := kernel.UUIDFromString(orderIDText)
	require.NoError(t, err)
	fromColumn, err := kernel.UUIDFromBytes(orderIDBytes)
	require.NoError(t, err)

	assert.True(t, fromText.IsEqual(fromColumn))
	assert.False(t, fromText.IsEqual(kernel.NewUUID()))

	var unsetCourier, unsetRestaurant kernel.UUID
	assert.True(t, unsetCourier.IsEqual(unsetRestaurant))
	assert.False(t, unsetCourier.IsEqual(fromText))
}

func TestUUID_ZeroValueIsRejected(t *testing.T) {
	var delivery struct {
		ID        kernel.UUID
		CourierID kernel.UUID
	}
	delivery.ID = kernel.NewUUID()

	assert.NoError(t, delivery.ID.Validate())
	assert.ErrorIs(t, delivery.CourierID.Validate(), kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_BytesIsACopy(t *testing.T) {
	id := kernel.NewUUID()
	before := id.String()

	raw := id.Bytes()
	for i := range raw {
		raw[i] = 0xFF
	}

	assert.Equal(t, before, id.String())
	assert.NotEqual(t, before, raw.String())
}

func TestUUID_JSON(t *testing.T) {
	type assignRequest struct {
		OrderID   kernel.UUID  `json:"orderId"`
		CourierID *kernel.UUID `json:"courierId,omitempty"`
	}

	t.Run("encodes as a string", func(t *testing.T) {
		id, err := kernel.UUIDFromString(orderIDText)
		require.NoError(t, err)

		payload, err := json.Marshal(assignRequest{OrderID: id})

		require.NoError(t, err)
		assert.JSONEq(t, `{"orderId":"`+orderIDText+`"}`, string(payload))
	})

	t.Run("decodes request bodies", func(t *testing.T) {
		var req assignRequest
		err := json.Unmarshal([]byte(`{"orderId":"`+orderIDText+`","courierId":"`+orderIDText+`"}`), &req)

		require.NoError(t, err)
		assert.Equal(t, orderIDText, req.OrderID.String())
		require.NotNil(t, req.CourierID)
		assert.True(t, req.CourierID.IsEqual(req.OrderID))
	})

	t.Run("rejects malformed ids", func(t *testing.T) {
		var req assignRequest
		err := json.Unmarshal([]byte(`{"orderId":"order-1"}`), &req)

		assert.ErrorContains(t, err, "invalid UUID format")
	})
}
