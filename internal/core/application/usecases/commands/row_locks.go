package commands

import (
	"context"
	"sort"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// Repository Get calls lock the row until commit. Every handler takes the locks
// in one order: the order, then its delivery, then couriers sorted by id.

// lockOrderAndDelivery loads a delivery and its order, locking the order first.
func lockOrderAndDelivery(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	deliveryRepo ports.DeliveryRepository,
	deliveryID kernel.UUID,
) (*order.Order, *delivery.Delivery, error) {
	orderID, err := deliveryRepo.OrderIDOf(ctx, deliveryID)
	if err != nil {
		return nil, nil, err
	}

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	d, err := deliveryRepo.Get(ctx, deliveryID)
	if err != nil {
		return nil, nil, err
	}
	return o, d, nil
}

// lockCouriers loads couriers in id order and returns them in the order asked.
// A repeated id yields the same courier.
func lockCouriers(ctx context.Context, courierRepo ports.CourierRepository, ids ...kernel.UUID) ([]*courier.Courier, error) {
	sorted := make([]kernel.UUID, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].String() < sorted[j].String() })

	loaded := make(map[kernel.UUID]*courier.Courier, len(ids))
	for _, id := range sorted {
		if _, ok := loaded[id]; ok {
			continue
		}
		c, err := courierRepo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		loaded[id] = c
	}

	couriers := make([]*courier.Courier, len(ids))
	for i, id := range ids {
		couriers[i] = loaded[id]
	}
	return couriers, nil
}
