package order

import (
	"time"

	"fooddelivery/internal/pkg/ddd"
)

const (
	PlacedEventName        = "order.placed"
	StatusChangedEventName = "order.status_changed"
)

// PlacedEvent is recorded once, when a customer submits the order.
type PlacedEvent struct {
	ddd.BaseEvent
	CustomerID   string `json:"customerId"`
	RestaurantID string `json:"restaurantId"`
	Total        string `json:"total"`
	Items        int    `json:"items"`
}

// StatusChangedEvent is recorded on every lifecycle move.
type StatusChangedEvent struct {
	ddd.BaseEvent
	CustomerID   string `json:"customerId"`
	RestaurantID string `json:"restaurantId"`
	From         string `json:"from"`
	To           string `json:"to"`
}

func newPlacedEvent(o *Order) PlacedEvent {
	return PlacedEvent{
		BaseEvent:    ddd.NewBaseEvent(PlacedEventName, o.id.String(), o.createdAt),
		CustomerID:   o.customerID.String(),
		RestaurantID: o.restaurantID.String(),
		Total:        o.total.String(),
		Items:        len(o.items),
	}
}

func newStatusChangedEvent(o *Order, from, to Status, at time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent:    ddd.NewBaseEvent(StatusChangedEventName, o.id.String(), at),
		CustomerID:   o.customerID.String(),
		RestaurantID: o.restaurantID.String(),
		From:         from.String(),
		To:           to.String(),
	}
}
