package delivery

import (
	"time"

	"fooddelivery/internal/pkg/ddd"
)

const (
	AssignedEventName      = "delivery.assigned"
	StatusChangedEventName = "delivery.status_changed"
	ReassignedEventName    = "delivery.reassigned"
)

type AssignedEvent struct {
	ddd.BaseEvent
	OrderID   string `json:"orderId"`
	CourierID string `json:"courierId"`
}

type StatusChangedEvent struct {
	ddd.BaseEvent
	OrderID   string `json:"orderId"`
	CourierID string `json:"courierId"`
	From      string `json:"from"`
	To        string `json:"to"`
	Comments  string `json:"comments,omitempty"`
}

type ReassignedEvent struct {
	ddd.BaseEvent
	OrderID           string `json:"orderId"`
	PreviousCourierID string `json:"previousCourierId"`
	CourierID         string `json:"courierId"`
}

func newAssignedEvent(d *Delivery) AssignedEvent {
	return AssignedEvent{
		BaseEvent: ddd.NewBaseEvent(AssignedEventName, d.id.String(), d.assignedAt),
		OrderID:   d.orderID.String(),
		CourierID: d.courierID.String(),
	}
}

func newStatusChangedEvent(d *Delivery, from, to Status, at time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent: ddd.NewBaseEvent(StatusChangedEventName, d.id.String(), at),
		OrderID:   d.orderID.String(),
		CourierID: d.courierID.String(),
		From:      from.String(),
		To:        to.String(),
		Comments:  d.comments,
	}
}

func newReassignedEvent(d *Delivery, previous string, at time.Time) ReassignedEvent {
	return ReassignedEvent{
		BaseEvent:         ddd.NewBaseEvent(ReassignedEventName, d.id.String(), at),
		OrderID:           d.orderID.String(),
		PreviousCourierID: previous,
		CourierID:         d.courierID.String(),
	}
}
