package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/ddd"
	"fooddelivery/internal/pkg/errs"
)

const (
	MaxCommentsLength = 500

	// LocationUpdate names the attempted operation when a position is reported
	// outside IN_TRANSIT.
	LocationUpdate = "LOCATION_UPDATE"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")

// Delivery tracks one courier handling exactly one order.
//
// The aggregate only guards its own state machine. The effects on the order and
// on the courier are applied by services.Fulfillment in the same unit of work.
type Delivery struct {
	id          kernel.UUID
	orderID     kernel.UUID
	courierID   kernel.UUID
	status      Status
	location    *kernel.GeoPoint
	comments    string
	assignedAt  time.Time
	startedAt   *time.Time
	updatedAt   time.Time
	deliveredAt *time.Time

	events        ddd.EventLog
	isConstructed bool
}

// NewDelivery creates an ASSIGNED delivery for orderID handled by courierID.
func NewDelivery(id, orderID, courierID kernel.UUID, at time.Time) (*Delivery, error) {
	if err := errors.Join(
		requireID("id", id),
		requireID("order id", orderID),
		requireID("courier id", courierID),
	); err != nil {
		return nil, err
	}

	d := &Delivery{
		id:            id,
		orderID:       orderID,
		courierID:     courierID,
		status:        Assigned,
		assignedAt:    at.UTC(),
		updatedAt:     at.UTC(),
		isConstructed: true,
	}
	d.events.Record(newAssignedEvent(d))
	return d, nil
}

// Snapshot is the persisted state of a delivery.
type Snapshot struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	CourierID   kernel.UUID
	Status      Status
	Location    *kernel.GeoPoint
	Comments    string
	AssignedAt  time.Time
	StartedAt   *time.Time
	UpdatedAt   time.Time
	DeliveredAt *time.Time
}

func RestoreDelivery(s Snapshot) (*Delivery, error) {
	if err := errors.Join(
		requireID("id", s.ID),
		requireID("order id", s.OrderID),
		requireID("courier id", s.CourierID),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Delivery{
		id:            s.ID,
		orderID:       s.OrderID,
		courierID:     s.CourierID,
		status:        s.Status,
		location:      s.Location,
		comments:      s.Comments,
		assignedAt:    s.AssignedAt.UTC(),
		startedAt:     s.StartedAt,
		updatedAt:     s.UpdatedAt.UTC(),
		deliveredAt:   s.DeliveredAt,
		isConstructed: true,
	}, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID            { return d.id }
func (d *Delivery) OrderID() kernel.UUID       { return d.orderID }
func (d *Delivery) CourierID() kernel.UUID     { return d.courierID }
func (d *Delivery) Status() Status             { return d.status }
func (d *Delivery) Location() *kernel.GeoPoint { return d.location }
func (d *Delivery) Comments() string           { return d.comments }
func (d *Delivery) AssignedAt() time.Time      { return d.assignedAt }
func (d *Delivery) StartedAt() *time.Time      { return d.startedAt }
func (d *Delivery) UpdatedAt() time.Time       { return d.updatedAt }
func (d *Delivery) DeliveredAt() *time.Time    { return d.deliveredAt }

func (d *Delivery) IsHandledBy(courierID kernel.UUID) bool {
	return d.courierID.IsEqual(courierID)
}

// Transition moves the delivery to target. Non-empty comments replace the stored ones.
func (d *Delivery) Transition(target Status, comments string, at time.Time) error {
	next, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}
	if err = d.setComments(comments); err != nil {
		return err
	}

	from := d.status
	d.status = next
	d.updatedAt = at.UTC()
	stamp := d.updatedAt
	switch next { //nolint:exhaustive // only these moves stamp extra fields
	case InTransit:
		d.startedAt = &stamp
	case Delivered:
		d.deliveredAt = &stamp
	}

	d.events.Record(newStatusChangedEvent(d, from, next, d.updatedAt))
	return nil
}

func (d *Delivery) StartTransit(at time.Time) error {
	return d.Transition(InTransit, "", at)
}

func (d *Delivery) MarkDelivered(comments string, at time.Time) error {
	return d.Transition(Delivered, comments, at)
}

func (d *Delivery) MarkFailed(comments string, at time.Time) error {
	return d.Transition(Failed, comments, at)
}

// Reassign hands the delivery to another courier and returns the previous one.
// Comments and the last known location are cleared so the new courier starts fresh.
func (d *Delivery) Reassign(courierID kernel.UUID, at time.Time) (kernel.UUID, error) {
	if err := requireID("courier id", courierID); err != nil {
		return kernel.UUID{}, err
	}
	if !d.status.CanBeReassigned() {
		return kernel.UUID{}, errs.NewInvalidStateTransitionError("delivery", d.status.String(), Assigned.String())
	}
	if d.courierID.IsEqual(courierID) {
		return kernel.UUID{}, errs.NewInvariantViolationError("delivery is already assigned to this courier")
	}

	previous := d.courierID
	from := d.status
	d.courierID = courierID
	d.status = Assigned
	d.comments = ""
	d.location = nil
	d.startedAt = nil
	d.assignedAt = at.UTC()
	d.updatedAt = at.UTC()

	d.events.Record(newReassignedEvent(d, previous.String(), d.updatedAt))
	if from != Assigned {
		d.events.Record(newStatusChangedEvent(d, from, Assigned, d.updatedAt))
	}
	return previous, nil
}

// UpdateLocation records the courier's position. Only IN_TRANSIT deliveries move.
func (d *Delivery) UpdateLocation(point kernel.GeoPoint, at time.Time) error {
	if err := point.Validate(); err != nil {
		return err
	}
	if d.status != InTransit {
		return errs.NewInvalidStateTransitionError("delivery", d.status.String(), LocationUpdate)
	}
	d.location = &point
	d.updatedAt = at.UTC()
	return nil
}

// CheckDeletable fails unless the delivery is ASSIGNED or FAILED.
func (d *Delivery) CheckDeletable() error {
	if !d.status.CanBeDeleted() {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("delivery in status %s cannot be deleted", d.status))
	}
	return nil
}

func (d *Delivery) DomainEvents() []ddd.Event {
	return d.events.Events()
}

func (d *Delivery) ClearDomainEvents() {
	d.events.Clear()
}

func (d *Delivery) setComments(comments string) error {
	comments = strings.TrimSpace(comments)
	if comments == "" {
		return nil
	}
	if len(comments) > MaxCommentsLength {
		return errs.NewValueIsOutOfRangeError("comments length", len(comments), 0, MaxCommentsLength)
	}
	d.comments = comments
	return nil
}

func requireID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}
