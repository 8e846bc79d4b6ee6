package services

import (
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// CancellationNote is stored on an IN_TRANSIT delivery that fails because its order was cancelled.
const CancellationNote = "order cancelled"

// Fulfillment applies the side effects that couple the order and delivery state machines.
//
// Side effects per operation:
//   - Assign: order READY -> IN_TRANSIT, new delivery ASSIGNED
//   - Transition to DELIVERED: order IN_TRANSIT -> DELIVERED
//   - Transition to FAILED: order IN_TRANSIT -> READY
//   - Reassign from FAILED: order READY -> IN_TRANSIT
//   - Withdraw of an ASSIGNED delivery: order IN_TRANSIT -> READY
//   - CancelOrder: order -> CANCELLED, ASSIGNED/FAILED delivery withdrawn,
//     IN_TRANSIT delivery marked FAILED
//
// Courier status is only touched when the caller passes syncCourier=true:
// assignment occupies the courier, and finishing or withdrawing a delivery releases it.
//
// Example usage:
//
//	f := services.NewFulfillment()
//	d, err := f.Assign(o, c, kernel.NewUUID(), true, time.Now())
//	if err != nil {
//	    return err
//	}
//	// persist o, c and d in the same transaction
type Fulfillment struct{}

func NewFulfillment() Fulfillment {
	return Fulfillment{}
}

// Assign creates the delivery of a READY order and moves the order IN_TRANSIT.
//
// Parameters:
//   - o: the order, must be READY
//   - c: the courier, must be FREE and available
//   - deliveryID: identifier of the new delivery
//   - syncCourier: mark the courier BUSY as part of the assignment
//   - at: time of assignment
//
// The caller is responsible for checking that the order has no delivery yet.
func (Fulfillment) Assign(
	o *order.Order,
	c *courier.Courier,
	deliveryID kernel.UUID,
	syncCourier bool,
	at time.Time,
) (*delivery.Delivery, error) {
	if err := validate(o, c); err != nil {
		return nil, err
	}
	if o.Status() != order.Ready {
		return nil, errs.NewInvalidStateTransitionError("order", o.Status().String(), order.InTransit.String())
	}
	if err := c.CheckAssignable(); err != nil {
		return nil, err
	}

	d, err := delivery.NewDelivery(deliveryID, o.ID(), c.ID(), at)
	if err != nil {
		return nil, err
	}
	if err = o.MarkInTransit(at); err != nil {
		return nil, err
	}
	if syncCourier {
		if err = c.Occupy(at); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Transition moves the delivery to target and mirrors the outcome on the order.
// c is the courier handling the delivery; it may be nil when syncCourier is false.
func (Fulfillment) Transition(
	d *delivery.Delivery,
	o *order.Order,
	c *courier.Courier,
	target delivery.Status,
	comments string,
	syncCourier bool,
	at time.Time,
) error {
	if err := belongsTo(d, o); err != nil {
		return err
	}
	if syncCourier {
		if err := handles(d, c); err != nil {
			return err
		}
	}
	if !d.Status().CanTransitionTo(target) {
		return errs.NewInvalidStateTransitionError("delivery", d.Status().String(), target.String())
	}

	switch target { //nolint:exhaustive // other targets are rejected above
	case delivery.InTransit, delivery.Delivered:
		if o.Status() != order.InTransit {
			return errs.NewInvariantViolationError(
				fmt.Sprintf("order must be %s to move its delivery to %s, got %s", order.InTransit, target, o.Status()))
		}
	}

	if err := d.Transition(target, comments, at); err != nil {
		return err
	}

	switch target { //nolint:exhaustive // IN_TRANSIT has no side effect on the order
	case delivery.Delivered:
		if err := o.MarkDelivered(at); err != nil {
			return err
		}
	case delivery.Failed:
		if o.Status() == order.InTransit {
			if err := o.ReturnToReady(at); err != nil {
				return err
			}
		}
	}

	if syncCourier && (target == delivery.Delivered || target == delivery.Failed) {
		c.Release(at)
	}
	return nil
}

// Reassign hands an ASSIGNED or FAILED delivery to next. previous is the courier
// currently on the delivery and is only needed when syncCourier is true.
// A courier of a FAILED delivery was already released when it failed, so it is not released twice.
func (Fulfillment) Reassign(
	d *delivery.Delivery,
	o *order.Order,
	previous, next *courier.Courier,
	syncCourier bool,
	at time.Time,
) error {
	if err := belongsTo(d, o); err != nil {
		return err
	}
	if err := validate(next); err != nil {
		return err
	}
	if syncCourier {
		if err := handles(d, previous); err != nil {
			return err
		}
	}
	if err := next.CheckAssignable(); err != nil {
		return err
	}

	from := d.Status()
	if from == delivery.Failed && o.Status() != order.Ready {
		return errs.NewInvalidStateTransitionError("order", o.Status().String(), order.InTransit.String())
	}
	if _, err := d.Reassign(next.ID(), at); err != nil {
		return err
	}
	if from == delivery.Failed {
		if err := o.MarkInTransit(at); err != nil {
			return err
		}
	}

	if syncCourier {
		if from == delivery.Assigned {
			previous.Release(at)
		}
		if err := next.Occupy(at); err != nil {
			return err
		}
	}
	return nil
}

// Withdraw prepares an ASSIGNED or FAILED delivery for deletion. An order whose
// delivery is withdrawn while ASSIGNED goes back to READY.
func (Fulfillment) Withdraw(
	d *delivery.Delivery,
	o *order.Order,
	c *courier.Courier,
	syncCourier bool,
	at time.Time,
) error {
	if err := belongsTo(d, o); err != nil {
		return err
	}
	if syncCourier {
		if err := handles(d, c); err != nil {
			return err
		}
	}
	if err := d.CheckDeletable(); err != nil {
		return err
	}

	if d.Status() != delivery.Assigned {
		return nil
	}
	if o.Status() == order.InTransit {
		if err := o.ReturnToReady(at); err != nil {
			return err
		}
	}
	if syncCourier {
		c.Release(at)
	}
	return nil
}

// CancelOrder cancels o and settles its delivery, if any.
// The returned flag tells the caller to delete d; otherwise d, when present, must be updated.
func (Fulfillment) CancelOrder(
	o *order.Order,
	d *delivery.Delivery,
	c *courier.Courier,
	syncCourier bool,
	at time.Time,
) (bool, error) {
	if err := validate(o); err != nil {
		return false, err
	}
	if d != nil {
		if err := belongsTo(d, o); err != nil {
			return false, err
		}
		if syncCourier {
			if err := handles(d, c); err != nil {
				return false, err
			}
		}
	}

	if err := o.Cancel(at); err != nil {
		return false, err
	}
	if d == nil {
		return false, nil
	}

	switch d.Status() { //nolint:exhaustive // a DELIVERED delivery implies a DELIVERED order, rejected above
	case delivery.Assigned:
		if syncCourier {
			c.Release(at)
		}
		return true, nil
	case delivery.Failed:
		return true, nil
	case delivery.InTransit:
		if err := d.MarkFailed(CancellationNote, at); err != nil {
			return false, err
		}
		if syncCourier {
			c.Release(at)
		}
	}
	return false, nil
}

type validator interface {
	Validate() error
}

func validate(aggregates ...validator) error {
	for _, a := range aggregates {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func belongsTo(d *delivery.Delivery, o *order.Order) error {
	if err := validate(d, o); err != nil {
		return err
	}
	if !d.OrderID().IsEqual(o.ID()) {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("delivery %s does not belong to order %s", d.ID(), o.ID()))
	}
	return nil
}

func handles(d *delivery.Delivery, c *courier.Courier) error {
	if c == nil {
		return errs.NewValueIsRequiredError("courier")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if !d.IsHandledBy(c.ID()) {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("courier %s does not handle delivery %s", c.ID(), d.ID()))
	}
	return nil
}
