package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/ddd"
	"fooddelivery/internal/pkg/errs"
)

const (
	MaxAddressLength       = 255
	MaxNotesLength         = 500
	MaxPaymentMethodLength = 20
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Details holds the customer-provided fields of an order.
type Details struct {
	Address          string
	PaymentMethod    string
	Notes            string
	EstimatedMinutes *int
}

// Order is a customer's purchase from a single restaurant.
//
// The total is computed once in NewOrder as the sum of line item subtotals plus
// the delivery fee. Line items are immutable, so the total never drifts when menu
// prices change later.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	details      Details
	deliveryFee  kernel.Money
	total        kernel.Money
	status       Status
	items        []LineItem
	createdAt    time.Time
	updatedAt    time.Time

	events        ddd.EventLog
	isConstructed bool
}

// NewOrder places a PENDING order. Catalog rules (restaurant active, items
// available and from the same restaurant) are checked by the caller before the
// line items are built, since they need the catalog.
func NewOrder(
	id, customerID, restaurantID kernel.UUID,
	details Details,
	deliveryFee kernel.Money,
	items []LineItem,
	at time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     at.UTC(),
		updatedAt:     at.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, customerID, restaurantID),
		o.setDetails(details),
		o.setDeliveryFee(deliveryFee),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.total = o.computeTotal()
	o.events.Record(newPlacedEvent(o))
	return o, nil
}

// RestoreOrder rebuilds an order from persistence. The stored total is kept as is.
func RestoreOrder(
	id, customerID, restaurantID kernel.UUID,
	details Details,
	deliveryFee, total kernel.Money,
	status Status,
	items []LineItem,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, customerID, restaurantID),
		o.setDetails(details),
		o.setDeliveryFee(deliveryFee),
		o.setItems(items),
		total.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.total = total
	o.status = status
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID           { return o.id }
func (o *Order) CustomerID() kernel.UUID   { return o.customerID }
func (o *Order) RestaurantID() kernel.UUID { return o.restaurantID }
func (o *Order) Address() string           { return o.details.Address }
func (o *Order) PaymentMethod() string     { return o.details.PaymentMethod }
func (o *Order) Notes() string             { return o.details.Notes }
func (o *Order) EstimatedMinutes() *int    { return o.details.EstimatedMinutes }
func (o *Order) DeliveryFee() kernel.Money { return o.deliveryFee }
func (o *Order) Total() kernel.Money       { return o.total }
func (o *Order) Status() Status            { return o.status }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
func (o *Order) UpdatedAt() time.Time      { return o.updatedAt }

func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

func (o *Order) IsPlacedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// ChangeStatus moves the order along the table documented on Status.
func (o *Order) ChangeStatus(target Status, at time.Time) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.apply(next, at)
	return nil
}

func (o *Order) Confirm(at time.Time) error        { return o.ChangeStatus(Confirmed, at) }
func (o *Order) StartPreparing(at time.Time) error { return o.ChangeStatus(Preparing, at) }
func (o *Order) MarkReady(at time.Time) error      { return o.ChangeStatus(Ready, at) }
func (o *Order) MarkInTransit(at time.Time) error  { return o.ChangeStatus(InTransit, at) }
func (o *Order) MarkDelivered(at time.Time) error  { return o.ChangeStatus(Delivered, at) }
func (o *Order) Cancel(at time.Time) error         { return o.ChangeStatus(Cancelled, at) }

// ReturnToReady reopens an IN_TRANSIT order for a new courier after its
// delivery failed or was withdrawn.
func (o *Order) ReturnToReady(at time.Time) error {
	if o.status != InTransit {
		return errs.NewInvalidStateTransitionError("order", o.status.String(), Ready.String())
	}
	o.apply(Ready, at)
	return nil
}

// UpdateDetails edits the delivery address and notes of an order that is still open.
func (o *Order) UpdateDetails(address, notes string, at time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewInvariantViolationError(fmt.Sprintf("order in status %s can no longer be edited", o.status))
	}

	details := o.details
	details.Address = address
	details.Notes = notes
	if err := o.setDetails(details); err != nil {
		return err
	}
	o.updatedAt = at.UTC()
	return nil
}

func (o *Order) DomainEvents() []ddd.Event {
	return o.events.Events()
}

func (o *Order) ClearDomainEvents() {
	o.events.Clear()
}

func (o *Order) apply(next Status, at time.Time) {
	from := o.status
	o.status = next
	o.updatedAt = at.UTC()
	o.events.Record(newStatusChangedEvent(o, from, next, o.updatedAt))
}

func (o *Order) computeTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total.Add(o.deliveryFee)
}

func (o *Order) setIDs(id, customerID, restaurantID kernel.UUID) error {
	if err := errors.Join(
		requireID("id", id),
		requireID("customer id", customerID),
		requireID("restaurant id", restaurantID),
	); err != nil {
		return err
	}
	o.id = id
	o.customerID = customerID
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setDetails(details Details) error {
	details.Address = strings.TrimSpace(details.Address)
	details.PaymentMethod = strings.TrimSpace(details.PaymentMethod)
	details.Notes = strings.TrimSpace(details.Notes)

	var errList []error
	switch {
	case details.Address == "":
		errList = append(errList, errs.NewValueIsRequiredError("delivery address"))
	case len(details.Address) > MaxAddressLength:
		errList = append(errList, errs.NewValueIsOutOfRangeError(
			"delivery address length", len(details.Address), 1, MaxAddressLength))
	}
	switch {
	case details.PaymentMethod == "":
		errList = append(errList, errs.NewValueIsRequiredError("payment method"))
	case len(details.PaymentMethod) > MaxPaymentMethodLength:
		errList = append(errList, errs.NewValueIsOutOfRangeError(
			"payment method length", len(details.PaymentMethod), 1, MaxPaymentMethodLength))
	}
	if len(details.Notes) > MaxNotesLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError(
			"notes length", len(details.Notes), 0, MaxNotesLength))
	}
	if details.EstimatedMinutes != nil && *details.EstimatedMinutes < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"estimated minutes", fmt.Errorf("%d is negative", *details.EstimatedMinutes)))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	o.details = details
	return nil
}

func (o *Order) setDeliveryFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery fee", err)
	}
	o.deliveryFee = fee
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewInvariantViolationError("order must contain at least one line item")
	}
	o.items = slices.Clone(items)
	return nil
}

func requireID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}
