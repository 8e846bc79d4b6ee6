package courier

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")

	errCourierNotAssignable = errs.NewInvariantViolationError("courier must be FREE and available")
	errCourierUnavailable   = errs.NewInvariantViolationError("courier is not available")
	errCourierBusy          = errs.NewInvariantViolationError("courier has an open delivery")
)

// Courier is a delivery agent linked one-to-one to an account.
//
// The available flag is the courier's own declaration of being on shift.
// Turning it off makes the courier INACTIVE, turning it on makes them FREE.
// Only a FREE and available courier can take a new delivery.
type Courier struct {
	id           kernel.UUID
	accountID    kernel.UUID
	vehicle      string
	plate        string
	available    bool
	status       Status
	registeredAt time.Time
	updatedAt    time.Time

	isConstructed bool
}

func NewCourier(id, accountID kernel.UUID, vehicle, plate string, at time.Time) (*Courier, error) {
	return RestoreCourier(id, accountID, vehicle, plate, true, Free, at, at)
}

func RestoreCourier(
	id, accountID kernel.UUID,
	vehicle, plate string,
	available bool,
	status Status,
	registeredAt, updatedAt time.Time,
) (*Courier, error) {
	var vehicleErr error
	vehicle = strings.TrimSpace(vehicle)
	if vehicle == "" {
		vehicleErr = errs.NewValueIsRequiredError("vehicle")
	}

	if err := errors.Join(
		requireID("id", id),
		requireID("account id", accountID),
		vehicleErr,
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Courier{
		id:            id,
		accountID:     accountID,
		vehicle:       vehicle,
		plate:         strings.ToUpper(strings.TrimSpace(plate)),
		available:     available,
		status:        status,
		registeredAt:  registeredAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		isConstructed: true,
	}, nil
}

func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Courier) ID() kernel.UUID         { return c.id }
func (c *Courier) AccountID() kernel.UUID  { return c.accountID }
func (c *Courier) Vehicle() string         { return c.vehicle }
func (c *Courier) Plate() string           { return c.plate }
func (c *Courier) IsAvailable() bool       { return c.available }
func (c *Courier) Status() Status          { return c.status }
func (c *Courier) RegisteredAt() time.Time { return c.registeredAt }
func (c *Courier) UpdatedAt() time.Time    { return c.updatedAt }

// IsAssignable reports whether the courier can take a new delivery.
func (c *Courier) IsAssignable() bool {
	return c.status == Free && c.available
}

// CheckAssignable returns an InvariantViolationError unless IsAssignable.
func (c *Courier) CheckAssignable() error {
	if !c.IsAssignable() {
		return errCourierNotAssignable
	}
	return nil
}

// Occupy marks an assignable courier BUSY.
func (c *Courier) Occupy(at time.Time) error {
	if err := c.CheckAssignable(); err != nil {
		return err
	}
	c.status = Busy
	c.updatedAt = at.UTC()
	return nil
}

// Release frees a BUSY courier. Couriers in any other status are left alone.
func (c *Courier) Release(at time.Time) {
	if c.status != Busy {
		return
	}
	if c.available {
		c.status = Free
	} else {
		c.status = Inactive
	}
	c.updatedAt = at.UTC()
}

// ChangeStatus sets the status directly. FREE and BUSY require the courier to
// be available, and a BUSY courier is only freed by Release.
func (c *Courier) ChangeStatus(status Status, at time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if (status == Busy || status == Free) && !c.available {
		return errCourierUnavailable
	}
	if status == Free && c.status == Busy {
		return errCourierBusy
	}
	c.status = status
	c.updatedAt = at.UTC()
	return nil
}

// SetAvailability turns the shift on (FREE) or off (INACTIVE). A BUSY courier
// keeps its status until Release, which then honours the new flag.
func (c *Courier) SetAvailability(available bool, at time.Time) {
	c.available = available
	c.updatedAt = at.UTC()
	if c.status == Busy {
		return
	}
	if available {
		c.status = Free
	} else {
		c.status = Inactive
	}
}

func requireID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}
