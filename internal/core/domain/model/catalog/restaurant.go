package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant or RestoreRestaurant constructor")

const clockLayout = "15:04"

// Restaurant accepts orders only while active.
type Restaurant struct {
	id          kernel.UUID
	ownerID     kernel.UUID
	name        string
	description string
	address     string
	phone       string
	openingTime string
	closingTime string
	active      bool
	createdAt   time.Time

	isConstructed bool
}

// RestaurantProfile groups the descriptive fields of a restaurant.
type RestaurantProfile struct {
	Name        string
	Description string
	Address     string
	Phone       string
	OpeningTime string
	ClosingTime string
}

// NewRestaurant registers an active restaurant owned by ownerID.
func NewRestaurant(id, ownerID kernel.UUID, profile RestaurantProfile, createdAt time.Time) (*Restaurant, error) {
	return RestoreRestaurant(id, ownerID, profile, true, createdAt)
}

func RestoreRestaurant(
	id, ownerID kernel.UUID,
	profile RestaurantProfile,
	active bool,
	createdAt time.Time,
) (*Restaurant, error) {
	r := &Restaurant{
		description:   strings.TrimSpace(profile.Description),
		phone:         strings.TrimSpace(profile.Phone),
		active:        active,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		validateID("id", id),
		validateID("owner id", ownerID),
		r.setName(profile.Name),
		r.setAddress(profile.Address),
		r.setHours(profile.OpeningTime, profile.ClosingTime),
	); err != nil {
		return nil, err
	}
	r.id = id
	r.ownerID = ownerID

	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

func (r *Restaurant) ID() kernel.UUID      { return r.id }
func (r *Restaurant) OwnerID() kernel.UUID { return r.ownerID }
func (r *Restaurant) Name() string         { return r.name }
func (r *Restaurant) Description() string  { return r.description }
func (r *Restaurant) Address() string      { return r.address }
func (r *Restaurant) Phone() string        { return r.phone }
func (r *Restaurant) OpeningTime() string  { return r.openingTime }
func (r *Restaurant) ClosingTime() string  { return r.closingTime }
func (r *Restaurant) IsActive() bool       { return r.active }
func (r *Restaurant) CreatedAt() time.Time { return r.createdAt }

func (r *Restaurant) IsOwnedBy(accountID kernel.UUID) bool {
	return r.ownerID.IsEqual(accountID)
}

func (r *Restaurant) SetActive(active bool) {
	r.active = active
}

// UpdateProfile replaces the descriptive fields. An invalid profile leaves the
// restaurant unchanged.
func (r *Restaurant) UpdateProfile(profile RestaurantProfile) error {
	next, err := RestoreRestaurant(r.id, r.ownerID, profile, r.active, r.createdAt)
	if err != nil {
		return err
	}
	*r = *next
	return nil
}

func (r *Restaurant) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	r.address = address
	return nil
}

// setHours accepts empty values for restaurants that do not publish a schedule.
func (r *Restaurant) setHours(opening, closing string) error {
	for param, value := range map[string]string{"opening time": opening, "closing time": closing} {
		if value == "" {
			continue
		}
		if _, err := time.Parse(clockLayout, value); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not HH:MM", value))
		}
	}
	r.openingTime = opening
	r.closingTime = closing
	return nil
}

func validateID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}
