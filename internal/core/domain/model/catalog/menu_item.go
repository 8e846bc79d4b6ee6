package catalog

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem constructor")

// MenuItem is a dish offered by one restaurant. Its price is live: orders
// snapshot it into their line items when they are placed.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	categoryID   *kernel.UUID
	name         string
	description  string
	price        kernel.Money
	imageURL     string
	available    bool

	isConstructed bool
}

// MenuItemDetails groups the descriptive fields of a menu item.
type MenuItemDetails struct {
	CategoryID  *kernel.UUID
	Name        string
	Description string
	ImageURL    string
}

func NewMenuItem(id, restaurantID kernel.UUID, details MenuItemDetails, price kernel.Money) (*MenuItem, error) {
	return RestoreMenuItem(id, restaurantID, details, price, true)
}

func RestoreMenuItem(
	id, restaurantID kernel.UUID,
	details MenuItemDetails,
	price kernel.Money,
	available bool,
) (*MenuItem, error) {
	item := &MenuItem{
		description:   strings.TrimSpace(details.Description),
		imageURL:      strings.TrimSpace(details.ImageURL),
		available:     available,
		isConstructed: true,
	}

	name := strings.TrimSpace(details.Name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	var categoryErr error
	if details.CategoryID != nil {
		categoryErr = validateID("category id", *details.CategoryID)
	}

	if err := errors.Join(
		validateID("id", id),
		validateID("restaurant id", restaurantID),
		nameErr,
		categoryErr,
		item.setPrice(price),
	); err != nil {
		return nil, err
	}
	item.id = id
	item.restaurantID = restaurantID
	item.categoryID = details.CategoryID
	item.name = name

	return item, nil
}

func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID           { return m.id }
func (m *MenuItem) RestaurantID() kernel.UUID { return m.restaurantID }
func (m *MenuItem) CategoryID() *kernel.UUID  { return m.categoryID }
func (m *MenuItem) Name() string              { return m.name }
func (m *MenuItem) Description() string       { return m.description }
func (m *MenuItem) Price() kernel.Money       { return m.price }
func (m *MenuItem) ImageURL() string          { return m.imageURL }
func (m *MenuItem) IsAvailable() bool         { return m.available }

func (m *MenuItem) BelongsTo(restaurantID kernel.UUID) bool {
	return m.restaurantID.IsEqual(restaurantID)
}

// ChangePrice affects only orders placed afterwards.
func (m *MenuItem) ChangePrice(price kernel.Money) error {
	return m.setPrice(price)
}

func (m *MenuItem) SetAvailable(available bool) {
	m.available = available
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("price must be greater than 0")
	}
	m.price = price
	return nil
}
