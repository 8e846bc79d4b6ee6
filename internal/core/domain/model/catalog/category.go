package catalog

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category groups menu items across restaurants (e.g. "Bebidas", "Postres").
type Category struct {
	id           kernel.UUID
	name         string
	description  string
	active       bool
	displayOrder int

	isConstructed bool
}

func NewCategory(id kernel.UUID, name, description string, displayOrder int, active bool) (*Category, error) {
	c := &Category{
		description:   strings.TrimSpace(description),
		active:        active,
		isConstructed: true,
	}

	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	var orderErr error
	if displayOrder < 0 {
		orderErr = errs.NewValueIsInvalidErrorWithCause("display order", fmt.Errorf("%d is negative", displayOrder))
	}

	if err := errors.Join(validateID("id", id), nameErr, orderErr); err != nil {
		return nil, err
	}
	c.id = id
	c.name = name
	c.displayOrder = displayOrder

	return c, nil
}

func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) ID() kernel.UUID     { return c.id }
func (c *Category) Name() string        { return c.name }
func (c *Category) Description() string { return c.description }
func (c *Category) IsActive() bool      { return c.active }
func (c *Category) DisplayOrder() int   { return c.displayOrder }

// Update replaces every editable field. Invalid values leave the category unchanged.
func (c *Category) Update(name, description string, displayOrder int, active bool) error {
	next, err := NewCategory(c.id, name, description, displayOrder, active)
	if err != nil {
		return err
	}
	*c = *next
	return nil
}
