// Package promotion models discount campaigns published by restaurants.
// Promotions are catalog data: they are listed to customers but never change
// an order's total.
package promotion

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
	MaxCodeLength        = 20
)

var ErrPromotionIsNotConstructed = errors.New("Promotion must be created via NewPromotion or RestorePromotion constructor")

// Kind tells how Value is interpreted.
type Kind string

const (
	KindPercentage  Kind = "PERCENTAGE"
	KindFixedAmount Kind = "FIXED_AMOUNT"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToUpper(strings.TrimSpace(s))); k {
	case KindPercentage, KindFixedAmount:
		return k, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a promotion kind", s))
	}
}

// Terms holds what a restaurant publishes for a promotion.
type Terms struct {
	Name        string
	Description string
	Kind        Kind
	Value       decimal.Decimal
	Code        string
	StartsAt    time.Time
	EndsAt      time.Time
	MinAmount   kernel.Money
	MaxUses     *int
}

type Promotion struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	terms        Terms
	active       bool
	currentUses  int
	createdAt    time.Time

	isConstructed bool
}

func NewPromotion(id, restaurantID kernel.UUID, terms Terms, at time.Time) (*Promotion, error) {
	return RestorePromotion(id, restaurantID, terms, true, 0, at)
}

func RestorePromotion(
	id, restaurantID kernel.UUID,
	terms Terms,
	active bool,
	currentUses int,
	createdAt time.Time,
) (*Promotion, error) {
	p := &Promotion{
		active:        active,
		currentUses:   currentUses,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		requireID("id", id),
		requireID("restaurant id", restaurantID),
		p.setTerms(terms),
	); err != nil {
		return nil, err
	}
	p.id = id
	p.restaurantID = restaurantID

	return p, nil
}

func (p *Promotion) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPromotionIsNotConstructed
	}
	return nil
}

func (p *Promotion) ID() kernel.UUID           { return p.id }
func (p *Promotion) RestaurantID() kernel.UUID { return p.restaurantID }
func (p *Promotion) Terms() Terms              { return p.terms }
func (p *Promotion) IsActive() bool            { return p.active }
func (p *Promotion) CurrentUses() int          { return p.currentUses }
func (p *Promotion) CreatedAt() time.Time      { return p.createdAt }

// IsExpired reports whether the validity window closed before at.
func (p *Promotion) IsExpired(at time.Time) bool {
	return at.After(p.terms.EndsAt)
}

// IsRedeemableAt reports whether a customer could use the promotion at the given time.
func (p *Promotion) IsRedeemableAt(at time.Time) bool {
	if !p.active || at.Before(p.terms.StartsAt) || p.IsExpired(at) {
		return false
	}
	return p.terms.MaxUses == nil || p.currentUses < *p.terms.MaxUses
}

// Expire deactivates an expired promotion and reports whether anything changed.
func (p *Promotion) Expire(at time.Time) bool {
	if !p.active || !p.IsExpired(at) {
		return false
	}
	p.active = false
	return true
}

func (p *Promotion) setTerms(terms Terms) error {
	terms.Name = strings.TrimSpace(terms.Name)
	terms.Description = strings.TrimSpace(terms.Description)
	terms.Code = strings.ToUpper(strings.TrimSpace(terms.Code))

	var errList []error
	if terms.Name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	} else if len(terms.Name) > MaxNameLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError("name length", len(terms.Name), 1, MaxNameLength))
	}
	if len(terms.Description) > MaxDescriptionLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError(
			"description length", len(terms.Description), 0, MaxDescriptionLength))
	}
	if len(terms.Code) > MaxCodeLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError("code length", len(terms.Code), 0, MaxCodeLength))
	}
	if _, err := ParseKind(string(terms.Kind)); err != nil {
		errList = append(errList, err)
	}
	if terms.Value.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("value", fmt.Errorf("%s is negative", terms.Value)))
	}
	if terms.Kind == KindPercentage && terms.Value.GreaterThan(decimal.NewFromInt(100)) {
		errList = append(errList, errs.NewValueIsOutOfRangeError("value", terms.Value.String(), 0, 100))
	}
	if terms.StartsAt.IsZero() || terms.EndsAt.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("validity window"))
	} else if terms.EndsAt.Before(terms.StartsAt) {
		errList = append(errList, errs.NewInvariantViolationError("promotion must end after it starts"))
	}
	if err := terms.MinAmount.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("minimum amount", err))
	}
	if terms.MaxUses != nil && *terms.MaxUses < 1 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("max uses", *terms.MaxUses, 1, "unlimited"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	terms.StartsAt = terms.StartsAt.UTC()
	terms.EndsAt = terms.EndsAt.UTC()
	p.terms = terms
	return nil
}

func requireID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}
