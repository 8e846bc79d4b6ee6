package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateRatingCommandIsNotConstructed = errors.New(
		"CreateRatingCommand must be created via NewCreateRatingCommand constructor",
	)
	ErrUpdateRatingCommandIsNotConstructed = errors.New(
		"UpdateRatingCommand must be created via NewUpdateRatingCommand constructor",
	)
)

// CreateRatingCommand records a customer's score for one delivered order.
type CreateRatingCommand struct {
	principal account.Principal
	ratingID  kernel.UUID
	orderID   kernel.UUID
	score     int
	comment   string

	guard guard.ConstructorGuard
}

func NewCreateRatingCommand(
	principal account.Principal,
	ratingID, orderID kernel.UUID,
	score int,
	comment string,
) (CreateRatingCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("rating id", ratingID),
		requireID("order id", orderID),
		validateScore(score),
	); err != nil {
		return CreateRatingCommand{}, err
	}

	return CreateRatingCommand{
		principal: principal,
		ratingID:  ratingID,
		orderID:   orderID,
		score:     score,
		comment:   comment,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRatingCommand) Validate() error {
	return c.guard.Validate(ErrCreateRatingCommandIsNotConstructed)
}

func (c CreateRatingCommand) Principal() account.Principal { return c.principal }
func (c CreateRatingCommand) RatingID() kernel.UUID        { return c.ratingID }
func (c CreateRatingCommand) OrderID() kernel.UUID         { return c.orderID }
func (c CreateRatingCommand) Score() int                   { return c.score }
func (c CreateRatingCommand) Comment() string              { return c.comment }

// UpdateRatingCommand lets the author revise score and comment.
type UpdateRatingCommand struct {
	principal account.Principal
	ratingID  kernel.UUID
	score     int
	comment   string

	guard guard.ConstructorGuard
}

func NewUpdateRatingCommand(
	principal account.Principal,
	ratingID kernel.UUID,
	score int,
	comment string,
) (UpdateRatingCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("rating id", ratingID),
		validateScore(score),
	); err != nil {
		return UpdateRatingCommand{}, err
	}

	return UpdateRatingCommand{
		principal: principal,
		ratingID:  ratingID,
		score:     score,
		comment:   comment,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRatingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRatingCommandIsNotConstructed)
}

func (c UpdateRatingCommand) Principal() account.Principal { return c.principal }
func (c UpdateRatingCommand) RatingID() kernel.UUID        { return c.ratingID }
func (c UpdateRatingCommand) Score() int                   { return c.score }
func (c UpdateRatingCommand) Comment() string              { return c.comment }

func validateScore(score int) error {
	if score < rating.MinScore || score > rating.MaxScore {
		return errs.NewValueIsOutOfRangeError("score", score, rating.MinScore, rating.MaxScore)
	}
	return nil
}
