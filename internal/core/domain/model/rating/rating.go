// Package rating records customer feedback on delivered orders.
package rating

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

const (
	MinScore         = 1
	MaxScore         = 5
	MaxCommentLength = 500
)

var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating or RestoreRating constructor")

// Rating is a 1 to 5 score a customer gives one delivered order.
// There is at most one rating per order.
type Rating struct {
	id           kernel.UUID
	orderID      kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	score        int
	comment      string
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

func NewRating(
	id, orderID, customerID, restaurantID kernel.UUID,
	score int,
	comment string,
	at time.Time,
) (*Rating, error) {
	return RestoreRating(id, orderID, customerID, restaurantID, score, comment, at, at)
}

func RestoreRating(
	id, orderID, customerID, restaurantID kernel.UUID,
	score int,
	comment string,
	createdAt, updatedAt time.Time,
) (*Rating, error) {
	r := &Rating{
		createdAt:     createdAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		requireID("id", id),
		requireID("order id", orderID),
		requireID("customer id", customerID),
		requireID("restaurant id", restaurantID),
		r.setScore(score),
		r.setComment(comment),
	); err != nil {
		return nil, err
	}
	r.id = id
	r.orderID = orderID
	r.customerID = customerID
	r.restaurantID = restaurantID

	return r, nil
}

func (r *Rating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRatingIsNotConstructed
	}
	return nil
}

func (r *Rating) ID() kernel.UUID           { return r.id }
func (r *Rating) OrderID() kernel.UUID      { return r.orderID }
func (r *Rating) CustomerID() kernel.UUID   { return r.customerID }
func (r *Rating) RestaurantID() kernel.UUID { return r.restaurantID }
func (r *Rating) Score() int                { return r.score }
func (r *Rating) Comment() string           { return r.comment }
func (r *Rating) CreatedAt() time.Time      { return r.createdAt }
func (r *Rating) UpdatedAt() time.Time      { return r.updatedAt }

func (r *Rating) IsAuthoredBy(customerID kernel.UUID) bool {
	return r.customerID.IsEqual(customerID)
}

// Revise replaces score and comment. On error the rating is left unchanged.
func (r *Rating) Revise(score int, comment string, at time.Time) error {
	revised := *r
	if err := errors.Join(revised.setScore(score), revised.setComment(comment)); err != nil {
		return err
	}
	r.score = revised.score
	r.comment = revised.comment
	r.updatedAt = at.UTC()
	return nil
}

func (r *Rating) setScore(score int) error {
	if score < MinScore || score > MaxScore {
		return errs.NewValueIsOutOfRangeError("score", score, MinScore, MaxScore)
	}
	r.score = score
	return nil
}

func (r *Rating) setComment(comment string) error {
	comment = strings.TrimSpace(comment)
	if len(comment) > MaxCommentLength {
		return errs.NewValueIsOutOfRangeError("comment length", len(comment), 0, MaxCommentLength)
	}
	r.comment = comment
	return nil
}

func requireID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}
