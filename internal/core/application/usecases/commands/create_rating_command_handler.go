package commands

import (
	"context"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// CreateRatingCommandHandler accepts one rating per DELIVERED order, written by
// the customer who placed it. The unique index on ratings.order_id backs the
// one-per-order rule against concurrent submissions.
type CreateRatingCommandHandler struct {
	uowFactory RatingUoWFactory
	policy     services.AccessPolicy
}

func NewCreateRatingCommandHandler(uowFactory RatingUoWFactory) CreateRatingCommandHandler {
	return CreateRatingCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h CreateRatingCommandHandler) Handle(ctx context.Context, cmd CreateRatingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = h.policy.CheckRatingAuthor(cmd.Principal(), o); err != nil {
		return err
	}
	if o.Status() != order.Delivered {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("only %s orders can be rated, order %s is %s", order.Delivered, o.ID(), o.Status()))
	}

	ratingRepo := uow.RatingRepository()
	exists, err := ratingRepo.ExistsForOrder(ctx, o.ID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewInvariantViolationError(fmt.Sprintf("order %s is already rated", o.ID()))
	}

	r, err := rating.NewRating(cmd.RatingID(), o.ID(), o.CustomerID(), o.RestaurantID(),
		cmd.Score(), cmd.Comment(), time.Now())
	if err != nil {
		return err
	}

	if err = ratingRepo.Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type UpdateRatingCommandHandler struct {
	uowFactory RatingUoWFactory
	policy     services.AccessPolicy
}

func NewUpdateRatingCommandHandler(uowFactory RatingUoWFactory) UpdateRatingCommandHandler {
	return UpdateRatingCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h UpdateRatingCommandHandler) Handle(ctx context.Context, cmd UpdateRatingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ratingRepo := uow.RatingRepository()
	r, err := ratingRepo.Get(ctx, cmd.RatingID())
	if err != nil {
		return err
	}
	if err = h.policy.CheckRatingRevision(cmd.Principal(), r); err != nil {
		return err
	}

	if err = r.Revise(cmd.Score(), cmd.Comment(), time.Now()); err != nil {
		return err
	}

	if err = ratingRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
