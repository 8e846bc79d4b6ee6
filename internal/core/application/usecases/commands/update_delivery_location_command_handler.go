package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// UpdateDeliveryLocationCommandHandler stores the courier's position on the
// delivery and mirrors it into the live location cache after commit.
type UpdateDeliveryLocationCommandHandler struct {
	uowFactory DeliveryUoWFactory
	tracker    ports.LocationTracker
	logger     *slog.Logger
	policy     services.AccessPolicy
}

func NewUpdateDeliveryLocationCommandHandler(
	uowFactory DeliveryUoWFactory,
	tracker ports.LocationTracker,
	logger *slog.Logger,
) UpdateDeliveryLocationCommandHandler {
	return UpdateDeliveryLocationCommandHandler{
		uowFactory: uowFactory,
		tracker:    tracker,
		logger:     logger,
		policy:     services.NewAccessPolicy(),
	}
}

func (h UpdateDeliveryLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryLocationCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	c, err := uow.CourierRepository().Get(ctx, d.CourierID())
	if err != nil {
		return err
	}
	if err = h.policy.CheckCourierAccount(cmd.Principal(), c); err != nil {
		return err
	}

	at := time.Now()
	if err = d.UpdateLocation(cmd.Point(), at); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.tracker.Track(ctx, d.ID(), cmd.Point(), at); err != nil {
		h.logger.WarnContext(ctx, "failed to cache delivery location",
			"delivery_id", d.ID().String(),
			"error", err,
		)
	}
	return nil
}
