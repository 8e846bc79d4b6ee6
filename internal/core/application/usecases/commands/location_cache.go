package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
)

// forgetLocation drops the cached position of a delivery that stopped moving.
// The database is already committed at this point; a cache failure is only logged
// because cached entries expire on their own.
func forgetLocation(ctx context.Context, tracker ports.LocationTracker, logger *slog.Logger, deliveryID kernel.UUID) {
	if err := tracker.Forget(ctx, deliveryID); err != nil {
		logger.WarnContext(ctx, "failed to evict cached delivery location",
			"delivery_id", deliveryID.String(),
			"error", err,
		)
	}
}
