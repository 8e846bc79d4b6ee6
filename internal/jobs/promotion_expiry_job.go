package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultPromotionSweepSchedule runs the sweep at the top of every minute.
const DefaultPromotionSweepSchedule = "0 * * * * *"

type promotionExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpirePromotionsCommand) (int, error)
}

// PromotionExpiryJob deactivates promotions whose validity window has closed.
type PromotionExpiryJob struct {
	handler  promotionExpirer
	schedule string
	timeout  time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPromotionExpiryJob accepts both five-field and six-field (with seconds)
// cron specs as well as descriptors such as "@every 5m".
func NewPromotionExpiryJob(handler promotionExpirer, schedule string, logger *slog.Logger) *PromotionExpiryJob {
	if schedule == "" {
		schedule = DefaultPromotionSweepSchedule
	}
	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	return &PromotionExpiryJob{
		handler:  handler,
		schedule: schedule,
		timeout:  30 * time.Second,
		now:      time.Now,
		cron:     cron.New(cron.WithParser(parser), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "promotion_expiry_job"),
	}
}

func (j *PromotionExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("promotion expiry job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a sweep in progress to finish.
func (j *PromotionExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("promotion expiry job stopped")
}

func (j *PromotionExpiryJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	cmd, err := commands.NewExpirePromotionsCommand(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "cannot build expire command", "error", err)
		return
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "promotion sweep failed", "error", err)
		return
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "promotions expired", "count", expired)
	}
}
