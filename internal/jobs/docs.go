// Package jobs provides scheduled background tasks.
//
// Jobs are built on github.com/robfig/cron/v3. The only job today is
// PromotionExpiryJob, which deactivates promotions past their end date.
// Orders, deliveries and couriers are never touched by background work:
// every change to them comes from an API call.
//
// # Usage
//
//	sweeper := jobs.NewPromotionExpiryJob(expireHandler, "@every 5m", logger)
//	manager := jobs.NewJobManager(logger, sweeper)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick. A sweep still
// running when the next tick fires is skipped.
package jobs
