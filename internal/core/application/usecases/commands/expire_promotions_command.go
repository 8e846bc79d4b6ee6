package commands

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrExpirePromotionsCommandIsNotConstructed = errors.New(
	"ExpirePromotionsCommand must be created via NewExpirePromotionsCommand constructor",
)

// ExpirePromotionsCommand deactivates every promotion whose window closed before Now.
// It is issued by the promotion sweeper job, not by API clients.
type ExpirePromotionsCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

func NewExpirePromotionsCommand(now time.Time) (ExpirePromotionsCommand, error) {
	if now.IsZero() {
		return ExpirePromotionsCommand{}, errs.NewValueIsRequiredError("now")
	}
	return ExpirePromotionsCommand{now: now, guard: guard.NewConstructorGuard()}, nil
}

func (c ExpirePromotionsCommand) Validate() error {
	return c.guard.Validate(ErrExpirePromotionsCommandIsNotConstructed)
}

func (c ExpirePromotionsCommand) Now() time.Time { return c.now }
