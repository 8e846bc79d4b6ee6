package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
)

// AccountRepository stores user accounts. Emails are unique.
type AccountRepository interface {
	Add(ctx context.Context, aggregate *account.Account) error
	Update(ctx context.Context, aggregate *account.Account) error
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail looks an account up by its lower-cased email.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}
