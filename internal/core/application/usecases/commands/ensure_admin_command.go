package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrEnsureAdminCommandIsNotConstructed = errors.New(
	"EnsureAdminCommand must be created via NewEnsureAdminCommand constructor",
)

// EnsureAdminCommand seeds the bootstrap administrator at start-up.
// ADMIN can never be obtained through registration.
type EnsureAdminCommand struct {
	accountID kernel.UUID
	email     string
	password  string

	guard guard.ConstructorGuard
}

func NewEnsureAdminCommand(accountID kernel.UUID, email, password string) (EnsureAdminCommand, error) {
	var passwordErr error
	if len(password) < MinPasswordLength {
		passwordErr = errs.NewValueIsOutOfRangeError("password length", len(password), MinPasswordLength, 72)
	}
	if err := errors.Join(requireID("account id", accountID), passwordErr); err != nil {
		return EnsureAdminCommand{}, err
	}

	return EnsureAdminCommand{
		accountID: accountID,
		email:     email,
		password:  password,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c EnsureAdminCommand) Validate() error {
	return c.guard.Validate(ErrEnsureAdminCommandIsNotConstructed)
}

func (c EnsureAdminCommand) AccountID() kernel.UUID { return c.accountID }
func (c EnsureAdminCommand) Email() string          { return c.email }
func (c EnsureAdminCommand) Password() string       { return c.password }
