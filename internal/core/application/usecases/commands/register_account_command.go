package commands

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const MinPasswordLength = 8

var ErrRegisterAccountCommandIsNotConstructed = errors.New(
	"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
)

// RegisterAccountCommand is the public sign-up of a customer or restaurant owner.
//
// Example:
//
//	cmd, err := NewRegisterAccountCommand(kernel.NewUUID(), "Ana Gómez", "ana@example.com",
//	    "s3cret-pass", "Calle 80 #15-20", "3001234567", account.RoleCustomer)
//	if err != nil {
//	    return fmt.Errorf("invalid registration: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type RegisterAccountCommand struct {
	accountID kernel.UUID
	name      string
	email     string
	password  string
	address   string
	phone     string
	role      account.Role

	guard guard.ConstructorGuard
}

func NewRegisterAccountCommand(
	accountID kernel.UUID,
	name, email, password, address, phone string,
	role account.Role,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		name:    strings.TrimSpace(name),
		email:   email,
		address: address,
		phone:   phone,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("account id", accountID),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterAccountCommand{}, err
	}
	cmd.accountID = accountID

	return cmd, nil
}

func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

func (c RegisterAccountCommand) AccountID() kernel.UUID { return c.accountID }
func (c RegisterAccountCommand) Name() string           { return c.name }
func (c RegisterAccountCommand) Email() string          { return c.email }
func (c RegisterAccountCommand) Password() string       { return c.password }
func (c RegisterAccountCommand) Address() string        { return c.address }
func (c RegisterAccountCommand) Phone() string          { return c.phone }
func (c RegisterAccountCommand) Role() account.Role     { return c.role }

func (c *RegisterAccountCommand) setPassword(password string) error {
	if len(password) < MinPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), MinPasswordLength, 72)
	}
	c.password = password
	return nil
}

func (c *RegisterAccountCommand) setRole(role account.Role) error {
	parsed, err := account.ParseRole(string(role))
	if err != nil {
		return err
	}
	if !parsed.IsSelfAssignable() {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%s cannot be requested at registration", parsed))
	}
	c.role = parsed
	return nil
}
