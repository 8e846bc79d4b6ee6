package account

import (
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount constructor")

// Account is a registered user. Customers, restaurant owners, couriers and
// administrators are all accounts distinguished by their roles.
type Account struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	address      string
	phone        string
	roles        []Role
	registeredAt time.Time

	isConstructed bool
}

func NewAccount(
	id kernel.UUID,
	name, email, passwordHash, address, phone string,
	roles []Role,
	registeredAt time.Time,
) (*Account, error) {
	acc := &Account{
		address:       strings.TrimSpace(address),
		phone:         strings.TrimSpace(phone),
		registeredAt:  registeredAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		acc.setID(id),
		acc.setName(name),
		acc.setEmail(email),
		acc.setPasswordHash(passwordHash),
		acc.setRoles(roles),
	); err != nil {
		return nil, err
	}

	return acc, nil
}

// RestoreAccount rebuilds an account from persistence.
func RestoreAccount(
	id kernel.UUID,
	name, email, passwordHash, address, phone string,
	roles []Role,
	registeredAt time.Time,
) (*Account, error) {
	return NewAccount(id, name, email, passwordHash, address, phone, roles, registeredAt)
}

func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

func (a *Account) ID() kernel.UUID         { return a.id }
func (a *Account) Name() string            { return a.name }
func (a *Account) Email() string           { return a.email }
func (a *Account) PasswordHash() string    { return a.passwordHash }
func (a *Account) Address() string         { return a.address }
func (a *Account) Phone() string           { return a.phone }
func (a *Account) RegisteredAt() time.Time { return a.registeredAt }

func (a *Account) Roles() []Role {
	return slices.Clone(a.roles)
}

func (a *Account) HasRole(role Role) bool {
	return slices.Contains(a.roles, role)
}

// GrantRole adds a role. Granting a role the account already has is a no-op.
func (a *Account) GrantRole(role Role) error {
	if _, err := ParseRole(string(role)); err != nil {
		return err
	}
	a.roles = normalizeRoles(append(a.roles, role))
	return nil
}

// UpdateProfile changes the contact details. Email, password and roles are
// not part of the profile.
func (a *Account) UpdateProfile(name, address, phone string) error {
	if err := a.setName(name); err != nil {
		return err
	}
	a.address = strings.TrimSpace(address)
	a.phone = strings.TrimSpace(phone)
	return nil
}

// Principal returns the identity the account acts with once authenticated.
func (a *Account) Principal() Principal {
	return NewPrincipal(a.id, a.roles...)
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Account) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	parsed, err := mail.ParseAddress(email)
	if err != nil || parsed.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	a.email = email
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	a.passwordHash = hash
	return nil
}

func (a *Account) setRoles(roles []Role) error {
	if len(roles) == 0 {
		return errs.NewValueIsRequiredError("roles")
	}
	for _, role := range roles {
		if _, err := ParseRole(string(role)); err != nil {
			return err
		}
	}
	a.roles = normalizeRoles(roles)
	return nil
}
