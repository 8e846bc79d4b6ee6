package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

type LoginCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
}

func NewLoginCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle checks the credentials and issues a token. Unknown emails and wrong
// passwords both fail with ErrInvalidCredentials.
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	acc, err := uow.AccountRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}

	if err = h.hasher.Compare(acc.PasswordHash(), cmd.Password()); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	principal := acc.Principal()
	token, expiresAt, err := h.tokens.Issue(principal)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, ExpiresAt: expiresAt, Principal: principal}, nil
}
