package commands

import (
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

func requireID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}

func requirePrincipal(p account.Principal) error {
	if err := p.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("principal", err)
	}
	return nil
}
