package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand turns an existing account into a courier. ADMIN only.
type RegisterCourierCommand struct {
	principal account.Principal
	courierID kernel.UUID
	accountID kernel.UUID
	vehicle   string
	plate     string

	guard guard.ConstructorGuard
}

func NewRegisterCourierCommand(
	principal account.Principal,
	courierID, accountID kernel.UUID,
	vehicle, plate string,
) (RegisterCourierCommand, error) {
	var vehicleErr error
	if strings.TrimSpace(vehicle) == "" {
		vehicleErr = errs.NewValueIsRequiredError("vehicle")
	}
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("courier id", courierID),
		requireID("account id", accountID),
		vehicleErr,
	); err != nil {
		return RegisterCourierCommand{}, err
	}

	return RegisterCourierCommand{
		principal: principal,
		courierID: courierID,
		accountID: accountID,
		vehicle:   vehicle,
		plate:     plate,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

func (c RegisterCourierCommand) Principal() account.Principal { return c.principal }
func (c RegisterCourierCommand) CourierID() kernel.UUID       { return c.courierID }
func (c RegisterCourierCommand) AccountID() kernel.UUID       { return c.accountID }
func (c RegisterCourierCommand) Vehicle() string              { return c.vehicle }
func (c RegisterCourierCommand) Plate() string                { return c.plate }
