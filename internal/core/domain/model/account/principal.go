package account

import (
	"slices"

	"fooddelivery/internal/core/domain/model/kernel"
)

// Principal is the authenticated caller. It is passed explicitly to every
// command and query that applies ownership or role rules.
type Principal struct {
	accountID kernel.UUID
	roles     []Role
}

func NewPrincipal(accountID kernel.UUID, roles ...Role) Principal {
	return Principal{accountID: accountID, roles: normalizeRoles(roles)}
}

func (p Principal) AccountID() kernel.UUID {
	return p.accountID
}

func (p Principal) Roles() []Role {
	return slices.Clone(p.roles)
}

func (p Principal) HasRole(role Role) bool {
	return slices.Contains(p.roles, role)
}

// HasAnyRole reports whether the principal holds at least one of roles.
func (p Principal) HasAnyRole(roles ...Role) bool {
	return slices.ContainsFunc(roles, p.HasRole)
}

func (p Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}

func (p Principal) Validate() error {
	return p.accountID.Validate()
}
