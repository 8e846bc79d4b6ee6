package account

import (
	"fmt"
	"slices"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Role grants a family of permissions. Values match the names exposed to API clients.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleCustomer   Role = "CLIENTE"
	RoleRestaurant Role = "RESTAURANTE"
	RoleCourier    Role = "REPARTIDOR"
)

func AllRoles() []Role {
	return []Role{RoleAdmin, RoleCustomer, RoleRestaurant, RoleCourier}
}

func ParseRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !slices.Contains(AllRoles(), role) {
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
	return role, nil
}

func (r Role) String() string {
	return string(r)
}

// IsSelfAssignable reports whether a role may be requested through public registration.
func (r Role) IsSelfAssignable() bool {
	return r == RoleCustomer || r == RoleRestaurant
}

// normalizeRoles deduplicates and sorts roles so that persisted sets compare equal.
func normalizeRoles(roles []Role) []Role {
	out := slices.Clone(roles)
	slices.Sort(out)
	return slices.Compact(out)
}
