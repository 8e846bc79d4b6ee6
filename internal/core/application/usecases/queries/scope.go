package queries

import (
	"strings"

	"fooddelivery/internal/core/domain/model/account"
)

// orderVisibility returns a SQL condition over the orders table aliased "o"
// selecting the orders p may read, and its arguments. ok is false when p can
// see no order at all.
func orderVisibility(p account.Principal) (cond string, args []any, ok bool) {
	if p.IsAdmin() {
		return "1 = 1", nil, true
	}

	var parts []string
	id := p.AccountID().Bytes()
	if p.HasRole(account.RoleCustomer) {
		parts = append(parts, "o.customer_id = ?")
		args = append(args, id)
	}
	if p.HasRole(account.RoleRestaurant) {
		parts = append(parts, "o.restaurant_id IN (SELECT r.id FROM restaurants r WHERE r.owner_id = ?)")
		args = append(args, id)
	}
	if p.HasRole(account.RoleCourier) {
		parts = append(parts, `o.id IN (SELECT d.order_id FROM deliveries d
			JOIN couriers c ON c.id = d.courier_id WHERE c.account_id = ?)`)
		args = append(args, id)
	}
	if len(parts) == 0 {
		return "", nil, false
	}
	return "(" + strings.Join(parts, " OR ") + ")", args, true
}

// where joins non-empty conditions with AND.
func where(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}
