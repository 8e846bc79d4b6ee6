package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// OwnershipChecker answers the ownership predicates used by the API before
// it lets a caller act on an order or a delivery.
type OwnershipChecker struct {
	db *gorm.DB
}

func NewOwnershipChecker(db *gorm.DB) OwnershipChecker {
	return OwnershipChecker{db: db}
}

// IsOrderOwner reports whether p placed the order or owns the restaurant it was
// placed with. ADMIN owns everything. Unknown orders are owned by nobody.
func (c OwnershipChecker) IsOrderOwner(ctx context.Context, orderID kernel.UUID, p account.Principal) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}
	if p.IsAdmin() {
		return c.exists(ctx, `SELECT COUNT(*) FROM orders WHERE id = ?`, orderID.Bytes())
	}

	id := p.AccountID().Bytes()
	return c.exists(ctx, `
		SELECT COUNT(*)
		FROM orders o
		LEFT JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ? AND (o.customer_id = ? OR r.owner_id = ?)`,
		orderID.Bytes(), id, id)
}

// IsDeliveryOwner reports whether p is the account of the courier the delivery
// is assigned to. ADMIN owns everything.
func (c OwnershipChecker) IsDeliveryOwner(ctx context.Context, deliveryID kernel.UUID, p account.Principal) (bool, error) {
	if err := deliveryID.Validate(); err != nil {
		return false, err
	}
	if p.IsAdmin() {
		return c.exists(ctx, `SELECT COUNT(*) FROM deliveries WHERE id = ?`, deliveryID.Bytes())
	}

	return c.exists(ctx, `
		SELECT COUNT(*)
		FROM deliveries d
		JOIN couriers c ON c.id = d.courier_id
		WHERE d.id = ? AND c.account_id = ?`,
		deliveryID.Bytes(), p.AccountID().Bytes())
}

func (c OwnershipChecker) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	if err := c.db.WithContext(ctx).Raw(query, args...).Row().Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
