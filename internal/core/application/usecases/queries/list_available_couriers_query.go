package queries

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListAvailableCouriersQueryIsNotConstructed = errors.New(
	"ListAvailableCouriersQuery must be created via NewListAvailableCouriersQuery constructor",
)

// ListAvailableCouriersQuery lists couriers that can take a delivery right now:
// FREE and on shift. Restaurants use it to pick a courier when dispatching.
type ListAvailableCouriersQuery struct {
	guard guard.ConstructorGuard
}

func NewListAvailableCouriersQuery() ListAvailableCouriersQuery {
	return ListAvailableCouriersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListAvailableCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableCouriersQueryIsNotConstructed)
}

type CourierResponse struct {
	ID           kernel.UUID `json:"id"`
	AccountID    kernel.UUID `json:"accountId"`
	Name         string      `json:"name"`
	Phone        string      `json:"phone,omitempty"`
	Vehicle      string      `json:"vehicle"`
	Plate        string      `json:"plate,omitempty"`
	Status       string      `json:"status"`
	RegisteredAt time.Time   `json:"registeredAt"`
}

// ListAvailableCouriersQueryHandler reads assignable couriers sorted by name.
type ListAvailableCouriersQueryHandler struct {
	db *gorm.DB
}

func NewListAvailableCouriersQueryHandler(db *gorm.DB) ListAvailableCouriersQueryHandler {
	return ListAvailableCouriersQueryHandler{db: db}
}

func (h ListAvailableCouriersQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableCouriersQuery,
) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]CourierResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.account_id,
			COALESCE(a.name, ''),
			COALESCE(a.phone, ''),
			c.vehicle,
			c.plate,
			c.status,
			c.registered_at
		FROM couriers c
		LEFT JOIN accounts a ON a.id = c.account_id
		WHERE c.status = ? AND c.available = ?
		ORDER BY a.name, c.id
	`, int(courier.Free), true).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c CourierResponse
		var id, accountID uuid.UUID
		var status int

		err = rows.Scan(&id, &accountID, &c.Name, &c.Phone, &c.Vehicle, &c.Plate, &status, &c.RegisteredAt)
		if err != nil {
			return nil, err
		}

		if c.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if c.AccountID, err = kernel.UUIDFromBytes(accountID[:]); err != nil {
			return nil, err
		}
		c.Status = courier.Status(status).String()
		c.RegisteredAt = c.RegisteredAt.UTC()
		couriers = append(couriers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
