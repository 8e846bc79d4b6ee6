package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrOrderStatisticsQueryIsNotConstructed = errors.New(
	"OrderStatisticsQuery must be created via NewOrderStatisticsQuery constructor")

// OrderStatisticsQuery counts visible orders per status, optionally for one restaurant.
type OrderStatisticsQuery struct {
	principal    account.Principal
	restaurantID *kernel.UUID
	guard        guard.ConstructorGuard
}

func NewOrderStatisticsQuery(principal account.Principal, restaurantID *kernel.UUID) (OrderStatisticsQuery, error) {
	var idErr error
	if restaurantID != nil {
		if err := restaurantID.Validate(); err != nil {
			idErr = errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
		}
	}
	if err := errors.Join(principal.Validate(), idErr); err != nil {
		return OrderStatisticsQuery{}, err
	}
	return OrderStatisticsQuery{principal: principal, restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q OrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrOrderStatisticsQueryIsNotConstructed)
}

func (q OrderStatisticsQuery) Principal() account.Principal { return q.principal }
func (q OrderStatisticsQuery) RestaurantID() *kernel.UUID   { return q.restaurantID }

// OrderStatisticsResponse lists every status, including those with no orders.
type OrderStatisticsResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}

type OrderStatisticsQueryHandler struct {
	db *gorm.DB
}

func NewOrderStatisticsQueryHandler(db *gorm.DB) OrderStatisticsQueryHandler {
	return OrderStatisticsQueryHandler{db: db}
}

func (h OrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query OrderStatisticsQuery,
) (OrderStatisticsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderStatisticsResponse{}, err
	}

	stats := OrderStatisticsResponse{ByStatus: make(map[string]int64)}
	for _, s := range order.AllStatuses() {
		stats.ByStatus[s.String()] = 0
	}

	visibility, args, ok := orderVisibility(query.Principal())
	if !ok {
		return stats, nil
	}
	conds := []string{visibility}
	if id := query.RestaurantID(); id != nil {
		conds = append(conds, "o.restaurant_id = ?")
		args = append(args, id.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT o.status, COUNT(*) FROM orders o`+where(conds)+` GROUP BY o.status`, args...,
	).Rows()
	if err != nil {
		return OrderStatisticsResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status int
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return OrderStatisticsResponse{}, err
		}
		stats.ByStatus[order.Status(status).String()] += count
		stats.Total += count
	}

	if err = rows.Err(); err != nil {
		return OrderStatisticsResponse{}, err
	}
	return stats, nil
}
