package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrDeliveryStatisticsQueryIsNotConstructed = errors.New(
	"DeliveryStatisticsQuery must be created via NewDeliveryStatisticsQuery constructor")

// DeliveryStatisticsQuery counts the deliveries the caller may read per status.
type DeliveryStatisticsQuery struct {
	principal account.Principal
	guard     guard.ConstructorGuard
}

func NewDeliveryStatisticsQuery(principal account.Principal) (DeliveryStatisticsQuery, error) {
	if err := principal.Validate(); err != nil {
		return DeliveryStatisticsQuery{}, err
	}
	return DeliveryStatisticsQuery{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (q DeliveryStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrDeliveryStatisticsQueryIsNotConstructed)
}

func (q DeliveryStatisticsQuery) Principal() account.Principal { return q.principal }

// DeliveryStatisticsResponse lists every status, including those with no deliveries.
type DeliveryStatisticsResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}

type DeliveryStatisticsQueryHandler struct {
	db *gorm.DB
}

func NewDeliveryStatisticsQueryHandler(db *gorm.DB) DeliveryStatisticsQueryHandler {
	return DeliveryStatisticsQueryHandler{db: db}
}

func (h DeliveryStatisticsQueryHandler) Handle(
	ctx context.Context,
	query DeliveryStatisticsQuery,
) (DeliveryStatisticsResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryStatisticsResponse{}, err
	}

	stats := DeliveryStatisticsResponse{ByStatus: make(map[string]int64)}
	for _, s := range delivery.AllStatuses() {
		stats.ByStatus[s.String()] = 0
	}

	visibility, args, ok := orderVisibility(query.Principal())
	if !ok {
		return stats, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT d.status, COUNT(*)
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id`+where([]string{visibility})+`
		GROUP BY d.status`, args...).Rows()
	if err != nil {
		return DeliveryStatisticsResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status int
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return DeliveryStatisticsResponse{}, err
		}
		stats.ByStatus[delivery.Status(status).String()] += count
		stats.Total += count
	}

	if err = rows.Err(); err != nil {
		return DeliveryStatisticsResponse{}, err
	}
	return stats, nil
}
