package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order summaries with plain SQL.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns an empty page, not an error, for principals that can see no orders.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	page := query.Page()
	result := ListOrdersQueryResponse{
		Items: make([]OrderSummaryResponse, 0),
		Page:  page.Number,
		Size:  page.Size,
	}

	visibility, args, ok := orderVisibility(query.Principal())
	if !ok {
		return result, nil
	}
	conds := []string{visibility}

	filter := query.Filter()
	if filter.CustomerID != nil {
		conds = append(conds, "o.customer_id = ?")
		args = append(args, filter.CustomerID.Bytes())
	}
	if filter.RestaurantID != nil {
		conds = append(conds, "o.restaurant_id = ?")
		args = append(args, filter.RestaurantID.Bytes())
	}
	if filter.Status != nil {
		conds = append(conds, "o.status = ?")
		args = append(args, int(*filter.Status))
	}
	clause := where(conds)

	db := h.db.WithContext(ctx)
	if err := db.Raw(`SELECT COUNT(*) FROM orders o`+clause, args...).Row().Scan(&result.Total); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	rows, err := db.Raw(`
		SELECT o.id, o.customer_id, o.restaurant_id, COALESCE(r.name, ''), o.address, o.total, o.status,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id),
			o.created_at, o.updated_at
		FROM orders o
		LEFT JOIN restaurants r ON r.id = o.restaurant_id`+clause+`
		ORDER BY o.created_at DESC, o.id
		LIMIT ? OFFSET ?`, append(args, page.Size, page.Offset())...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var o OrderSummaryResponse
		var id, customerID, restaurantID uuid.UUID
		var total decimal.Decimal
		var status int

		if err = rows.Scan(
			&id, &customerID, &restaurantID, &o.RestaurantName, &o.Address, &total, &status,
			&o.ItemCount, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return ListOrdersQueryResponse{}, err
		}

		if o.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		if o.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		if o.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		o.Total = total.StringFixed(kernel.MoneyScale)
		o.Status = order.Status(status).String()
		o.CreatedAt = o.CreatedAt.UTC()
		o.UpdatedAt = o.UpdatedAt.UTC()

		result.Items = append(result.Items, o)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return result, nil
}
