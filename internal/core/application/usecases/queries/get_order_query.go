package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")

// GetOrderQuery reads one order with its line items.
type GetOrderQuery struct {
	principal account.Principal
	orderID   kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetOrderQuery(principal account.Principal, orderID kernel.UUID) (GetOrderQuery, error) {
	var idErr error
	if err := orderID.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	if err := errors.Join(principal.Validate(), idErr); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{principal: principal, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Principal() account.Principal { return q.principal }
func (q GetOrderQuery) OrderID() kernel.UUID         { return q.orderID }

type OrderItemResponse struct {
	ID         kernel.UUID `json:"id"`
	MenuItemID kernel.UUID `json:"menuItemId"`
	Name       string      `json:"name"`
	Quantity   int         `json:"quantity"`
	UnitPrice  string      `json:"unitPrice"`
	Subtotal   string      `json:"subtotal"`
}

type OrderResponse struct {
	OrderSummaryResponse
	PaymentMethod    string              `json:"paymentMethod"`
	Notes            string              `json:"notes,omitempty"`
	EstimatedMinutes *int                `json:"estimatedMinutes,omitempty"`
	DeliveryFee      string              `json:"deliveryFee"`
	Items            []OrderItemResponse `json:"items"`
}

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for unknown orders and OwnershipViolationError
// for orders the principal may not read.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var res OrderResponse
	var id, customerID, restaurantID uuid.UUID
	var fee, total decimal.Decimal
	var status int
	var estimated sql.NullInt64
	err := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.customer_id, o.restaurant_id, COALESCE(r.name, ''), o.address, o.payment_method,
			o.notes, o.estimated_minutes, o.delivery_fee, o.total, o.status, o.created_at, o.updated_at
		FROM orders o
		LEFT JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ?`, query.OrderID().Bytes()).Row().Scan(
		&id, &customerID, &restaurantID, &res.RestaurantName, &res.Address, &res.PaymentMethod,
		&res.Notes, &estimated, &fee, &total, &status, &res.CreatedAt, &res.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	visible, err := canReadOrder(ctx, h.db, query.Principal(), query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	if !visible {
		return OrderResponse{}, errs.NewOwnershipViolationError("order", query.OrderID(), query.Principal().AccountID())
	}

	if res.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if res.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderResponse{}, err
	}
	if res.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return OrderResponse{}, err
	}
	if estimated.Valid {
		minutes := int(estimated.Int64)
		res.EstimatedMinutes = &minutes
	}
	res.DeliveryFee = fee.StringFixed(kernel.MoneyScale)
	res.Total = total.StringFixed(kernel.MoneyScale)
	res.Status = order.Status(status).String()
	res.CreatedAt = res.CreatedAt.UTC()
	res.UpdatedAt = res.UpdatedAt.UTC()

	if res.Items, err = h.items(ctx, query.OrderID()); err != nil {
		return OrderResponse{}, err
	}
	res.ItemCount = len(res.Items)
	return res, nil
}

func (h GetOrderQueryHandler) items(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, menu_item_id, name, quantity, unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		var id, menuItemID uuid.UUID
		var unitPrice decimal.Decimal
		if err = rows.Scan(&id, &menuItemID, &item.Name, &item.Quantity, &unitPrice); err != nil {
			return nil, err
		}
		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}
		item.UnitPrice = unitPrice.StringFixed(kernel.MoneyScale)
		item.Subtotal = unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).StringFixed(kernel.MoneyScale)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// canReadOrder applies orderVisibility to a single order.
func canReadOrder(ctx context.Context, db *gorm.DB, p account.Principal, orderID kernel.UUID) (bool, error) {
	cond, args, ok := orderVisibility(p)
	if !ok {
		return false, nil
	}

	var count int64
	args = append([]any{orderID.Bytes()}, args...)
	err := db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM orders o WHERE o.id = ? AND `+cond, args...).Row().Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
