package queries

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGetDeliveryQueryIsNotConstructed = errors.New(
		"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor")
	ErrListDeliveriesQueryIsNotConstructed = errors.New(
		"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor")
)

type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type DeliveryResponse struct {
	ID          kernel.UUID       `json:"id"`
	OrderID     kernel.UUID       `json:"orderId"`
	CourierID   kernel.UUID       `json:"courierId"`
	CourierName string            `json:"courierName"`
	Status      string            `json:"status"`
	Location    *LocationResponse `json:"location,omitempty"`
	Comments    string            `json:"comments,omitempty"`
	AssignedAt  time.Time         `json:"assignedAt"`
	StartedAt   *time.Time        `json:"startedAt,omitempty"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	DeliveredAt *time.Time        `json:"deliveredAt,omitempty"`
}

const deliveryColumns = `
	SELECT d.id, d.order_id, d.courier_id, COALESCE(a.name, ''), d.status, d.latitude, d.longitude,
		d.comments, d.assigned_at, d.started_at, d.updated_at, d.delivered_at
	FROM deliveries d
	JOIN orders o ON o.id = d.order_id
	LEFT JOIN couriers c ON c.id = d.courier_id
	LEFT JOIN accounts a ON a.id = c.account_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDelivery(row rowScanner) (DeliveryResponse, error) {
	var res DeliveryResponse
	var id, orderID, courierID uuid.UUID
	var status int
	var lat, lng sql.NullFloat64
	var startedAt, deliveredAt sql.NullTime

	if err := row.Scan(
		&id, &orderID, &courierID, &res.CourierName, &status, &lat, &lng,
		&res.Comments, &res.AssignedAt, &startedAt, &res.UpdatedAt, &deliveredAt,
	); err != nil {
		return DeliveryResponse{}, err
	}

	var err error
	if res.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return DeliveryResponse{}, err
	}
	if res.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return DeliveryResponse{}, err
	}
	if res.CourierID, err = kernel.UUIDFromBytes(courierID[:]); err != nil {
		return DeliveryResponse{}, err
	}
	res.Status = delivery.Status(status).String()
	if lat.Valid && lng.Valid {
		res.Location = &LocationResponse{Latitude: lat.Float64, Longitude: lng.Float64}
	}
	res.AssignedAt = res.AssignedAt.UTC()
	res.UpdatedAt = res.UpdatedAt.UTC()
	if startedAt.Valid {
		t := startedAt.Time.UTC()
		res.StartedAt = &t
	}
	if deliveredAt.Valid {
		t := deliveredAt.Time.UTC()
		res.DeliveredAt = &t
	}
	return res, nil
}

// GetDeliveryQuery reads one delivery and its last known position.
type GetDeliveryQuery struct {
	principal  account.Principal
	deliveryID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetDeliveryQuery(principal account.Principal, deliveryID kernel.UUID) (GetDeliveryQuery, error) {
	var idErr error
	if err := deliveryID.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("delivery id", err)
	}
	if err := errors.Join(principal.Validate(), idErr); err != nil {
		return GetDeliveryQuery{}, err
	}
	return GetDeliveryQuery{principal: principal, deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

func (q GetDeliveryQuery) Principal() account.Principal { return q.principal }
func (q GetDeliveryQuery) DeliveryID() kernel.UUID      { return q.deliveryID }

type GetDeliveryQueryHandler struct {
	db      *gorm.DB
	tracker ports.LocationTracker
	logger  *slog.Logger
}

func NewGetDeliveryQueryHandler(db *gorm.DB, tracker ports.LocationTracker, logger *slog.Logger) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db, tracker: tracker, logger: logger}
}

// Handle prefers the cached position of a delivery IN_TRANSIT over the stored one.
// The delivery is visible to whoever may read its order.
func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	res, err := scanDelivery(h.db.WithContext(ctx).Raw(deliveryColumns+` WHERE d.id = ?`, query.DeliveryID().Bytes()).Row())
	if errors.Is(err, sql.ErrNoRows) {
		return DeliveryResponse{}, errs.NewObjectNotFoundError("delivery", query.DeliveryID().String())
	}
	if err != nil {
		return DeliveryResponse{}, err
	}

	visible, err := canReadOrder(ctx, h.db, query.Principal(), res.OrderID)
	if err != nil {
		return DeliveryResponse{}, err
	}
	if !visible {
		return DeliveryResponse{}, errs.NewOwnershipViolationError("delivery", res.ID, query.Principal().AccountID())
	}

	if res.Status == delivery.InTransit.String() {
		point, cacheErr := h.tracker.Last(ctx, res.ID)
		switch {
		case cacheErr != nil:
			h.logger.WarnContext(ctx, "failed to read cached delivery location",
				"delivery_id", res.ID.String(),
				"error", cacheErr,
			)
		case point != nil:
			res.Location = &LocationResponse{Latitude: point.Latitude(), Longitude: point.Longitude()}
		}
	}

	return res, nil
}

// DeliveryFilter narrows ListDeliveriesQuery. Nil fields do not filter.
type DeliveryFilter struct {
	CourierID *kernel.UUID
	Status    *delivery.Status
}

// ListDeliveriesQuery pages through visible deliveries, most recently assigned first.
type ListDeliveriesQuery struct {
	principal account.Principal
	filter    DeliveryFilter
	page      Page
	guard     guard.ConstructorGuard
}

func NewListDeliveriesQuery(principal account.Principal, filter DeliveryFilter, page Page) (ListDeliveriesQuery, error) {
	var errList []error
	errList = append(errList, principal.Validate())
	if filter.CourierID != nil {
		if err := filter.CourierID.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsRequiredErrorWithCause("courier id", err))
		}
	}
	if filter.Status != nil {
		errList = append(errList, filter.Status.Validate())
	}
	if page.Size < 1 || page.Number < 1 {
		errList = append(errList, errs.NewValueIsRequiredError("page"))
	}
	if err := errors.Join(errList...); err != nil {
		return ListDeliveriesQuery{}, err
	}

	return ListDeliveriesQuery{principal: principal, filter: filter, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

func (q ListDeliveriesQuery) Principal() account.Principal { return q.principal }
func (q ListDeliveriesQuery) Filter() DeliveryFilter       { return q.filter }
func (q ListDeliveriesQuery) Page() Page                   { return q.page }

type ListDeliveriesQueryResponse struct {
	Items []DeliveryResponse `json:"items"`
	Page  int                `json:"page"`
	Size  int                `json:"size"`
	Total int64              `json:"total"`
}

type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

// Handle returns stored positions only; use GetDeliveryQuery for live tracking.
func (h ListDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveriesQuery,
) (ListDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListDeliveriesQueryResponse{}, err
	}

	page := query.Page()
	result := ListDeliveriesQueryResponse{
		Items: make([]DeliveryResponse, 0),
		Page:  page.Number,
		Size:  page.Size,
	}

	visibility, args, ok := orderVisibility(query.Principal())
	if !ok {
		return result, nil
	}
	conds := []string{visibility}

	filter := query.Filter()
	if filter.CourierID != nil {
		conds = append(conds, "d.courier_id = ?")
		args = append(args, filter.CourierID.Bytes())
	}
	if filter.Status != nil {
		conds = append(conds, "d.status = ?")
		args = append(args, int(*filter.Status))
	}
	clause := where(conds)

	db := h.db.WithContext(ctx)
	err := db.Raw(`SELECT COUNT(*) FROM deliveries d JOIN orders o ON o.id = d.order_id`+clause, args...).
		Row().Scan(&result.Total)
	if err != nil {
		return ListDeliveriesQueryResponse{}, err
	}

	rows, err := db.Raw(deliveryColumns+clause+`
		ORDER BY d.assigned_at DESC, d.id
		LIMIT ? OFFSET ?`, append(args, page.Size, page.Offset())...).Rows()
	if err != nil {
		return ListDeliveriesQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		d, scanErr := scanDelivery(rows)
		if scanErr != nil {
			return ListDeliveriesQueryResponse{}, scanErr
		}
		result.Items = append(result.Items, d)
	}

	if err = rows.Err(); err != nil {
		return ListDeliveriesQueryResponse{}, err
	}
	return result, nil
}
