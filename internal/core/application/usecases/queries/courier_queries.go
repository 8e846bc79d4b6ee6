package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrListCouriersQueryIsNotConstructed = errors.New(
		"ListCouriersQuery must be created via NewListCouriersQuery constructor")
	ErrGetCourierQueryIsNotConstructed = errors.New(
		"GetCourierQuery must be created via NewGetCourierQuery constructor")
)

const courierColumns = `
	SELECT c.id, c.account_id, COALESCE(a.name, ''), COALESCE(a.phone, ''),
		c.vehicle, c.plate, c.status, c.available, c.registered_at
	FROM couriers c
	LEFT JOIN accounts a ON a.id = c.account_id`

// CourierDetailResponse is a courier with its shift flag and delivery count.
type CourierDetailResponse struct {
	CourierResponse
	Available  bool  `json:"available"`
	Deliveries int64 `json:"deliveries"`
}

func scanCourier(row rowScanner) (CourierDetailResponse, error) {
	var c CourierDetailResponse
	var id, accountID uuid.UUID
	var status int

	err := row.Scan(&id, &accountID, &c.Name, &c.Phone, &c.Vehicle, &c.Plate, &status, &c.Available, &c.RegisteredAt)
	if err != nil {
		return CourierDetailResponse{}, err
	}
	if c.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return CourierDetailResponse{}, err
	}
	if c.AccountID, err = kernel.UUIDFromBytes(accountID[:]); err != nil {
		return CourierDetailResponse{}, err
	}
	c.Status = courier.Status(status).String()
	c.RegisteredAt = c.RegisteredAt.UTC()
	return c, nil
}

// ListCouriersQuery pages over every courier. Only ADMIN may run it.
type ListCouriersQuery struct {
	principal account.Principal
	status    *courier.Status
	page      Page
	guard     guard.ConstructorGuard
}

func NewListCouriersQuery(principal account.Principal, status *courier.Status, page Page) (ListCouriersQuery, error) {
	if err := principal.Validate(); err != nil {
		return ListCouriersQuery{}, err
	}
	return ListCouriersQuery{principal: principal, status: status, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListCouriersQueryIsNotConstructed)
}

func (q ListCouriersQuery) Principal() account.Principal { return q.principal }
func (q ListCouriersQuery) Status() *courier.Status      { return q.status }
func (q ListCouriersQuery) Page() Page                   { return q.page }

type ListCouriersQueryResponse struct {
	Items []CourierDetailResponse `json:"items"`
	Page  int                     `json:"page"`
	Size  int                     `json:"size"`
	Total int64                   `json:"total"`
}

type ListCouriersQueryHandler struct {
	db *gorm.DB
}

func NewListCouriersQueryHandler(db *gorm.DB) ListCouriersQueryHandler {
	return ListCouriersQueryHandler{db: db}
}

func (h ListCouriersQueryHandler) Handle(ctx context.Context, query ListCouriersQuery) (ListCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListCouriersQueryResponse{}, err
	}
	p := query.Principal()
	if !p.IsAdmin() {
		return ListCouriersQueryResponse{}, errs.NewOwnershipViolationError("role", account.RoleAdmin.String(), p.AccountID())
	}

	page := query.Page()
	result := ListCouriersQueryResponse{
		Items: make([]CourierDetailResponse, 0),
		Page:  page.Number,
		Size:  page.Size,
	}

	var conds []string
	var args []any
	if s := query.Status(); s != nil {
		conds = append(conds, "c.status = ?")
		args = append(args, int(*s))
	}
	clause := where(conds)

	db := h.db.WithContext(ctx)
	if err := db.Raw(`SELECT COUNT(*) FROM couriers c`+clause, args...).Row().Scan(&result.Total); err != nil {
		return ListCouriersQueryResponse{}, err
	}

	rows, err := db.Raw(courierColumns+clause+`
		ORDER BY a.name, c.id
		LIMIT ? OFFSET ?`, append(args, page.Size, page.Offset())...).Rows()
	if err != nil {
		return ListCouriersQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		c, scanErr := scanCourier(rows)
		if scanErr != nil {
			return ListCouriersQueryResponse{}, scanErr
		}
		result.Items = append(result.Items, c)
	}

	if err = rows.Err(); err != nil {
		return ListCouriersQueryResponse{}, err
	}
	return result, nil
}

// GetCourierQuery reads one courier. ADMIN reads any courier, a courier reads itself.
type GetCourierQuery struct {
	principal account.Principal
	courierID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetCourierQuery(principal account.Principal, courierID kernel.UUID) (GetCourierQuery, error) {
	var idErr error
	if err := courierID.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("courier id", err)
	}
	if err := errors.Join(principal.Validate(), idErr); err != nil {
		return GetCourierQuery{}, err
	}
	return GetCourierQuery{principal: principal, courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierQueryIsNotConstructed)
}

func (q GetCourierQuery) Principal() account.Principal { return q.principal }
func (q GetCourierQuery) CourierID() kernel.UUID       { return q.courierID }

type GetCourierQueryHandler struct {
	db *gorm.DB
}

func NewGetCourierQueryHandler(db *gorm.DB) GetCourierQueryHandler {
	return GetCourierQueryHandler{db: db}
}

func (h GetCourierQueryHandler) Handle(ctx context.Context, query GetCourierQuery) (CourierDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return CourierDetailResponse{}, err
	}

	db := h.db.WithContext(ctx)
	c, err := scanCourier(db.Raw(courierColumns+` WHERE c.id = ?`, query.CourierID().Bytes()).Row())
	if errors.Is(err, sql.ErrNoRows) {
		return CourierDetailResponse{}, errs.NewObjectNotFoundError("courier", query.CourierID().String())
	}
	if err != nil {
		return CourierDetailResponse{}, err
	}

	p := query.Principal()
	if !p.IsAdmin() && !c.AccountID.IsEqual(p.AccountID()) {
		return CourierDetailResponse{}, errs.NewOwnershipViolationError("courier", query.CourierID(), p.AccountID())
	}

	err = db.Raw(`SELECT COUNT(*) FROM deliveries WHERE courier_id = ?`, query.CourierID().Bytes()).
		Row().Scan(&c.Deliveries)
	if err != nil {
		return CourierDetailResponse{}, err
	}
	return c, nil
}
