package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// OrderFilter narrows ListOrdersQuery. Nil fields do not filter.
type OrderFilter struct {
	CustomerID   *kernel.UUID
	RestaurantID *kernel.UUID
	Status       *order.Status
}

// ListOrdersQuery pages through the orders visible to the principal, newest first.
//
// Example:
//
//	page, _ := NewPage(1, 20)
//	status := order.Ready
//	query, err := NewListOrdersQuery(principal, OrderFilter{Status: &status}, page)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	principal account.Principal
	filter    OrderFilter
	page      Page
	guard     guard.ConstructorGuard
}

func NewListOrdersQuery(principal account.Principal, filter OrderFilter, page Page) (ListOrdersQuery, error) {
	var errList []error
	errList = append(errList, principal.Validate())
	if filter.CustomerID != nil {
		if err := filter.CustomerID.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsRequiredErrorWithCause("customer id", err))
		}
	}
	if filter.RestaurantID != nil {
		if err := filter.RestaurantID.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsRequiredErrorWithCause("restaurant id", err))
		}
	}
	if filter.Status != nil {
		errList = append(errList, filter.Status.Validate())
	}
	if page.Size < 1 || page.Number < 1 {
		errList = append(errList, errs.NewValueIsRequiredError("page"))
	}
	if err := errors.Join(errList...); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		principal: principal,
		filter:    filter,
		page:      page,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Principal() account.Principal { return q.principal }
func (q ListOrdersQuery) Filter() OrderFilter          { return q.filter }
func (q ListOrdersQuery) Page() Page                   { return q.page }

// OrderSummaryResponse is an order without its line items.
type OrderSummaryResponse struct {
	ID             kernel.UUID `json:"id"`
	CustomerID     kernel.UUID `json:"customerId"`
	RestaurantID   kernel.UUID `json:"restaurantId"`
	RestaurantName string      `json:"restaurantName"`
	Address        string      `json:"address"`
	Total          string      `json:"total"`
	Status         string      `json:"status"`
	ItemCount      int         `json:"itemCount"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

type ListOrdersQueryResponse struct {
	Items []OrderSummaryResponse `json:"items"`
	Page  int                    `json:"page"`
	Size  int                    `json:"size"`
	Total int64                  `json:"total"`
}
