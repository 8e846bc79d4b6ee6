package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type OrderLineRequest struct {
	MenuItemID kernel.UUID `json:"menuItemId"`
	Quantity   int         `json:"quantity"`
}

type CreateOrderRequest struct {
	RestaurantID     kernel.UUID        `json:"restaurantId"`
	Address          string             `json:"address"`
	PaymentMethod    string             `json:"paymentMethod"`
	Notes            string             `json:"notes"`
	EstimatedMinutes *int               `json:"estimatedMinutes"`
	DeliveryFee      string             `json:"deliveryFee"`
	Items            []OrderLineRequest `json:"items"`
}

type ChangeOrderStatusRequest struct {
	Status      string `json:"status"`
	SyncCourier *bool  `json:"syncCourier"`
}

type UpdateOrderRequest struct {
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// CreateOrder handles POST /api/v1/orders. Prices come from the menu, not the request.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	fee := kernel.ZeroMoney()
	if req.DeliveryFee != "" {
		parsed, err := kernel.MoneyFromString(req.DeliveryFee)
		if err != nil {
			return s.fail(c, err)
		}
		fee = parsed
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, commands.OrderLine{MenuItemID: item.MenuItemID, Quantity: item.Quantity})
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(principalFrom(c), id, req.RestaurantID, order.Details{
		Address:          req.Address,
		PaymentMethod:    req.PaymentMethod,
		Notes:            req.Notes,
		EstimatedMinutes: req.EstimatedMinutes,
	}, fee, lines)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// ListOrders handles GET /api/v1/orders?customerId=&restaurantId=&status=&page=&size=.
func (s *Server) ListOrders(c echo.Context) error {
	var filter queries.OrderFilter
	var err error
	if filter.CustomerID, err = queryUUID(c, "customerId"); err != nil {
		return s.fail(c, err)
	}
	if filter.RestaurantID, err = queryUUID(c, "restaurantId"); err != nil {
		return s.fail(c, err)
	}
	status, err := queryParam[string](c, "status")
	if err != nil {
		return s.fail(c, err)
	}
	if status != nil {
		parsed, parseErr := order.ParseStatus(*status)
		if parseErr != nil {
			return s.fail(c, parseErr)
		}
		filter.Status = &parsed
	}
	page, err := queryPage(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListOrdersQuery(principalFrom(c), filter, page)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.queries.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderQuery(principalFrom(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.queries.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetOrderStatistics handles GET /api/v1/orders/statistics?restaurantId=.
func (s *Server) GetOrderStatistics(c echo.Context) error {
	restaurantID, err := queryUUID(c, "restaurantId")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewOrderStatisticsQuery(principalFrom(c), restaurantID)
	if err != nil {
		return s.fail(c, err)
	}
	stats, err := s.queries.OrderStatistics.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req ChangeOrderStatusRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}
	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(principalFrom(c), id, target, syncCourier(req.SyncCourier))
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateOrder handles PUT /api/v1/orders/:id.
func (s *Server) UpdateOrder(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req UpdateOrderRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateOrderDetailsCommand(principalFrom(c), id, req.Address, req.Notes)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.UpdateOrderDetails.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
