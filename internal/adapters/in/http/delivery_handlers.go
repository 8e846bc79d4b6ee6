package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type AssignCourierRequest struct {
	CourierID   kernel.UUID `json:"courierId"`
	SyncCourier *bool       `json:"syncCourier"`
}

type TransitionDeliveryRequest struct {
	Status      string `json:"status"`
	Comments    string `json:"comments"`
	SyncCourier *bool  `json:"syncCourier"`
}

type ReassignCourierRequest struct {
	CourierID   kernel.UUID `json:"courierId"`
	SyncCourier *bool       `json:"syncCourier"`
}

type LocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// AssignCourier handles POST /api/v1/orders/:id/delivery.
func (s *Server) AssignCourier(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req AssignCourierRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewAssignCourierCommand(principalFrom(c), id, orderID, req.CourierID, syncCourier(req.SyncCourier))
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.AssignCourier.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// ListDeliveries handles GET /api/v1/deliveries?courierId=&status=&page=&size=.
func (s *Server) ListDeliveries(c echo.Context) error {
	var filter queries.DeliveryFilter
	var err error
	if filter.CourierID, err = queryUUID(c, "courierId"); err != nil {
		return s.fail(c, err)
	}
	status, err := queryParam[string](c, "status")
	if err != nil {
		return s.fail(c, err)
	}
	if status != nil {
		parsed, parseErr := delivery.ParseStatus(*status)
		if parseErr != nil {
			return s.fail(c, parseErr)
		}
		filter.Status = &parsed
	}
	page, err := queryPage(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListDeliveriesQuery(principalFrom(c), filter, page)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.queries.ListDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetDeliveryStatistics handles GET /api/v1/deliveries/statistics.
func (s *Server) GetDeliveryStatistics(c echo.Context) error {
	query, err := queries.NewDeliveryStatisticsQuery(principalFrom(c))
	if err != nil {
		return s.fail(c, err)
	}
	stats, err := s.queries.DeliveryStatistics.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// GetDelivery handles GET /api/v1/deliveries/:id.
func (s *Server) GetDelivery(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetDeliveryQuery(principalFrom(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.queries.GetDelivery.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// TransitionDelivery handles PATCH /api/v1/deliveries/:id/status.
func (s *Server) TransitionDelivery(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req TransitionDeliveryRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}
	target, err := delivery.ParseStatus(req.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewTransitionDeliveryCommand(principalFrom(c), id, target, req.Comments, syncCourier(req.SyncCourier))
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.TransitionDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ReassignCourier handles PATCH /api/v1/deliveries/:id/courier.
func (s *Server) ReassignCourier(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req ReassignCourierRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewReassignCourierCommand(principalFrom(c), id, req.CourierID, syncCourier(req.SyncCourier))
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.ReassignCourier.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateDeliveryLocation handles PUT /api/v1/deliveries/:id/location.
func (s *Server) UpdateDeliveryLocation(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req LocationRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}
	if req.Latitude == nil || req.Longitude == nil {
		return s.fail(c, errs.NewValueIsRequiredError("location"))
	}

	cmd, err := commands.NewUpdateDeliveryLocationCommand(principalFrom(c), id, *req.Latitude, *req.Longitude)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.UpdateDeliveryLocation.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteDelivery handles DELETE /api/v1/deliveries/:id?syncCourier=.
func (s *Server) DeleteDelivery(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	sync, err := queryParam[bool](c, "syncCourier")
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteDeliveryCommand(principalFrom(c), id, syncCourier(sync))
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.DeleteDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
