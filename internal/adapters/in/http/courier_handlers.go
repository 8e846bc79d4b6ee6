package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type RegisterCourierRequest struct {
	AccountID kernel.UUID `json:"accountId"`
	Vehicle   string      `json:"vehicle"`
	Plate     string      `json:"plate"`
}

type CourierStatusRequest struct {
	Status string `json:"status"`
}

type AvailabilityRequest struct {
	Available *bool `json:"available"`
}

// RegisterCourier handles POST /api/v1/couriers.
func (s *Server) RegisterCourier(c echo.Context) error {
	var req RegisterCourierRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterCourierCommand(principalFrom(c), id, req.AccountID, req.Vehicle, req.Plate)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.RegisterCourier.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// ListAvailableCouriers handles GET /api/v1/couriers/available.
func (s *Server) ListAvailableCouriers(c echo.Context) error {
	couriers, err := s.queries.ListAvailableCouriers.Handle(c.Request().Context(),
		queries.NewListAvailableCouriersQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, couriers)
}

// ChangeCourierStatus handles PATCH /api/v1/couriers/:id/status.
func (s *Server) ChangeCourierStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req CourierStatusRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}
	status, err := courier.ParseStatus(req.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewChangeCourierStatusCommand(principalFrom(c), id, status)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.ChangeCourierStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SetCourierAvailability handles PATCH /api/v1/couriers/:id/availability.
func (s *Server) SetCourierAvailability(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req AvailabilityRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}
	if req.Available == nil {
		return s.fail(c, errs.NewValueIsRequiredError("available"))
	}

	cmd, err := commands.NewSetCourierAvailabilityCommand(principalFrom(c), id, *req.Available)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.SetCourierAvailability.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListCouriers handles GET /api/v1/couriers?status=&page=&size=.
func (s *Server) ListCouriers(c echo.Context) error {
	raw, err := queryParam[string](c, "status")
	if err != nil {
		return s.fail(c, err)
	}
	var status *courier.Status
	if raw != nil {
		parsed, parseErr := courier.ParseStatus(*raw)
		if parseErr != nil {
			return s.fail(c, parseErr)
		}
		status = &parsed
	}
	page, err := queryPage(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListCouriersQuery(principalFrom(c), status, page)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.queries.ListCouriers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetCourier handles GET /api/v1/couriers/:id.
func (s *Server) GetCourier(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetCourierQuery(principalFrom(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.queries.GetCourier.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
