package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type CreateRatingRequest struct {
	OrderID kernel.UUID `json:"orderId"`
	Score   int         `json:"score"`
	Comment string      `json:"comment"`
}

type UpdateRatingRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// CreateRating handles POST /api/v1/ratings.
func (s *Server) CreateRating(c echo.Context) error {
	var req CreateRatingRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateRatingCommand(principalFrom(c), id, req.OrderID, req.Score, req.Comment)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.CreateRating.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// UpdateRating handles PUT /api/v1/ratings/:id.
func (s *Server) UpdateRating(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req UpdateRatingRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateRatingCommand(principalFrom(c), id, req.Score, req.Comment)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.UpdateRating.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
