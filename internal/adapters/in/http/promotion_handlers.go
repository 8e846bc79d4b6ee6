package http

import (
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promotion"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CreatePromotionRequest struct {
	RestaurantID kernel.UUID `json:"restaurantId"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Kind         string      `json:"kind"`
	Value        string      `json:"value"`
	Code         string      `json:"code"`
	StartsAt     time.Time   `json:"startsAt"`
	EndsAt       time.Time   `json:"endsAt"`
	MinAmount    string      `json:"minAmount"`
	MaxUses      *int        `json:"maxUses"`
}

// CreatePromotion handles POST /api/v1/promotions.
func (s *Server) CreatePromotion(c echo.Context) error {
	var req CreatePromotionRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	kind, err := promotion.ParseKind(req.Kind)
	if err != nil {
		return s.fail(c, err)
	}
	value, err := decimal.NewFromString(req.Value)
	if err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("value", err))
	}
	minAmount := kernel.ZeroMoney()
	if req.MinAmount != "" {
		if minAmount, err = kernel.MoneyFromString(req.MinAmount); err != nil {
			return s.fail(c, err)
		}
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreatePromotionCommand(principalFrom(c), id, req.RestaurantID, promotion.Terms{
		Name:        req.Name,
		Description: req.Description,
		Kind:        kind,
		Value:       value,
		Code:        req.Code,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		MinAmount:   minAmount,
		MaxUses:     req.MaxUses,
	})
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.CreatePromotion.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}
