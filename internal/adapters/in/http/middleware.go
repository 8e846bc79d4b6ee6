package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ownershipChecker answers whether a principal may act on an order or delivery.
type ownershipChecker interface {
	IsOrderOwner(ctx context.Context, orderID kernel.UUID, p account.Principal) (bool, error)
	IsDeliveryOwner(ctx context.Context, deliveryID kernel.UUID, p account.Principal) (bool, error)
}

// authenticate requires a valid bearer token and stores its principal on the context.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return s.fail(c, errMissingToken)
		}

		principal, err := s.tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			return s.fail(c, err)
		}

		c.Set(principalKey, principal)
		return next(c)
	}
}

// requireRoles lets through principals holding any of roles. ADMIN always passes.
func (s *Server) requireRoles(roles ...account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := principalFrom(c)
			if !p.IsAdmin() && !p.HasAnyRole(roles...) {
				return s.fail(c, errForbidden)
			}
			return next(c)
		}
	}
}

// requireDeliveryOwner restricts a /deliveries/:id route to the assigned
// courier's account. Admins skip the check so unknown ids still yield 404.
func (s *Server) requireDeliveryOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p := principalFrom(c)
		if p.IsAdmin() {
			return next(c)
		}
		id, err := pathUUID(c, "id")
		if err != nil {
			return s.fail(c, err)
		}
		owns, err := s.ownership.IsDeliveryOwner(c.Request().Context(), id, p)
		if err != nil {
			return s.fail(c, err)
		}
		if !owns {
			return s.fail(c, errForbidden)
		}
		return next(c)
	}
}

// requireOrderOwner restricts an /orders/:id route to the customer who placed
// the order and the owner of its restaurant.
func (s *Server) requireOrderOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p := principalFrom(c)
		if p.IsAdmin() {
			return next(c)
		}
		id, err := pathUUID(c, "id")
		if err != nil {
			return s.fail(c, err)
		}
		owns, err := s.ownership.IsOrderOwner(c.Request().Context(), id, p)
		if err != nil {
			return s.fail(c, err)
		}
		if !owns {
			return s.fail(c, errForbidden)
		}
		return next(c)
	}
}

// requestLogger logs one line per request at a level derived from the status class.
func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			req := c.Request()
			logger.LogAttrs(req.Context(), level, "http request",
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("status", status),
				slog.Duration("latency", time.Since(start)),
				slog.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			return nil
		}
	}
}
