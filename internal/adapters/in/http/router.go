package http

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterOptions toggles the optional parts of the HTTP surface.
type RouterOptions struct {
	ValidateRequests bool
	Swagger          bool
}

// NewEcho builds the echo instance serving /health, /swagger and /api/v1.
func NewEcho(ctx context.Context, s *Server, opts RouterOptions) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(s.logger))

	e.GET("/health", health)

	if opts.ValidateRequests || opts.Swagger {
		doc, err := LoadOpenAPI(ctx)
		if err != nil {
			return nil, err
		}
		if opts.Swagger {
			if err = RegisterSwagger(doc); err != nil {
				return nil, err
			}
			e.GET("/swagger/*", echoSwagger.WrapHandler)
		}
		if opts.ValidateRequests {
			validator, err := validateRequests(doc)
			if err != nil {
				return nil, err
			}
			e.Use(validator)
		}
	}

	s.RegisterRoutes(e.Group("/api/v1"))
	return e, nil
}
