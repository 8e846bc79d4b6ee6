// Package http exposes the application over a JSON REST API served by echo.
package http

import (
	"log/slog"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// CommandHandlers groups the write use cases the API dispatches to.
type CommandHandlers struct {
	RegisterAccount        commands.RegisterAccountCommandHandler
	Login                  commands.LoginCommandHandler
	UpdateProfile          commands.UpdateProfileCommandHandler
	CreateRestaurant       commands.CreateRestaurantCommandHandler
	UpdateRestaurant       commands.UpdateRestaurantCommandHandler
	SetRestaurantActive    commands.SetRestaurantActiveCommandHandler
	CreateCategory         commands.CreateCategoryCommandHandler
	UpdateCategory         commands.UpdateCategoryCommandHandler
	CreateMenuItem         commands.CreateMenuItemCommandHandler
	UpdateMenuItem         commands.UpdateMenuItemCommandHandler
	DeleteMenuItem         commands.DeleteMenuItemCommandHandler
	CreateOrder            commands.CreateOrderCommandHandler
	ChangeOrderStatus      commands.ChangeOrderStatusCommandHandler
	UpdateOrderDetails     commands.UpdateOrderDetailsCommandHandler
	AssignCourier          commands.AssignCourierCommandHandler
	TransitionDelivery     commands.TransitionDeliveryCommandHandler
	ReassignCourier        commands.ReassignCourierCommandHandler
	UpdateDeliveryLocation commands.UpdateDeliveryLocationCommandHandler
	DeleteDelivery         commands.DeleteDeliveryCommandHandler
	RegisterCourier        commands.RegisterCourierCommandHandler
	ChangeCourierStatus    commands.ChangeCourierStatusCommandHandler
	SetCourierAvailability commands.SetCourierAvailabilityCommandHandler
	CreateRating           commands.CreateRatingCommandHandler
	UpdateRating           commands.UpdateRatingCommandHandler
	CreatePromotion        commands.CreatePromotionCommandHandler
}

// QueryHandlers groups the read use cases the API dispatches to.
type QueryHandlers struct {
	GetProfile            queries.GetProfileQueryHandler
	ListRestaurants       queries.ListRestaurantsQueryHandler
	GetRestaurant         queries.GetRestaurantQueryHandler
	ListCategories        queries.ListCategoriesQueryHandler
	GetMenuItem           queries.GetMenuItemQueryHandler
	RestaurantMenu        queries.GetRestaurantMenuQueryHandler
	RestaurantRating      queries.GetRestaurantRatingQueryHandler
	RestaurantSales       queries.GetRestaurantSalesQueryHandler
	GetOrder              queries.GetOrderQueryHandler
	ListOrders            queries.ListOrdersQueryHandler
	OrderStatistics       queries.OrderStatisticsQueryHandler
	GetDelivery           queries.GetDeliveryQueryHandler
	ListDeliveries        queries.ListDeliveriesQueryHandler
	DeliveryStatistics    queries.DeliveryStatisticsQueryHandler
	ListCouriers          queries.ListCouriersQueryHandler
	GetCourier            queries.GetCourierQueryHandler
	ListAvailableCouriers queries.ListAvailableCouriersQueryHandler
}

// Server translates HTTP requests into commands and queries.
// Handlers never talk to storage directly.
type Server struct {
	commands  CommandHandlers
	queries   QueryHandlers
	ownership ownershipChecker
	tokens    ports.TokenIssuer
	logger    *slog.Logger
}

func NewServer(
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	ownership ownershipChecker,
	tokens ports.TokenIssuer,
	logger *slog.Logger,
) *Server {
	return &Server{
		commands:  commandHandlers,
		queries:   queryHandlers,
		ownership: ownership,
		tokens:    tokens,
		logger:    logger,
	}
}

// RegisterRoutes mounts the API under /api/v1 on g.
func (s *Server) RegisterRoutes(g *echo.Group) {
	auth := s.authenticate
	admin := s.requireRoles(account.RoleAdmin)
	restaurant := s.requireRoles(account.RoleRestaurant)
	customer := s.requireRoles(account.RoleCustomer)
	courier := s.requireRoles(account.RoleCourier)

	g.POST("/auth/register", s.Register)
	g.POST("/auth/login", s.Login)
	g.GET("/me", s.GetProfile, auth)
	g.PUT("/me", s.UpdateProfile, auth)

	g.GET("/restaurants", s.ListRestaurants)
	g.POST("/restaurants", s.CreateRestaurant, auth, restaurant)
	g.GET("/restaurants/:id", s.GetRestaurant)
	g.PUT("/restaurants/:id", s.UpdateRestaurant, auth, restaurant)
	g.PATCH("/restaurants/:id/active", s.SetRestaurantActive, auth, restaurant)
	g.GET("/restaurants/:id/menu", s.GetRestaurantMenu)
	g.GET("/restaurants/:id/rating", s.GetRestaurantRating)
	g.GET("/restaurants/:id/sales", s.GetRestaurantSales, auth, restaurant)

	g.GET("/categories", s.ListCategories)
	g.POST("/categories", s.CreateCategory, auth, admin)
	g.PUT("/categories/:id", s.UpdateCategory, auth, admin)
	g.POST("/menu-items", s.CreateMenuItem, auth, restaurant)
	g.GET("/menu-items/:id", s.GetMenuItem)
	g.PATCH("/menu-items/:id", s.UpdateMenuItem, auth, restaurant)
	g.DELETE("/menu-items/:id", s.DeleteMenuItem, auth, restaurant)

	g.POST("/orders", s.CreateOrder, auth, customer)
	g.GET("/orders", s.ListOrders, auth)
	g.GET("/orders/statistics", s.GetOrderStatistics, auth)
	g.GET("/orders/:id", s.GetOrder, auth)
	g.PATCH("/orders/:id/status", s.ChangeOrderStatus, auth, s.requireOrderOwner)
	g.PUT("/orders/:id", s.UpdateOrder, auth, admin)
	g.POST("/orders/:id/delivery", s.AssignCourier, auth, restaurant, s.requireOrderOwner)

	g.GET("/deliveries", s.ListDeliveries, auth)
	g.GET("/deliveries/statistics", s.GetDeliveryStatistics, auth)
	g.GET("/deliveries/:id", s.GetDelivery, auth)
	g.PATCH("/deliveries/:id/status", s.TransitionDelivery, auth, courier, s.requireDeliveryOwner)
	g.PATCH("/deliveries/:id/courier", s.ReassignCourier, auth, restaurant)
	g.PUT("/deliveries/:id/location", s.UpdateDeliveryLocation, auth, courier, s.requireDeliveryOwner)
	g.DELETE("/deliveries/:id", s.DeleteDelivery, auth, restaurant)

	g.POST("/couriers", s.RegisterCourier, auth, admin)
	g.GET("/couriers", s.ListCouriers, auth, admin)
	g.GET("/couriers/available", s.ListAvailableCouriers, auth, restaurant)
	g.GET("/couriers/:id", s.GetCourier, auth, courier)
	g.PATCH("/couriers/:id/status", s.ChangeCourierStatus, auth, courier)
	g.PATCH("/couriers/:id/availability", s.SetCourierAvailability, auth, courier)

	g.POST("/ratings", s.CreateRating, auth, customer)
	g.PUT("/ratings/:id", s.UpdateRating, auth, customer)

	g.POST("/promotions", s.CreatePromotion, auth, restaurant)
}

func health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// CreatedResponse is returned by endpoints that create a resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

func (s *Server) bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return badRequest("invalid request body", err)
	}
	return nil
}
