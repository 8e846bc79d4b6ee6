package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/kafka"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/redis"
	"fooddelivery/internal/adapters/out/security"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"

	goredis "github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory

	publisher   *kafka.EventPublisher
	redisClient *goredis.Client
	tracker     ports.LocationTracker
	hasher      ports.PasswordHasher
	tokens      ports.TokenIssuer
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	tokens, err := security.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	c := &CompositionRoot{
		cfg:     cfg,
		gormDB:  gormDB,
		logger:  logger,
		tracker: redis.NopLocationTracker{},
		hasher:  security.NewBcryptHasher(cfg.BcryptCost),
		tokens:  tokens,
	}

	var publisher ports.EventPublisher
	if cfg.KafkaEnabled() {
		c.publisher = kafka.NewEventPublisher(kafka.NewWriter(cfg.KafkaBrokers, logger), kafka.Topics{
			OrderChanged:    cfg.KafkaOrderChangedTopic,
			DeliveryChanged: cfg.KafkaDeliveryChangedTopic,
		})
		publisher = c.publisher
	}
	if cfg.RedisEnabled() {
		c.redisClient = redis.NewClient(cfg.RedisAddr, cfg.RedisDB)
		c.tracker = redis.NewLocationTracker(c.redisClient, cfg.LocationTTL)
	}

	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger.With("component", "unit_of_work"))
	return c, nil
}

// Close releases the outbound connections. The database is owned by the caller.
func (c *CompositionRoot) Close() error {
	var errs []error
	if c.publisher != nil {
		errs = append(errs, c.publisher.Close())
	}
	if c.redisClient != nil {
		errs = append(errs, c.redisClient.Close())
	}
	return errors.Join(errs...)
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) ratingUoWFactory() commands.RatingUoWFactory {
	return FuncRatingUoWFactory(func() commands.RatingUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) promotionUoWFactory() commands.PromotionUoWFactory {
	return FuncPromotionUoWFactory(func() commands.PromotionUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) deliveryLogger() *slog.Logger {
	return c.logger.With("component", "delivery_engine")
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	return commands.NewRegisterAccountCommandHandler(c.accountUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.accountUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	return commands.NewUpdateProfileCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateEnsureAdminCommandHandler() commands.EnsureAdminCommandHandler {
	return commands.NewEnsureAdminCommandHandler(c.accountUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	return commands.NewCreateRestaurantCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRestaurantCommandHandler() commands.UpdateRestaurantCommandHandler {
	return commands.NewUpdateRestaurantCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateSetRestaurantActiveCommandHandler() commands.SetRestaurantActiveCommandHandler {
	return commands.NewSetRestaurantActiveCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCategoryCommandHandler() commands.UpdateCategoryCommandHandler {
	return commands.NewUpdateCategoryCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	return commands.NewDeleteMenuItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderDetailsCommandHandler() commands.UpdateOrderDetailsCommandHandler {
	return commands.NewUpdateOrderDetailsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateTransitionDeliveryCommandHandler() commands.TransitionDeliveryCommandHandler {
	return commands.NewTransitionDeliveryCommandHandler(c.deliveryUoWFactory(), c.tracker, c.deliveryLogger())
}

func (c *CompositionRoot) CreateReassignCourierCommandHandler() commands.ReassignCourierCommandHandler {
	return commands.NewReassignCourierCommandHandler(c.deliveryUoWFactory(), c.tracker, c.deliveryLogger())
}

func (c *CompositionRoot) CreateUpdateDeliveryLocationCommandHandler() commands.UpdateDeliveryLocationCommandHandler {
	return commands.NewUpdateDeliveryLocationCommandHandler(c.deliveryUoWFactory(), c.tracker, c.deliveryLogger())
}

func (c *CompositionRoot) CreateDeleteDeliveryCommandHandler() commands.DeleteDeliveryCommandHandler {
	return commands.NewDeleteDeliveryCommandHandler(c.deliveryUoWFactory(), c.tracker, c.deliveryLogger())
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	return commands.NewRegisterCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateChangeCourierStatusCommandHandler() commands.ChangeCourierStatusCommandHandler {
	return commands.NewChangeCourierStatusCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateSetCourierAvailabilityCommandHandler() commands.SetCourierAvailabilityCommandHandler {
	return commands.NewSetCourierAvailabilityCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateCreateRatingCommandHandler() commands.CreateRatingCommandHandler {
	return commands.NewCreateRatingCommandHandler(c.ratingUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRatingCommandHandler() commands.UpdateRatingCommandHandler {
	return commands.NewUpdateRatingCommandHandler(c.ratingUoWFactory())
}

func (c *CompositionRoot) CreateCreatePromotionCommandHandler() commands.CreatePromotionCommandHandler {
	return commands.NewCreatePromotionCommandHandler(c.promotionUoWFactory())
}

func (c *CompositionRoot) CreateExpirePromotionsCommandHandler() commands.ExpirePromotionsCommandHandler {
	return commands.NewExpirePromotionsCommandHandler(c.promotionUoWFactory())
}

func (c *CompositionRoot) CreateListRestaurantsQueryHandler() queries.ListRestaurantsQueryHandler {
	return queries.NewListRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantQueryHandler() queries.GetRestaurantQueryHandler {
	return queries.NewGetRestaurantQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemQueryHandler() queries.GetMenuItemQueryHandler {
	return queries.NewGetMenuItemQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantMenuQueryHandler() queries.GetRestaurantMenuQueryHandler {
	return queries.NewGetRestaurantMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantRatingQueryHandler() queries.GetRestaurantRatingQueryHandler {
	return queries.NewGetRestaurantRatingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantSalesQueryHandler() queries.GetRestaurantSalesQueryHandler {
	return queries.NewGetRestaurantSalesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderStatisticsQueryHandler() queries.OrderStatisticsQueryHandler {
	return queries.NewOrderStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB, c.tracker, c.deliveryLogger())
}

func (c *CompositionRoot) CreateListDeliveriesQueryHandler() queries.ListDeliveriesQueryHandler {
	return queries.NewListDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDeliveryStatisticsQueryHandler() queries.DeliveryStatisticsQueryHandler {
	return queries.NewDeliveryStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCouriersQueryHandler() queries.ListCouriersQueryHandler {
	return queries.NewListCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierQueryHandler() queries.GetCourierQueryHandler {
	return queries.NewGetCourierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAvailableCouriersQueryHandler() queries.ListAvailableCouriersQueryHandler {
	return queries.NewListAvailableCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	cmds := http.CommandHandlers{
		RegisterAccount:        c.CreateRegisterAccountCommandHandler(),
		Login:                  c.CreateLoginCommandHandler(),
		UpdateProfile:          c.CreateUpdateProfileCommandHandler(),
		CreateRestaurant:       c.CreateCreateRestaurantCommandHandler(),
		UpdateRestaurant:       c.CreateUpdateRestaurantCommandHandler(),
		SetRestaurantActive:    c.CreateSetRestaurantActiveCommandHandler(),
		CreateCategory:         c.CreateCreateCategoryCommandHandler(),
		UpdateCategory:         c.CreateUpdateCategoryCommandHandler(),
		CreateMenuItem:         c.CreateCreateMenuItemCommandHandler(),
		UpdateMenuItem:         c.CreateUpdateMenuItemCommandHandler(),
		DeleteMenuItem:         c.CreateDeleteMenuItemCommandHandler(),
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:      c.CreateChangeOrderStatusCommandHandler(),
		UpdateOrderDetails:     c.CreateUpdateOrderDetailsCommandHandler(),
		AssignCourier:          c.CreateAssignCourierCommandHandler(),
		TransitionDelivery:     c.CreateTransitionDeliveryCommandHandler(),
		ReassignCourier:        c.CreateReassignCourierCommandHandler(),
		UpdateDeliveryLocation: c.CreateUpdateDeliveryLocationCommandHandler(),
		DeleteDelivery:         c.CreateDeleteDeliveryCommandHandler(),
		RegisterCourier:        c.CreateRegisterCourierCommandHandler(),
		ChangeCourierStatus:    c.CreateChangeCourierStatusCommandHandler(),
		SetCourierAvailability: c.CreateSetCourierAvailabilityCommandHandler(),
		CreateRating:           c.CreateCreateRatingCommandHandler(),
		UpdateRating:           c.CreateUpdateRatingCommandHandler(),
		CreatePromotion:        c.CreateCreatePromotionCommandHandler(),
	}
	qs := http.QueryHandlers{
		GetProfile:            c.CreateGetProfileQueryHandler(),
		ListRestaurants:       c.CreateListRestaurantsQueryHandler(),
		GetRestaurant:         c.CreateGetRestaurantQueryHandler(),
		ListCategories:        c.CreateListCategoriesQueryHandler(),
		GetMenuItem:           c.CreateGetMenuItemQueryHandler(),
		RestaurantMenu:        c.CreateGetRestaurantMenuQueryHandler(),
		RestaurantRating:      c.CreateGetRestaurantRatingQueryHandler(),
		RestaurantSales:       c.CreateGetRestaurantSalesQueryHandler(),
		GetOrder:              c.CreateGetOrderQueryHandler(),
		ListOrders:            c.CreateListOrdersQueryHandler(),
		OrderStatistics:       c.CreateOrderStatisticsQueryHandler(),
		GetDelivery:           c.CreateGetDeliveryQueryHandler(),
		ListDeliveries:        c.CreateListDeliveriesQueryHandler(),
		DeliveryStatistics:    c.CreateDeliveryStatisticsQueryHandler(),
		ListCouriers:          c.CreateListCouriersQueryHandler(),
		GetCourier:            c.CreateGetCourierQueryHandler(),
		ListAvailableCouriers: c.CreateListAvailableCouriersQueryHandler(),
	}
	return http.NewServer(cmds, qs, queries.NewOwnershipChecker(c.gormDB), c.tokens, c.logger.With("component", "http"))
}

func (c *CompositionRoot) CreateEcho(ctx context.Context) (*echo.Echo, error) {
	return http.NewEcho(ctx, c.CreateHTTPServer(), http.RouterOptions{
		ValidateRequests: c.cfg.OpenAPIValidation,
		Swagger:          true,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var scheduled []jobs.Job
	if c.cfg.PromotionSweepSchedule != "" {
		scheduled = append(scheduled, jobs.NewPromotionExpiryJob(
			c.CreateExpirePromotionsCommandHandler(),
			c.cfg.PromotionSweepSchedule,
			c.logger,
		))
	}
	return jobs.NewJobManager(c.logger, scheduled...)
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}

type FuncPromotionUoWFactory func() commands.PromotionUoW

func (f FuncPromotionUoWFactory) Create() commands.PromotionUoW {
	return f()
}
