package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"fooddelivery/cmd"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := createDatabaseIfNotExists(ctx, configs); err != nil {
		log.Fatalf("database bootstrap: %v", err)
	}
	gormDB := mustGormOpen(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("compose application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("close outbound adapters", "error", err)
		}
	}()

	if err = seedAdmin(ctx, app, configs); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}

	startWebServer(ctx, app, configs.HTTPPort, jobManager)
}

func getConfigs() cmd.Config {
	// A missing .env is fine: the environment may be set by the container.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:                  envDefault("HTTP_PORT", "8080"),
		DBHost:                    envDefault("DB_HOST", "localhost"),
		DBPort:                    envDefault("DB_PORT", "5432"),
		DBUser:                    envDefault("DB_USER", "postgres"),
		DBPassword:                os.Getenv("DB_PASSWORD"),
		DBName:                    envDefault("DB_NAME", "fooddelivery"),
		DBSslMode:                 envDefault("DB_SSLMODE", "disable"),
		JWTSecret:                 os.Getenv("JWT_SECRET"),
		JWTTTL:                    envDuration("JWT_TTL", 24*time.Hour),
		BcryptCost:                envInt("BCRYPT_COST", 0),
		KafkaBrokers:              csv(os.Getenv("KAFKA_HOST")),
		KafkaOrderChangedTopic:    envDefault("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		KafkaDeliveryChangedTopic: envDefault("KAFKA_DELIVERY_CHANGED_TOPIC", "delivery.changed"),
		RedisAddr:                 os.Getenv("REDIS_ADDR"),
		RedisDB:                   envInt("REDIS_DB", 0),
		LocationTTL:               envDuration("LOCATION_TTL", 2*time.Hour),
		PromotionSweepSchedule:    envOptional("PROMOTION_SWEEP_SCHEDULE", jobs.DefaultPromotionSweepSchedule),
		OpenAPIValidation:         envBool("OPENAPI_VALIDATION", true),
		LogLevel:                  envDefault("LOG_LEVEL", "info"),
		AdminEmail:                os.Getenv("ADMIN_EMAIL"),
		AdminPassword:             os.Getenv("ADMIN_PASSWORD"),
	}
}

func envDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// envOptional keeps an explicitly empty value, which switches the feature off.
func envOptional(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func csv(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func createDatabaseIfNotExists(ctx context.Context, cfg cmd.Config) error {
	db, err := sql.Open("postgres", cfg.MaintenanceDSN())
	if err != nil {
		return fmt.Errorf("open maintenance connection: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database: %w", err)
	}
	if exists {
		return nil
	}

	// CREATE DATABASE does not accept bind parameters.
	if _, err = db.ExecContext(ctx, "CREATE DATABASE "+quoteIdentifier(cfg.DBName)); err != nil {
		return fmt.Errorf("create database %s: %w", cfg.DBName, err)
	}
	return nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func mustGormOpen(cfg cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	return gormDB
}

func seedAdmin(ctx context.Context, app *cmd.CompositionRoot, cfg cmd.Config) error {
	if cfg.AdminEmail == "" {
		slog.Warn("ADMIN_EMAIL is empty, skipping admin bootstrap")
		return nil
	}
	ensureAdmin, err := commands.NewEnsureAdminCommand(kernel.NewUUID(), cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return err
	}
	return app.CreateEnsureAdminCommandHandler().Handle(ctx, ensureAdmin)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, jobManager *jobs.JobManager) {
	e, err := app.CreateEcho(ctx)
	if err != nil {
		log.Fatalf("build http server: %v", err)
	}
	e.Logger.SetLevel(log.INFO)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()
	slog.Info("http server listening", "port", port)

	<-ctx.Done()
	slog.Info("shutting down")

	jobManager.StopAll()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
