package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	KafkaBrokers              []string
	KafkaOrderChangedTopic    string
	KafkaDeliveryChangedTopic string

	RedisAddr   string
	RedisDB     int
	LocationTTL time.Duration

	PromotionSweepSchedule string
	OpenAPIValidation      bool
	LogLevel               string

	AdminEmail    string
	AdminPassword string
}

// DSN addresses the application database.
func (c Config) DSN() string {
	return c.dsn(c.DBName)
}

// MaintenanceDSN addresses the server's default database, used to create
// the application database when it does not exist yet.
func (c Config) MaintenanceDSN() string {
	return c.dsn("postgres")
}

func (c Config) dsn(dbName string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, dbName, c.DBSslMode)
}

func (c Config) KafkaEnabled() bool { return len(c.KafkaBrokers) > 0 }
func (c Config) RedisEnabled() bool { return c.RedisAddr != "" }

// SlogLevel maps LOG_LEVEL to a slog level; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
