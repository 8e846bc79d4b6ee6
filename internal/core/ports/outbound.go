package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/ddd"
)

// EventPublisher forwards committed domain events to other systems.
type EventPublisher interface {
	Publish(ctx context.Context, events ...ddd.Event) error
}

// LocationTracker caches the last reported position of deliveries in transit.
type LocationTracker interface {
	Track(ctx context.Context, deliveryID kernel.UUID, point kernel.GeoPoint, at time.Time) error

	// Last returns the cached position, or nil when nothing is cached.
	Last(ctx context.Context, deliveryID kernel.UUID) (*kernel.GeoPoint, error)

	Forget(ctx context.Context, deliveryID kernel.UUID) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// TokenIssuer signs and verifies bearer tokens carrying a principal.
type TokenIssuer interface {
	Issue(principal account.Principal) (token string, expiresAt time.Time, err error)
	Parse(token string) (account.Principal, error)
}
