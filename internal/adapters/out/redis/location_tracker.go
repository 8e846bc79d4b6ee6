// Package redis caches the live position of deliveries in transit.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"

	goredis "github.com/go-redis/redis/v8"
)

const keyPrefix = "delivery:location:"

// LocationTracker stores one hash per delivery with latitude, longitude and
// the report time. Entries expire after ttl so abandoned deliveries do not linger.
type LocationTracker struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewClient(addr string, db int) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr: addr,
		DB:   db,
	})
}

func NewLocationTracker(client *goredis.Client, ttl time.Duration) *LocationTracker {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &LocationTracker{client: client, ttl: ttl}
}

func (t *LocationTracker) Track(ctx context.Context, deliveryID kernel.UUID, point kernel.GeoPoint, at time.Time) error {
	key := keyPrefix + deliveryID.String()
	_, err := t.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]any{
			"lat": strconv.FormatFloat(point.Latitude(), 'f', -1, 64),
			"lng": strconv.FormatFloat(point.Longitude(), 'f', -1, 64),
			"at":  at.UTC().Format(time.RFC3339Nano),
		})
		pipe.Expire(ctx, key, t.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis: track %s: %w", deliveryID, err)
	}
	return nil
}

func (t *LocationTracker) Last(ctx context.Context, deliveryID kernel.UUID) (*kernel.GeoPoint, error) {
	fields, err := t.client.HGetAll(ctx, keyPrefix+deliveryID.String()).Result()
	if errors.Is(err, goredis.Nil) || (err == nil && len(fields) == 0) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis: read %s: %w", deliveryID, err)
	}

	lat, latErr := strconv.ParseFloat(fields["lat"], 64)
	lng, lngErr := strconv.ParseFloat(fields["lng"], 64)
	if err = errors.Join(latErr, lngErr); err != nil {
		return nil, fmt.Errorf("redis: corrupt location for %s: %w", deliveryID, err)
	}

	point, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func (t *LocationTracker) Forget(ctx context.Context, deliveryID kernel.UUID) error {
	if err := t.client.Del(ctx, keyPrefix+deliveryID.String()).Err(); err != nil {
		return fmt.Errorf("redis: forget %s: %w", deliveryID, err)
	}
	return nil
}

// NopLocationTracker is used when no cache is configured. Reads always miss.
type NopLocationTracker struct{}

func (NopLocationTracker) Track(context.Context, kernel.UUID, kernel.GeoPoint, time.Time) error {
	return nil
}

func (NopLocationTracker) Last(context.Context, kernel.UUID) (*kernel.GeoPoint, error) {
	return nil, nil
}

func (NopLocationTracker) Forget(context.Context, kernel.UUID) error {
	return nil
}
