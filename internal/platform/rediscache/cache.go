// Package rediscache stores JSON snapshots of catalog and career data
// in Redis so restarted or horizontally scaled instances can reuse
// fetched data without going back to the primary store.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gradepath/gradepath-api/internal/domain"
)

// ErrMiss is returned when no snapshot exists for the requested key.
var ErrMiss = errors.New("cache miss")

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Cache wraps a Redis client for catalog and career snapshots.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

// New creates a snapshot cache over a new Redis client.
// If logger is nil, the default logger is used.
func New(opts Options, logger *slog.Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return NewWithClient(client, logger)
}

// NewWithClient creates a snapshot cache over an existing client.
func NewWithClient(client *redis.Client, logger *slog.Logger) *Cache {
	if client == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("redis client cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Cache{
		client: client,
		logger: logger.With(slog.String("component", "rediscache")),
	}
}

// Ping tests the Redis connection.
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the underlying Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}

func catalogKey(countryCode string) string {
	return "catalog:v1:" + countryCode
}

func careerKey(name, countryCode string) string {
	return "career:v1:" + countryCode + ":" + name
}

// GetCatalog retrieves a catalog snapshot. Returns ErrMiss when no
// snapshot exists.
func (c *Cache) GetCatalog(
	ctx context.Context,
	countryCode string,
) (*domain.CountryCatalog, error) {
	var cat domain.CountryCatalog
	if err := c.get(ctx, catalogKey(countryCode), &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// SetCatalog stores a catalog snapshot with the given TTL.
func (c *Cache) SetCatalog(
	ctx context.Context,
	cat *domain.CountryCatalog,
	ttl time.Duration,
) error {
	return c.set(ctx, catalogKey(cat.CountryCode), cat, ttl)
}

// GetCareer retrieves a career snapshot. Returns ErrMiss when no
// snapshot exists.
func (c *Cache) GetCareer(
	ctx context.Context,
	name, countryCode string,
) (*domain.Career, error) {
	var career domain.Career
	if err := c.get(ctx, careerKey(name, countryCode), &career); err != nil {
		return nil, err
	}
	return &career, nil
}

// SetCareer stores a career snapshot with the given TTL.
func (c *Cache) SetCareer(
	ctx context.Context,
	career *domain.Career,
	ttl time.Duration,
) error {
	return c.set(ctx, careerKey(career.Name, career.CountryCode), career, ttl)
}

func (c *Cache) get(ctx context.Context, key string, v any) error {
	raw, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: %s", ErrMiss, key)
	}
	if err != nil {
		return fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		// A corrupt snapshot is treated as a miss so the caller falls
		// through to the primary store.
		c.logger.WarnContext(ctx, "discarding corrupt cache snapshot",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %s", ErrMiss, key)
	}
	return nil
}

func (c *Cache) set(ctx context.Context, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal snapshot %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
