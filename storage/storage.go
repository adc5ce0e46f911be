// Package storage provides the keyed record store backing cart persistence.
// Carts are single JSON records addressed by key, so the interface is a
// minimal get/set/delete rather than a query surface.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/aaronwins356/RoveShopV2/config"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrNotFound is returned by Get when no record exists under the key.
	ErrNotFound = errors.New("storage: record not found")
	// ErrUnavailable is returned when the persistence medium cannot be
	// read or written. Mutating callers must surface it, never swallow it.
	ErrUnavailable = errors.New("storage: unavailable")
)

// Store is the persistence contract for keyed records.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Open selects a Store implementation using environment variables. The Redis
// client is opened by the caller (it is shared with the rate limiter) and may
// be nil for the file and memory drivers.
//
//	CART_STORAGE: redis|file|memory (default redis)
//	CART_STORAGE_DIR: directory root when CART_STORAGE=file (default ./cartdata)
func Open(client *redis.Client) (Store, error) {
	driver := config.GetEnv("CART_STORAGE", "redis")
	switch driver {
	case "redis":
		if client == nil {
			return nil, errors.New("cart storage driver redis requires a Redis connection")
		}
		return NewRedis(client), nil
	case "file":
		return NewFilesystem(config.GetEnv("CART_STORAGE_DIR", "./cartdata"))
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown cart storage driver %s", driver)
	}
}
