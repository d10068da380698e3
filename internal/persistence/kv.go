// Package persistence stores the room and booking collections in a durable
// key-value store under two fixed keys and restores them on startup.
package persistence

import (
	"context"
	"errors"
)

// Durable store keys. They are part of the persisted contract.
const (
	KeyRooms    = "hotelRooms"
	KeyBookings = "hotelBookings"
)

// Driver names accepted by Open.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverS3       = "s3"
)

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown store driver")

// KV is a durable key-value store holding opaque values.
type KV interface {
	// Get returns the value for key. ok is false if the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}
