package persistence

import (
	"context"
	"fmt"
)

// Config selects and configures a KV backend.
type Config struct {
	Driver string
	Path   string // file directory or sqlite database file
	DSN    string // postgres or mysql
	Redis  RedisConfig
	S3     S3Config
}

// Open constructs the KV backend named by cfg.Driver.
func Open(ctx context.Context, cfg Config) (KV, error) {
	switch cfg.Driver {
	case "", DriverMemory:
		return NewMemoryKV(), nil
	case DriverFile:
		return NewFileKV(cfg.Path)
	case DriverSQLite:
		return NewSQLiteKV(cfg.Path)
	case DriverRedis:
		kv := NewRedisKV(cfg.Redis)
		if err := kv.Ping(ctx); err != nil {
			_ = kv.Close()
			return nil, err
		}
		return kv, nil
	case DriverPostgres, DriverMySQL:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("%s driver requires a DSN", cfg.Driver)
		}
		db, err := OpenGorm(cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return NewGormKV(db)
	case DriverS3:
		return NewS3KV(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, cfg.Driver)
	}
}
