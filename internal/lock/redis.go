package lock

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

//go:embed scripts/release.lua
var releaseScript string

// Redis - блокировки между репликами через SET NX с TTL.
type Redis struct {
	logger  *slog.Logger
	rdb     *redis.Client
	release *redis.Script
}

func NewRedis(logger *slog.Logger, rdb *redis.Client) *Redis {
	return &Redis{
		logger:  logger.With(slog.String("lock", "redis")),
		rdb:     rdb,
		release: redis.NewScript(releaseScript),
	}
}

// Connect создаёт клиент и проверяет соединение.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

func (r *Redis) TryLock(ctx context.Context, key string, ttl time.Duration) (Unlock, error) {
	token := uuid.NewString()
	redisKey := "lock:" + key

	ok, err := r.rdb.SetNX(ctx, redisKey, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}

	return func() {
		// снимаем блокировку даже если исходный контекст уже отменён
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := r.release.Run(ctx, r.rdb, []string{redisKey}, token).Err(); err != nil {
			r.logger.Error("failed to release lock", slog.String("key", key), slog.Any("error", err))
		}
	}, nil
}
