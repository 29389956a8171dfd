package lock

import (
	"context"
	"database/sql/driver"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// Postgres - блокировки на advisory lock в той же базе, где лежат заказы.
// Блокировка сессионная: держит отдельное соединение и снимается вместе с ним,
// поэтому упавшая реплика не оставляет заказ заблокированным. ttl не используется.
type Postgres struct {
	logger *slog.Logger
	db     *sqlx.DB
}

func NewPostgres(logger *slog.Logger, db *sqlx.DB) *Postgres {
	return &Postgres{
		logger: logger.With(slog.String("lock", "postgres")),
		db:     db,
	}
}

func (p *Postgres) TryLock(ctx context.Context, key string, _ time.Duration) (Unlock, error) {
	conn, err := p.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}

	var ok bool
	if err := conn.GetContext(ctx, &ok, "SELECT pg_try_advisory_lock(hashtext($1))", key); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !ok {
		conn.Close()
		return nil, ErrLocked
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		var released bool
		err := conn.GetContext(ctx, &released, "SELECT pg_advisory_unlock(hashtext($1))", key)
		if err != nil || !released {
			p.logger.Error("failed to release lock, dropping connection", slog.String("key", key), slog.Any("error", err))
			// соединение с висящей блокировкой не должно вернуться в пул
			conn.Raw(func(any) error { return driver.ErrBadConn })
		}
		conn.Close()
	}, nil
}
