package lock

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrLocked - блокировка уже удерживается другим владельцем.
var ErrLocked = errors.New("lock is held")

type Unlock func()

// Local - блокировки в памяти процесса, для одной реплики.
type Local struct {
	mu   sync.Mutex
	held map[string]time.Time
}

func NewLocal() *Local {
	return &Local{held: make(map[string]time.Time)}
}

// TryLock не ждёт освобождения: если ключ занят, сразу возвращает ErrLocked.
func (l *Local) TryLock(_ context.Context, key string, ttl time.Duration) (Unlock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if expires, ok := l.held[key]; ok && now.Before(expires) {
		return nil, ErrLocked
	}

	expires := now.Add(ttl)
	l.held[key] = expires

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		// ключ мог истечь и достаться другому владельцу
		if l.held[key].Equal(expires) {
			delete(l.held, key)
		}
	}, nil
}
