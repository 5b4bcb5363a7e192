package usecase

import (
	"context"
	"sync"
	"time"

	"jobcast/internal/core/port"
)

// MemoryLease is a process-local port.Lease used when no Redis is
// configured. Expired entries are reclaimed lazily on Acquire.
type MemoryLease struct {
	mu      sync.Mutex
	holders map[string]memoryHolder
	seq     uint64
	now     func() time.Time
}

type memoryHolder struct {
	token   uint64
	expires time.Time
}

func NewMemoryLease() *MemoryLease {
	return &MemoryLease{holders: make(map[string]memoryHolder), now: time.Now}
}

func (l *MemoryLease) Acquire(_ context.Context, key string, ttl time.Duration) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if h, ok := l.holders[key]; ok && now.Before(h.expires) {
		return nil, port.ErrLeaseHeld
	}
	l.seq++
	token := l.seq
	l.holders[key] = memoryHolder{token: token, expires: now.Add(ttl)}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			// A holder whose lease expired must not release its successor.
			if h, ok := l.holders[key]; ok && h.token == token {
				delete(l.holders, key)
			}
		})
	}, nil
}
