package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter is the single-process fallback used when Redis is not
// configured.
type MemoryLimiter struct {
	window Window
	mu     sync.Mutex
	counts map[string]*bucket
}

type bucket struct {
	count int
	reset time.Time
}

func NewMemory(window Window) *MemoryLimiter {
	return &MemoryLimiter{
		window: window,
		counts: make(map[string]*bucket),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.counts[key]
	if !ok || now.After(b.reset) {
		l.counts[key] = &bucket{count: 1, reset: now.Add(l.window.Period)}
		return true, nil
	}
	b.count++
	return b.count <= l.window.Limit, nil
}
