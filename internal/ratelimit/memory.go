package ratelimit

import (
	"context"
	"sync"
	"time"
)

const (
	bucketIdleThreshold = 1 * time.Hour
	cleanupInterval     = 30 * time.Minute
)

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// Memory is a per-process token bucket limiter. Each key gets capacity
// tokens, refilled in full once window has elapsed since the last refill.
type Memory struct {
	mu       sync.Mutex
	capacity int
	window   time.Duration
	buckets  map[string]*bucket
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemory creates a Memory limiter and starts its idle-bucket cleanup loop.
// Call Stop to end the loop.
func NewMemory(capacity int, window time.Duration) *Memory {
	m := newMemory(capacity, window, time.Now)
	go m.cleanupLoop()
	return m
}

func newMemory(capacity int, window time.Duration, now func() time.Time) *Memory {
	return &Memory{
		capacity: capacity,
		window:   window,
		buckets:  make(map[string]*bucket),
		now:      now,
		stop:     make(chan struct{}),
	}
}

// Allow consumes a token for key. It never returns an error.
func (m *Memory) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	b, exists := m.buckets[key]
	if !exists {
		m.buckets[key] = &bucket{tokens: m.capacity - 1, lastRefill: now}
		return true, nil
	}

	if now.Sub(b.lastRefill) >= m.window {
		b.tokens = m.capacity
		b.lastRefill = now
	}

	if b.tokens <= 0 {
		return false, nil
	}
	b.tokens--
	return true, nil
}

// Stop ends the cleanup loop. It is safe to call more than once.
func (m *Memory) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *Memory) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup()
		case <-m.stop:
			return
		}
	}
}

// cleanup drops buckets that have not been refilled for bucketIdleThreshold.
func (m *Memory) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, b := range m.buckets {
		if now.Sub(b.lastRefill) > bucketIdleThreshold {
			delete(m.buckets, key)
		}
	}
}
