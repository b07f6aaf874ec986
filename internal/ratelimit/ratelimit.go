// Package ratelimit implements a fixed-window per-client request limiter.
package ratelimit

import (
	"hash/fnv"
	"sync"
	"time"
)

const shardCount = 64

// clientWindow tracks request counts for one client within the current window.
type clientWindow struct {
	count       int
	windowStart time.Time
}

type shard struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
}

// Limiter is a fixed-window request counter keyed by client identifier.
//
// The window is anchored to the first request of each window rather than
// sliding, so a client can burst up to twice the limit across a window
// boundary. That approximation is accepted for this service.
//
// Windows are never evicted; the map grows with the number of distinct
// clients seen over the process lifetime.
type Limiter struct {
	maxRequests int
	window      time.Duration
	shards      [shardCount]shard

	// now is replaceable in tests.
	now func() time.Time
}

// New creates a limiter allowing maxRequests per window per client.
func New(maxRequests int, window time.Duration) *Limiter {
	l := &Limiter{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
	for i := range l.shards {
		l.shards[i].clients = make(map[string]*clientWindow)
	}
	return l
}

// Allow reports whether the client may issue another request, counting this
// call against its window. The check-then-update sequence is atomic per
// shard, so concurrent requests from one client cannot both take the last
// slot. Distinct clients land on independent shards and rarely contend.
func (l *Limiter) Allow(clientID string) bool {
	s := &l.shards[l.shardFor(clientID)]
	now := l.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	cw, ok := s.clients[clientID]
	if !ok {
		s.clients[clientID] = &clientWindow{count: 1, windowStart: now}
		return true
	}

	if now.Sub(cw.windowStart) > l.window {
		cw.count = 1
		cw.windowStart = now
		return true
	}

	if cw.count < l.maxRequests {
		cw.count++
		return true
	}

	return false
}

// Size returns the number of client windows currently tracked.
func (l *Limiter) Size() int {
	total := 0
	for i := range l.shards {
		s := &l.shards[i]
		s.mu.Lock()
		total += len(s.clients)
		s.mu.Unlock()
	}
	return total
}

func (l *Limiter) shardFor(clientID string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(clientID))
	return h.Sum32() % shardCount
}
