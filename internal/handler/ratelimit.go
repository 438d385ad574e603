package handler

import (
	"errors"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

var errLimiterSize = errors.New("rate limiter needs a positive client capacity")

// Limiter is a per-client token bucket. Buckets live in a bounded LRU so a
// flood of distinct addresses cannot grow memory without limit.
type Limiter struct {
	mu      sync.Mutex
	clients *lru.Cache[string, *rate.Limiter]
	limit   rate.Limit
	burst   int
}

func NewLimiter(perSecond float64, burst, maxClients int) (*Limiter, error) {
	if maxClients <= 0 {
		return nil, errLimiterSize
	}
	clients, err := lru.New[string, *rate.Limiter](maxClients)
	if err != nil {
		return nil, err
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		clients: clients,
		limit:   rate.Limit(perSecond),
		burst:   burst,
	}, nil
}

func (l *Limiter) Allow(client string) bool {
	l.mu.Lock()
	bucket, ok := l.clients.Get(client)
	if !ok {
		bucket = rate.NewLimiter(l.limit, l.burst)
		l.clients.Add(client, bucket)
	}
	l.mu.Unlock()

	return bucket.Allow()
}
