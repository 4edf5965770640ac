package dictionary

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"lexibar/internal/domain"
	"lexibar/internal/eventbus"
)

// Definer looks up a word
type Definer interface {
	Define(ctx context.Context, word string) (domain.Entry, error)
}

// CachedDefiner memoises lookups for a TTL and rate limits the ones that miss
type CachedDefiner struct {
	next    Definer
	cache   *cache.Cache
	limiter *rate.Limiter
}

// NewCachedDefiner wraps next. perSecond <= 0 disables the limiter.
func NewCachedDefiner(next Definer, ttl time.Duration, perSecond float64, burst int) *CachedDefiner {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	if burst < 1 {
		burst = 1
	}
	return &CachedDefiner{
		next:    next,
		cache:   cache.New(ttl, 2*ttl),
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Define returns a cached entry or asks the wrapped definer. Failures are not cached.
func (c *CachedDefiner) Define(ctx context.Context, word string) (domain.Entry, error) {
	key := normalize(word)
	if key == "" {
		return domain.Entry{}, ErrEmptyWord
	}
	if v, ok := c.cache.Get(key); ok {
		return v.(domain.Entry), nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return domain.Entry{}, fmt.Errorf("lookup %q: %w", word, err)
	}
	entry, err := c.next.Define(ctx, word)
	if err != nil {
		return domain.Entry{}, err
	}
	c.cache.Set(key, entry, cache.DefaultExpiration)
	return entry, nil
}

// Flush drops every cached entry
func (c *CachedDefiner) Flush() {
	c.cache.Flush()
}

// Attach flushes the cache whenever the dictionary is reloaded
func (c *CachedDefiner) Attach(bus eventbus.EventBus) func() {
	return bus.Subscribe(eventbus.EventDictionaryReloaded, func(eventbus.DomainEvent) {
		c.Flush()
	})
}
