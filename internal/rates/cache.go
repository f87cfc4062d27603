package rates

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Valentin1965/VoltStore/internal/llm"
)

type State string

const (
	StateFresh      State = "FRESH"
	StateStale      State = "STALE"
	StateSuppressed State = "SUPPRESSED"
	StateBlocked    State = "BLOCKED"
)

const (
	// CacheDuration is the TTL of a rate set.
	CacheDuration = 24 * time.Hour

	// SuppressDuration is the backoff window after a rate-limited refresh.
	SuppressDuration = 4 * time.Hour

	// startupDebounce delays the opportunistic cold-start refresh so it
	// never competes with serving the first requests.
	startupDebounce = 5 * time.Second

	fetchTimeout = 15 * time.Second
)

// Cache holds the best-known exchange rates and refreshes them from the
// provider while honoring the Fresh/Stale/Suppressed/Blocked lifecycle.
// Reads never block on network I/O.
type Cache struct {
	mu            sync.Mutex
	provider      Provider
	store         Store
	rates         ExchangeRates
	suppressUntil int64 // epoch ms, 0 = no suppression
	blocked       bool

	now func() time.Time
}

func NewCache(provider Provider, store Store) *Cache {
	c := &Cache{
		provider: provider,
		store:    store,
		now:      time.Now,
	}

	// Resume from the persisted record so a restart inside the TTL or
	// suppression window needs no network call.
	if saved, ok := store.LoadRates(); ok {
		c.rates = saved.normalize()
	} else {
		c.rates = StableRates()
	}
	if deadline, ok := store.LoadSuppressUntil(); ok {
		c.suppressUntil = deadline
	}

	return c
}

// CurrentRates returns the latest known rates synchronously. Stale or
// suppressed rates are still valid for formatting.
func (c *Cache) CurrentRates() ExchangeRates {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rates
}

// State derives the lifecycle state at this instant.
func (c *Cache) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Cache) stateLocked() State {
	if c.blocked {
		return StateBlocked
	}
	now := c.now().UnixMilli()
	if now < c.suppressUntil {
		return StateSuppressed
	}
	if now-c.rates.Timestamp < CacheDuration.Milliseconds() {
		return StateFresh
	}
	return StateStale
}

// Start launches the debounced opportunistic refresh. Called once per
// process.
func (c *Cache) Start() {
	go func() {
		time.Sleep(startupDebounce)
		c.Refresh(false)
	}()
}

// Refresh attempts one refresh. force bypasses the Fresh and Suppressed
// gates but never Blocked. Safe to call from any goroutine; errors are
// absorbed into cache state, never returned.
func (c *Cache) Refresh(force bool) {
	c.mu.Lock()
	if c.blocked {
		c.mu.Unlock()
		return
	}
	if !force {
		switch c.stateLocked() {
		case StateFresh, StateSuppressed:
			c.mu.Unlock()
			return
		}
	}
	provider := c.provider
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	fetched, err := provider.FetchRates(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err == nil {
		c.rates = fetched.normalize()
		c.suppressUntil = 0
		c.persistLocked()
		log.Printf("rates: refreshed, EUR/DKK=%.4f EUR/USD=%.4f", c.rates.DKK, c.rates.USD)
		return
	}

	var rateLimited *llm.RateLimitError
	switch {
	case errors.As(err, &rateLimited):
		c.suppressUntil = c.now().Add(SuppressDuration).UnixMilli()
		if err := c.store.SaveSuppressUntil(c.suppressUntil); err != nil {
			log.Printf("rates: persist suppression failed: %v", err)
		}
		log.Printf("rates: rate limited, suppressed until %d", c.suppressUntil)
	case errors.Is(err, llm.ErrMissingCredential), errors.Is(err, llm.ErrBlockedCredential):
		c.blocked = true
		log.Printf("rates: refresh blocked, credential problem: %v", err)
	default:
		// Transient failure. Keep serving retained rates, no state change.
		log.Printf("rates: refresh failed: %v", err)
	}
}

// UpdateRates merges an explicit partial update and re-stamps the timestamp.
func (c *Cache) UpdateRates(partial PartialRates) ExchangeRates {
	c.mu.Lock()
	defer c.mu.Unlock()

	if partial.DKK != nil && *partial.DKK > 0 {
		c.rates.DKK = *partial.DKK
	}
	if partial.NOK != nil && *partial.NOK > 0 {
		c.rates.NOK = *partial.NOK
	}
	if partial.SEK != nil && *partial.SEK > 0 {
		c.rates.SEK = *partial.SEK
	}
	if partial.USD != nil && *partial.USD > 0 {
		c.rates.USD = *partial.USD
	}
	c.rates.Timestamp = c.now().UnixMilli()
	c.rates = c.rates.normalize()
	c.persistLocked()

	return c.rates
}

func (c *Cache) persistLocked() {
	if err := c.store.SaveRates(c.rates); err != nil {
		log.Printf("rates: persist failed: %v", err)
	}
	if err := c.store.SaveSuppressUntil(c.suppressUntil); err != nil {
		log.Printf("rates: persist suppression failed: %v", err)
	}
}
