package rates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Valentin1965/VoltStore/internal/llm"
)

// fakeProvider counts outbound calls and returns a scripted result.
type fakeProvider struct {
	calls int
	rates ExchangeRates
	err   error
}

func (f *fakeProvider) FetchRates(ctx context.Context) (ExchangeRates, error) {
	f.calls++
	if f.err != nil {
		return ExchangeRates{}, f.err
	}
	return f.rates, nil
}

func newTestCache(p Provider, store Store, now time.Time) *Cache {
	c := NewCache(p, store)
	c.now = func() time.Time { return now }
	return c
}

func quotedRates(ts int64) ExchangeRates {
	return ExchangeRates{EUR: 1.0, DKK: 7.44, NOK: 11.50, SEK: 11.10, USD: 1.09, Timestamp: ts}
}

func TestStateTTLBoundary(t *testing.T) {
	now := time.Now()
	store := NewMemoryStore()

	fresh := StableRates()
	fresh.Timestamp = now.UnixMilli()
	if err := store.SaveRates(fresh); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := newTestCache(&fakeProvider{}, store, now)
	if got := c.State(); got != StateFresh {
		t.Fatalf("expected FRESH for timestamp=now, got %s", got)
	}

	stale := fresh
	stale.Timestamp = now.Add(-CacheDuration).Add(-time.Millisecond).UnixMilli()
	_ = store.SaveRates(stale)
	c = newTestCache(&fakeProvider{}, store, now)
	if got := c.State(); got != StateStale {
		t.Fatalf("expected STALE past the TTL, got %s", got)
	}
}

func TestRefreshSkippedWhenFresh(t *testing.T) {
	now := time.Now()
	store := NewMemoryStore()
	fresh := StableRates()
	fresh.Timestamp = now.UnixMilli()
	_ = store.SaveRates(fresh)

	p := &fakeProvider{rates: quotedRates(now.UnixMilli())}
	c := newTestCache(p, store, now)

	c.Refresh(false)
	if p.calls != 0 {
		t.Fatalf("fresh cache must not call the provider, got %d calls", p.calls)
	}

	c.Refresh(true)
	if p.calls != 1 {
		t.Fatalf("forced refresh must call the provider, got %d calls", p.calls)
	}
}

func TestSuppressionHonored(t *testing.T) {
	now := time.Now()
	store := NewMemoryStore()
	stale := StableRates()
	stale.Timestamp = now.Add(-2 * CacheDuration).UnixMilli()
	_ = store.SaveRates(stale)

	p := &fakeProvider{err: &llm.RateLimitError{RetryAfter: 30 * time.Second}}
	c := newTestCache(p, store, now)

	c.Refresh(false)
	if p.calls != 1 {
		t.Fatalf("expected one outbound call, got %d", p.calls)
	}
	if got := c.State(); got != StateSuppressed {
		t.Fatalf("expected SUPPRESSED after 429, got %s", got)
	}

	// Non-forced refresh inside the window performs no outbound call.
	c.Refresh(false)
	if p.calls != 1 {
		t.Fatalf("suppressed refresh must not call the provider, got %d calls", p.calls)
	}

	// Forced refresh bypasses the gate.
	p.err = nil
	p.rates = quotedRates(now.UnixMilli())
	c.Refresh(true)
	if p.calls != 2 {
		t.Fatalf("forced refresh must bypass suppression, got %d calls", p.calls)
	}
	if got := c.State(); got != StateFresh {
		t.Fatalf("expected FRESH after successful forced refresh, got %s", got)
	}
}

func TestSuppressionExpires(t *testing.T) {
	now := time.Now()
	store := NewMemoryStore()
	stale := StableRates()
	stale.Timestamp = now.Add(-2 * CacheDuration).UnixMilli()
	_ = store.SaveRates(stale)
	_ = store.SaveSuppressUntil(now.Add(-time.Minute).UnixMilli())

	c := newTestCache(&fakeProvider{}, store, now)
	if got := c.State(); got != StateStale {
		t.Fatalf("expected STALE once suppression elapsed, got %s", got)
	}
}

func TestBlockedOnCredentialError(t *testing.T) {
	now := time.Now()
	store := NewMemoryStore()
	retained := StableRates()
	retained.Timestamp = now.Add(-2 * CacheDuration).UnixMilli()
	_ = store.SaveRates(retained)

	p := &fakeProvider{err: llm.ErrBlockedCredential}
	c := newTestCache(p, store, now)

	c.Refresh(false)
	if got := c.State(); got != StateBlocked {
		t.Fatalf("expected BLOCKED after credential rejection, got %s", got)
	}

	// Blocked is terminal: even force must not call out again.
	c.Refresh(true)
	if p.calls != 1 {
		t.Fatalf("blocked cache must never call the provider, got %d calls", p.calls)
	}

	// Prior rates stay readable.
	if c.CurrentRates().DKK != retained.DKK {
		t.Fatalf("retained rates must survive blocking")
	}
}

func TestTransientErrorKeepsState(t *testing.T) {
	now := time.Now()
	store := NewMemoryStore()
	stale := StableRates()
	stale.Timestamp = now.Add(-2 * CacheDuration).UnixMilli()
	_ = store.SaveRates(stale)

	p := &fakeProvider{err: errors.New("connection reset")}
	c := newTestCache(p, store, now)

	c.Refresh(false)
	if got := c.State(); got != StateStale {
		t.Fatalf("transient error must leave state untouched, got %s", got)
	}
	if c.CurrentRates().DKK != stale.DKK {
		t.Fatalf("retained rates must survive a transient failure")
	}
}

func TestSuccessfulRefreshPersists(t *testing.T) {
	now := time.Now()
	store := NewMemoryStore()

	p := &fakeProvider{rates: quotedRates(now.UnixMilli())}
	c := newTestCache(p, store, now)

	c.Refresh(true)

	saved, ok := store.LoadRates()
	if !ok {
		t.Fatalf("successful refresh must persist rates")
	}
	if saved.DKK != 7.44 {
		t.Fatalf("persisted DKK = %v, want 7.44", saved.DKK)
	}
	if saved.EUR != 1.0 {
		t.Fatalf("EUR must stay pinned to 1.0, got %v", saved.EUR)
	}
}

func TestRestartResumesSuppression(t *testing.T) {
	now := time.Now()
	store := NewMemoryStore()
	stale := StableRates()
	stale.Timestamp = now.Add(-2 * CacheDuration).UnixMilli()
	_ = store.SaveRates(stale)
	_ = store.SaveSuppressUntil(now.Add(time.Hour).UnixMilli())

	p := &fakeProvider{rates: quotedRates(now.UnixMilli())}
	c := newTestCache(p, store, now)

	if got := c.State(); got != StateSuppressed {
		t.Fatalf("restart inside the window must resume SUPPRESSED, got %s", got)
	}
	c.Refresh(false)
	if p.calls != 0 {
		t.Fatalf("resumed suppression must gate refresh, got %d calls", p.calls)
	}
}

func TestUpdateRatesRestamps(t *testing.T) {
	now := time.Now()
	store := NewMemoryStore()
	old := StableRates()
	old.Timestamp = now.Add(-2 * CacheDuration).UnixMilli()
	_ = store.SaveRates(old)

	c := newTestCache(&fakeProvider{}, store, now)

	dkk := 7.50
	updated := c.UpdateRates(PartialRates{DKK: &dkk})

	if updated.DKK != 7.50 {
		t.Fatalf("DKK = %v, want 7.50", updated.DKK)
	}
	if updated.NOK != old.NOK {
		t.Fatalf("untouched fields must be preserved")
	}
	if updated.Timestamp != now.UnixMilli() {
		t.Fatalf("timestamp must be re-stamped on partial update")
	}
	if c.State() != StateFresh {
		t.Fatalf("re-stamped rates must be fresh")
	}
}
