package rates

import "sync"

// MemoryStore keeps the persisted record in process memory. Used when no
// Redis address is configured, and by tests.
type MemoryStore struct {
	mu            sync.Mutex
	rates         *ExchangeRates
	suppressUntil *int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadRates() (ExchangeRates, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rates == nil {
		return ExchangeRates{}, false
	}
	return *s.rates, true
}

func (s *MemoryStore) SaveRates(r ExchangeRates) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates = &r
	return nil
}

func (s *MemoryStore) LoadSuppressUntil() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.suppressUntil == nil {
		return 0, false
	}
	return *s.suppressUntil, true
}

func (s *MemoryStore) SaveSuppressUntil(deadline int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppressUntil = &deadline
	return nil
}
