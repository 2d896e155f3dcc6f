package ratelimit

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// staleAfter is how long a limiter may sit unused before cleanup removes it.
const staleAfter = 30 * time.Minute

// entry pairs a limiter with its last access time so cleanup can evict
// limiters belonging to one-time clients.
type entry struct {
	limiter    *Limiter
	lastAccess time.Time
}

// Store manages rate limiters for multiple clients.
// It provides methods to get and clean up limiters.
type Store struct {
	// limiters maps client identifiers to their rate limiters
	limiters map[string]*entry

	// rates defines different rate limits for different client categories
	rates map[string]Rate

	// mu protects concurrent access to the limiters map
	mu sync.RWMutex

	// cleanupInterval is how often stale limiters are evicted
	cleanupInterval time.Duration
}

// NewStore creates a new store for managing rate limiters. The default
// rate applies to any category without an explicit rate; cleanupInterval
// controls how often stale limiters are evicted.
func NewStore(defaultRate Rate, cleanupInterval time.Duration) *Store {
	store := &Store{
		limiters:        make(map[string]*entry),
		rates:           make(map[string]Rate),
		cleanupInterval: cleanupInterval,
	}

	store.rates["default"] = defaultRate

	go store.cleanupRoutine()

	return store
}

// GetLimiter returns a rate limiter for the specified client, creating
// one with the category's rate if none exists yet. The category selects
// which configured rate applies (e.g. "api", "auth"); unknown categories
// fall back to the default rate.
func (s *Store) GetLimiter(clientID string, category string) *Limiter {
	now := time.Now()

	s.mu.RLock()
	e, exists := s.limiters[clientID]
	s.mu.RUnlock()

	if exists {
		s.mu.Lock()
		e.lastAccess = now
		s.mu.Unlock()
		return e.limiter
	}

	rate, exists := s.rates[category]
	if !exists {
		rate = s.rates["default"]
	}

	limiter := NewLimiter(rate.RequestsPerSecond, rate.Burst)

	s.mu.Lock()
	// Another goroutine may have created one in the meantime.
	if existing, ok := s.limiters[clientID]; ok {
		existing.lastAccess = now
		s.mu.Unlock()
		return existing.limiter
	}
	s.limiters[clientID] = &entry{limiter: limiter, lastAccess: now}
	s.mu.Unlock()

	return limiter
}

// SetRate sets a rate limit for a specific category.
func (s *Store) SetRate(category string, rate Rate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates[category] = rate
}

// cleanupRoutine periodically removes stale limiters to prevent memory
// leaks from many one-time clients. This runs in a separate goroutine.
func (s *Store) cleanupRoutine() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		s.cleanup()
	}
}

// cleanup evicts limiters that have not been accessed within staleAfter.
func (s *Store) cleanup() {
	cutoff := time.Now().Add(-staleAfter)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for clientID, e := range s.limiters {
		if e.lastAccess.Before(cutoff) {
			delete(s.limiters, clientID)
			removed++
		}
	}

	if removed > 0 {
		log.Debug().Int("removed", removed).Int("remaining", len(s.limiters)).Msg("Evicted stale rate limiters")
	}
}
