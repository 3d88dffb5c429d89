package services

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// CacheEntry represents a cached item with expiration
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// IsExpired checks if the cache entry has expired
func (ce *CacheEntry) IsExpired() bool {
	return time.Now().After(ce.ExpiresAt)
}

// CacheService is the in-memory result cache that sits in front of the
// draw store. Entries are idempotent pure reads, so concurrent
// repopulation of the same key is a harmless last-writer-wins race.
// The service is constructed in main and injected; there is no ambient
// process-wide cache.
type CacheService struct {
	cache      map[string]*CacheEntry
	mutex      sync.RWMutex
	defaultTTL time.Duration
	maxSize    int
}

// NewCacheService creates a cache with the given default TTL and size cap.
func NewCacheService(defaultTTL time.Duration, maxSize int) *CacheService {
	if defaultTTL <= 0 {
		defaultTTL = 5 * time.Minute
	}
	if maxSize <= 0 {
		maxSize = 1000
	}
	return &CacheService{
		cache:      make(map[string]*CacheEntry),
		defaultTTL: defaultTTL,
		maxSize:    maxSize,
	}
}

// Get retrieves a value from cache
func (cs *CacheService) Get(key string) (interface{}, bool) {
	cs.mutex.RLock()
	defer cs.mutex.RUnlock()

	entry, exists := cs.cache[key]
	if !exists || entry.IsExpired() {
		return nil, false
	}

	return entry.Data, true
}

// Set stores a value in cache with default TTL
func (cs *CacheService) Set(key string, value interface{}) {
	cs.SetWithTTL(key, value, cs.defaultTTL)
}

// SetWithTTL stores a value in cache with custom TTL
func (cs *CacheService) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	if len(cs.cache) >= cs.maxSize {
		cs.evictOldest()
	}

	cs.cache[key] = &CacheEntry{
		Data:      value,
		ExpiresAt: time.Now().Add(ttl),
	}
}

// Delete removes a single key.
func (cs *CacheService) Delete(key string) {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()
	delete(cs.cache, key)
}

// Clear drops every entry and returns how many were removed.
func (cs *CacheService) Clear() int {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	removed := len(cs.cache)
	cs.cache = make(map[string]*CacheEntry)
	return removed
}

// evictOldest removes the entry closest to expiry (simple FIFO eviction)
func (cs *CacheService) evictOldest() {
	var oldestKey string
	var oldestTime time.Time

	for key, entry := range cs.cache {
		if oldestKey == "" || entry.ExpiresAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.ExpiresAt
		}
	}

	if oldestKey != "" {
		delete(cs.cache, oldestKey)
	}
}

// CleanupExpired removes expired entries. Called by the cleanup job.
func (cs *CacheService) CleanupExpired(ctx context.Context) int {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()

	removed := 0
	for key, entry := range cs.cache {
		select {
		case <-ctx.Done():
			return removed
		default:
		}
		if entry.IsExpired() {
			delete(cs.cache, key)
			removed++
		}
	}

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removed":   removed,
			"remaining": len(cs.cache),
		}).Debug("Cleaned up expired cache entries")
	}

	return removed
}

// Stats returns cache occupancy for the admin surface.
func (cs *CacheService) Stats() map[string]interface{} {
	cs.mutex.RLock()
	defer cs.mutex.RUnlock()

	expired := 0
	for _, entry := range cs.cache {
		if entry.IsExpired() {
			expired++
		}
	}

	return map[string]interface{}{
		"entries":     len(cs.cache),
		"expired":     expired,
		"max_size":    cs.maxSize,
		"default_ttl": cs.defaultTTL.String(),
	}
}
