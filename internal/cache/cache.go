// Package cache provides the process-wide translation cache.
//
// Entries map the exact text a caller asked about to the translation that
// was resolved for it. Only successful translations are stored. There is no
// expiry and no size bound; the cache lives as long as the process and is
// emptied only by Clear.
package cache

import (
	"sync"

	"go.uber.org/zap"
)

// Status is a snapshot of cache usage.
type Status struct {
	Size         int `json:"size"`
	RequestCount int `json:"requestCount"`
}

// Cache stores translations in memory.
type Cache struct {
	mu           sync.RWMutex
	translations map[string]string
	requestCount int
	logger       *zap.Logger
}

// New creates an empty cache. A nil logger disables logging.
func New(logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		translations: make(map[string]string),
		logger:       logger,
	}
}

// Get retrieves a translation from the cache
func (c *Cache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	translation, ok := c.translations[key]
	return translation, ok
}

// Set adds a translation to the cache
func (c *Cache) Set(key, translation string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translations[key] = translation
}

// Has reports whether key has a cached translation.
func (c *Cache) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.translations[key]
	return ok
}

// Size returns the number of cached translations.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.translations)
}

// Clear removes every entry, resets the request counter and returns the
// number of entries removed.
func (c *Cache) Clear() int {
	c.mu.Lock()
	removed := len(c.translations)
	c.translations = make(map[string]string)
	c.requestCount = 0
	c.mu.Unlock()

	c.logger.Info("cache cleared", zap.Int("removed", removed))
	return removed
}

// IncrementRequestCount records one outbound translation request.
func (c *Cache) IncrementRequestCount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requestCount++
}

// RequestCount returns the number of outbound requests since the last Clear.
func (c *Cache) RequestCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.requestCount
}

// Status returns the current size and request count.
func (c *Cache) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Status{Size: len(c.translations), RequestCount: c.requestCount}
}

// All returns all cached translations
func (c *Cache) All() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]string, len(c.translations))
	for k, v := range c.translations {
		result[k] = v
	}
	return result
}

// LogStatus logs the cache size, request count and every entry.
func (c *Cache) LogStatus() {
	status := c.Status()
	c.logger.Info("cache status",
		zap.Int("entries", status.Size),
		zap.Int("requests", status.RequestCount))

	for original, translated := range c.All() {
		c.logger.Info("cache entry",
			zap.String("original", original),
			zap.String("translated", translated))
	}
}
