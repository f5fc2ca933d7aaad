// Package registry holds the translation strategies known to the engine.
//
// Strategies are stored under short identifiers in registration order.
// All returns them by ascending priority; ties keep registration order.
package registry

import (
	"sort"
	"strings"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map"

	"codeberg.org/snonux/kotrans/internal/strategy"
)

// Identifiers of the default strategies.
const (
	LocalID    = "local"
	GPTID      = "gpt"
	GeminiID   = "gemini"
	MyMemoryID = "mymemory"
	GoogleID   = "google"
	LibreID    = "libre"
)

// Registry maps identifiers to strategies. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	strategies *orderedmap.OrderedMap
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{strategies: orderedmap.New()}
}

// Register adds s under id. Registering an existing id replaces the
// strategy but keeps its original position.
func (r *Registry) Register(id string, s strategy.Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies.Set(id, s)
}

// Remove deletes the strategy registered under id and reports whether one
// was present.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.strategies.Delete(id)
	return ok
}

// Get returns the strategy registered under id.
func (r *Registry) Get(id string) (strategy.Strategy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.strategies.Get(id)
	if !ok {
		return nil, false
	}
	return v.(strategy.Strategy), true
}

// Len returns the number of registered strategies.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.strategies.Len()
}

// IDs returns the identifiers in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, r.strategies.Len())
	for pair := r.strategies.Oldest(); pair != nil; pair = pair.Next() {
		ids = append(ids, pair.Key.(string))
	}
	return ids
}

// All returns every strategy sorted by ascending priority.
func (r *Registry) All() []strategy.Strategy {
	r.mu.RLock()
	all := make([]strategy.Strategy, 0, r.strategies.Len())
	for pair := r.strategies.Oldest(); pair != nil; pair = pair.Next() {
		all = append(all, pair.Value.(strategy.Strategy))
	}
	r.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Priority() < all[j].Priority()
	})
	return all
}

// Available returns the strategies from All that can handle text.
func (r *Registry) Available(text string) []strategy.Strategy {
	var available []strategy.Strategy
	for _, s := range r.All() {
		if s.CanHandle(text) {
			available = append(available, s)
		}
	}
	return available
}

// Find returns the strategy whose name matches name, ignoring case.
func (r *Registry) Find(name string) (strategy.Strategy, bool) {
	for _, s := range r.All() {
		if strings.EqualFold(s.Name(), name) {
			return s, true
		}
	}
	return nil, false
}
