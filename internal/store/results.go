package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"order-decision/internal/decision"
	"order-decision/internal/model"
)

// DefaultTTL applies when NewResultCache is given a non-positive TTL.
const DefaultTTL = time.Hour

type entry struct {
	result    *decision.Result
	expiresAt time.Time
}

// ResultCache keeps analysis results in memory so follow-up requests can
// fetch the ledger or a rendered table by id. Entries expire after ttl.
type ResultCache struct {
	mu    sync.RWMutex
	store map[string]*entry
	ttl   time.Duration
	now   func() time.Time
}

func NewResultCache(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResultCache{
		store: make(map[string]*entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get retrieves a cached result if available and not expired
func (c *ResultCache) Get(id string) (*decision.Result, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.store[id]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.result, true
}

// Put stores r under its content key and returns that key.
// Expired entries are swept on every write.
func (c *ResultCache) Put(r *decision.Result) string {
	id := Key(r.Scenario, r.Pricing)
	if c == nil {
		return id
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.store {
		if now.After(e.expiresAt) {
			delete(c.store, k)
		}
	}
	c.store[id] = &entry{result: r, expiresAt: now.Add(c.ttl)}
	return id
}

// Len counts entries, expired or not.
func (c *ResultCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear removes all entries from the cache
func (c *ResultCache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]*entry)
}

// Key derives a deterministic id from the analysis inputs, so identical
// requests share one cache entry.
func Key(s model.Scenario, p model.Pricing) string {
	keyStr := fmt.Sprintf("%v|%v|%v|%v:%v:%v",
		s.Orders,
		s.Demands,
		s.Probabilities,
		p.FirstHalfPrice,
		p.SecondHalfPrice,
		p.UnitCost,
	)
	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:16])
}
