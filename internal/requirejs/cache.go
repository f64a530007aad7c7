// SPDX-License-Identifier: MPL-2.0

package requirejs

import (
	"encoding/json"

	"webjars-locator/pkg/webjar"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Cache memoizes aggregates per normalized prefix chain. Computation is
// guarded by singleflight: concurrent callers for the same (or
// first-ever) chain block until the first computation completes, then all
// observe the same result. There is no TTL and no invalidation: once
// computed, an aggregate is immutable for the process lifetime.
type Cache struct {
	entries *lru.Cache[string, *Aggregate]
	group   singleflight.Group
}

// NewCache creates a cache holding up to size aggregates.
func NewCache(size int) *Cache {
	entries, err := lru.New[string, *Aggregate](size)
	if err != nil {
		// lru.New only fails on a non-positive size
		panic(err)
	}
	return &Cache{entries: entries}
}

// GetOrCompute returns the cached aggregate for key, computing and
// storing it at most once per key across concurrent callers. A failed
// computation is not cached.
func (c *Cache) GetOrCompute(key string, compute func() (*Aggregate, error)) (*Aggregate, error) {
	if agg, ok := c.entries.Get(key); ok {
		return agg, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		if agg, ok := c.entries.Get(key); ok {
			return agg, nil
		}
		agg, err := compute()
		if err != nil {
			return nil, err
		}
		c.entries.Add(key, agg)
		return agg, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Aggregate), nil
}

// Setup returns the memoized aggregate for the given prefix chain,
// computing it on first use.
func (e *Engine) Setup(chain webjar.PrefixChain) (*Aggregate, error) {
	return e.cache.GetOrCompute(chain.Key(), func() (*Aggregate, error) {
		return e.Aggregate(chain)
	})
}

// SetupJSON returns the JSON-shaped API output for the given prefix
// chain, backed by the aggregate cache.
func (e *Engine) SetupJSON(chain webjar.PrefixChain) ([]byte, error) {
	agg, err := e.Setup(chain)
	if err != nil {
		return nil, err
	}
	return json.Marshal(agg)
}

// SetupScript returns the script-text API output for the given prefix
// chain, backed by the aggregate cache.
func (e *Engine) SetupScript(chain webjar.PrefixChain) (string, error) {
	agg, err := e.Setup(chain)
	if err != nil {
		return "", err
	}
	return agg.Script()
}
