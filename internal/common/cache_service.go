package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// CacheService is an in-memory, expiring key/value store.
type CacheService struct {
	cache *cache.Cache
}

// Ensure CacheService implements CacheInterface
var _ CacheInterface = (*CacheService)(nil)

func NewCacheService(defaultExpiration, cleanUpInterval time.Duration) *CacheService {
	c := cache.New(defaultExpiration, cleanUpInterval)
	return &CacheService{cache: c}
}

func (cs *CacheService) Get(key string) (interface{}, bool) {
	return cs.cache.Get(key)
}

func (cs *CacheService) GetOrAdd(key string, duration time.Duration, loader func() any) interface{} {
	if val, found := cs.Get(key); found {
		return val
	}

	val := loader()
	if err := cs.cache.Add(key, val, duration); err != nil {
		// Another goroutine stored the key first; use its value.
		if existing, found := cs.Get(key); found {
			return existing
		}
		cs.cache.Set(key, val, duration)
	}
	return val
}

func (cs *CacheService) Set(key string, value interface{}, duration time.Duration) {
	cs.cache.Set(key, value, duration)
}

func (cs *CacheService) Delete(key string) {
	cs.cache.Delete(key)
}

func (cs *CacheService) ItemCount() int {
	return cs.cache.ItemCount()
}
