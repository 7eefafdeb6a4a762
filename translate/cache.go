package translate

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sync"
)

// Cache holds translation results for the lifetime of the process. Entries
// are idempotent, so concurrent overwrites are harmless.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]string)}
}

func cacheKey(text, source, target string) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s_%s_%s", text, source, target)))
	return hex.EncodeToString(sum[:])
}

func (c *Cache) Get(text, source, target string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[cacheKey(text, source, target)]
	return v, ok
}

func (c *Cache) Put(text, source, target, translated string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(text, source, target)] = translated
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
