// Package cache implementa ports.Cache: un almacén en memoria (un solo proceso) y uno sobre Redis
// (varias instancias comparten la invalidación).
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/seifmegahed/daftar/internal/application/ports"
)

var _ ports.Cache = (*MemoryCache)(nil)

type memEntry struct {
	value     []byte
	tags      []string
	expiresAt time.Time
}

// MemoryCache caché en memoria con TTL e índice etiqueta -> claves.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*memEntry
	tags    map[string]map[string]struct{}
	now     func() time.Time
}

// NewMemoryCache construye un caché vacío.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*memEntry),
		tags:    make(map[string]map[string]struct{}),
		now:     time.Now,
	}
}

// Get devuelve el valor si existe y no expiró.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		// un Set concurrente pudo reemplazar la entrada vencida
		if c.entries[key] == e {
			c.removeLocked(key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}
	return e.value, true, nil
}

// Set guarda value bajo key con ttl (0 = sin expiración) y lo indexa por tags.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration, tags ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(key)
	e := &memEntry{value: value, tags: tags}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.entries[key] = e
	for _, t := range tags {
		keys, ok := c.tags[t]
		if !ok {
			keys = make(map[string]struct{})
			c.tags[t] = keys
		}
		keys[key] = struct{}{}
	}
	return nil
}

// InvalidateTags elimina todas las claves asociadas a cualquiera de las etiquetas.
func (c *MemoryCache) InvalidateTags(_ context.Context, tags ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range tags {
		for key := range c.tags[t] {
			c.removeLocked(key)
		}
		delete(c.tags, t)
	}
	return nil
}

// Len número de claves almacenadas (incluye expiradas aún no barridas).
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *MemoryCache) removeLocked(key string) {
	e, ok := c.entries[key]
	if !ok {
		return
	}
	delete(c.entries, key)
	for _, t := range e.tags {
		if keys, ok := c.tags[t]; ok {
			delete(keys, key)
			if len(keys) == 0 {
				delete(c.tags, t)
			}
		}
	}
}
