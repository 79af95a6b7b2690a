package completion

import (
	"context"
	"sort"
	"sync"

	"github.com/fivetwenty-io/cloudres/pkg/resource"
)

// MemoryCache keeps completion values for the lifetime of the process.
type MemoryCache struct {
	mutex  sync.RWMutex
	values map[string]map[resource.CompletionKind]map[string]struct{}
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		values: make(map[string]map[resource.CompletionKind]map[string]struct{}),
	}
}

// Add implements Cache.
func (c *MemoryCache) Add(ctx context.Context, resourceName string, kind resource.CompletionKind, value string) error {
	err := validate(resourceName, kind)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	kinds, ok := c.values[resourceName]
	if !ok {
		kinds = make(map[resource.CompletionKind]map[string]struct{})
		c.values[resourceName] = kinds
	}

	set, ok := kinds[kind]
	if !ok {
		set = make(map[string]struct{})
		kinds[kind] = set
	}

	set[value] = struct{}{}

	return nil
}

// List implements Cache.
func (c *MemoryCache) List(ctx context.Context, resourceName string, kind resource.CompletionKind) ([]string, error) {
	err := validate(resourceName, kind)
	if err != nil {
		return nil, err
	}

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	set := c.values[resourceName][kind]

	out := make([]string, 0, len(set))
	for value := range set {
		out = append(out, value)
	}

	sort.Strings(out)

	return out, nil
}

// Clear implements Cache.
func (c *MemoryCache) Clear(ctx context.Context, resourceName string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.values, resourceName)

	return nil
}

// NoOpCache records nothing.
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Add does nothing.
func (c *NoOpCache) Add(ctx context.Context, resourceName string, kind resource.CompletionKind, value string) error {
	return nil
}

// List always returns an empty list.
func (c *NoOpCache) List(ctx context.Context, resourceName string, kind resource.CompletionKind) ([]string, error) {
	return []string{}, nil
}

// Clear does nothing.
func (c *NoOpCache) Clear(ctx context.Context, resourceName string) error {
	return nil
}
