package cache

import (
	"container/list"
	"context"
	"sync"
)

const defaultMaxEntries = 1024

// Memory is an in-process LRU summary cache.
type Memory struct {
	mu         sync.Mutex
	entries    map[string]*list.Element
	order      *list.List
	maxEntries int
}

type memoryEntry struct {
	key     string
	summary string
}

// NewMemory creates an in-memory cache holding at most maxEntries summaries;
// maxEntries <= 0 selects the default capacity.
func NewMemory(maxEntries int) *Memory {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &Memory{
		entries:    make(map[string]*list.Element, maxEntries),
		order:      list.New(),
		maxEntries: maxEntries,
	}
}

// Get implements Cache.
func (c *Memory) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return "", false, nil
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*memoryEntry).summary, true, nil
}

// Set implements Cache.
func (c *Memory) Set(_ context.Context, key, summary string) error {
	if key == "" || summary == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		elem.Value.(*memoryEntry).summary = summary
		c.order.MoveToFront(elem)
		return nil
	}

	c.entries[key] = c.order.PushFront(&memoryEntry{key: key, summary: summary})
	for len(c.entries) > c.maxEntries {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*memoryEntry).key)
	}
	return nil
}

// Len reports the number of cached summaries.
func (c *Memory) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
