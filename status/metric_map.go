// Package status tracks parameter change diagnostics and exports them to Prometheus
//
// Watchers write from the owning goroutine through cached metric pointers; readers
// such as the Prometheus collector may run on other goroutines
package status

import (
	"iter"
	"slices"
	"sync"
)

// MetricMap is a name-keyed registry of *T
// Registration takes the mutex; holders of a returned pointer update it lock-free
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, creating it if absent
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Lookup returns the metric for key without creating it
func (m *MetricMap[T]) Lookup(key string) (*T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ptr, ok := m.items[key]
	return ptr, ok
}

// Delete drops key; outstanding pointers stay valid but are no longer listed
func (m *MetricMap[T]) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
}

// All yields metrics in sorted key order over a snapshot of the keys
func (m *MetricMap[T]) All() iter.Seq2[string, *T] {
	return func(yield func(string, *T) bool) {
		m.mu.RLock()
		keys := make([]string, 0, len(m.items))
		ptrs := make(map[string]*T, len(m.items))
		for k, p := range m.items {
			keys = append(keys, k)
			ptrs[k] = p
		}
		m.mu.RUnlock()

		slices.Sort(keys)
		for _, k := range keys {
			if !yield(k, ptrs[k]) {
				return
			}
		}
	}
}

// Len returns the number of metrics
func (m *MetricMap[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
