// Package chain provides a priority-ordered multimap with FIFO tie-breaking
//
// Entries are visited from highest to lowest priority; entries sharing a priority
// are visited in insertion order. Each priority owns a bucket (an intrusive doubly
// linked list) and an identity index gives O(1) unlink. Not safe for concurrent use
package chain

import (
	"cmp"
	"errors"
	"iter"
	"math"
	"math/bits"
	"slices"
)

// Priority orders entries; higher values are visited first
type Priority int32

const (
	PriorityMax Priority = math.MaxInt32
	PriorityMin Priority = math.MinInt32
)

// ErrMutatedDuringIteration is the panic value raised when a chain is structurally
// modified while All is walking it
var ErrMutatedDuringIteration = errors.New("chain: mutated during iteration")

type node[E comparable] struct {
	entry      E
	bucket     *bucket[E]
	prev, next *node[E]
}

type bucket[E comparable] struct {
	priority   Priority
	head, tail *node[E]
	size       int
}

func (b *bucket[E]) pushBack(n *node[E]) {
	n.bucket = b
	n.prev = b.tail
	n.next = nil
	if b.tail != nil {
		b.tail.next = n
	} else {
		b.head = n
	}
	b.tail = n
	b.size++
}

func (b *bucket[E]) unlink(n *node[E]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		b.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		b.tail = n.prev
	}
	n.prev, n.next, n.bucket = nil, nil, nil
	b.size--
}

// Chain holds entries ordered by descending priority, FIFO among equals
// Zero value is ready to use
type Chain[E comparable] struct {
	buckets []*bucket[E] // Descending by priority, never empty buckets
	index   map[E]*node[E]
	gen     uint64 // Bumped on every structural mutation
}

// New returns an empty chain
func New[E comparable]() *Chain[E] {
	return &Chain[E]{index: make(map[E]*node[E])}
}

// search locates the bucket for p in the descending bucket slice
func (c *Chain[E]) search(p Priority) (int, bool) {
	return slices.BinarySearchFunc(c.buckets, p, func(b *bucket[E], target Priority) int {
		return cmp.Compare(target, b.priority)
	})
}

// Insert appends e after every entry already holding priority p
// An entry already in the chain is moved, losing its previous position
func (c *Chain[E]) Insert(e E, p Priority) {
	if c.index == nil {
		c.index = make(map[E]*node[E])
	}
	c.Remove(e)

	i, found := c.search(p)
	var b *bucket[E]
	if found {
		b = c.buckets[i]
	} else {
		b = &bucket[E]{priority: p}
		c.buckets = slices.Insert(c.buckets, i, b)
	}

	n := &node[E]{entry: e}
	b.pushBack(n)
	c.index[e] = n
	c.gen++
}

// Remove unlinks e, dropping its bucket when emptied
// Returns false if e was not in the chain
func (c *Chain[E]) Remove(e E) bool {
	n, ok := c.index[e]
	if !ok {
		return false
	}
	delete(c.index, e)

	b := n.bucket
	b.unlink(n)
	if b.size == 0 {
		if i, found := c.search(b.priority); found {
			c.buckets = slices.Delete(c.buckets, i, i+1)
		}
	}
	c.gen++
	return true
}

// Contains reports whether e is in the chain
func (c *Chain[E]) Contains(e E) bool {
	_, ok := c.index[e]
	return ok
}

// Priority returns the nominal priority e was inserted with
func (c *Chain[E]) Priority(e E) (Priority, bool) {
	n, ok := c.index[e]
	if !ok {
		return 0, false
	}
	return n.bucket.priority, true
}

// Len returns the number of entries
func (c *Chain[E]) Len() int {
	return len(c.index)
}

// Buckets returns the number of distinct priorities in use
func (c *Chain[E]) Buckets() int {
	return len(c.buckets)
}

// All yields entries in traversal order over the live structure
// Panics with ErrMutatedDuringIteration if the chain changes mid-walk
func (c *Chain[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		gen := c.gen
		for _, b := range c.buckets {
			for n := b.head; n != nil; n = n.next {
				if !yield(n.entry) {
					return
				}
				if c.gen != gen {
					panic(ErrMutatedDuringIteration)
				}
			}
		}
	}
}

// Snapshot appends the current traversal order to dst and returns it
func (c *Chain[E]) Snapshot(dst []E) []E {
	dst = slices.Grow(dst, len(c.index))
	for _, b := range c.buckets {
		for n := b.head; n != nil; n = n.next {
			dst = append(dst, n.entry)
		}
	}
	return dst
}

// TruePriority returns a collision-free refinement of e's priority
//
// The i-th entry (0-based) of a bucket holding n entries gets p - i/2^k, where 2^k
// is the smallest power of two above n. Offsets stay in (-1, 0] and are exact in
// float64 for int32 priorities, so sorting the results descending reproduces the
// traversal order. O(bucket size)
func (c *Chain[E]) TruePriority(e E) (float64, bool) {
	n, ok := c.index[e]
	if !ok {
		return 0, false
	}

	pos := 0
	for p := n.prev; p != nil; p = p.prev {
		pos++
	}

	b := n.bucket
	step := math.Ldexp(1, -bits.Len(uint(b.size)))
	return float64(b.priority) - float64(pos)*step, true
}
