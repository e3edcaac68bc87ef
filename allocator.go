package slist

import "fmt"

// Allocator reserves and returns memory for list nodes.
//
// A List calls Allocate before it links a new node and Release exactly once
// for every node it drops.
type Allocator interface {
	Allocate() error
	Release()
}

type heapAllocator struct{}

func (heapAllocator) Allocate() error { return nil }

func (heapAllocator) Release() {}

// Counter is an Allocator which accounts for every node it hands out.
// It is not safe for concurrent use.
type Counter struct {
	limit     int
	allocated int
	released  int
}

// NewCounter creates a counting allocator that refuses to keep more than
// limit nodes live at once. When limit == 0, the counter is unbounded.
func NewCounter(limit int) *Counter {
	if limit < 0 {
		limit = 0
	}
	return &Counter{limit: limit}
}

// Allocate reserves a node or returns ErrAllocation if the limit is reached.
func (c *Counter) Allocate() error {
	if c.limit > 0 && c.Live() >= c.limit {
		return fmt.Errorf("%w: limit of %d live nodes reached", ErrAllocation, c.limit)
	}
	c.allocated++
	return nil
}

// Release returns a node.
func (c *Counter) Release() {
	if c.released >= c.allocated {
		panic("slist: release without allocation")
	}
	c.released++
}

// Allocated returns the total number of nodes allocated.
func (c *Counter) Allocated() int { return c.allocated }

// Released returns the total number of nodes released.
func (c *Counter) Released() int { return c.released }

// Live returns the number of nodes currently allocated.
func (c *Counter) Live() int { return c.allocated - c.released }
