package tree

import "sync"

// DefaultFreeListSize is the number of released nodes kept
// for reuse by the free list a tree creates for itself
const DefaultFreeListSize = 32

// FreeList keeps released tree nodes around so that they can be
// reused by later insertions. Multiple trees can share the same
// FreeList. The FreeList itself is safe for concurrent use, the
// trees using it are not.
//
// A FreeList can also bound the number of nodes alive at any
// time. Once the bound is reached, allocation fails and the
// insertion that requested the node reports it.
type FreeList[T any] struct {
	mu       sync.Mutex
	freelist []*node[T]
	limit    int
	live     int
}

// NewFreeList creates a new free list that keeps at most size
// released nodes and never refuses to allocate
func NewFreeList[T any](size int) *FreeList[T] {
	return NewBoundedFreeList[T](size, 0)
}

// NewBoundedFreeList creates a new free list that keeps at most size
// released nodes and refuses to allocate a node when limit nodes
// are alive. A limit <= 0 means no limit.
func NewBoundedFreeList[T any](size, limit int) *FreeList[T] {
	if size < 0 {
		size = 0
	}

	return &FreeList[T]{
		freelist: make([]*node[T], 0, size),
		limit:    limit,
	}
}

// Live returns the number of nodes handed out and not yet released
func (f *FreeList[T]) Live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live
}

// newNode returns a red node holding v, or nil if the limit
// of live nodes has been reached
func (f *FreeList[T]) newNode(v T) *node[T] {
	f.mu.Lock()
	if f.limit > 0 && f.live >= f.limit {
		f.mu.Unlock()
		return nil
	}
	f.live++

	var n *node[T]
	if index := len(f.freelist) - 1; index >= 0 {
		n = f.freelist[index]
		f.freelist[index] = nil
		f.freelist = f.freelist[:index]
	}
	f.mu.Unlock()

	if n == nil {
		n = new(node[T])
	}

	n.value = v
	n.red = true
	return n
}

// freeNode releases n. It returns true if the node was kept
// for reuse
func (f *FreeList[T]) freeNode(n *node[T]) (out bool) {
	// clear to allow GC
	var zero T
	n.value = zero
	n.link[left], n.link[right], n.parent = nil, nil, nil

	f.mu.Lock()
	f.live--
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		out = true
	}
	f.mu.Unlock()
	return
}
