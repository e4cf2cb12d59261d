package pool

import "sync"

// SlicePool pools slices of T for reuse.
//
// Slices handed out by Get have length zero and at least the requested capacity.
type SlicePool[T any] struct {
	pool sync.Pool
}

// NewSlicePool creates a SlicePool whose fresh slices have the given capacity.
func NewSlicePool[T any](defaultCap int) *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() any {
				s := make([]T, 0, defaultCap)
				return &s
			},
		},
	}
}

// Get retrieves an empty slice with capacity of at least size.
//
// The returned cleanup function puts the slice back; the slice must not be used
// after cleanup is called. Pass the slice's final value to cleanup so that any
// growth that happened while in use is retained by the pool.
//
// Example:
//
//	nodes, cleanup := nodePool.Get(511)
//	nodes = append(nodes, node)
//	defer func() { cleanup(nodes) }()
func (p *SlicePool[T]) Get(size int) ([]T, func([]T)) {
	ptr, _ := p.pool.Get().(*[]T)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]T, 0, size)
	}

	return slice, func(final []T) {
		*ptr = final[:0]
		p.pool.Put(ptr)
	}
}
