package bounded

import (
	"errors"
	"sync"

	"github.com/vinhphu93/go-conc/pkg/datastructs/queue"
)

var _ queue.BlockingQueue[int] = (*Buffer[int])(nil)

// ErrInvalidCapacity is returned when creating a buffer with a non-positive capacity.
var ErrInvalidCapacity = errors.New("capacity must be positive")

// Buffer is a fixed-capacity FIFO buffer for thread-to-thread handoff.
// Producers block in Put while the buffer is full; consumers block in
// Take/Next while it is empty. Closing the buffer forbids further inserts
// but leaves buffered items drainable, so consumers observe every item
// inserted before the close.
//
// A single mutex guards both the ring storage and the closed flag:
// compound predicates like "closed and empty" must be evaluated atomically.
type Buffer[T any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond // signaled on remove, broadcast on close
	notEmpty *sync.Cond // signaled on insert, broadcast on close

	items    []T
	capacity int
	head     int // next position to read from
	tail     int // next position to write to
	size     int
	closed   bool
}

// New creates a Buffer with the given fixed capacity.
func New[T any](capacity int) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	b := &Buffer[T]{
		items:    make([]T, capacity),
		capacity: capacity,
	}
	b.notFull = sync.NewCond(&b.mu)
	b.notEmpty = sync.NewCond(&b.mu)
	return b, nil
}

// Put inserts an item, blocking while the buffer is full and open.
// Returns false if the buffer is closed; the item is dropped, never
// inserted. There is no wait-order fairness among blocked producers.
func (b *Buffer[T]) Put(item T) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for {
		if b.closed {
			return false
		}
		if b.size < b.capacity {
			b.insert(item)
			return true
		}
		b.notFull.Wait()
	}
}

// Offer inserts an item without blocking.
// Returns false if the buffer is closed or full.
func (b *Buffer[T]) Offer(item T) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || b.size == b.capacity {
		return false
	}
	b.insert(item)
	return true
}

// Next removes and returns the oldest item, blocking while the buffer is
// empty and open. ok is false only once the buffer is closed and drained;
// that call and every one after it return (zero, false, false). On
// success, more reports whether a further call may still yield an item:
// true while items remain buffered or the buffer is still open.
func (b *Buffer[T]) Next() (item T, ok bool, more bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for {
		if b.size > 0 {
			item = b.remove()
			return item, true, b.size > 0 || !b.closed
		}
		if b.closed {
			return item, false, false
		}
		b.notEmpty.Wait()
	}
}

// Take removes and returns the oldest item, blocking while the buffer is
// empty and open. Returns (zero, false) once the buffer is closed and drained.
func (b *Buffer[T]) Take() (T, bool) {
	item, ok, _ := b.Next()
	return item, ok
}

// Poll removes and returns the oldest item without blocking.
// Returns (zero, false) when the buffer is empty, whether or not it is
// closed; use Take or Next to detect end-of-stream.
func (b *Buffer[T]) Poll() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var zero T
	if b.size == 0 {
		return zero, false
	}
	return b.remove(), true
}

// Close marks the buffer closed for writing. Idempotent. Buffered items
// remain drainable; blocked Put and Next callers are woken to re-evaluate.
func (b *Buffer[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	b.notFull.Broadcast()
	b.notEmpty.Broadcast()
}

// Closed reports whether the buffer has been closed for writing.
func (b *Buffer[T]) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// IsEmpty reports whether the buffer holds no items.
func (b *Buffer[T]) IsEmpty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size == 0
}

// IsFull reports whether the buffer holds capacity items.
func (b *Buffer[T]) IsFull() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size == b.capacity
}

// Len returns the current number of buffered items.
func (b *Buffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Cap returns the fixed capacity of the buffer.
func (b *Buffer[T]) Cap() int {
	return b.capacity
}

// insert appends an item at the tail. Caller must hold mu and have
// checked that the buffer is open and not full.
func (b *Buffer[T]) insert(item T) {
	b.items[b.tail] = item
	b.tail++
	if b.tail == b.capacity {
		b.tail = 0
	}
	b.size++
	b.notEmpty.Signal()
}

// remove pops the oldest item from the head. Caller must hold mu and
// have checked that the buffer is non-empty.
func (b *Buffer[T]) remove() T {
	var zero T
	item := b.items[b.head]
	b.items[b.head] = zero // drop the reference for GC
	b.head++
	if b.head == b.capacity {
		b.head = 0
	}
	b.size--
	b.notFull.Signal()
	return item
}
