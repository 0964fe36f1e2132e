package queue

// Queue is the non-blocking surface of a bounded FIFO queue.
type Queue[T any] interface {
	// Offer inserts an item without blocking.
	// Returns true if successful, false if the queue is full or closed.
	Offer(item T) bool

	// Poll removes and returns the oldest item without blocking.
	// Returns (item, true) if successful, (zero, false) if the queue is empty.
	Poll() (T, bool)

	// Cap returns the fixed capacity of the queue.
	Cap() int
}

// BlockingQueue is a Queue with blocking insert/remove operations and a
// close-for-writing lifecycle. After Close, inserts fail but already
// buffered items remain available until drained.
type BlockingQueue[T any] interface {
	Queue[T]

	// Put inserts an item, blocking while the queue is full.
	// Returns false if the queue is closed; the item is dropped.
	Put(item T) bool

	// Take removes and returns the oldest item, blocking while the queue
	// is empty. Returns (zero, false) once the queue is closed and drained.
	Take() (T, bool)

	// Next removes and returns the oldest item, blocking while the queue
	// is empty. ok is false once the queue is closed and drained; more
	// reports whether a further call may still yield an item.
	Next() (item T, ok bool, more bool)

	// Close marks the queue closed for writing. Idempotent.
	Close()
}
