package terrain

// ring is a growable FIFO deque over a power-of-two buffer
// Index 0 is the oldest element; PushBack and PopFront are O(1) amortized
type ring[T any] struct {
	buf  []T
	head int
	n    int
}

func newRing[T any](capacity int) ring[T] {
	size := 16
	for size < capacity {
		size <<= 1
	}
	return ring[T]{buf: make([]T, size)}
}

func (r *ring[T]) Len() int { return r.n }

func (r *ring[T]) mask() int { return len(r.buf) - 1 }

// At returns a pointer to the i-th element from the front
func (r *ring[T]) At(i int) *T {
	return &r.buf[(r.head+i)&r.mask()]
}

func (r *ring[T]) PushBack(v T) {
	if r.n == len(r.buf) {
		r.grow()
	}
	r.buf[(r.head+r.n)&r.mask()] = v
	r.n++
}

func (r *ring[T]) PopFront() T {
	var zero T
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) & r.mask()
	r.n--
	return v
}

func (r *ring[T]) grow() {
	next := make([]T, len(r.buf)*2)
	for i := 0; i < r.n; i++ {
		next[i] = *r.At(i)
	}
	r.buf = next
	r.head = 0
}
