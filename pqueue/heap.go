package pqueue

// Better reports whether priority a should sit closer to the root than
// priority b. A max-heap (the engine's only use) is Better(a, b) = a > b;
// a min-heap would be Better(a, b) = a < b. The comparator is supplied at
// construction and fixed for the heap's lifetime.
type Better func(a, b float64) bool

// MaxFirst is the comparator for a max-heap: the greatest priority is
// always at the root.
func MaxFirst(a, b float64) bool { return a > b }

// entry is one heap slot: a priority paired with the element it ranks.
type entry[T comparable] struct {
	data     T
	priority float64
}

// Heap is a binary heap over elements of type T keyed by a float64
// priority, with an auxiliary index for O(1) identity lookup. The zero
// value is not usable; construct with New.
type Heap[T comparable] struct {
	heap   []entry[T]
	index  map[T]int
	better Better
}

// New constructs an empty Heap using the given comparator. Use MaxFirst for
// the engine's two max-heap use sites (coarsening importance, refinement
// connectivity).
func New[T comparable](better Better) *Heap[T] {
	return &Heap[T]{index: make(map[T]int), better: better}
}

// Len reports the number of elements currently queued.
func (h *Heap[T]) Len() int { return len(h.heap) }

// Empty reports whether the heap holds no elements.
func (h *Heap[T]) Empty() bool { return len(h.heap) == 0 }

// Find reports the current priority of data, if present.
// Complexity: O(1).
func (h *Heap[T]) Find(data T) (float64, bool) {
	i, ok := h.index[data]
	if !ok {
		return 0, false
	}
	return h.heap[i].priority, true
}

// Insert adds data with the given priority, or updates its priority if
// already present.
// Complexity: O(log n).
func (h *Heap[T]) Insert(data T, priority float64) {
	if i, ok := h.index[data]; ok {
		h.heap[i].priority = priority
		h.siftUp(i)
		h.siftDown(i)
		return
	}
	i := len(h.heap)
	h.heap = append(h.heap, entry[T]{data: data, priority: priority})
	h.index[data] = i
	h.siftUp(i)
}

// Update changes the priority of an already-present element. If data is
// not present, Update behaves like Insert.
// Complexity: O(log n).
func (h *Heap[T]) Update(data T, priority float64) {
	h.Insert(data, priority)
}

// Extract removes and returns the root element (the best by the
// configured comparator). ok is false if the heap is empty.
// Complexity: O(log n).
func (h *Heap[T]) Extract() (data T, priority float64, ok bool) {
	if len(h.heap) == 0 {
		return data, 0, false
	}
	top := h.heap[0]
	last := len(h.heap) - 1
	h.swap(0, last)
	delete(h.index, top.data)
	h.heap = h.heap[:last]
	if last > 0 {
		h.siftDown(0)
	}
	return top.data, top.priority, true
}

// Erase removes data from the heap regardless of its position.
// Complexity: O(log n). Reports false if data is not present.
func (h *Heap[T]) Erase(data T) bool {
	i, ok := h.index[data]
	if !ok {
		return false
	}
	last := len(h.heap) - 1
	h.swap(i, last)
	delete(h.index, data)
	h.heap = h.heap[:last]
	if i < len(h.heap) {
		h.siftUp(i)
		h.siftDown(i)
	}
	return true
}

func (h *Heap[T]) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.index[h.heap[i].data] = i
	h.index[h.heap[j].data] = j
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// ordered reports whether the heap property already holds between i (the
// candidate parent) and j (the candidate child): i must be at least as
// good as j by the configured comparator.
func (h *Heap[T]) ordered(i, j int) bool {
	return !h.better(h.heap[j].priority, h.heap[i].priority)
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if h.ordered(p, i) {
			break
		}
		h.swap(i, p)
		i = p
	}
	h.index[h.heap[i].data] = i
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.heap)
	for {
		best := i
		if l := left(i); l < n && !h.ordered(best, l) {
			best = l
		}
		if r := right(i); r < n && !h.ordered(best, r) {
			best = r
		}
		if best == i {
			break
		}
		h.swap(i, best)
		i = best
	}
	h.index[h.heap[i].data] = i
}
