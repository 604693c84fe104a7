package services

// registry is an id-keyed collection that remembers insertion order.
type registry[T any] struct {
	order []int
	items map[int]T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{items: make(map[int]T)}
}

// put stores item under id. A new id is appended to the listing order.
func (r *registry[T]) put(id int, item T) {
	if _, ok := r.items[id]; !ok {
		r.order = append(r.order, id)
	}
	r.items[id] = item
}

func (r *registry[T]) get(id int) (T, bool) {
	item, ok := r.items[id]
	return item, ok
}

func (r *registry[T]) has(id int) bool {
	_, ok := r.items[id]
	return ok
}

func (r *registry[T]) len() int {
	return len(r.order)
}

// values returns all items in insertion order. Never nil.
func (r *registry[T]) values() []T {
	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

// nextID returns max(ids, 1) + 1, the counter value used after a load.
func (r *registry[T]) nextID() int {
	highest := 1
	for _, id := range r.order {
		if id > highest {
			highest = id
		}
	}
	return highest + 1
}
