package dataset

import "sync"

// Registry maps session dataset handles to their stores. Every web session
// works against its own seeded snapshot; stores are created lazily on first
// use and dropped when the session resets its data.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

// Get returns the store for the given handle, creating and seeding it on
// first access.
func (r *Registry) Get(handle string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores[handle]; ok {
		return s
	}
	s := NewSeededStore()
	r.stores[handle] = s
	return s
}

// Drop discards the store for the handle; the next Get reseeds.
func (r *Registry) Drop(handle string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, handle)
}

// Len reports how many session datasets are live.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}
