// pkg/pool/pool.go
package pool

import "fmt"

// Poolable is the contract pooled entities satisfy. The pool reassigns the id
// on every acquire, so an id held across a release never aliases the
// recycled instance.
type Poolable interface {
	ID() string
	SetID(id string)
}

// Pool recycles entity instances to avoid per-frame allocation. Acquire and
// release are O(1); the pool never runs out, it grows by construction on
// demand. Each subsystem owns its own Pool instance.
type Pool[T Poolable] struct {
	prefix  string
	seq     uint64
	newFn   func() T
	resetFn func(T)
	free    []T
	active  map[string]T
	total   int
}

// New creates a pool pre-filled with initialSize constructed instances.
// Acquired items get ids of the form "<prefix>-<n>". resetFn restores an
// instance to defaults when it is released.
func New[T Poolable](prefix string, initialSize int, newFn func() T, resetFn func(T)) *Pool[T] {
	p := &Pool[T]{
		prefix:  prefix,
		newFn:   newFn,
		resetFn: resetFn,
		free:    make([]T, 0, initialSize),
		active:  make(map[string]T),
	}
	for i := 0; i < initialSize; i++ {
		p.free = append(p.free, newFn())
		p.total++
	}
	return p
}

// Acquire returns a ready-to-init instance, preferring a retired one. The
// instance is marked active under a freshly issued id.
func (p *Pool[T]) Acquire() T {
	var item T
	if n := len(p.free); n > 0 {
		item = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		item = p.newFn()
		p.total++
	}
	p.seq++
	id := fmt.Sprintf("%s-%d", p.prefix, p.seq)
	item.SetID(id)
	p.active[id] = item
	return item
}

// Release retires an active item. Releasing an item that is not active is a
// no-op, so double-release is safe.
func (p *Pool[T]) Release(item T) {
	p.ReleaseByID(item.ID())
}

// ReleaseByID retires the active item with the given id, if any.
func (p *Pool[T]) ReleaseByID(id string) {
	item, ok := p.active[id]
	if !ok {
		return
	}
	delete(p.active, id)
	p.resetFn(item)
	item.SetID("")
	p.free = append(p.free, item)
}

// Reset force-retires every active instance.
func (p *Pool[T]) Reset() {
	for id := range p.active {
		p.ReleaseByID(id)
	}
}

// Get resolves an active item by id.
func (p *Pool[T]) Get(id string) (T, bool) {
	item, ok := p.active[id]
	return item, ok
}

// Active returns the live set, keyed by id. Callers must not retain the map
// across a tick boundary.
func (p *Pool[T]) Active() map[string]T {
	return p.active
}

func (p *Pool[T]) ActiveCount() int    { return len(p.active) }
func (p *Pool[T]) AvailableCount() int { return len(p.free) }
func (p *Pool[T]) TotalCount() int     { return p.total }
