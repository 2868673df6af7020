package engine

import (
	"github.com/bits-and-blooms/bitset"
)

// Registry maps live entities to their renderables.
// Renderables are stored in an arena of slots, the live set tracks occupied
// slots and freed slots are reused. Not safe for concurrent use.
type Registry struct {
	slots []Renderable
	live  bitset.BitSet
	index map[EntityID]uint
	free  []uint
}

func NewRegistry() *Registry {
	return &Registry{
		index: map[EntityID]uint{},
	}
}

// Add inserts the renderable of a spawned entity. Adding a known id replaces
// its renderable in place.
func (r *Registry) Add(e Entity) {
	if i, ok := r.index[e.ID]; ok {
		r.slots[i] = newRenderable(e)
		return
	}

	var i uint
	if n := len(r.free); n > 0 {
		i = r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[i] = newRenderable(e)
	} else {
		i = uint(len(r.slots))
		r.slots = append(r.slots, newRenderable(e))
	}

	r.live.Set(i)
	r.index[e.ID] = i
}

// Update overwrites position, scale and size and recomputes the heading of
// every known entity. Unknown ids are skipped.
func (r *Registry) Update(states []BlobState) {
	for _, s := range states {
		if i, ok := r.index[s.ID]; ok {
			r.slots[i].update(s)
		}
	}
}

// Remove deletes the renderable of id, unknown ids are ignored.
func (r *Registry) Remove(id EntityID) {
	i, ok := r.index[id]
	if !ok {
		return
	}

	delete(r.index, id)
	r.live.Clear(i)
	r.slots[i] = Renderable{}
	r.free = append(r.free, i)
}

// Clear removes all renderables.
func (r *Registry) Clear() {
	r.slots = r.slots[:0]
	r.free = r.free[:0]
	r.live.ClearAll()
	clear(r.index)
}

func (r *Registry) Len() int {
	return len(r.index)
}

// Get returns the renderable of id. The pointer is valid until the next Add.
func (r *Registry) Get(id EntityID) (*Renderable, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return &r.slots[i], true
}

// Each calls f for every renderable in slot order until f returns false.
func (r *Registry) Each(f func(*Renderable) bool) {
	for i, ok := r.live.NextSet(0); ok; i, ok = r.live.NextSet(i + 1) {
		if !f(&r.slots[i]) {
			return
		}
	}
}
