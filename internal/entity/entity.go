package entity

import "sync"

// ID identifies a scene object. The lower 32 bits hold the slot index and the
// upper 32 bits a generation counter, so a recycled slot never compares equal
// to the identity it replaced.
type ID uint64

// New packs an index and a generation into an ID.
func New(index, generation uint32) ID {
	return ID(uint64(generation)<<32 | uint64(index))
}

// Index extracts the slot index.
func (id ID) Index() uint32 {
	return uint32(id & 0xFFFFFFFF)
}

// Generation extracts the generation counter.
func (id ID) Generation() uint32 {
	return uint32(id >> 32)
}

// Allocator hands out identities and recycles freed slots with a bumped
// generation. The scene never calls it; it stands in for the game world
// that owns entity lifetimes.
type Allocator struct {
	mu          sync.Mutex
	generations []uint32
	alive       []bool
	free        []uint32
}

// NewAllocator creates an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Create returns a fresh identity.
func (a *Allocator) Create() ID {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.alive[idx] = true
		return New(idx, a.generations[idx])
	}

	idx := uint32(len(a.generations))
	a.generations = append(a.generations, 0)
	a.alive = append(a.alive, true)
	return New(idx, 0)
}

// Destroy frees the slot behind id. Stale or unknown identities are ignored
// and reported as false.
func (a *Allocator) Destroy(id ID) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.isAlive(id) {
		return false
	}
	idx := id.Index()
	a.alive[idx] = false
	a.generations[idx]++
	a.free = append(a.free, idx)
	return true
}

// IsAlive reports whether id is the current holder of its slot.
func (a *Allocator) IsAlive(id ID) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.isAlive(id)
}

func (a *Allocator) isAlive(id ID) bool {
	idx := id.Index()
	if int(idx) >= len(a.generations) {
		return false
	}
	return a.alive[idx] && a.generations[idx] == id.Generation()
}
