package virtual

import "github.com/google/btree"

// Slot is a reusable placeholder bound to at most one data index. Its
// geometry is the last one emitted by Position, relative to the viewport.
type Slot struct {
	ID     int
	index  int
	X, Y   int
	Width  int
	Height int
}

// Index returns the bound data index, or -1 when the slot is unbound.
func (s *Slot) Index() int {
	return s.index
}

// Bound reports whether the slot currently represents a data index.
func (s *Slot) Bound() bool {
	return s.index >= 0
}

func bySlotIndex(a, b *Slot) bool {
	return a.index < b.index
}

// Pool is a fixed-size set of slots plus an index-ordered view of the bound
// ones.
type Pool struct {
	slots []*Slot
	bound *btree.BTreeG[*Slot]
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{
		bound: btree.NewG(8, bySlotIndex),
	}
}

// Len returns the number of slots.
func (p *Pool) Len() int {
	return len(p.slots)
}

// Slots returns every slot in creation order.
func (p *Pool) Slots() []*Slot {
	return p.slots
}

// Resize grows or shrinks the pool to n slots. Removed slots are the most
// recently created ones; new slots start unbound.
func (p *Pool) Resize(n int) {
	n = max(n, 0)
	for len(p.slots) > n {
		last := p.slots[len(p.slots)-1]
		p.unbind(last)
		p.slots = p.slots[:len(p.slots)-1]
	}
	for len(p.slots) < n {
		p.slots = append(p.slots, &Slot{ID: len(p.slots), index: -1})
	}
}

// Assign binds the slots to the data indices [first, first+Len()) that
// exist in a collection of the given length. Slots already holding an index
// in that range keep it; the others are rebound, in ascending index order,
// and returned so callers can relabel them.
func (p *Pool) Assign(first, length int) []*Slot {
	lo := max(first, 0)
	hi := min(lo+len(p.slots), length)

	var free []*Slot
	for _, s := range p.slots {
		if s.Bound() && (s.index < lo || s.index >= hi) {
			p.unbind(s)
		}
		if !s.Bound() {
			free = append(free, s)
		}
	}

	var rebound []*Slot
	pivot := &Slot{}
	for i := lo; i < hi; i++ {
		pivot.index = i
		if p.bound.Has(pivot) {
			continue
		}
		s := free[0]
		free = free[1:]
		s.index = i
		p.bound.ReplaceOrInsert(s)
		rebound = append(rebound, s)
	}
	return rebound
}

// Clear unbinds every slot.
func (p *Pool) Clear() {
	for _, s := range p.slots {
		s.index = -1
	}
	p.bound.Clear(false)
}

// Ordered returns the bound slots sorted by data index, which is also their
// order on screen.
func (p *Pool) Ordered() []*Slot {
	out := make([]*Slot, 0, p.bound.Len())
	p.bound.Ascend(func(s *Slot) bool {
		out = append(out, s)
		return true
	})
	return out
}

// ForIndex returns the slot bound to data index i.
func (p *Pool) ForIndex(i int) (*Slot, bool) {
	return p.bound.Get(&Slot{index: i})
}

func (p *Pool) unbind(s *Slot) {
	if !s.Bound() {
		return
	}
	p.bound.Delete(s)
	s.index = -1
}
