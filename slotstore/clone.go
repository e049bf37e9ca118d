package slotstore

// Copy returns a new store with the same capacity, contents and
// bookkeeping. Values are copied shallowly.
func (s *Store[V]) Copy() *Store[V] {
	c := &Store[V]{
		values: make([]V, len(s.values)),
		bits:   make([]uint64, len(s.bits)),
		count:  s.count,
		hint:   s.hint,
	}
	copy(c.values, s.values)
	copy(c.bits, s.bits)
	return c
}
