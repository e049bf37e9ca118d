package slotstore

import "math/bits"

// Iter walks the occupied slots of a Store in strictly ascending key
// order. Each call to Store.Iter starts a fresh walk. The store must
// not be mutated while an Iter obtained from it is in use.
type Iter[V any] struct {
	store *Store[V]
	pos   int
}

// Keys walks the occupied keys in strictly ascending order.
type Keys[V any] struct {
	it Iter[V]
}

// Values walks the stored values in ascending key order.
type Values[V any] struct {
	it Iter[V]
}

// Iter makes an iterator over all (key, value) pairs.
func (s *Store[V]) Iter() Iter[V] {
	return Iter[V]{store: s}
}

// Keys makes an iterator over all occupied keys.
func (s *Store[V]) Keys() Keys[V] {
	return Keys[V]{it: Iter[V]{store: s}}
}

// Values makes an iterator over all values.
func (s *Store[V]) Values() Values[V] {
	return Values[V]{it: Iter[V]{store: s}}
}

// Next returns the next occupied slot, or ok == false when the walk
// is done. Empty slots are skipped a bitmap word at a time, so the
// cost of holes is proportional to the number of holes, never worse
// than one pass over the bitmap.
func (it *Iter[V]) Next() (key int, value V, ok bool) {
	var (
		s    = it.store
		size = len(s.values)
	)
	for it.pos < size {
		word := it.pos >> wordShift
		busy := s.bits[word] &^ ((1 << (uint(it.pos) & wordMask)) - 1)
		if busy == 0 {
			it.pos = (word + 1) << wordShift
			continue
		}
		key = word<<wordShift + bits.TrailingZeros64(busy)
		it.pos = key + 1
		return key, s.values[key], true
	}
	return
}

// Next returns the next occupied key, or ok == false when the walk is done.
func (it *Keys[V]) Next() (key int, ok bool) {
	key, _, ok = it.it.Next()
	return
}

// Next returns the next value, or ok == false when the walk is done.
func (it *Values[V]) Next() (value V, ok bool) {
	_, value, ok = it.it.Next()
	return
}
