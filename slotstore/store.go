package slotstore

import (
	"errors"
	"math/bits"
)

const (
	wordWidth = 64 // bits per bitmap word
	wordShift = 6
	wordMask  = wordWidth - 1
)

// ErrFull is returned by Push when no free slot is left.
var ErrFull = errors.New("slotstore: no free key")

// Store is a fixed-capacity container mapping slot indices to values.
// The zero Store has capacity zero; use New to size one.
type Store[V any] struct {
	values []V      // one cell per key, valid only while the presence bit is set
	bits   []uint64 // presence bitmap, one bit per key
	count  int      // cached number of occupied slots
	hint   int      // forward cursor for NextKey, advisory only
}

// New allocates a store with exactly cap slots, all empty.
// A zero cap is legal and yields a store that rejects every insert.
func New[V any](cap int) *Store[V] {
	if cap < 0 {
		panic("slotstore: negative capacity")
	}
	return &Store[V]{
		values: make([]V, cap),
		bits:   make([]uint64, (cap+wordMask)>>wordShift),
	}
}

// Capacity returns the fixed number of slots.
func (s *Store[V]) Capacity() int {
	return len(s.values)
}

// Len returns the number of occupied slots. O(1).
func (s *Store[V]) Len() int {
	return s.count
}

// IsEmpty reports whether no slot is occupied.
func (s *Store[V]) IsEmpty() bool {
	return s.count == 0
}

func (s *Store[V]) checkKey(key int) {
	if key < 0 || key >= len(s.values) {
		panic("slotstore: key out of range")
	}
}

// has assumes key is in range.
func (s *Store[V]) has(key int) bool {
	return s.bits[key>>wordShift]&(1<<(uint(key)&wordMask)) != 0
}

// Has reports whether the slot at key is occupied.
// Panics if key is outside [0, Capacity()).
func (s *Store[V]) Has(key int) bool {
	s.checkKey(key)
	return s.has(key)
}

// Get returns the value at key, if the slot is occupied.
// Panics if key is outside [0, Capacity()).
func (s *Store[V]) Get(key int) (value V, ok bool) {
	s.checkKey(key)
	if s.has(key) {
		value, ok = s.values[key], true
	}
	return
}

// Ref returns a pointer to the value at key for in-place mutation,
// or nil if the slot is empty. The pointer is valid until the slot
// is removed or the store is cleared.
// Panics if key is outside [0, Capacity()).
func (s *Store[V]) Ref(key int) *V {
	s.checkKey(key)
	if !s.has(key) {
		return nil
	}
	return &s.values[key]
}

// Insert places value at key. If the slot was occupied the previous
// value is returned with replaced == true and the count is unchanged.
// The hint is not touched; NextKey re-validates it lazily.
// Panics if key is outside [0, Capacity()).
func (s *Store[V]) Insert(key int, value V) (prev V, replaced bool) {
	s.checkKey(key)
	word, mask := key>>wordShift, uint64(1)<<(uint(key)&wordMask)
	if s.bits[word]&mask != 0 {
		prev, replaced = s.values[key], true
	} else {
		s.bits[word] |= mask
		s.count++
	}
	s.values[key] = value
	return
}

// Remove empties the slot at key and returns the value it held.
// Removing an empty slot is a no-op. The hint is never lowered:
// a freed low key is rediscovered by NextKey, not tracked eagerly.
// Panics if key is outside [0, Capacity()).
func (s *Store[V]) Remove(key int) (value V, ok bool) {
	s.checkKey(key)
	word, mask := key>>wordShift, uint64(1)<<(uint(key)&wordMask)
	if s.bits[word]&mask == 0 {
		return
	}
	var zero V
	value, ok = s.values[key], true
	s.values[key] = zero // release the reference for the GC
	s.bits[word] &^= mask
	s.count--
	return
}

// Clear empties every slot in one bulk pass, keeping the storage
// for reuse. O(Capacity()).
func (s *Store[V]) Clear() {
	var zero V
	for i := range s.values {
		s.values[i] = zero
	}
	for i := range s.bits {
		s.bits[i] = 0
	}
	s.count = 0
	s.hint = 0
}

// NextKey returns the lowest unoccupied key at or after the cached
// cursor, the canonical way to pick an insertion key for dense packing.
// The cursor moves to the returned key, so filling the store with
// repeated NextKey+Insert pairs is amortized O(1) per key. A key freed
// below the cursor is rediscovered only once the tail is exhausted,
// by a restarted scan. Returns ok == false when every slot is occupied
// (or capacity is zero).
func (s *Store[V]) NextKey() (key int, ok bool) {
	if key, ok = s.scanFree(s.hint); !ok {
		if s.count == len(s.values) {
			return 0, false
		}
		// everything at or after the hint is taken, but a lower
		// key has been freed since the cursor moved past it
		key, ok = s.scanFree(0)
	}
	s.hint = key
	return key, true
}

// Push inserts value at the next free key and returns that key,
// or ErrFull when no slot is free.
func (s *Store[V]) Push(value V) (int, error) {
	key, ok := s.NextKey()
	if !ok {
		return 0, ErrFull
	}
	s.Insert(key, value)
	return key, nil
}

// Retain removes every element for which keep returns false.
func (s *Store[V]) Retain(keep func(key int, value V) bool) {
	var zero V
	for word, busy := range s.bits {
		for busy != 0 {
			bit := busy & -busy
			busy &^= bit
			key := word<<wordShift + bits.TrailingZeros64(bit)
			if keep(key, s.values[key]) {
				continue
			}
			s.values[key] = zero
			s.bits[word] &^= bit
			s.count--
		}
	}
}

// scanFree finds the first empty slot at or after the from key.
func (s *Store[V]) scanFree(from int) (int, bool) {
	size := len(s.values)
	if from >= size {
		return 0, false
	}
	word := from >> wordShift
	free := ^s.bits[word] &^ ((1 << (uint(from) & wordMask)) - 1)
	for {
		if free != 0 {
			key := word<<wordShift + bits.TrailingZeros64(free)
			if key < size {
				return key, true
			}
			// only the padding bits of the last word are free
			return 0, false
		}
		if word++; word >= len(s.bits) {
			return 0, false
		}
		free = ^s.bits[word]
	}
}
