// Package slotstore defines a fixed-capacity associative container keyed by
// small non-negative integers.
//
// A Store holds exactly Capacity() slots. The key of an element IS the index
// of its slot, so lookup is a direct array access with no hashing. The store
// is meant for dense, sequential, bounded keyspaces where it outperforms a
// general-purpose map: keys are handed out contiguously from 0 upward by
// NextKey, so iteration walks a mostly-full array in ascending key order.
//
// Layout:
// ------
//
//   - values - one cell per key, meaningful only while the slot is occupied;
//   - bits   - a presence bitmap, one bit per key;
//   - count  - cached number of occupied slots (Len is O(1));
//   - hint   - a forward cursor accelerating NextKey.
//
// The hint is advisory, not authoritative: removals never move it backwards,
// so NextKey always re-validates against the bitmap, scanning forward over
// occupied slots and falling back to a scan from zero when every slot at or
// after the cursor is taken.
//
// The capacity is fixed at construction. Exceeding it is a contract
// violation: Insert, Get, Ref, Has and Remove panic on a key outside
// [0, Capacity()). The store never grows and never reallocates; the one
// recoverable condition is NextKey (or Push) finding no free slot.
//
// A Store is not safe for concurrent use, and the structure must not be
// mutated while an iterator obtained from it is in use. Callers needing
// either must synchronize externally.
package slotstore
