package slotstore

import (
	"github.com/hideo55/go-popcount"
)

// occupied recounts the presence bitmap, bypassing the cached count.
func occupied[V any](s *Store[V]) int {
	var n uint64
	for _, word := range s.bits {
		n += popcount.Count(word)
	}
	return int(n)
}

// collect drains an iterator into key and value slices.
func collect[V any](s *Store[V]) (keys []int, values []V) {
	it := s.Iter()
	for {
		key, value, ok := it.Next()
		if !ok {
			return
		}
		keys = append(keys, key)
		values = append(values, value)
	}
}
