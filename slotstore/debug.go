package slotstore

import (
	"fmt"
	"strings"
)

// String renders the occupied slots as "{0: a, 1: b}", ascending by key.
func (s *Store[V]) String() string {
	var (
		b  strings.Builder
		it = s.Iter()
	)
	b.WriteByte('{')
	for i := 0; ; i++ {
		key, value, ok := it.Next()
		if !ok {
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d: %v", key, value)
	}
	b.WriteByte('}')
	return b.String()
}
