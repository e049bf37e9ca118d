package slotstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/hideo55/go-popcount"
)

// MarshalJSON encodes the occupied slots as a JSON object with decimal
// string keys, in ascending key order: {"0":v,"3":w}.
func (s *Store[V]) MarshalJSON() ([]byte, error) {
	var (
		b  bytes.Buffer
		it = s.Iter()
	)
	b.WriteByte('{')
	for i := 0; ; i++ {
		key, value, ok := it.Next()
		if !ok {
			break
		}
		if i > 0 {
			b.WriteByte(',')
		}
		enc, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		b.WriteByte('"')
		b.WriteString(strconv.Itoa(key))
		b.WriteString(`":`)
		b.Write(enc)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON replaces the store contents with the decoded object.
// The store keeps its capacity; a key outside [0, Capacity()) is a
// decode error, not a panic, since the data comes from outside the
// program. The decode is staged into fresh storage, so a failed
// decode leaves the store untouched.
func (s *Store[V]) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var (
		values = make([]V, len(s.values))
		words  = make([]uint64, len(s.bits))
	)
	for ks, rv := range raw {
		key, err := strconv.Atoi(ks)
		if err != nil {
			return fmt.Errorf("slotstore: bad key %q: %w", ks, err)
		}
		if key < 0 || key >= len(values) {
			return fmt.Errorf("slotstore: key %d out of range [0, %d)", key, len(values))
		}
		var value V
		if err := json.Unmarshal(rv, &value); err != nil {
			return err
		}
		values[key] = value
		words[key>>wordShift] |= 1 << (uint(key) & wordMask)
	}
	s.values = values
	s.bits = words
	s.count = 0
	for _, word := range words {
		s.count += int(popcount.Count(word))
	}
	s.hint = 0
	return nil
}
