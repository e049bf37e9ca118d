package slotstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIter_Empty(t *testing.T) {
	t.Parallel()

	s := New[int](100)

	it := s.Iter()
	_, _, ok := it.Next()

	assert.False(t, ok)
}

func TestIter_AscendingWithHoles(t *testing.T) {
	t.Parallel()

	s := New[string](200)

	// out-of-order inserts, spread across bitmap words
	for _, key := range []int{130, 0, 64, 63, 127, 5} {
		s.Insert(key, "v")
	}
	s.Remove(64)

	keys, _ := collect(s)

	assert.Equal(t, []int{0, 5, 63, 127, 130}, keys)
}

func TestIter_Restartable(t *testing.T) {
	t.Parallel()

	s := New[int](4)

	s.Insert(1, 10)
	s.Insert(3, 30)

	first, _ := collect(s)
	second, _ := collect(s)

	assert.Equal(t, first, second, "every Iter call starts a fresh walk")
}

func TestKeys(t *testing.T) {
	t.Parallel()

	s := New[string](8)

	s.Insert(6, "c")
	s.Insert(2, "a")
	s.Insert(4, "b")

	var keys []int

	it := s.Keys()
	for {
		key, ok := it.Next()
		if !ok {
			break
		}
		keys = append(keys, key)
	}

	assert.Equal(t, []int{2, 4, 6}, keys)
}

func TestValues(t *testing.T) {
	t.Parallel()

	s := New[string](8)

	s.Insert(6, "c")
	s.Insert(2, "a")
	s.Insert(4, "b")

	var values []string

	it := s.Values()
	for {
		value, ok := it.Next()
		if !ok {
			break
		}
		values = append(values, value)
	}

	assert.Equal(t, []string{"a", "b", "c"}, values)
}

func TestIter_FullStore(t *testing.T) {
	t.Parallel()

	s := New[int](66)

	for i := 0; i < 66; i++ {
		s.Insert(i, i * i)
	}

	keys, values := collect(s)

	assert.Len(t, keys, 66)
	for i, key := range keys {
		assert.Equal(t, i, key)
		assert.Equal(t, i*i, values[i])
	}
}
