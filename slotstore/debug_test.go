package slotstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Parallel()

	s := New[string](10)

	s.Insert(7, "sem")
	s.Insert(1, "one")

	assert.Equal(t, "{1: one, 7: sem}", s.String())
}

func TestString_Empty(t *testing.T) {
	t.Parallel()

	s := New[int](4)

	assert.Equal(t, "{}", s.String())
}

func TestString_Ints(t *testing.T) {
	t.Parallel()

	s := New[int](4)

	s.Insert(0, 42)

	assert.Equal(t, "{0: 42}", s.String())
}
