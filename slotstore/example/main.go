package main

import (
	"fmt"

	"github.com/aglyzov/go-slotstore/slotstore"
)

func main() {
	s := slotstore.New[string](4)

	// fill to capacity: NextKey hands out 0, 1, 2, 3
	for _, name := range []string{"ada", "bob", "cid", "dot"} {
		key, _ := s.NextKey()
		s.Insert(key, name)
	}
	fmt.Printf("filled: %v (len %d of %d)\n", s, s.Len(), s.Capacity())

	if v, ok := s.Get(2); ok {
		fmt.Printf("key 2 -> %s\n", v)
	}

	// free a low key; the tail is full, so NextKey rediscovers it
	s.Remove(1)
	key, _ := s.NextKey()
	fmt.Printf("after Remove(1) the next free key is %d\n", key)
	s.Insert(key, "eva")

	it := s.Iter()
	for {
		key, value, ok := it.Next()
		if !ok {
			break
		}
		fmt.Printf("  %d: %s\n", key, value)
	}

	key, err := s.Push("fay")
	if err != nil {
		fmt.Println("push failed:", err)
	} else {
		fmt.Printf("pushed fay at %d\n", key)
	}

	s.Clear()
	fmt.Printf("cleared: len %d, capacity still %d\n", s.Len(), s.Capacity())
}
