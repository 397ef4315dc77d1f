package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderedSet(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		set := NewOrderedSet[int]()
		assert.Equal(t, 0, set.Len())
		assert.Empty(t, set.ToSlice())
	})

	t.Run("initial elements keep insertion order", func(t *testing.T) {
		set := NewOrderedSet("c", "a", "b")
		assert.Equal(t, []string{"c", "a", "b"}, set.ToSlice())
	})

	t.Run("initial duplicates are dropped", func(t *testing.T) {
		set := NewOrderedSet(1, 2, 2, 3, 1)
		assert.Equal(t, []int{1, 2, 3}, set.ToSlice())
	})
}

func TestOrderedSet_Add(t *testing.T) {
	t.Run("appends new elements in order", func(t *testing.T) {
		set := NewOrderedSet[string]()
		set.Add("first")
		set.Add("second")
		set.Add("third")

		assert.Equal(t, []string{"first", "second", "third"}, set.ToSlice())
	})

	t.Run("ignores duplicates without reordering", func(t *testing.T) {
		set := NewOrderedSet("first", "second")
		set.Add("first")

		assert.Equal(t, 2, set.Len())
		assert.Equal(t, []string{"first", "second"}, set.ToSlice())
	})
}

func TestOrderedSet_Contains(t *testing.T) {
	set := NewOrderedSet(1, 2, 3)

	assert.True(t, set.Contains(2))
	assert.False(t, set.Contains(42))
}

func TestOrderedSet_ToSlice(t *testing.T) {
	t.Run("returns a copy", func(t *testing.T) {
		set := NewOrderedSet(1, 2, 3)

		out := set.ToSlice()
		out[0] = 99

		assert.Equal(t, []int{1, 2, 3}, set.ToSlice())
	})
}
