package pkg_test

import (
	"testing"

	"mdmap/pkg"

	"gotest.tools/assert"
)

func TestMap(t *testing.T) {
	m := pkg.Map[string, int]{}
	m.Set("a", 1)
	m.Set("b", 2)
	assert.Assert(t, m.Has("a"))
	assert.Equal(t, m.Get("b"), 2)
	assert.Equal(t, m.Get("c"), 0)
	m.Delete("a")
	assert.Assert(t, !m.Has("a"))
	assert.Equal(t, len(m.Keys()), 1)
}

func TestOrderedMap(t *testing.T) {
	newMap := func() *pkg.OrderedMap[string, int] {
		m := pkg.NewOrderedMap[string, int]()
		m.Set("a", 1)
		m.Set("b", 2)
		m.Set("c", 3)
		return m
	}

	t.Run("InsertionOrder", func(t *testing.T) {
		m := newMap()
		assert.DeepEqual(t, m.Keys(), []string{"a", "b", "c"})
		assert.Equal(t, m.Len(), 3)
	})

	t.Run("SetExistingKeepsPosition", func(t *testing.T) {
		m := newMap()
		m.Set("a", 10)
		assert.DeepEqual(t, m.Keys(), []string{"a", "b", "c"})
		assert.Equal(t, m.Get("a"), 10)
		assert.Equal(t, m.Len(), 3)
	})

	t.Run("Delete", func(t *testing.T) {
		m := newMap()
		m.Delete("b")
		assert.DeepEqual(t, m.Keys(), []string{"a", "c"})
		assert.Assert(t, !m.Has("b"))
		m.Delete("nope")
		assert.Equal(t, m.Len(), 2)
	})

	t.Run("DeletedKeyReinsertsAtEnd", func(t *testing.T) {
		m := newMap()
		m.Delete("a")
		m.Set("a", 1)
		assert.DeepEqual(t, m.Keys(), []string{"b", "c", "a"})
	})

	t.Run("PopLast", func(t *testing.T) {
		m := newMap()
		key, value, ok := m.PopLast()
		assert.Assert(t, ok)
		assert.Equal(t, key, "c")
		assert.Equal(t, value, 3)
		assert.DeepEqual(t, m.Keys(), []string{"a", "b"})

		m.Delete("a")
		m.Delete("b")
		_, _, ok = m.PopLast()
		assert.Assert(t, !ok)
	})

	t.Run("Reorder", func(t *testing.T) {
		m := newMap()
		m.Reorder([]string{"c", "a", "b"})
		assert.DeepEqual(t, m.Keys(), []string{"c", "a", "b"})
		assert.Equal(t, m.Get("a"), 1)
	})

	t.Run("Clear", func(t *testing.T) {
		m := newMap()
		m.Clear()
		assert.Equal(t, m.Len(), 0)
		assert.Assert(t, !m.Has("a"))
		m.Set("z", 26)
		assert.DeepEqual(t, m.Keys(), []string{"z"})
	})
}
