package mdmap_test

import (
	"testing"

	"gotest.tools/assert"
)

func TestIndexViews(t *testing.T) {
	m := newPteMap(t, pteRows()[:3])

	t.Run("NonKeyColumnHasNoIndex", func(t *testing.T) {
		assert.Assert(t, m.Index("isotope_masses") == nil)
		assert.Assert(t, m.Index("nope") == nil)
	})

	t.Run("PrimaryIsFirstKeyColumn", func(t *testing.T) {
		assert.Equal(t, m.Primary().Column(), "symbol")
		assert.Assert(t, m.Primary().Equal(m.Index("symbol")))
	})

	t.Run("KeysAndValuesAlign", func(t *testing.T) {
		idx := m.Index("name")
		keys := idx.Keys()
		values := idx.Values()
		assert.Equal(t, len(keys), len(values))
		for i, key := range keys {
			row, ok := idx.Get(key)
			assert.Assert(t, ok)
			assert.Assert(t, row == values[i])
		}
	})

	t.Run("LookupMisses", func(t *testing.T) {
		idx := m.Index("atomic_number")
		assert.Assert(t, !idx.Has(42))
		_, ok := idx.Get(42)
		assert.Assert(t, !ok)
		assert.Assert(t, !idx.Has([]any{1}), "non-comparable keys are never present")
	})
}

func TestIndexEqualIgnoresOrder(t *testing.T) {
	rows := pteRows()[:3]
	m0 := newPteMap(t, rows)
	m1 := newPteMap(t, [][]any{rows[2], rows[0], rows[1]})

	assert.Assert(t, !equalAnySlices(m0.Primary().Keys(), m1.Primary().Keys()))
	assert.Assert(t, m0.Primary().Equal(m1.Primary()))
	assert.Assert(t, m0.Index("name").Equal(m1.Index("name")))
	assert.Assert(t, m0.Equal(m1), "map equality follows index content equality")
}

func equalAnySlices(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
