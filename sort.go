package mdmap

import (
	sorted "github.com/tobshub/go-sortedmap"

	"mdmap/pkg"
)

// SyncSecondary reorders every secondary index into the primary index's
// current order. Contents are untouched; only key order changes.
func (m *MultiDirMap) SyncSecondary() {
	order := m.primary.entries.Keys()
	for i, col := range m.columns[1:m.keyColumns] {
		idx := m.indexes.Get(col)
		keys := make([]any, 0, len(order))
		for _, pk := range order {
			keys = append(keys, m.primary.entries.Get(pk).values[i+1])
		}
		idx.entries.Reorder(keys)
	}
}

// Sort reorders the primary index, and through SyncSecondary every
// secondary index, by the given ordering over row contents. The key->row
// mapping is preserved exactly.
func (m *MultiDirMap) Sort(less func(a, b *Row) bool, reverse bool) {
	if m.Len() > 1 {
		sm := sorted.New[any, *Row](m.Len(), less)
		for _, key := range m.primary.entries.Keys() {
			sm.Insert(key, m.primary.entries.Get(key))
		}
		iter, err := sm.IterCh()
		if err != nil {
			pkg.ErrorLog("mdmap: sort iteration failed;", err)
			return
		}
		order := make([]any, 0, m.Len())
		for rec := range iter.Records() {
			order = append(order, rec.Key)
		}
		if reverse {
			for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
				order[i], order[j] = order[j], order[i]
			}
		}
		m.primary.entries.Reorder(order)
	}
	m.SyncSecondary()
	pkg.DebugLog("mdmap: sorted map", m.id, "rows", m.Len())
}
