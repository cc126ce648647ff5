package mdmap

import (
	"reflect"

	"mdmap/pkg"
)

// keyIndex is the mutable index for one key column. Only MultiDirMap
// methods reach it; everything else sees the read-only Index view.
type keyIndex struct {
	column  string
	entries *pkg.OrderedMap[any, *Row]
}

func newKeyIndex(column string) *keyIndex {
	return &keyIndex{column: column, entries: pkg.NewOrderedMap[any, *Row]()}
}

// equal compares contents only. Key order is index bookkeeping, not data,
// so two indexes with the same entries in different orders are equal.
func (k *keyIndex) equal(other *keyIndex) bool {
	if k.entries.Len() != other.entries.Len() {
		return false
	}
	for _, key := range k.entries.Keys() {
		if !other.entries.Has(key) {
			return false
		}
		if !k.entries.Get(key).Equal(other.entries.Get(key)) {
			return false
		}
	}
	return true
}

// Index is a read-only view of one key column's index. It supports lookup,
// iteration, length and equality; all mutation goes through the owning
// MultiDirMap, so holding an Index can never bypass the update path.
type Index struct {
	idx *keyIndex
}

// Column returns the key column this index covers.
func (v *Index) Column() string { return v.idx.column }

func (v *Index) Len() int { return v.idx.entries.Len() }

func (v *Index) Has(key any) bool {
	if !comparableKey(key) {
		return false
	}
	return v.idx.entries.Has(key)
}

func (v *Index) Get(key any) (*Row, bool) {
	if !v.Has(key) {
		return nil, false
	}
	return v.idx.entries.Get(key), true
}

// Keys returns the index keys in insertion order.
func (v *Index) Keys() []any { return v.idx.entries.Keys() }

// Values returns the indexed rows in key insertion order.
func (v *Index) Values() []*Row {
	keys := v.idx.entries.Keys()
	rows := make([]*Row, len(keys))
	for i, key := range keys {
		rows[i] = v.idx.entries.Get(key)
	}
	return rows
}

// Equal compares contents only, ignoring key order.
func (v *Index) Equal(other *Index) bool {
	if v == other {
		return true
	}
	if v == nil || other == nil {
		return false
	}
	return v.idx.equal(other.idx)
}

// comparableKey reports whether v can be used as an index key. Index keys
// live in Go maps, so non-comparable values (slices, maps, funcs) are
// never present in an index.
func comparableKey(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}
