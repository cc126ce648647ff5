package mdmap

import (
	"reflect"
)

// Row is a single record in a MultiDirMap. A Row belongs to exactly one map
// for its whole lifetime; writing one of its key-column fields re-indexes
// the owning map through Set. Mutating a Row from inside one of the owning
// map's own operations is not supported.
type Row struct {
	owner  *MultiDirMap
	values []any
}

func newRow(owner *MultiDirMap, values []any) *Row {
	vals := make([]any, len(values))
	copy(vals, values)
	return &Row{owner: owner, values: vals}
}

// Get returns the value for column col, or nil if the column does not exist.
func (r *Row) Get(col string) any {
	i, ok := r.owner.colpos[col]
	if !ok {
		return nil
	}
	return r.values[i]
}

// Set writes v into column col. Writes of an unchanged value or into a
// non-key column touch no index. A key-column write moves the row to its
// new key in that column's index, or fails with DuplicateKeyError if the
// key is taken; the row is left unchanged on failure.
func (r *Row) Set(col string, v any) error {
	i, ok := r.owner.colpos[col]
	if !ok {
		return &FormatError{Reason: "unknown column", Value: col}
	}
	old := r.values[i]
	if reflect.DeepEqual(v, old) || i >= r.owner.keyColumns {
		r.values[i] = v
		return nil
	}
	if !comparableKey(v) {
		return &FormatError{Reason: "key value must be comparable", Value: col}
	}
	idx := r.owner.indexes.Get(col)
	if idx.entries.Has(v) {
		return &DuplicateKeyError{Column: col, Key: v}
	}
	idx.entries.Set(v, r)
	idx.entries.Delete(old)
	r.values[i] = v
	return nil
}

// AsList returns the row's values in column order.
func (r *Row) AsList() []any {
	vals := make([]any, len(r.values))
	copy(vals, r.values)
	return vals
}

// AsMap returns the row's values keyed by column name.
func (r *Row) AsMap() map[string]any {
	vals := make(map[string]any, len(r.values))
	for i, col := range r.owner.columns {
		vals[col] = r.values[i]
	}
	return vals
}

// Equal compares the ordered value sequences of two rows. A row is always
// equal to itself.
func (r *Row) Equal(other *Row) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	return reflect.DeepEqual(r.values, other.values)
}
