package mdmap

import (
	"github.com/google/uuid"

	"mdmap/pkg"
)

// MultiDirMap is an in-memory table with a fixed column schema whose first
// keyColumns columns are each independently unique and each usable to look
// up the full row. The first key column is the primary key; its insertion
// order is the map's enumeration order.
//
// All operations are synchronous and the map holds no locks: it is not
// safe for concurrent mutation.
type MultiDirMap struct {
	id         uuid.UUID
	columns    []string
	keyColumns int
	colpos     map[string]int
	indexes    pkg.Map[string, *keyIndex]
	primary    *keyIndex
	settings   printSettings
}

// Item is one primary-index entry.
type Item struct {
	Key any
	Row *Row
}

// New creates a map with the given column schema. keyColumns is how many
// of the leading columns are key columns; zero or negative means all of
// them. data, if non-nil, is fed through Update with the OverwritePrimary
// policy.
func New(columns []string, keyColumns int, data any) (*MultiDirMap, error) {
	if len(columns) == 0 {
		return nil, &FormatError{Reason: "no columns given"}
	}
	if keyColumns <= 0 {
		keyColumns = len(columns)
	}
	if keyColumns > len(columns) {
		return nil, &FormatError{Reason: "more key columns than columns"}
	}

	m := &MultiDirMap{
		id:         uuid.New(),
		columns:    append([]string{}, columns...),
		keyColumns: keyColumns,
		colpos:     make(map[string]int, len(columns)),
		indexes:    pkg.Map[string, *keyIndex]{},
		settings:   defaultPrintSettings(),
	}
	for i, col := range columns {
		if _, ok := m.colpos[col]; ok {
			return nil, &FormatError{Reason: "duplicate column name", Value: col}
		}
		m.colpos[col] = i
	}
	for _, col := range columns[:keyColumns] {
		m.indexes.Set(col, newKeyIndex(col))
	}
	m.primary = m.indexes.Get(columns[0])

	pkg.DebugLog("mdmap: created map", m.id, "columns", len(columns), "keys", keyColumns)

	if data != nil {
		if err := m.Update(data, OverwritePrimary, false); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Columns returns the column schema in order.
func (m *MultiDirMap) Columns() []string {
	return append([]string{}, m.columns...)
}

// KeyColumns returns how many of the leading columns are key columns.
func (m *MultiDirMap) KeyColumns() int { return m.keyColumns }

// Len returns the number of rows.
func (m *MultiDirMap) Len() int { return m.primary.entries.Len() }

// Primary returns the read-only view of the primary index.
func (m *MultiDirMap) Primary() *Index { return &Index{idx: m.primary} }

// Index returns the read-only view of the index for a key column, or nil
// if col is not a key column.
func (m *MultiDirMap) Index(col string) *Index {
	if !m.indexes.Has(col) {
		return nil
	}
	return &Index{idx: m.indexes.Get(col)}
}

// Get looks key up in the primary index.
func (m *MultiDirMap) Get(key any) (*Row, error) {
	row, ok := m.Lookup(key)
	if !ok {
		return nil, &KeyNotFoundError{Key: key}
	}
	return row, nil
}

// Lookup looks key up in the primary index, with a comma-ok result.
func (m *MultiDirMap) Lookup(key any) (*Row, bool) {
	if !comparableKey(key) || !m.primary.entries.Has(key) {
		return nil, false
	}
	return m.primary.entries.Get(key), true
}

// Set stores one row under the given primary key, with rest holding the
// values of the remaining columns in order. It is a single-row Update
// under the OverwritePrimary policy and fails the same way.
func (m *MultiDirMap) Set(key any, rest []any) error {
	row := append([]any{key}, rest...)
	return m.Update([][]any{row}, OverwritePrimary, false)
}

// Delete removes the row stored under the given primary key, together
// with its entries in every other key-column index.
func (m *MultiDirMap) Delete(key any) error {
	row, ok := m.Lookup(key)
	if !ok {
		return &KeyNotFoundError{Key: key}
	}
	m.deleteRow(row)
	return nil
}

func (m *MultiDirMap) deleteRow(row *Row) {
	for i, col := range m.columns[:m.keyColumns] {
		m.indexes.Get(col).entries.Delete(row.values[i])
	}
}

// Pop removes and returns the row stored under the given primary key.
func (m *MultiDirMap) Pop(key any) (*Row, error) {
	row, ok := m.Lookup(key)
	if !ok {
		return nil, &KeyNotFoundError{Key: key}
	}
	m.deleteRow(row)
	return row, nil
}

// PopItem removes and returns the most recently inserted primary entry,
// or ErrEmptyMap if the map is empty.
func (m *MultiDirMap) PopItem() (any, *Row, error) {
	key, row, ok := m.primary.entries.PopLast()
	if !ok {
		return nil, nil, ErrEmptyMap
	}
	for i, col := range m.columns[1:m.keyColumns] {
		m.indexes.Get(col).entries.Delete(row.values[i+1])
	}
	return key, row, nil
}

// Keys returns the primary keys in enumeration order.
func (m *MultiDirMap) Keys() []any { return m.primary.entries.Keys() }

// Values returns the rows in enumeration order.
func (m *MultiDirMap) Values() []*Row {
	keys := m.primary.entries.Keys()
	rows := make([]*Row, len(keys))
	for i, key := range keys {
		rows[i] = m.primary.entries.Get(key)
	}
	return rows
}

// Items returns the primary entries in enumeration order.
func (m *MultiDirMap) Items() []Item {
	keys := m.primary.entries.Keys()
	items := make([]Item, len(keys))
	for i, key := range keys {
		items[i] = Item{Key: key, Row: m.primary.entries.Get(key)}
	}
	return items
}

// Equal reports whether two maps have the same schema, the same key-column
// count, and the same primary-index contents. Row order is ignored.
func (m *MultiDirMap) Equal(other *MultiDirMap) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	if m.keyColumns != other.keyColumns || len(m.columns) != len(other.columns) {
		return false
	}
	for i, col := range m.columns {
		if other.columns[i] != col {
			return false
		}
	}
	return m.primary.equal(other.primary)
}

// Clear removes every row from every key-column index.
func (m *MultiDirMap) Clear() {
	for _, col := range m.columns[:m.keyColumns] {
		m.indexes.Get(col).entries.Clear()
	}
	pkg.DebugLog("mdmap: cleared map", m.id)
}
