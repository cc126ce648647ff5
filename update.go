package mdmap

import (
	"github.com/pkg/errors"

	"mdmap/pkg"
)

// Overwrite selects what an Update row may replace when its key columns
// collide with existing entries.
type Overwrite string

const (
	// OverwriteNone rejects any collision.
	OverwriteNone Overwrite = "none"
	// OverwritePrimary permits a collision on the primary key column only.
	OverwritePrimary Overwrite = "primary"
	// OverwriteSecondary permits collisions on secondary key columns only.
	OverwriteSecondary Overwrite = "secondary"
	// OverwriteAll permits any collision.
	OverwriteAll Overwrite = "all"
)

// batchState is the bookkeeping for one Update call: enough to undo every
// change on failure and to defer removal of superseded rows to the end.
type batchState struct {
	// added holds, per inserted row, the keys that were new to each index.
	added []map[string]any
	// backups holds evicted entries in eviction order so a rollback can
	// put them back.
	backups []backupEntry
	// inserted marks rows created by this batch. A backed-up entry whose
	// row was itself created by the batch must not be restored.
	inserted map[*Row]struct{}
	// pending is the per-column set of keys whose rows were superseded.
	// They are removed only after the whole batch succeeds, so that a
	// later row may still reclaim one of them.
	pending map[string]map[any]struct{}
}

type backupEntry struct {
	column string
	key    any
	row    *Row
}

// Update merges data into the map, processing rows in input order. Each
// row either inserts cleanly, overwrites what the policy permits, or is
// unresolvable; an unresolvable row is skipped when skipDuplicates is set
// and otherwise fails the whole call with DuplicateKeyError after rolling
// back every change the batch has made. Collisions are judged against the
// index state as earlier rows of the same batch left it.
func (m *MultiDirMap) Update(data any, overwrite Overwrite, skipDuplicates bool) error {
	switch overwrite {
	case OverwriteNone, OverwritePrimary, OverwriteSecondary, OverwriteAll:
	default:
		return &FormatError{Reason: "unknown overwrite policy", Value: string(overwrite)}
	}
	rows, err := m.formatData(data)
	if err != nil {
		return err
	}

	st := &batchState{
		inserted: map[*Row]struct{}{},
		pending:  make(map[string]map[any]struct{}, m.keyColumns),
	}
	for _, col := range m.columns[:m.keyColumns] {
		st.pending[col] = map[any]struct{}{}
	}

	for i, row := range rows {
		if err := m.addEntry(row, st, overwrite, skipDuplicates); err != nil {
			return errors.Wrapf(err, "row %d", i)
		}
	}

	// Finalize removal of rows that were fully superseded. Keys reclaimed
	// by later rows were discarded from pending as they were claimed.
	removed := 0
	for col, keys := range st.pending {
		idx := m.indexes.Get(col)
		for key := range keys {
			idx.entries.Delete(key)
			removed++
		}
	}
	pkg.DebugLog("mdmap: update applied", m.id, "rows", len(rows), "policy", overwrite, "superseded", removed)
	return nil
}

// addEntry processes one canonical row against the current index state.
func (m *MultiDirMap) addEntry(values []any, st *batchState, overwrite Overwrite, skipDuplicates bool) error {
	keyCols := m.columns[:m.keyColumns]
	row := newRow(m, values)

	dup := make(map[string]bool, len(keyCols))
	anyDup := false
	for i, col := range keyCols {
		dup[col] = m.indexes.Get(col).entries.Has(values[i])
		anyDup = anyDup || dup[col]
	}

	if !anyDup {
		entry := make(map[string]any, len(keyCols))
		for i, col := range keyCols {
			m.indexes.Get(col).entries.Set(values[i], row)
			entry[col] = values[i]
		}
		st.added = append(st.added, entry)
		st.inserted[row] = struct{}{}
		return nil
	}

	if col, blocked := m.blockedColumn(dup, overwrite); blocked {
		if skipDuplicates {
			return nil
		}
		m.rollback(st)
		return &DuplicateKeyError{Column: col, Key: values[m.colpos[col]]}
	}

	m.markSuperseded(values, dup, st)

	if overwrite == OverwriteAll {
		// Nothing recorded for rollback: under OverwriteAll every row is
		// insertable, so the batch cannot fail past this point.
		for i, col := range keyCols {
			m.indexes.Get(col).entries.Set(values[i], row)
			delete(st.pending[col], values[i])
		}
		st.inserted[row] = struct{}{}
		return nil
	}

	// Collisions the policy permits: back up each evicted entry, then
	// claim every key for the new row.
	entry := make(map[string]any, len(keyCols))
	for i, col := range keyCols {
		idx := m.indexes.Get(col)
		if dup[col] {
			st.backups = append(st.backups, backupEntry{col, values[i], idx.entries.Get(values[i])})
		} else {
			entry[col] = values[i]
		}
		idx.entries.Set(values[i], row)
		delete(st.pending[col], values[i])
	}
	st.added = append(st.added, entry)
	st.inserted[row] = struct{}{}
	return nil
}

// blockedColumn decides whether a row with the given collisions is
// insertable under the policy, returning the first offending column when
// it is not.
func (m *MultiDirMap) blockedColumn(dup map[string]bool, overwrite Overwrite) (string, bool) {
	keyCols := m.columns[:m.keyColumns]
	switch overwrite {
	case OverwriteNone:
		for _, col := range keyCols {
			if dup[col] {
				return col, true
			}
		}
	case OverwritePrimary:
		for _, col := range keyCols[1:] {
			if dup[col] {
				return col, true
			}
		}
	case OverwriteSecondary:
		if dup[keyCols[0]] {
			return keyCols[0], true
		}
	}
	return "", false
}

// markSuperseded marks every key-column entry of each row the candidate
// collides with as pending deletion. Deletion is deferred to the end of
// the batch; a later row reclaiming one of these keys cancels that key's
// pending removal.
func (m *MultiDirMap) markSuperseded(values []any, dup map[string]bool, st *batchState) {
	keyCols := m.columns[:m.keyColumns]
	for i, col := range keyCols {
		if !dup[col] {
			continue
		}
		victim := m.indexes.Get(col).entries.Get(values[i])
		for j, vcol := range keyCols {
			st.pending[vcol][victim.values[j]] = struct{}{}
		}
	}
}

// rollback undoes every change of the in-progress batch: first remove the
// keys the batch added, then restore evicted entries, newest eviction
// first so that chained overwrites of one key unwind to the original row.
// Entries whose row was itself created by this batch are gone with it.
func (m *MultiDirMap) rollback(st *batchState) {
	for _, entry := range st.added {
		for col, key := range entry {
			m.indexes.Get(col).entries.Delete(key)
		}
	}
	for i := len(st.backups) - 1; i >= 0; i-- {
		b := st.backups[i]
		if _, ok := st.inserted[b.row]; ok {
			continue
		}
		m.indexes.Get(b.column).entries.Set(b.key, b.row)
	}
	pkg.DebugLog("mdmap: update rolled back", m.id, "added", len(st.added), "restored", len(st.backups))
}
