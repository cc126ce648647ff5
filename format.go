package mdmap

// The canonical row producer: normalizes the accepted input shapes into
// column-ordered value slices, one per row, before any index is touched.
//
// Accepted shapes:
//
//   - [][]any or []any of []any: one value slice per row, at least the key
//     columns, right-padded with nil up to the column count
//   - []map[string]any or []any of map[string]any: one name->value map per
//     row, covering at least the key columns
//   - map[any][]any / map[string][]any / map[any]any: primary key ->
//     remaining values; row order is the map's iteration order and is
//     therefore unspecified
//
// Anything else, a wrong arity, a nil key-column value, or a key-column
// value that cannot be a map key is a FormatError.

func (m *MultiDirMap) formatData(data any) ([][]any, error) {
	switch data := data.(type) {
	case nil:
		return nil, nil
	case [][]any:
		rows := make([][]any, 0, len(data))
		for _, row := range data {
			shaped, err := m.shapeList(row)
			if err != nil {
				return nil, err
			}
			rows = append(rows, shaped)
		}
		return rows, nil
	case []map[string]any:
		rows := make([][]any, 0, len(data))
		for _, row := range data {
			shaped, err := m.shapeMap(row)
			if err != nil {
				return nil, err
			}
			rows = append(rows, shaped)
		}
		return rows, nil
	case []any:
		rows := make([][]any, 0, len(data))
		for _, row := range data {
			var shaped []any
			var err error
			switch row := row.(type) {
			case []any:
				shaped, err = m.shapeList(row)
			case map[string]any:
				shaped, err = m.shapeMap(row)
			default:
				err = &FormatError{Reason: "unexpected row format", Value: row}
			}
			if err != nil {
				return nil, err
			}
			rows = append(rows, shaped)
		}
		return rows, nil
	case map[any][]any:
		rows := make([][]any, 0, len(data))
		for key, rest := range data {
			shaped, err := m.shapeKeyed(key, rest)
			if err != nil {
				return nil, err
			}
			rows = append(rows, shaped)
		}
		return rows, nil
	case map[string][]any:
		rows := make([][]any, 0, len(data))
		for key, rest := range data {
			shaped, err := m.shapeKeyed(key, rest)
			if err != nil {
				return nil, err
			}
			rows = append(rows, shaped)
		}
		return rows, nil
	case map[any]any:
		rows := make([][]any, 0, len(data))
		for key, rest := range data {
			vals, ok := rest.([]any)
			if !ok {
				return nil, &FormatError{Reason: "unexpected row format", Value: rest}
			}
			shaped, err := m.shapeKeyed(key, vals)
			if err != nil {
				return nil, err
			}
			rows = append(rows, shaped)
		}
		return rows, nil
	default:
		return nil, &FormatError{Reason: "unexpected data format", Value: data}
	}
}

// shapeList pads a value slice out to the full column count.
func (m *MultiDirMap) shapeList(row []any) ([]any, error) {
	if len(row) < m.keyColumns || len(row) > len(m.columns) {
		return nil, &FormatError{Reason: "malformed row", Value: row}
	}
	shaped := make([]any, len(m.columns))
	copy(shaped, row)
	return shaped, m.checkKeys(shaped)
}

// shapeMap orders a name->value map by the column schema. Missing non-key
// columns default to nil.
func (m *MultiDirMap) shapeMap(row map[string]any) ([]any, error) {
	for _, col := range m.columns[:m.keyColumns] {
		if _, ok := row[col]; !ok {
			return nil, &FormatError{Reason: "malformed row", Value: row}
		}
	}
	shaped := make([]any, len(m.columns))
	for i, col := range m.columns {
		shaped[i] = row[col]
	}
	return shaped, m.checkKeys(shaped)
}

func (m *MultiDirMap) shapeKeyed(key any, rest []any) ([]any, error) {
	if len(rest)+1 < m.keyColumns || len(rest)+1 > len(m.columns) {
		return nil, &FormatError{Reason: "malformed row", Value: rest}
	}
	shaped := make([]any, len(m.columns))
	shaped[0] = key
	copy(shaped[1:], rest)
	return shaped, m.checkKeys(shaped)
}

// checkKeys rejects rows whose key-column values are absent or unusable as
// map keys.
func (m *MultiDirMap) checkKeys(shaped []any) error {
	for i := 0; i < m.keyColumns; i++ {
		if shaped[i] == nil {
			return &FormatError{Reason: "incomplete row", Value: shaped}
		}
		if !comparableKey(shaped[i]) {
			return &FormatError{Reason: "key value must be comparable", Value: shaped[i]}
		}
	}
	return nil
}
