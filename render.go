package mdmap

import (
	"fmt"
	"strings"
)

// Display-only surface: a plain-text table rendering of the map. This sits
// on top of the public read operations (AsList, primary order) and has no
// hand in index consistency.

type printSettings struct {
	maxWidth    int
	maxCols     int
	maxColWidth int
}

func defaultPrintSettings() printSettings {
	return printSettings{maxWidth: 80, maxCols: 4, maxColWidth: 20}
}

// PrintSettings adjusts how String renders the map: the maximum total
// width, the maximum number of columns shown, and the maximum width of one
// column. Zero or negative arguments keep the current value.
func (m *MultiDirMap) PrintSettings(maxWidth, maxCols, maxColWidth int) {
	if maxWidth > 0 {
		m.settings.maxWidth = maxWidth
	}
	if maxCols > 0 {
		m.settings.maxCols = maxCols
	}
	if maxColWidth > 0 {
		m.settings.maxColWidth = maxColWidth
	}
}

// String renders the map as a fixed-width table in primary order. Key
// columns are marked with "*"; columns beyond the column limit are elided
// to the left of the last column and shown as "...".
func (m *MultiDirMap) String() string {
	nOut := m.settings.maxCols
	if len(m.columns) < nOut {
		nOut = len(m.columns)
	}
	nOmitted := len(m.columns) - m.settings.maxCols
	if nOmitted < 0 {
		nOmitted = 0
	}
	colWidth := (m.settings.maxWidth - 3*nOmitted - (nOut + nOmitted - 1)) / nOut
	if m.settings.maxColWidth < colWidth {
		colWidth = m.settings.maxColWidth
	}
	if colWidth < 1 {
		colWidth = 1
	}
	totalWidth := nOut*colWidth + (nOut + nOmitted - 1) + nOmitted*3

	headers := make([]string, 0, len(m.columns))
	for i, name := range m.columns {
		if i < m.keyColumns {
			headers = append(headers, pad(clip(name, colWidth-1)+"*", colWidth))
		} else {
			headers = append(headers, pad(clip(name, colWidth), colWidth))
		}
	}
	if nOmitted > 0 {
		last := headers[len(headers)-1]
		headers = append(headers[:nOut-1], "...", last)
	}

	lines := []string{
		strings.Join(headers, " "),
		strings.Repeat("=", totalWidth),
	}
	for _, row := range m.Values() {
		values := row.AsList()
		cells := make([]string, 0, len(headers))
		if len(values) > nOut {
			for _, v := range values[:nOut-1] {
				cells = append(cells, pad(clip(cell(v), colWidth), colWidth))
			}
			cells = append(cells, "...", pad(clip(cell(values[len(values)-1]), colWidth), colWidth))
		} else {
			for _, v := range values {
				cells = append(cells, pad(cell(v), colWidth))
			}
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func cell(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func clip(s string, width int) string {
	if width < 0 {
		width = 0
	}
	if len(s) > width {
		return s[:width]
	}
	return s
}

func pad(s string, width int) string {
	s = clip(s, width)
	return s + strings.Repeat(" ", width-len(s))
}
