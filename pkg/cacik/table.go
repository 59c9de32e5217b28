package cacik

import (
	"iter"
	"strings"

	messages "github.com/cucumber/messages/go/v21"
)

// Row is a single row of a Table.
type Row struct {
	cells   []string
	headers []string
}

// Get returns the cell under the column header (case-insensitive), or ""
// when there is no such column.
func (r Row) Get(col string) string {
	for i, h := range r.headers {
		if strings.EqualFold(h, col) {
			return r.Cell(i)
		}
	}
	return ""
}

// Cell returns the cell at index, or "" when out of range.
func (r Row) Cell(index int) string {
	if index < 0 || index >= len(r.cells) {
		return ""
	}
	return r.cells[index]
}

// Values returns a copy of the cells.
func (r Row) Values() []string {
	return clone(r.cells)
}

// Table is a data table attached to a step. The first row is the header.
// A step with a table receives it as its last parameter.
type Table struct {
	rows []Row
}

// NewTable creates a Table from raw cells.
func NewTable(data [][]string) Table {
	if len(data) == 0 {
		return Table{}
	}

	headers := clone(data[0])
	rows := make([]Row, len(data))
	for i, cells := range data {
		rows[i] = Row{cells: clone(cells), headers: headers}
	}
	return Table{rows: rows}
}

// NewTableFromDataTable creates a Table from a Gherkin DataTable message.
func NewTableFromDataTable(dt *messages.DataTable) Table {
	if dt == nil {
		return Table{}
	}

	data := make([][]string, len(dt.Rows))
	for i, row := range dt.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.Value
		}
		data[i] = cells
	}
	return NewTable(data)
}

// Headers returns the first row.
func (t Table) Headers() []string {
	if len(t.rows) == 0 {
		return []string{}
	}
	return t.rows[0].Values()
}

// Len returns the number of rows including the header.
func (t Table) Len() int {
	return len(t.rows)
}

// Raw returns every row, header included.
func (t Table) Raw() [][]string {
	raw := make([][]string, len(t.rows))
	for i, row := range t.rows {
		raw[i] = row.Values()
	}
	return raw
}

// Rows returns every row except the header.
func (t Table) Rows() [][]string {
	raw := t.Raw()
	if len(raw) == 0 {
		return raw
	}
	return raw[1:]
}

// Hashes returns one map per data row, keyed by header.
func (t Table) Hashes() []map[string]string {
	headers := t.Headers()
	hashes := make([]map[string]string, 0, len(t.rows))
	for _, row := range t.Rows() {
		hash := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				hash[h] = row[i]
			}
		}
		hashes = append(hashes, hash)
	}
	return hashes
}

// RowsHash treats a two-column table as key/value pairs. Rows with fewer
// than two cells are ignored.
func (t Table) RowsHash() map[string]string {
	hash := make(map[string]string, len(t.rows))
	for _, row := range t.rows {
		if len(row.cells) >= 2 {
			hash[row.cells[0]] = row.cells[1]
		}
	}
	return hash
}

// All returns an iterator over all rows, header included.
func (t Table) All() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i, row := range t.rows {
			if !yield(i, row) {
				return
			}
		}
	}
}

// SkipHeader returns an iterator over data rows, indexed from 0.
//
//	for i, row := range table.SkipHeader() {
//	    fmt.Println(i, row.Get("name"))
//	}
func (t Table) SkipHeader() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i := 1; i < len(t.rows); i++ {
			if !yield(i-1, t.rows[i]) {
				return
			}
		}
	}
}

func clone(values []string) []string {
	cp := make([]string, len(values))
	copy(cp, values)
	return cp
}
