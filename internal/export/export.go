// Package export renders tabular back-office data as CSV or XLSX.
package export

// Table is a column layout plus the rows projected through it.
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]string
}

// Columns projects records of type T into a Table.
type Columns[T any] struct {
	Sheet   string
	Headers []string
	Row     func(T) []string
}

// Build projects items into a Table, one row per item.
func (c Columns[T]) Build(items []T) Table {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, c.Row(it))
	}
	return Table{Sheet: c.Sheet, Headers: c.Headers, Rows: rows}
}
