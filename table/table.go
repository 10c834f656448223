// Package table implements a minimal, immutable, column-oriented table
// whose rows can be filtered with predicates.
package table

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/pkg/errors"
	"github.com/puppetlabs/are/predicate"
)

// Table represents a sequence of labeled columns of equal length.
// Tables are never modified; every operation returns a new Table.
type Table struct {
	// label => []interface{}, in insertion order
	columns *linkedhashmap.Map
	numRows int
}

// New returns an empty table.
func New() *Table {
	return &Table{
		columns: linkedhashmap.New(),
	}
}

// Values converts vs to a column.
func Values[T any](vs ...T) []interface{} {
	column := make([]interface{}, len(vs))
	for i, v := range vs {
		column[i] = v
	}
	return column
}

// WithColumn returns a copy of t with the given column. If t already has a
// column labeled label, then that column is replaced; otherwise the column
// is appended.
func (t *Table) WithColumn(label string, values []interface{}) (*Table, error) {
	_, hasLabel := t.columns.Get(label)
	// The first column determines the number of rows. A table whose only
	// column is being replaced can change its length.
	onlyColumn := hasLabel && t.columns.Size() == 1
	if t.columns.Size() > 0 && !onlyColumn && len(values) != t.numRows {
		return nil, errors.Errorf(
			"column %q has %v values, but the table has %v rows",
			label,
			len(values),
			t.numRows,
		)
	}

	copied := make([]interface{}, len(values))
	copy(copied, values)

	nt := t.shallowCopy()
	nt.columns.Put(label, copied)
	nt.numRows = len(values)
	return nt, nil
}

// Labels returns t's column labels in order.
func (t *Table) Labels() []string {
	labels := make([]string, 0, t.columns.Size())
	for _, k := range t.columns.Keys() {
		labels = append(labels, k.(string))
	}
	return labels
}

// NumRows returns the number of rows in t.
func (t *Table) NumRows() int {
	return t.numRows
}

// NumColumns returns the number of columns in t.
func (t *Table) NumColumns() int {
	return t.columns.Size()
}

// Column returns a copy of the column labeled label.
func (t *Table) Column(label string) ([]interface{}, bool) {
	column, ok := t.column(label)
	if !ok {
		return nil, false
	}
	copied := make([]interface{}, len(column))
	copy(copied, column)
	return copied, true
}

// Row returns the i'th row of t. It panics if i is out of range.
func (t *Table) Row(i int) []interface{} {
	if i < 0 || i >= t.numRows {
		panic(errors.Errorf("table.Row: row %v is out of range [0, %v)", i, t.numRows))
	}
	row := make([]interface{}, 0, t.columns.Size())
	it := t.columns.Iterator()
	for it.Next() {
		row = append(row, it.Value().([]interface{})[i])
	}
	return row
}

// Rows returns all of t's rows.
func (t *Table) Rows() [][]interface{} {
	rows := make([][]interface{}, t.numRows)
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// Take returns a table with the rows of t at the given indices, in the
// given order. It panics if an index is out of range.
func (t *Table) Take(rows []int) *Table {
	nt := &Table{
		columns: linkedhashmap.New(),
		numRows: len(rows),
	}
	it := t.columns.Iterator()
	for it.Next() {
		column := it.Value().([]interface{})
		taken := make([]interface{}, len(rows))
		for i, row := range rows {
			if row < 0 || row >= t.numRows {
				panic(errors.Errorf("table.Take: row %v is out of range [0, %v)", row, t.numRows))
			}
			taken[i] = column[row]
		}
		nt.columns.Put(it.Key(), taken)
	}
	return nt
}

// Where returns a table with the rows of t whose value in the column
// labeled label satisfies c. c is checked once per row, in row order.
// Where fails if there is no such column, or if c cannot be evaluated on
// one of the column's values.
func (t *Table) Where(label string, c predicate.Condition) (*Table, error) {
	column, ok := t.column(label)
	if !ok {
		return nil, errors.Errorf("no column labeled %q", label)
	}
	var rows []int
	for i, v := range column {
		satisfied, err := c.Check(v)
		if err != nil {
			return nil, errors.Wrapf(err, "row %v of column %q", i, label)
		}
		if satisfied {
			rows = append(rows, i)
		}
	}
	return t.Take(rows), nil
}

func (t *Table) column(label string) ([]interface{}, bool) {
	column, ok := t.columns.Get(label)
	if !ok {
		return nil, false
	}
	return column.([]interface{}), true
}

// shallowCopy copies t's column index. The columns themselves are shared,
// which is safe because they are never modified.
func (t *Table) shallowCopy() *Table {
	nt := &Table{
		columns: linkedhashmap.New(),
		numRows: t.numRows,
	}
	it := t.columns.Iterator()
	for it.Next() {
		nt.columns.Put(it.Key(), it.Value())
	}
	return nt
}
