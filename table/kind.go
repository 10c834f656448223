package table

import (
	"time"

	"github.com/pkg/errors"
)

// Kind represents the kind of values held by a column.
type Kind int

// These are the column kinds.
const (
	Number Kind = iota
	Text
	Time
	// Empty is the kind of a column without values. Any predicate
	// applies to it.
	Empty
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Text:
		return "text"
	case Time:
		return "time"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// Kind returns the kind of the column labeled label. The values of a
// non-empty column must be all float64s, all strings or all time.Times.
func (t *Table) Kind(label string) (Kind, error) {
	column, ok := t.column(label)
	if !ok {
		return 0, errors.Errorf("no column labeled %q", label)
	}
	if len(column) == 0 {
		return Empty, nil
	}
	kindOf := func(v interface{}) (Kind, bool) {
		switch v.(type) {
		case float64:
			return Number, true
		case string:
			return Text, true
		case time.Time:
			return Time, true
		default:
			return 0, false
		}
	}
	kind, ok := kindOf(column[0])
	if !ok {
		return 0, errors.Errorf("column %q: %v (%T) is neither a number, text nor a time", label, column[0], column[0])
	}
	for i, v := range column[1:] {
		if k, ok := kindOf(v); !ok || k != kind {
			return 0, errors.Errorf("column %q: row %v (%v) is not %v like row 0", label, i+1, v, kind)
		}
	}
	return kind, nil
}
