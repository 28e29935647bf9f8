package record

import (
	"cmp"
	"fmt"
	"strings"
)

// Column names one orderable attribute of a Record.
type Column int

const (
	// ColumnID orders records numerically by identifier.
	ColumnID Column = iota
	// ColumnFieldA orders records byte-wise by the first text field.
	ColumnFieldA
	// ColumnFieldB orders records byte-wise by the second text field.
	ColumnFieldB
)

// Columns lists every orderable column in declaration order.
var Columns = []Column{ColumnID, ColumnFieldA, ColumnFieldB}

// String returns the canonical column name.
func (c Column) String() string {
	switch c {
	case ColumnID:
		return "id"
	case ColumnFieldA:
		return "field_a"
	case ColumnFieldB:
		return "field_b"
	default:
		return fmt.Sprintf("Column(%d)", int(c))
	}
}

// Valid reports whether c names a known column.
func (c Column) Valid() bool {
	return c >= ColumnID && c <= ColumnFieldB
}

// Compare returns a negative number when a sorts before b under c, zero when
// they tie and a positive number otherwise. Ties are not broken further.
//
// Compare panics for an unknown column; callers validate with Valid first.
func (c Column) Compare(a, b Record) int {
	switch c {
	case ColumnID:
		return cmp.Compare(a.id, b.id)
	case ColumnFieldA:
		return strings.Compare(a.fieldA, b.fieldA)
	case ColumnFieldB:
		return strings.Compare(a.fieldB, b.fieldB)
	default:
		panic(fmt.Sprintf("record: compare on unknown column %d", int(c)))
	}
}

// ParseColumn maps a column name to its Column.
// Accepted names are "id", "field_a" (or "a") and "field_b" (or "b").
func ParseColumn(name string) (Column, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "id":
		return ColumnID, nil
	case "field_a", "a":
		return ColumnFieldA, nil
	case "field_b", "b":
		return ColumnFieldB, nil
	default:
		return 0, fmt.Errorf("unknown column %q: must be one of id, field_a, field_b", name)
	}
}
