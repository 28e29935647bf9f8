package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumn_Compare(t *testing.T) {
	a := New(1, "aaa", "ddd")
	b := New(2, "ccc", "###")

	tests := []struct {
		col  Column
		want int
	}{
		{ColumnID, -1},
		{ColumnFieldA, -1},
		{ColumnFieldB, 1},
	}

	for _, tt := range tests {
		t.Run(tt.col.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, sign(tt.col.Compare(a, b)))
			assert.Equal(t, -tt.want, sign(tt.col.Compare(b, a)))
			assert.Equal(t, 0, tt.col.Compare(a, a))
		})
	}
}

func TestColumn_CompareIsByteWise(t *testing.T) {
	// Upper case sorts before lower case, '#' before letters.
	upper := New(1, "Zed", "#")
	lower := New(2, "abc", "a")

	assert.Negative(t, ColumnFieldA.Compare(upper, lower))
	assert.Negative(t, ColumnFieldB.Compare(upper, lower))
}

func TestColumn_CompareTiesAreNotBroken(t *testing.T) {
	a := New(1, "Col 1", "x")
	b := New(9, "Col 1", "y")

	assert.Equal(t, 0, ColumnFieldA.Compare(a, b))
}

func TestColumn_CompareUnknownPanics(t *testing.T) {
	assert.Panics(t, func() {
		Column(99).Compare(Sentinel(), Sentinel())
	})
}

func TestColumn_Valid(t *testing.T) {
	for _, c := range Columns {
		assert.True(t, c.Valid(), c.String())
	}
	assert.False(t, Column(-1).Valid())
	assert.False(t, Column(3).Valid())
	assert.Equal(t, "Column(3)", Column(3).String())
}

func TestParseColumn(t *testing.T) {
	tests := []struct {
		in      string
		want    Column
		wantErr bool
	}{
		{"id", ColumnID, false},
		{"ID", ColumnID, false},
		{"field_a", ColumnFieldA, false},
		{"a", ColumnFieldA, false},
		{" field_b ", ColumnFieldB, false},
		{"b", ColumnFieldB, false},
		{"column_3", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColumn(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
