package testutil

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AwesomeAlexey/rowstore/internal/record"
)

func TestOracle_WindowBySampleColumns(t *testing.T) {
	o := NewOracle(t, SampleRows())

	got := o.Window(t, 1, 2, record.ColumnFieldB)
	require.Len(t, got, 2)
	assert.Equal(t, "2 ccc ###", got[0].String())
	assert.Equal(t, "1 aaa ddd", got[1].String())

	got = o.Window(t, 2, 10, record.ColumnFieldA)
	require.Len(t, got, 2)
	assert.Equal(t, "asd", got[0].FieldA())
	assert.Equal(t, "ccc", got[1].FieldA())
}

func TestOracle_EmptyWindows(t *testing.T) {
	o := NewOracle(t, SampleRows())

	assert.Empty(t, o.Window(t, 4, 1, record.ColumnID))
	assert.Empty(t, o.Window(t, 0, 1, record.ColumnID))
	assert.Empty(t, o.Window(t, 1, 0, record.ColumnID))
}

func TestUniqueRows_DistinctKeys(t *testing.T) {
	rows := UniqueRows(rand.New(rand.NewPCG(7, 8)), 500)

	seenA := map[string]bool{}
	seenB := map[string]bool{}
	for i, r := range rows {
		assert.Equal(t, record.ID(i+1), r.ID())
		assert.False(t, seenA[r.FieldA()], "duplicate field_a %q", r.FieldA())
		assert.False(t, seenB[r.FieldB()], "duplicate field_b %q", r.FieldB())
		seenA[r.FieldA()] = true
		seenB[r.FieldB()] = true
	}
}

func TestRandomRows_UsesAlphabet(t *testing.T) {
	rows := RandomRows(rand.New(rand.NewPCG(9, 10)), 100, "xy", 3)

	require.Len(t, rows, 100)
	for _, r := range rows {
		assert.Regexp(t, `^[xy]{1,3}$`, r.FieldA())
		assert.Regexp(t, `^[xy]{1,3}$`, r.FieldB())
	}
}
