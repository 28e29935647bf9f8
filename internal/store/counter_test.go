package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AwesomeAlexey/rowstore/internal/record"
)

func TestCounter_StartsAtZero(t *testing.T) {
	c := NewCounter()
	assert.Equal(t, record.ID(0), c.Current())
}

func TestCounter_NextIncrementsMonotonically(t *testing.T) {
	c := NewCounter()

	for want := record.ID(1); want <= 5; want++ {
		got, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, record.ID(5), c.Current())
}

func TestCounter_NewCounterAt(t *testing.T) {
	c := NewCounterAt(41)

	id, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, record.ID(42), id)
}

func TestCounter_ExhaustionDoesNotWrap(t *testing.T) {
	c := NewCounterAt(record.MaxID - 1)

	id, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, record.MaxID, id)

	for range 3 {
		id, err = c.Next()
		require.Error(t, err)
		assert.True(t, IsExhaustedError(err))
		assert.Equal(t, record.ID(0), id)
		assert.Equal(t, record.MaxID, c.Current(), "counter must stay at max")
	}
}

func TestCounter_AdvanceToNeverMovesBackwards(t *testing.T) {
	c := NewCounter()

	c.AdvanceTo(10)
	assert.Equal(t, record.ID(10), c.Current())

	c.AdvanceTo(3)
	assert.Equal(t, record.ID(10), c.Current())

	id, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, record.ID(11), id)
}
