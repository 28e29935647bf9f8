package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AwesomeAlexey/rowstore/internal/record"
)

func TestError_Message(t *testing.T) {
	err := newExhaustedError(record.MaxID)
	assert.Equal(t, "ID_EXHAUSTED: maximum identifier has been reached", err.Error())
	assert.Equal(t, "4294967295", err.Details["last_id"])

	err = newPositionError(7, 3).withTable("users")
	assert.Equal(t, "POSITION_OUT_OF_RANGE: position 7 is outside [0, 3] (table=users)", err.Error())
	assert.Equal(t, "7", err.Details["position"])
	assert.Equal(t, "3", err.Details["length"])
}

func TestIsExhaustedError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"direct", newExhaustedError(1), true},
		{"wrapped", fmt.Errorf("append: %w", newExhaustedError(1)), true},
		{"other code", newPositionError(1, 0), false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExhaustedError(tt.err))
		})
	}
}

func TestIsPositionError(t *testing.T) {
	assert.True(t, IsPositionError(newPositionError(-1, 0)))
	assert.True(t, IsPositionError(fmt.Errorf("insert: %w", newPositionError(5, 2))))
	assert.False(t, IsPositionError(newExhaustedError(0)))

	var se *Error
	require.ErrorAs(t, fmt.Errorf("x: %w", newPositionError(5, 2)), &se)
	assert.Equal(t, ErrCodePositionOutOfRange, se.Code)
}
