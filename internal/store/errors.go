package store

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/AwesomeAlexey/rowstore/internal/record"
)

// Error is a failure reported by a Table operation.
//
// Only a handful of conditions are errors. Lookups that find nothing return
// the sentinel record and empty selections return an empty slice; neither
// produces an Error.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Table is the name of the table that failed, when known.
	Table string

	// Details contains additional context.
	Details map[string]string
}

// ErrorCode categorizes store errors.
type ErrorCode string

const (
	// ErrCodeIDExhausted indicates the identifier counter reached record.MaxID.
	ErrCodeIDExhausted ErrorCode = "ID_EXHAUSTED"

	// ErrCodePositionOutOfRange indicates an insert position outside [0, len].
	ErrCodePositionOutOfRange ErrorCode = "POSITION_OUT_OF_RANGE"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("%s: %s (table=%s)", e.Code, e.Message, e.Table)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsExhaustedError returns true if err reports identifier exhaustion.
// Uses errors.As to handle wrapped errors.
func IsExhaustedError(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == ErrCodeIDExhausted
	}
	return false
}

// IsPositionError returns true if err reports an insert position out of range.
func IsPositionError(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == ErrCodePositionOutOfRange
	}
	return false
}

func newExhaustedError(last record.ID) *Error {
	return &Error{
		Code:    ErrCodeIDExhausted,
		Message: "maximum identifier has been reached",
		Details: map[string]string{
			"last_id": last.String(),
		},
	}
}

func newPositionError(pos, length int) *Error {
	return &Error{
		Code:    ErrCodePositionOutOfRange,
		Message: fmt.Sprintf("position %d is outside [0, %d]", pos, length),
		Details: map[string]string{
			"position": strconv.Itoa(pos),
			"length":   strconv.Itoa(length),
		},
	}
}

// withTable stamps the table name on e and returns it.
func (e *Error) withTable(name string) *Error {
	e.Table = name
	return e
}
