package store

import "github.com/AwesomeAlexey/rowstore/internal/record"

// Counter hands out record identifiers in strictly increasing order.
//
// The first call to Next returns 1. The counter never wraps: once it reaches
// record.MaxID every further Next fails with an ID_EXHAUSTED error.
//
// Thread-safety: Counter is NOT safe for concurrent use on its own. A Table
// only touches its counter while holding the table lock, so allocation and
// insertion happen atomically together.
type Counter struct {
	last record.ID
}

// NewCounter creates a counter starting at 0.
func NewCounter() *Counter {
	return &Counter{}
}

// NewCounterAt creates a counter whose next identifier is start+1.
// Used to resume allocation past identifiers that already exist.
func NewCounterAt(start record.ID) *Counter {
	return &Counter{last: start}
}

// Next advances the counter and returns the new identifier.
func (c *Counter) Next() (record.ID, error) {
	if c.last == record.MaxID {
		return 0, newExhaustedError(c.last)
	}
	c.last++
	return c.last, nil
}

// Current returns the last identifier handed out, or the start value.
func (c *Counter) Current() record.ID {
	return c.last
}

// AdvanceTo moves the counter forward to id. It never moves backwards.
func (c *Counter) AdvanceTo(id record.ID) {
	if id > c.last {
		c.last = id
	}
}
