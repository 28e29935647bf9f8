package store

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/AwesomeAlexey/rowstore/internal/record"
	"github.com/AwesomeAlexey/rowstore/internal/selection"
)

// Table is an in-memory, ordered sequence of records guarded by one mutex.
//
// The sequence keeps insertion order except where SelectRange reorders it.
// The identifier counter and the sequence are protected by the same lock, so
// allocation and insertion are atomic with respect to every other operation.
//
// Thread-safety: all methods are safe for concurrent use.
type Table struct {
	mu   sync.Mutex
	rows []record.Record
	ids  *Counter

	name   string
	logger *slog.Logger
}

// Option configures a Table.
type Option func(*Table)

// WithLogger sets the logger used for diagnostics.
// Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithName sets the table name reported in logs and errors.
// Default: a fresh UUIDv7.
func WithName(name string) Option {
	return func(t *Table) {
		t.name = name
	}
}

// WithCounterAt starts identifier allocation after id.
//
// Use WithCounterAt(record.MaxID) to exercise identifier exhaustion.
func WithCounterAt(id record.ID) Option {
	return func(t *Table) {
		t.ids = NewCounterAt(id)
	}
}

// New creates an empty table with the identifier counter at 0.
func New(opts ...Option) *Table {
	t := &Table{
		rows: []record.Record{},
		ids:  NewCounter(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.name == "" {
		t.name = uuid.Must(uuid.NewV7()).String()
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	t.logger = t.logger.With("table", t.name)
	return t
}

// NewFromRows creates a table holding a copy of rows.
//
// Rows are neither validated nor renumbered. The identifier counter is
// advanced to the largest identifier present so later inserts never reuse
// an identifier already in the table.
func NewFromRows(rows []record.Record, opts ...Option) *Table {
	t := New(opts...)
	t.rows = slices.Clone(rows)
	if t.rows == nil {
		t.rows = []record.Record{}
	}
	for _, r := range t.rows {
		t.ids.AdvanceTo(r.ID())
	}
	return t
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of rows.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}

// LastID returns the most recently allocated identifier, or 0.
func (t *Table) LastID() record.ID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ids.Current()
}

// Rows returns a copy of all rows in current sequence order.
func (t *Table) Rows() []record.Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.rows)
}

// AllocateID reserves the next identifier without storing a row.
func (t *Table) AllocateID() (record.ID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.allocateLocked()
}

// allocateLocked must be called with t.mu held.
func (t *Table) allocateLocked() (record.ID, error) {
	id, err := t.ids.Next()
	if err != nil {
		var se *Error
		if errors.As(err, &se) {
			se.withTable(t.name)
		}
		return 0, err
	}
	return id, nil
}

// Append stores a new row built from the two fields at the end of the table
// and returns its identifier.
//
// The only failure is identifier exhaustion, in which case the table is left
// unchanged.
func (t *Table) Append(fieldA, fieldB string) (record.ID, error) {
	return t.AppendRow(record.FromFields(fieldA, fieldB))
}

// AppendRow stores r at the end of the table under a freshly allocated
// identifier. Any identifier already set on r is discarded.
func (t *Table) AppendRow(r record.Record) (record.ID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id, err := t.allocateLocked()
	if err != nil {
		t.logger.Error("append failed", "error", err)
		return 0, err
	}
	t.rows = append(t.rows, r.WithID(id))
	return id, nil
}

// InsertAt stores r at position pos (0-based) under a freshly allocated
// identifier, shifting later rows back by one. Inserting at Len() appends.
//
// A position outside [0, Len()] fails with POSITION_OUT_OF_RANGE before any
// identifier is consumed.
func (t *Table) InsertAt(r record.Record, pos int) (record.ID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if pos < 0 || pos > len(t.rows) {
		err := newPositionError(pos, len(t.rows)).withTable(t.name)
		t.logger.Error("insert failed", "error", err)
		return 0, err
	}
	id, err := t.allocateLocked()
	if err != nil {
		t.logger.Error("insert failed", "position", pos, "error", err)
		return 0, err
	}
	t.rows = slices.Insert(t.rows, pos, r.WithID(id))
	return id, nil
}

// RemoveByID deletes the first row carrying id.
// Returns false if no row matches.
func (t *Table) RemoveByID(id record.ID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexLocked(id)
	if i < 0 {
		t.logger.Debug("remove: no such row", "id", id)
		return false
	}
	t.rows = slices.Delete(t.rows, i, i+1)
	return true
}

// GetByID returns a copy of the first row carrying id, or the sentinel
// record if there is none.
func (t *Table) GetByID(id record.ID) record.Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	if i := t.indexLocked(id); i >= 0 {
		return t.rows[i]
	}
	return record.Sentinel()
}

// indexLocked must be called with t.mu held.
func (t *Table) indexLocked(id record.ID) int {
	return slices.IndexFunc(t.rows, func(r record.Record) bool {
		return r.ID() == id
	})
}

// GetByPosition returns a copy of the row at index (0-based).
//
// An out of range index logs a warning and returns the sentinel record.
func (t *Table) GetByPosition(index int) record.Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	if index < 0 || index >= len(t.rows) {
		t.logger.Warn("position out of range", "index", index, "len", len(t.rows))
		return record.Sentinel()
	}
	return t.rows[index]
}

// SelectRange returns the rows that would occupy ranks from..from+count-1
// (1-based) if the table were sorted by col, in that order.
//
// The table is not fully sorted. Rows are partitioned around rank from and
// only the window is ordered, so rows outside the window end up in an
// unspecified order. The returned slice is a detached copy.
//
// The window is clamped to the end of the table. from < 1, from beyond the
// table, count <= 0 or an unknown column yield an empty result.
func (t *Table) SelectRange(from, count int, col record.Column) []record.Record {
	if !col.Valid() {
		t.logger.Warn("select: unknown column", "column", int(col))
		return []record.Record{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	lo, hi := selection.Window(t.rows, from, count, col.Compare)
	t.logger.Debug("select", "from", from, "count", count, "column", col, "rows", hi-lo)
	return slices.Clone(t.rows[lo:hi])
}

// String renders every row on its own line in current sequence order.
func (t *Table) String() string {
	var sb strings.Builder
	_, _ = t.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes the table rendering to w.
// It implements io.WriterTo.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	return WriteRows(w, t.Rows())
}

// WriteRows writes each row's rendering followed by a newline.
func WriteRows(w io.Writer, rows []record.Record) (int64, error) {
	var total int64
	for _, r := range rows {
		n, err := io.WriteString(w, r.String()+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
