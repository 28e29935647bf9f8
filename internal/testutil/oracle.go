package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/AwesomeAlexey/rowstore/internal/record"
)

// Oracle ranks records with SQLite's ORDER BY, independently of the
// selection package. It answers "which rows sit at ranks from..from+count-1"
// so selection tests have a reference that shares no code with the table.
//
// The database lives in memory and is closed when the test ends.
//
// Text columns use COLLATE BINARY (memcmp), which matches strings.Compare.
// Ties are broken by id so results are deterministic; tests with duplicate
// keys should compare key values rather than identifiers.
type Oracle struct {
	db *sql.DB
}

// NewOracle loads rows into a fresh in-memory SQLite database.
func NewOracle(t testing.TB, rows []record.Record) *Oracle {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "open sqlite")
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE rows (
		id      INTEGER NOT NULL,
		field_a TEXT    NOT NULL,
		field_b TEXT    NOT NULL
	)`)
	require.NoError(t, err, "create table")

	tx, err := db.Begin()
	require.NoError(t, err)
	stmt, err := tx.Prepare(`INSERT INTO rows (id, field_a, field_b) VALUES (?, ?, ?)`)
	require.NoError(t, err)
	for _, r := range rows {
		_, err := stmt.Exec(int64(r.ID()), r.FieldA(), r.FieldB())
		require.NoError(t, err)
	}
	require.NoError(t, stmt.Close())
	require.NoError(t, tx.Commit())

	return &Oracle{db: db}
}

// Window returns the rows at 1-based ranks from..from+count-1 under col.
func (o *Oracle) Window(t testing.TB, from, count int, col record.Column) []record.Record {
	t.Helper()

	out := []record.Record{}
	if from < 1 || count <= 0 {
		return out
	}

	query := fmt.Sprintf(
		`SELECT id, field_a, field_b FROM rows ORDER BY %s COLLATE BINARY, id LIMIT ? OFFSET ?`,
		orderColumn(t, col),
	)
	rows, err := o.db.Query(query, count, from-1)
	require.NoError(t, err)
	defer rows.Close()

	for rows.Next() {
		var (
			id     int64
			fa, fb string
		)
		require.NoError(t, rows.Scan(&id, &fa, &fb))
		out = append(out, record.New(record.ID(id), fa, fb))
	}
	require.NoError(t, rows.Err())
	return out
}

func orderColumn(t testing.TB, col record.Column) string {
	switch col {
	case record.ColumnID:
		return "id"
	case record.ColumnFieldA:
		return "field_a"
	case record.ColumnFieldB:
		return "field_b"
	}
	t.Fatalf("oracle: unknown column %v", col)
	return ""
}
