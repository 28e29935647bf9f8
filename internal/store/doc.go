// Package store provides the in-memory row table.
//
// A [Table] is an ordered sequence of [record.Record] values plus an
// identifier [Counter], both guarded by a single mutex.
//
// # Critical Patterns
//
// Coarse lock, detached copies:
//   - Every operation that reads or mutates rows or the counter holds the
//     table lock for its whole critical section and releases it via defer.
//   - Nothing inside the table escapes the critical section. Reads return
//     record values or cloned slices, never views into the sequence.
//
// Store-assigned identity:
//   - Identifiers come only from the table's counter, allocated under the
//     same lock as the insert that uses them.
//   - The counter never wraps. Exhaustion is an ID_EXHAUSTED [Error] and
//     leaves the table unchanged.
//
// Total lookups:
//   - Missing identifiers and out of range positions return the sentinel
//     record. Empty or out of range selection windows return an empty slice.
//
// Ranked selection:
//   - [Table.SelectRange] partitions the sequence around the first requested
//     rank and sorts only the window. Rows outside the window are permuted as
//     a side effect; their order is unspecified after any selection.
//
// No operation blocks on anything other than the table lock, and the lock is
// not interruptible. Callers needing a consistent multi-step view coordinate
// externally.
package store
