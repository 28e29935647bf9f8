// Package testutil holds helpers shared by the package tests: random row
// generators, an SQLite ordering oracle and golden-file assertions.
package testutil

import (
	"fmt"
	"math/rand/v2"

	"github.com/AwesomeAlexey/rowstore/internal/record"
)

// SampleRows returns the three rows of the reference scenario:
// (1,"aaa","ddd"), (2,"ccc","###"), (3,"asd","dsaasd").
func SampleRows() []record.Record {
	return []record.Record{
		record.New(1, "aaa", "ddd"),
		record.New(2, "ccc", "###"),
		record.New(3, "asd", "dsaasd"),
	}
}

// UniqueRows returns n rows with identifiers 1..n whose field_a and field_b
// values are pairwise distinct and shuffled independently, so every column
// induces a strict total order.
func UniqueRows(rng *rand.Rand, n int) []record.Record {
	permA := rng.Perm(n)
	permB := rng.Perm(n)
	rows := make([]record.Record, n)
	for i := range rows {
		rows[i] = record.New(
			record.ID(i+1),
			fmt.Sprintf("a%06d", permA[i]),
			fmt.Sprintf("b%06d", permB[i]),
		)
	}
	return rows
}

// RandomRows returns n rows with identifiers 1..n and short text fields drawn
// from alphabet. Small alphabets produce many duplicate keys.
func RandomRows(rng *rand.Rand, n int, alphabet string, width int) []record.Record {
	rows := make([]record.Record, n)
	for i := range rows {
		rows[i] = record.New(
			record.ID(i+1),
			randomString(rng, alphabet, width),
			randomString(rng, alphabet, width),
		)
	}
	return rows
}

func randomString(rng *rand.Rand, alphabet string, width int) string {
	b := make([]byte, rng.IntN(width)+1)
	for i := range b {
		b[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return string(b)
}
