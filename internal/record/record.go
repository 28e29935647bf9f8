// Package record defines the fixed-shape row stored by a table.
//
// A Record is a small immutable value: an identifier plus two text fields.
// The zero value is the sentinel returned for "not found" lookups; it is not
// valid and renders as an empty string.
package record

import (
	"encoding/json"
	"math"
	"strconv"
)

// ID identifies a record within one table.
//
// IDs are assigned by the owning table from a monotonic counter. Zero is
// never assigned and marks records that have not been stored yet.
type ID uint32

// MaxID is the largest identifier a table can hand out.
const MaxID = ID(math.MaxUint32)

// String returns the decimal form of the ID.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Record is one row: an identifier and two text fields.
//
// Records are passed by value. A copy never aliases the table it came from.
type Record struct {
	id     ID
	fieldA string
	fieldB string
	valid  bool
}

// New returns a valid record with the given values.
// The text fields are accepted as-is, including empty strings.
func New(id ID, fieldA, fieldB string) Record {
	return Record{id: id, fieldA: fieldA, fieldB: fieldB, valid: true}
}

// FromFields returns a valid record without an identifier.
// Tables overwrite the identifier when the record is stored.
func FromFields(fieldA, fieldB string) Record {
	return New(0, fieldA, fieldB)
}

// Sentinel returns the invalid record used to signal "no row found".
// It is identical to the zero value.
func Sentinel() Record {
	return Record{}
}

// WithID returns a copy of r carrying id.
func (r Record) WithID(id ID) Record {
	r.id = id
	return r
}

// ID returns the record identifier.
func (r Record) ID() ID { return r.id }

// FieldA returns the first text field.
func (r Record) FieldA() string { return r.fieldA }

// FieldB returns the second text field.
func (r Record) FieldB() string { return r.fieldB }

// Valid reports whether r is a real row rather than the sentinel.
func (r Record) Valid() bool { return r.valid }

// String renders r as "<id> <field_a> <field_b>".
// The sentinel renders as an empty string.
func (r Record) String() string {
	if !r.valid {
		return ""
	}
	return r.id.String() + " " + r.fieldA + " " + r.fieldB
}

// jsonRecord is the wire shape used by MarshalJSON.
type jsonRecord struct {
	ID     ID     `json:"id"`
	FieldA string `json:"field_a"`
	FieldB string `json:"field_b"`
}

// MarshalJSON implements json.Marshaler.
// The sentinel is marshaled as null.
func (r Record) MarshalJSON() ([]byte, error) {
	if !r.valid {
		return []byte("null"), nil
	}
	return json.Marshal(jsonRecord{ID: r.id, FieldA: r.fieldA, FieldB: r.fieldB})
}
