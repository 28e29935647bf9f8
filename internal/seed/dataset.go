// Package seed loads the YAML datasets used to populate tables.
//
// A dataset names a table and lists its rows. Loading is strict: unknown keys
// are rejected, the document is validated against an embedded CUE schema and
// every text value is normalised to Unicode NFC so that byte-wise ordering is
// stable across input encodings.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/AwesomeAlexey/rowstore/internal/store"
)

//go:embed demo.yaml
var demoYAML []byte

// Dataset is a named list of rows.
type Dataset struct {
	// Name becomes the table name when the dataset is built.
	Name string `yaml:"name" json:"name"`

	// Description is free text shown by the CLI.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Rows are appended in order. Identifiers are assigned by the table.
	Rows []Row `yaml:"rows" json:"rows"`
}

// Row holds the two text fields of a record.
type Row struct {
	FieldA string `yaml:"field_a" json:"field_a"`
	FieldB string `yaml:"field_b" json:"field_b"`
}

// Parse decodes and validates a dataset document.
func Parse(data []byte) (*Dataset, error) {
	var d Dataset
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: empty document")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if d.Rows == nil {
		d.Rows = []Row{}
	}

	if err := validate(&d); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}

	d.normalize()
	return &d, nil
}

// Load reads and parses the dataset at path on fsys.
func Load(fsys afero.Fs, path string) (*Dataset, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Default returns the embedded demonstration dataset.
func Default() *Dataset {
	d, err := Parse(demoYAML)
	if err != nil {
		panic(fmt.Sprintf("seed: embedded demo dataset is invalid: %v", err))
	}
	return d
}

// Build creates a table named after the dataset and appends every row.
// Options are applied after the dataset name, so WithName overrides it.
func (d *Dataset) Build(opts ...store.Option) (*store.Table, error) {
	t := store.New(append([]store.Option{store.WithName(d.Name)}, opts...)...)
	for i, row := range d.Rows {
		if _, err := t.Append(row.FieldA, row.FieldB); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return t, nil
}

func (d *Dataset) normalize() {
	d.Name = norm.NFC.String(d.Name)
	for i := range d.Rows {
		d.Rows[i].FieldA = norm.NFC.String(d.Rows[i].FieldA)
		d.Rows[i].FieldB = norm.NFC.String(d.Rows[i].FieldB)
	}
}
