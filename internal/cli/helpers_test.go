package cli

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const sampleDataset = `name: sample
description: reference rows
rows:
  - field_a: aaa
    field_b: ddd
  - field_a: ccc
    field_b: "###"
  - field_a: asd
    field_b: dsaasd
`

// testOptions returns options with a quiet logger and an in-memory
// filesystem holding /sample.yaml. Dataset is left empty, selecting the
// embedded demo.
func testOptions(t *testing.T, format string) *RootOptions {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/sample.yaml", []byte(sampleDataset), 0o644))
	return &RootOptions{
		Format: format,
		Fs:     fs,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// run executes cmd with args and returns stdout and the command error.
func run(cmd *cobra.Command, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
