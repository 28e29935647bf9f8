package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AwesomeAlexey/rowstore/internal/testutil"
)

func TestInsertCommand_AtFront(t *testing.T) {
	out, err := run(NewInsertCommand(testOptions(t, "text")), "--at", "0", "--field-a", "xyz", "--field-b", "abc")
	require.NoError(t, err)

	testutil.AssertGolden(t, "insert_front", []byte(out))
}

func TestInsertCommand_AppendsByDefault(t *testing.T) {
	opts := testOptions(t, "text")
	opts.Dataset = "/sample.yaml"

	out, err := run(NewInsertCommand(opts), "--field-a", "Col 1", "--field-b", "Cooolllll 22222")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "4 Col 1 Cooolllll 22222", lines[3])
}

func TestInsertCommand_PositionOutOfRange(t *testing.T) {
	opts := testOptions(t, "text")
	opts.Dataset = "/sample.yaml"

	out, err := run(NewInsertCommand(opts), "--at", "4", "--field-a", "x", "--field-b", "y")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E004]")
	assert.Contains(t, err.Error(), "POSITION_OUT_OF_RANGE")
}

func TestInsertCommand_AtEnd(t *testing.T) {
	opts := testOptions(t, "text")
	opts.Dataset = "/sample.yaml"

	out, err := run(NewInsertCommand(opts), "--at", "3", "--field-a", "x", "--field-b", "y")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "4 x y\n"))
}
