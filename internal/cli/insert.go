package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AwesomeAlexey/rowstore/internal/record"
	"github.com/AwesomeAlexey/rowstore/internal/store"
)

// InsertOptions holds flags for the insert command.
type InsertOptions struct {
	*RootOptions
	At     int
	FieldA string
	FieldB string
}

// NewInsertCommand creates the insert command.
func NewInsertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InsertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Insert a row and print the resulting table",
		Long: `Insert a row and print the resulting table.

Without --at the row is appended. With --at it is inserted at that 0-based
position; positions outside [0, rows] are rejected. The identifier is always
assigned by the table.

Example:
  rowstore insert --at 0 --field-a xyz --field-b abc`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsert(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.At, "at", 0, "insert position (0-based); default appends")
	cmd.Flags().StringVar(&opts.FieldA, "field-a", "", "first text field")
	cmd.Flags().StringVar(&opts.FieldB, "field-b", "", "second text field")

	return cmd
}

func runInsert(opts *InsertOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd.OutOrStdout())

	t, err := opts.buildTable(formatter)
	if err != nil {
		return err
	}

	var id record.ID
	if cmd.Flags().Changed("at") {
		id, err = t.InsertAt(record.FromFields(opts.FieldA, opts.FieldB), opts.At)
	} else {
		id, err = t.Append(opts.FieldA, opts.FieldB)
	}
	if err != nil {
		if store.IsPositionError(err) {
			return outputError(formatter, ExitCommandError, ErrCodeInvalidArgs, "invalid --at", err)
		}
		return outputError(formatter, ExitCommandError, ErrCodeStore, "insert failed", err)
	}

	return formatter.Sections(Section{
		Title: fmt.Sprintf("inserted id=%d", id),
		Rows:  t.Rows(),
	})
}
