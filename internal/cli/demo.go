package cli

import (
	"github.com/spf13/cobra"

	"github.com/AwesomeAlexey/rowstore/internal/record"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through selection on the dataset",
		Long: `Walk through selection on the dataset.

Prints, separated by empty lines:
  1. the table as loaded
  2. ranks 1-6 by field_b
  3. ranks 5-54 by field_a (clamped to the table)
  4. the table afterwards, showing the partial reordering
  5. the row at position 1
  6. the row at position 100 (empty when out of range)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(rootOpts, cmd)
		},
	}

	return cmd
}

func runDemo(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd.OutOrStdout())

	t, err := opts.buildTable(formatter)
	if err != nil {
		return err
	}

	loaded := t.Rows()
	byFieldB := t.SelectRange(1, 6, record.ColumnFieldB)
	byFieldA := t.SelectRange(5, 50, record.ColumnFieldA)
	after := t.Rows()

	return formatter.Sections(
		Section{Title: "table " + t.Name(), Rows: loaded},
		Section{Title: "select from=1 count=6 column=field_b", Rows: byFieldB},
		Section{Title: "select from=5 count=50 column=field_a", Rows: byFieldA},
		Section{Title: "table after selection", Rows: after},
		Section{Title: "position 1", Rows: []record.Record{t.GetByPosition(1)}},
		Section{Title: "position 100", Rows: []record.Record{t.GetByPosition(100)}},
	)
}
