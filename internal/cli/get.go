package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AwesomeAlexey/rowstore/internal/record"
)

// GetOptions holds flags for the get command.
type GetOptions struct {
	*RootOptions
	ID  uint32
	Pos int
}

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print one row by identifier or position",
		Long: `Print one row by identifier (--id) or 0-based position (--pos).

A missing row prints as an empty line (null in JSON). Out-of-range positions
are also reported as a warning in the log.

Example:
  rowstore get --pos 1`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(opts, cmd)
		},
	}

	cmd.Flags().Uint32Var(&opts.ID, "id", 0, "row identifier")
	cmd.Flags().IntVar(&opts.Pos, "pos", 0, "row position (0-based)")
	cmd.MarkFlagsMutuallyExclusive("id", "pos")
	cmd.MarkFlagsOneRequired("id", "pos")

	return cmd
}

func runGet(opts *GetOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd.OutOrStdout())

	t, err := opts.buildTable(formatter)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("id") {
		id := record.ID(opts.ID)
		return formatter.Record(fmt.Sprintf("id %d", id), t.GetByID(id))
	}
	return formatter.Record(fmt.Sprintf("position %d", opts.Pos), t.GetByPosition(opts.Pos))
}
