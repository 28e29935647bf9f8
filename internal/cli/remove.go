package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AwesomeAlexey/rowstore/internal/record"
)

// RemoveOptions holds flags for the remove command.
type RemoveOptions struct {
	*RootOptions
	ID uint32
}

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RemoveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a row by identifier and print the resulting table",
		Long: `Remove the first row carrying --id and print the resulting table.

Exits with status 1 when no row matches.

Example:
  rowstore remove --id 2`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(opts, cmd)
		},
	}

	cmd.Flags().Uint32Var(&opts.ID, "id", 0, "row identifier")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func runRemove(opts *RemoveOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd.OutOrStdout())

	t, err := opts.buildTable(formatter)
	if err != nil {
		return err
	}

	id := record.ID(opts.ID)
	if !t.RemoveByID(id) {
		return outputError(formatter, ExitFailure, ErrCodeNotFound, fmt.Sprintf("no row with id %d", id), nil)
	}

	return formatter.Sections(Section{
		Title: fmt.Sprintf("removed id=%d", id),
		Rows:  t.Rows(),
	})
}
