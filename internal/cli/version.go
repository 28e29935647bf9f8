package cli

import (
	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"
)

var version = semver.Version{Minor: 1, PreRelease: "alpha", Build: semver.Commit()}

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "version",
		Short:         "Print the rowstore version",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.formatter(cmd.OutOrStdout()).Success(version.String())
		},
	}

	return cmd
}
