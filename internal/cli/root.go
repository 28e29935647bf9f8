// Package cli implements the rowstore command tree.
//
// Every command builds a fresh table from a dataset (the embedded demo unless
// --dataset is given), runs one store operation against it and prints the
// result. Nothing is persisted between invocations.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/AwesomeAlexey/rowstore/internal/config"
	"github.com/AwesomeAlexey/rowstore/internal/seed"
	"github.com/AwesomeAlexey/rowstore/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "text" | "json" | "table"
	LogLevel string
	LogColor string // "auto" | "always" | "never"
	Dataset  string // path to a dataset YAML file; empty selects the embedded demo

	// Fs is the filesystem datasets are read from. Nil means the OS filesystem.
	Fs afero.Fs

	// Logger receives store diagnostics. Set by the root command from config.
	Logger *slog.Logger
}

// NewRootCommand creates the root command for the rowstore CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rowstore",
		Short: "rowstore - in-memory row table",
		Long: `An in-memory table of (id, field_a, field_b) rows.

Each command loads a dataset into a fresh table, runs one operation and
prints the result. Settings may also be given as ROWSTORE_* environment
variables (ROWSTORE_FORMAT, ROWSTORE_LOG_LEVEL, ROWSTORE_LOG_COLOR,
ROWSTORE_DATASET); flags take precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (forces debug logging)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", config.DefaultFormat, "output format (text|json|table)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogColor, "log-color", config.DefaultLogColor, "colour log output (auto|always|never)")
	cmd.PersistentFlags().StringVar(&opts.Dataset, "dataset", "", "dataset YAML file (default: embedded demo)")

	// Add subcommands
	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewSelectCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewInsertCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// Execute runs the root command with os.Args and returns the process exit code.
func Execute() int {
	return executeCommand(NewRootCommand())
}

// executeCommand runs cmd and maps its error to an exit code. ExitErrors have
// already been reported on stdout by the failing command. Anything else
// (flag parsing, unknown commands) is reported on stderr as ErrCodeGeneric.
func executeCommand(cmd *cobra.Command) int {
	err := cmd.Execute()
	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) {
		f := &OutputFormatter{Format: "text", Writer: cmd.ErrOrStderr()}
		_ = f.Error(ErrCodeGeneric, err.Error(), nil)
	}
	return GetExitCode(err)
}

// resolve merges flags, environment and defaults into opts and installs the
// logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	o.Verbose = cfg.Verbose
	o.Format = cfg.Format
	o.LogColor = cfg.LogColor
	o.LogLevel = cfg.LogLevel.String()
	o.Dataset = cfg.Dataset
	o.Logger = NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogColor)
	return nil
}

func (o *RootOptions) formatter(w io.Writer) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: w, Verbose: o.Verbose}
}

func (o *RootOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o *RootOptions) loadDataset(f *OutputFormatter) (*seed.Dataset, error) {
	if o.Dataset == "" {
		return seed.Default(), nil
	}
	fsys := o.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	d, err := seed.Load(fsys, o.Dataset)
	if err != nil {
		return nil, outputError(f, ExitCommandError, ErrCodeDataset, "loading dataset", err)
	}
	return d, nil
}

// buildTable loads the configured dataset into a new table.
func (o *RootOptions) buildTable(f *OutputFormatter) (*store.Table, error) {
	d, err := o.loadDataset(f)
	if err != nil {
		return nil, err
	}
	o.logger().Debug("building table", "dataset", d.Name, "rows", len(d.Rows))
	t, err := d.Build(store.WithLogger(o.logger()))
	if err != nil {
		return nil, outputError(f, ExitCommandError, ErrCodeStore, "building table", err)
	}
	return t, nil
}

// outputError reports a failure through f and returns it with exitCode.
func outputError(f *OutputFormatter, exitCode int, code, message string, err error) error {
	var details any
	if err != nil {
		details = err.Error()
	}
	_ = f.Error(code, message, details)
	summary := fmt.Sprintf("%s: %s", code, message)
	if err == nil {
		return NewExitError(exitCode, summary)
	}
	return WrapExitError(exitCode, summary, err)
}
