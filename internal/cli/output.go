package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/AwesomeAlexey/rowstore/internal/record"
	"github.com/AwesomeAlexey/rowstore/internal/store"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Lookup or removal found nothing
	ExitCommandError = 2 // Command error (bad flags, unreadable dataset, store failure)
)

// Error codes reported in CLI responses.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeDataset     = "E002" // Dataset could not be loaded
	ErrCodeNotFound    = "E003" // No row matched
	ErrCodeInvalidArgs = "E004" // Invalid flag combination or value
	ErrCodeStore       = "E005" // Store operation failed
)

// ExitError carries the process exit status of a failed command.
//
// Commands report the failure on stdout through OutputFormatter first, then
// return an ExitError so Execute can exit without printing it again.
type ExitError struct {
	Code    int    // ExitFailure for a missing row, ExitCommandError otherwise
	Message string // "<error code>: <summary>", e.g. "E003: no row with id 4"
	Err     error  // cause, such as a store.Error or a dataset parse error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError returns an ExitError without a cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError returns an ExitError caused by err.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps a command error to a process exit status. Errors that did
// not come from a command (cobra flag parsing, unknown subcommands) exit with
// ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter renders command results as text, JSON or a table.
type OutputFormatter struct {
	Format  string
	Writer  io.Writer
	Verbose bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E002", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Section is a titled list of rows.
type Section struct {
	Title string          `json:"title"`
	Rows  []record.Record `json:"rows"`
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Record outputs a single row. The sentinel renders as an empty line in
// text format and as null in JSON.
func (f *OutputFormatter) Record(title string, r record.Record) error {
	switch f.Format {
	case "json":
		return f.Success(r)
	case "table":
		renderTable(f.Writer, title, []record.Record{r})
		return nil
	default:
		_, err := fmt.Fprintln(f.Writer, r.String())
		return err
	}
}

// Sections outputs one or more row lists. Text format separates sections
// with an empty line and renders rows verbatim.
func (f *OutputFormatter) Sections(sections ...Section) error {
	switch f.Format {
	case "json":
		if len(sections) == 1 {
			return f.Success(sections[0])
		}
		return f.Success(sections)
	case "table":
		for i, s := range sections {
			if i > 0 {
				fmt.Fprintln(f.Writer)
			}
			renderTable(f.Writer, s.Title, s.Rows)
		}
		return nil
	default:
		for i, s := range sections {
			if i > 0 {
				if _, err := fmt.Fprintln(f.Writer); err != nil {
					return err
				}
			}
			if _, err := store.WriteRows(f.Writer, s.Rows); err != nil {
				return err
			}
		}
		return nil
	}
}

func renderTable(w io.Writer, title string, rows []record.Record) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	if title != "" {
		tw.SetTitle(title)
	}
	tw.AppendHeader(table.Row{"ID", "FIELD_A", "FIELD_B"})
	for _, r := range rows {
		if !r.Valid() {
			tw.AppendRow(table.Row{"", "", ""})
			continue
		}
		tw.AppendRow(table.Row{r.ID(), r.FieldA(), r.FieldB()})
	}
	tw.Render()
}
