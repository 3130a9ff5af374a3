package batch

import (
	"errors"
	"strconv"
)

// Sentinel errors for batch file parsing and validation.
var (
	// ErrUnsupportedFormat indicates a batch file extension other than
	// .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("unsupported batch file format")
	// ErrNoCharts indicates a batch file without any chart entries.
	ErrNoCharts = errors.New("batch file has no charts")
	// ErrMissingField indicates a required entry field (name, date) is empty.
	ErrMissingField = errors.New("required field missing")
	// ErrDuplicateName indicates two entries share the same name.
	ErrDuplicateName = errors.New("duplicate chart name")
	// ErrInvalidValue indicates a field whose value cannot be interpreted.
	ErrInvalidValue = errors.New("invalid value")
)

// ValidationError records a problem with one chart entry.
type ValidationError struct {
	Index int    // Position of the entry in the file, 0-based; -1 for defaults
	Name  string // Entry name, if any
	Field string
	Err   error
}

// Error returns a human-readable string including the entry context.
func (e *ValidationError) Error() string {
	where := "defaults"
	if e.Index >= 0 {
		where = "chart " + strconv.Itoa(e.Index+1)
	}
	if e.Name != "" {
		where += " (" + e.Name + ")"
	}
	if e.Field != "" {
		where += ": " + e.Field
	}
	return where + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
