package merge

import (
	"errors"
	"fmt"

	"github.com/dasnellings/mergeTables/table"
)

// ErrDeclinedOverwrite is matched by errors.Is when the user chose not to replace an existing output file.
var ErrDeclinedOverwrite = errors.New("overwrite declined")

// FileOpenError is returned when an input cannot be read or the output cannot be written.
type FileOpenError = table.FileOpenError

// UsageError indicates missing or malformed arguments.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// DeclinedOverwriteError names the input that was skipped because its output already exists.
type DeclinedOverwriteError struct {
	Input  string
	Output string
}

func (e *DeclinedOverwriteError) Error() string {
	return fmt.Sprintf("Skipping file '%s'", e.Input)
}

func (e *DeclinedOverwriteError) Unwrap() error { return ErrDeclinedOverwrite }
