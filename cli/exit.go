package cli

import (
	"errors"

	"github.com/refaktor/modinfogen/depcheck"
	"github.com/refaktor/modinfogen/modinfo"
)

// Exit codes.
const (
	ExitSuccess = 0
	// ExitGeneralError covers I/O and configuration errors.
	ExitGeneralError = 1
	// ExitUnknownKind indicates an annotation with an unknown kind.
	ExitUnknownKind = 2
	// ExitUnsatisfied indicates a dependency on a module that isn't
	// part of the run.
	ExitUnsatisfied = 3
	// ExitDuplicateModule indicates two input files with the same
	// module name.
	ExitDuplicateModule = 4
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code int
	Err  error
	// Printed is set if the error was already reported to the user.
	Printed bool
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return "exit status " + ExitCodeName(e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitUnknownKind:
		return "Unknown Annotation Kind"
	case ExitUnsatisfied:
		return "Unsatisfied Dependency"
	case ExitDuplicateModule:
		return "Duplicate Module"
	default:
		return "Unknown"
	}
}

// exitErrorFor wraps an error returned by [modinfogen.Run]. Unknown
// kinds and unsatisfied dependencies have already been reported by Run.
func exitErrorFor(err error) *ExitError {
	var (
		ukErr  *modinfo.UnknownKindError
		unsat  *depcheck.UnsatisfiedError
		dupErr *depcheck.DuplicateError
	)
	switch {
	case errors.As(err, &ukErr):
		return &ExitError{Code: ExitUnknownKind, Err: err, Printed: true}
	case errors.As(err, &unsat):
		return &ExitError{Code: ExitUnsatisfied, Err: err, Printed: true}
	case errors.As(err, &dupErr):
		return &ExitError{Code: ExitDuplicateModule, Err: err}
	default:
		return &ExitError{Code: ExitGeneralError, Err: err}
	}
}
