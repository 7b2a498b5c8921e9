package FVM1D

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration = errors.New("fvm1d: configuration error")
	ErrLinearSolve   = errors.New("fvm1d: linear solve failed")
	ErrSingular      = errors.New("fvm1d: zero pivot, matrix is singular")
	ErrNotConverged  = errors.New("fvm1d: iterative solve did not converge")
)

// ConfigurationError reports an under-specified mesh, a mismatched array length or an invalid scheme.
// Index is the volume index involved, or -1 when the error is not tied to a volume.
type ConfigurationError struct {
	Op     string
	Scheme string
	Index  int
	Msg    string
}

func NewConfigurationError(op, msg string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{
		Op:    op,
		Index: -1,
		Msg:   fmt.Sprintf(msg, args...),
	}
}

func (e *ConfigurationError) Error() string {
	s := "fvm1d: " + e.Op
	if len(e.Scheme) != 0 {
		s += " [" + e.Scheme + "]"
	}
	if e.Index >= 0 {
		s += fmt.Sprintf(" volume %d", e.Index)
	}
	return s + ": " + e.Msg
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// LinearSolveError wraps a failure of the external linear solve. Row is the
// unknown (0 based) where the failure was detected, or -1 if unknown.
type LinearSolveError struct {
	Solver string
	Row    int
	Err    error
}

func (e *LinearSolveError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("fvm1d: %s solve failed at row %d (volume %d): %v", e.Solver, e.Row, e.Row+1, e.Err)
	}
	return fmt.Sprintf("fvm1d: %s solve failed: %v", e.Solver, e.Err)
}

func (e *LinearSolveError) Unwrap() error { return e.Err }

func (e *LinearSolveError) Is(target error) bool { return target == ErrLinearSolve }
