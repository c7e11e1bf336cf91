package production

import (
	"errors"
	"fmt"
)

var (
	// ErrParse matches every error caused by a field that is not well-formed
	// numeric text.
	ErrParse = errors.New("production: parse error")

	// ErrShape matches every error caused by a dimension mismatch between the
	// objective, the constraint matrix and the right-hand side.
	ErrShape = errors.New("production: shape error")
)

// Field names the input a problem was read from.
type Field string

const (
	FieldObjective Field = "objective"
	FieldMatrix    Field = "constraint matrix"
	FieldRHS       Field = "rhs"
	FieldFile      Field = "problem file"
)

// InputError describes why a problem could not be built. It matches ErrParse
// or ErrShape under errors.Is, depending on Kind.
type InputError struct {
	Kind  Status // StatusParseError or StatusShapeError
	Field Field
	Row   int // 1-based constraint row, 0 when the error is not tied to a row
	Msg   string
}

func (e *InputError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s row %d: %s", e.Field, e.Row, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// Is reports whether target is the sentinel for e's kind.
func (e *InputError) Is(target error) bool {
	switch target {
	case ErrParse:
		return e.Kind == StatusParseError
	case ErrShape:
		return e.Kind == StatusShapeError
	}
	return false
}

func parseError(field Field, row int, format string, args ...any) error {
	return &InputError{Kind: StatusParseError, Field: field, Row: row, Msg: fmt.Sprintf(format, args...)}
}

func shapeError(field Field, row int, format string, args ...any) error {
	return &InputError{Kind: StatusShapeError, Field: field, Row: row, Msg: fmt.Sprintf(format, args...)}
}

// StatusOf classifies err. Errors that are neither parse nor shape errors
// classify as StatusSolverError; a nil error classifies as StatusUnknown.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusUnknown
	case errors.Is(err, ErrParse):
		return StatusParseError
	case errors.Is(err, ErrShape):
		return StatusShapeError
	default:
		return StatusSolverError
	}
}
