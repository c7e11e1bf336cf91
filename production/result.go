package production

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Status is the outcome of one solve request.
type Status int

const (
	// StatusUnknown is the zero value and never describes a finished request.
	StatusUnknown Status = iota
	// StatusOptimal means a bounded optimum was found.
	StatusOptimal
	// StatusInfeasible means no x ≥ 0 satisfies every constraint.
	StatusInfeasible
	// StatusUnbounded means the objective has no finite minimum.
	StatusUnbounded
	// StatusParseError means a field is not well-formed numeric text.
	StatusParseError
	// StatusShapeError means the fields disagree on dimensions.
	StatusShapeError
	// StatusSolverError means the simplex iterations broke down numerically.
	StatusSolverError
)

var statusNames = []string{
	"unknown", "optimal", "infeasible", "unbounded",
	"parse_error", "shape_error", "solver_error",
}

// String returns the snake_case name used in logs and JSON.
func (s Status) String() string {
	if int(s) >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("production: unknown status %q", text)
}

// DefaultPrecision is the number of decimals shown by Result.String.
const DefaultPrecision = 2

// Result is the outcome of one solve request. ObjectiveValue and
// VariableValues are set only when Status is StatusOptimal; Err is set only
// for parse, shape and solver errors. Values are never rounded; rounding
// happens in Format.
type Result struct {
	Status         Status
	ObjectiveValue float64
	VariableValues []float64
	Err            error
}

// HasSolution reports whether r carries an optimum.
func (r *Result) HasSolution() bool {
	return r.Status == StatusOptimal
}

// String formats r with DefaultPrecision decimals.
func (r *Result) String() string {
	return r.Format(DefaultPrecision)
}

// Format renders r as a single user-facing message.
func (r *Result) Format(precision int) string {
	switch r.Status {
	case StatusOptimal:
		return fmt.Sprintf("Optimal value: %s, variables: %s",
			FormatValue(r.ObjectiveValue, precision), FormatVector(r.VariableValues, precision))
	case StatusInfeasible:
		return "Infeasible: no non-negative production plan satisfies every constraint"
	case StatusUnbounded:
		return "Unbounded: the objective decreases without limit over the feasible region"
	case StatusParseError:
		return "Parse error: " + errMessage(r.Err)
	case StatusShapeError:
		return "Shape error: " + errMessage(r.Err)
	case StatusSolverError:
		return "Solver error: " + errMessage(r.Err)
	default:
		return "No result"
	}
}

func errMessage(err error) string {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Error()
	}
	if err == nil {
		return "unknown failure"
	}
	return err.Error()
}

// FormatValue renders v with the given number of decimals. Values that round
// to zero are shown without a sign.
func FormatValue(v float64, precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}

// FormatVector renders values as "[a, b, ...]" using FormatValue.
func FormatVector(values []float64, precision int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatValue(v, precision)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
