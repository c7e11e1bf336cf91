// Package linprog provides a pure-Go linear programming model and solver.
//
// Models of the form
//
//	Minimize (or Maximize): ColCosts · x + Offset
//	Subject to:             RowLower ≤ A·x ≤ RowUpper
//	And:                    ColLower ≤ x ≤ ColUpper
//
// are rewritten into equality standard form and handed to the simplex
// implementation in gonum.org/v1/gonum/optimize/convex/lp. No cgo and no
// native solver library is required.
//
// # High-Level API Example
//
// The high-level API uses the Model struct to define optimization problems:
//
//	model := linprog.Model{
//		ColCosts: []float64{-3.0, -5.0},
//		ColLower: []float64{0.0, 0.0},
//	}
//	model.AddLeRow([]float64{1.0, 0.0}, 4.0)  // x0 <= 4
//	model.AddLeRow([]float64{0.0, 2.0}, 12.0) // 2*x1 <= 12
//	model.AddLeRow([]float64{3.0, 2.0}, 18.0) // 3*x0 + 2*x1 <= 18
//
//	solution, err := model.Solve()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("Optimal values:", solution.ColValues)
//
// # Low-Level API Example
//
// The low-level API builds the same model one piece at a time:
//
//	solver := linprog.NewSolver()
//	solver.AddVars([]float64{0, 0}, []float64{10, 10})
//	solver.SetColCosts([]float64{1, 1})
//	solver.AddRow(5, 15, []int{0, 1}, []float64{1, 2})
//	solution, err := solver.Run()
package linprog

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// ----------------------------------------------------------------------------
// Types
// ----------------------------------------------------------------------------

// ModelStatus represents the status of a solved model.
type ModelStatus int

const (
	// ModelStatusNotSet is the status of a zero Solution.
	ModelStatusNotSet ModelStatus = iota
	// ModelStatusModelError indicates the model was rejected before solving.
	ModelStatusModelError
	// ModelStatusSolveError indicates the simplex iterations failed.
	ModelStatusSolveError
	// ModelStatusModelEmpty indicates the model has no variables.
	ModelStatusModelEmpty
	// ModelStatusOptimal indicates an optimal solution was found.
	ModelStatusOptimal
	// ModelStatusInfeasible indicates the model is infeasible.
	ModelStatusInfeasible
	// ModelStatusUnbounded indicates the model is unbounded.
	ModelStatusUnbounded
)

// String returns a human-readable representation of the model status.
func (s ModelStatus) String() string {
	names := []string{
		"NotSet", "ModelError", "SolveError", "ModelEmpty",
		"Optimal", "Infeasible", "Unbounded",
	}
	if int(s) >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// IsOptimal returns true if the model was solved to optimality.
func (s ModelStatus) IsOptimal() bool {
	return s == ModelStatusOptimal
}

// HasSolution returns true if the model has a valid solution.
func (s ModelStatus) HasSolution() bool {
	return s == ModelStatusOptimal
}

// Nonzero represents a non-zero entry in a sparse matrix.
// Row and Col are zero-indexed.
type Nonzero struct {
	Row int
	Col int
	Val float64
}

// ----------------------------------------------------------------------------
// Errors
// ----------------------------------------------------------------------------

// ErrRankDeficient is returned when the equality rows of the standard form
// cannot have full row rank.
var ErrRankDeficient = errors.New("linprog: constraint matrix is rank deficient")

// Error represents a solver error with context about which operation failed.
type Error struct {
	Op  string // Operation that failed (e.g., "Solve", "AddRow")
	Msg string // Additional context
	Err error  // Underlying cause, if any
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("linprog: %s failed: %s: %v", e.Op, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("linprog: %s failed: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("linprog: %s failed: %s", e.Op, e.Msg)
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// newErrorMsg creates a new Error with an additional message.
func newErrorMsg(op, msg string) error {
	return &Error{Op: op, Msg: msg}
}

// wrapError attaches an operation name to a lower-level failure.
func wrapError(op string, err error) error {
	return &Error{Op: op, Err: err}
}

// ----------------------------------------------------------------------------
// Solver (Low-Level API)
// ----------------------------------------------------------------------------

// Solver accumulates a model column by column and row by row and solves it
// on Run. A Solver is not safe for concurrent use; create one per solve.
type Solver struct {
	maximize bool
	offset   float64

	colCost  []float64
	colLower []float64
	colUpper []float64

	rowLower []float64
	rowUpper []float64
	entries  []Nonzero

	tolerance float64
	logger    *slog.Logger
}

// NewSolver creates an empty solver that minimizes by default.
func NewSolver() *Solver {
	return &Solver{logger: slog.Default()}
}

// Clear resets the solver to its initial state, clearing the model and
// resetting options to defaults.
func (s *Solver) Clear() {
	*s = *NewSolver()
}

// ClearModel removes all variables and constraints but keeps options.
func (s *Solver) ClearModel() {
	tol, logger := s.tolerance, s.logger
	*s = Solver{tolerance: tol, logger: logger}
}

// Infinity returns the value used to represent an absent bound.
func (s *Solver) Infinity() float64 {
	return math.Inf(1)
}

// NumCol returns the number of columns (variables) in the model.
func (s *Solver) NumCol() int {
	return len(s.colCost)
}

// NumRow returns the number of rows (constraints) in the model.
func (s *Solver) NumRow() int {
	return len(s.rowLower)
}

// NumNonzero returns the number of non-zero entries in the constraint matrix.
func (s *Solver) NumNonzero() int {
	return len(s.entries)
}

// SetTolerance sets the reduced-cost tolerance passed to the simplex
// iterations. Zero selects DefaultTolerance.
func (s *Solver) SetTolerance(tol float64) error {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return newErrorMsg("SetTolerance", "tolerance must be a finite non-negative number")
	}
	s.tolerance = tol
	return nil
}

// SetLogger sets the logger used for solve diagnostics. A nil logger
// restores slog.Default().
func (s *Solver) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	s.logger = logger
}

// SetMaximize sets whether to maximize (true) or minimize (false).
func (s *Solver) SetMaximize(maximize bool) {
	s.maximize = maximize
}

// SetObjectiveOffset sets a constant offset for the objective function.
func (s *Solver) SetObjectiveOffset(offset float64) {
	s.offset = offset
}

// AddVar adds a single variable with the given bounds and zero cost.
func (s *Solver) AddVar(lower, upper float64) error {
	return s.AddVars([]float64{lower}, []float64{upper})
}

// AddVars adds multiple variables with the given bounds and zero cost.
func (s *Solver) AddVars(lower, upper []float64) error {
	if len(lower) != len(upper) {
		return newErrorMsg("AddVars", "lower and upper must have same length")
	}
	s.colLower = append(s.colLower, lower...)
	s.colUpper = append(s.colUpper, upper...)
	s.colCost = append(s.colCost, make([]float64, len(lower))...)
	return nil
}

// AddRow adds a constraint with the given bounds and coefficients.
// The index and value slices define the sparse row coefficients.
func (s *Solver) AddRow(lower, upper float64, index []int, value []float64) error {
	if len(index) != len(value) {
		return newErrorMsg("AddRow", "index and value must have same length")
	}
	for _, col := range index {
		if col < 0 || col >= len(s.colCost) {
			return newErrorMsg("AddRow", fmt.Sprintf("column index %d out of range", col))
		}
	}
	row := len(s.rowLower)
	for i, col := range index {
		if value[i] != 0.0 {
			s.entries = append(s.entries, Nonzero{Row: row, Col: col, Val: value[i]})
		}
	}
	s.rowLower = append(s.rowLower, lower)
	s.rowUpper = append(s.rowUpper, upper)
	return nil
}

// SetColCost sets the objective coefficient for a column.
func (s *Solver) SetColCost(col int, cost float64) error {
	if col < 0 || col >= len(s.colCost) {
		return newErrorMsg("SetColCost", fmt.Sprintf("column index %d out of range", col))
	}
	s.colCost[col] = cost
	return nil
}

// SetColCosts sets the objective coefficients for all columns.
func (s *Solver) SetColCosts(costs []float64) error {
	if len(costs) != len(s.colCost) {
		return newErrorMsg("SetColCosts", "costs length must match number of columns")
	}
	copy(s.colCost, costs)
	return nil
}

// SetColBounds sets the bounds for a column.
func (s *Solver) SetColBounds(col int, lower, upper float64) error {
	if col < 0 || col >= len(s.colCost) {
		return newErrorMsg("SetColBounds", fmt.Sprintf("column index %d out of range", col))
	}
	s.colLower[col] = lower
	s.colUpper[col] = upper
	return nil
}

// PassModel replaces the solver's model in one call.
// The entries slice lists the non-zero coefficients of the constraint matrix.
func (s *Solver) PassModel(
	numCol, numRow int,
	colCost, colLower, colUpper []float64,
	rowLower, rowUpper []float64,
	entries []Nonzero,
	maximize bool,
	offset float64,
) error {
	if len(colCost) != numCol || len(colLower) != numCol || len(colUpper) != numCol {
		return newErrorMsg("PassModel", "column data length mismatch")
	}
	if len(rowLower) != numRow || len(rowUpper) != numRow {
		return newErrorMsg("PassModel", "row data length mismatch")
	}
	for _, nz := range entries {
		if nz.Row < 0 || nz.Row >= numRow || nz.Col < 0 || nz.Col >= numCol {
			return newErrorMsg("PassModel", fmt.Sprintf("entry (%d, %d) out of range", nz.Row, nz.Col))
		}
	}

	s.ClearModel()
	s.colCost = append([]float64(nil), colCost...)
	s.colLower = append([]float64(nil), colLower...)
	s.colUpper = append([]float64(nil), colUpper...)
	s.rowLower = append([]float64(nil), rowLower...)
	s.rowUpper = append([]float64(nil), rowUpper...)
	s.entries = append([]Nonzero(nil), entries...)
	s.maximize = maximize
	s.offset = offset
	return nil
}

// Run solves the model and returns the solution.
//
// Infeasible and unbounded models are not errors: they are reported through
// Solution.Status. An error is returned only for malformed input, with status
// ModelError, or when the simplex iterations break down numerically, with
// status SolveError.
func (s *Solver) Run() (*Solution, error) {
	numCol, numRow := s.NumCol(), s.NumRow()
	if numCol == 0 {
		return &Solution{Status: ModelStatusModelEmpty}, nil
	}
	if err := s.validate(); err != nil {
		return &Solution{Status: ModelStatusModelError}, err
	}

	a, err := nonzerosToDense(s.entries, numRow, numCol)
	if err != nil {
		return &Solution{Status: ModelStatusModelError}, err
	}

	for j := 0; j < numCol; j++ {
		if s.colLower[j] > s.colUpper[j] {
			return &Solution{Status: ModelStatusInfeasible}, nil
		}
	}
	for i := 0; i < numRow; i++ {
		if s.rowLower[i] > s.rowUpper[i] {
			return &Solution{Status: ModelStatusInfeasible}, nil
		}
	}

	costs := s.colCost
	if s.maximize {
		costs = negated(costs)
	}

	sf := newStandardForm(costs, s.colLower, s.colUpper, a, s.rowLower, s.rowUpper)
	s.log().Debug("linprog: standard form built",
		slog.Int("cols", numCol),
		slog.Int("rows", numRow),
		slog.Int("structural", sf.numY()),
		slog.Int("std_rows", sf.numRows()),
	)

	status, y, err := sf.solve(s.tolerance)
	if err != nil {
		s.log().Debug("linprog: simplex failed", slog.String("error", err.Error()))
		return &Solution{Status: status}, wrapError("Run", err)
	}
	s.log().Debug("linprog: simplex finished", slog.String("status", status.String()))

	sol := &Solution{Status: status}
	if status != ModelStatusOptimal {
		return sol, nil
	}

	sol.ColValues = sf.toOriginal(y)
	sol.RowValues = make([]float64, numRow)
	for i, row := range a {
		sol.RowValues[i] = dot(row, sol.ColValues)
	}
	sol.Objective = dot(s.colCost, sol.ColValues) + s.offset
	return sol, nil
}

// validate rejects NaN anywhere and infinities where a finite value is required.
func (s *Solver) validate() error {
	for j, c := range s.colCost {
		if !isFinite(c) {
			return newErrorMsg("Run", fmt.Sprintf("cost of column %d is not finite", j))
		}
	}
	for j := range s.colLower {
		if !validBounds(s.colLower[j], s.colUpper[j]) {
			return newErrorMsg("Run", fmt.Sprintf("invalid bounds on column %d", j))
		}
	}
	for i := range s.rowLower {
		if !validBounds(s.rowLower[i], s.rowUpper[i]) {
			return newErrorMsg("Run", fmt.Sprintf("invalid bounds on row %d", i))
		}
	}
	for _, nz := range s.entries {
		if !isFinite(nz.Val) {
			return newErrorMsg("Run", fmt.Sprintf("matrix entry (%d, %d) is not finite", nz.Row, nz.Col))
		}
	}
	if !isFinite(s.offset) {
		return newErrorMsg("Run", "objective offset is not finite")
	}
	return nil
}

// validBounds reports whether lower and upper are usable as a bound pair.
// A lower bound at +infinity or an upper bound at -infinity is meaningless.
func validBounds(lower, upper float64) bool {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return false
	}
	return lower < infinityThreshold && upper > -infinityThreshold
}

func (s *Solver) log() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}
