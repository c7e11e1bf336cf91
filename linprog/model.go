package linprog

import (
	"errors"
	"fmt"
	"log/slog"
)

// Model is a linear program described by plain slices. It is the usual way
// to use this package; Solver is the incremental form underneath.
//
//	Minimize (or Maximize): ColCosts · x + Offset
//	Subject to:             RowLower ≤ A·x ≤ RowUpper
//	And:                    ColLower ≤ x ≤ ColUpper
//
// A is given as the nonzero entries in ConstMatrix. Column slices left empty
// make every column free; row slices left empty make every row unbounded on
// that side. A non-empty slice must cover every column (or row).
type Model struct {
	Maximize bool
	Offset   float64

	ColCosts []float64
	ColLower []float64
	ColUpper []float64

	// RowLower and RowUpper bound each constraint. Use NegInf and Inf for
	// one-sided rows.
	RowLower []float64
	RowUpper []float64

	ConstMatrix []Nonzero
}

// AddDenseRow appends lower ≤ coeffs·x ≤ upper and returns the row index.
// Zero coefficients are not stored.
//
//	model.AddDenseRow(1, []float64{1, 2, 0, 3}, 10) // 1 ≤ x0 + 2x1 + 3x3 ≤ 10
func (m *Model) AddDenseRow(lower float64, coeffs []float64, upper float64) int {
	row := m.appendRow(lower, upper)
	for col, val := range coeffs {
		m.appendEntry(row, col, val)
	}
	return row
}

// AddSparseRow appends lower ≤ Σ vals[k]·x[cols[k]] ≤ upper and returns the
// row index. cols and vals must have equal length.
//
//	model.AddSparseRow(1, []int{0, 1, 3}, []float64{1, 2, 3}, 10)
func (m *Model) AddSparseRow(lower float64, cols []int, vals []float64, upper float64) (int, error) {
	if len(cols) != len(vals) {
		return -1, newErrorMsg("AddSparseRow", fmt.Sprintf("%d column indices for %d values", len(cols), len(vals)))
	}
	row := m.appendRow(lower, upper)
	for k, col := range cols {
		m.appendEntry(row, col, vals[k])
	}
	return row, nil
}

// AddEqRow appends coeffs·x = rhs.
func (m *Model) AddEqRow(coeffs []float64, rhs float64) int {
	return m.AddDenseRow(rhs, coeffs, rhs)
}

// AddLeRow appends coeffs·x ≤ rhs.
func (m *Model) AddLeRow(coeffs []float64, rhs float64) int {
	return m.AddDenseRow(NegInf(), coeffs, rhs)
}

// AddGeRow appends coeffs·x ≥ rhs.
func (m *Model) AddGeRow(coeffs []float64, rhs float64) int {
	return m.AddDenseRow(rhs, coeffs, Inf())
}

func (m *Model) appendRow(lower, upper float64) int {
	m.RowLower = append(m.RowLower, lower)
	m.RowUpper = append(m.RowUpper, upper)
	return len(m.RowLower) - 1
}

func (m *Model) appendEntry(row, col int, val float64) {
	if val != 0 {
		m.ConstMatrix = append(m.ConstMatrix, Nonzero{Row: row, Col: col, Val: val})
	}
}

// NumVars returns the number of columns: the longest column slice or one past
// the highest column referenced by ConstMatrix.
func (m *Model) NumVars() int {
	_, maxCol := maxRowCol(m.ConstMatrix)
	return max(maxCol+1, len(m.ColCosts), len(m.ColLower), len(m.ColUpper))
}

// NumConstraints returns the number of rows, counted the same way as
// NumVars.
func (m *Model) NumConstraints() int {
	maxRow, _ := maxRowCol(m.ConstMatrix)
	return max(maxRow+1, len(m.RowLower), len(m.RowUpper))
}

// Solve passes the model to a fresh Solver and runs it.
//
//	solution, err := model.Solve(
//		linprog.WithTolerance(1e-10),
//		linprog.WithLogger(logger),
//	)
//
// A model with no columns is optimal at Offset unless some row's bounds
// exclude zero, in which case it is infeasible. Malformed models return an
// error together with a ModelError solution.
func (m *Model) Solve(opts ...SolveOption) (*Solution, error) {
	cfg := &solveConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	solver := NewSolver()
	if err := cfg.apply(solver); err != nil {
		return nil, err
	}

	numCol, numRow := m.NumVars(), m.NumConstraints()

	var errs []error
	fill := func(name string, n int, s []float64, def float64) []float64 {
		out, err := expandSlice(name, n, s, def)
		if err != nil {
			errs = append(errs, err)
		}
		return out
	}
	colCosts := fill("ColCosts", numCol, m.ColCosts, 0)
	colLower := fill("ColLower", numCol, m.ColLower, NegInf())
	colUpper := fill("ColUpper", numCol, m.ColUpper, Inf())
	rowLower := fill("RowLower", numRow, m.RowLower, NegInf())
	rowUpper := fill("RowUpper", numRow, m.RowUpper, Inf())
	if len(errs) > 0 {
		return &Solution{Status: ModelStatusModelError}, errors.Join(errs...)
	}
	if numCol == 0 {
		return solveEmpty(rowLower, rowUpper, m.Offset), nil
	}

	err := solver.PassModel(
		numCol, numRow,
		colCosts, colLower, colUpper,
		rowLower, rowUpper,
		m.ConstMatrix,
		m.Maximize,
		m.Offset,
	)
	if err != nil {
		return &Solution{Status: ModelStatusModelError}, err
	}
	return solver.Run()
}

// solveEmpty evaluates a model without columns, where every row value is 0.
func solveEmpty(rowLower, rowUpper []float64, offset float64) *Solution {
	for i := range rowLower {
		if rowLower[i] > 0 || rowUpper[i] < 0 {
			return &Solution{Status: ModelStatusInfeasible}
		}
	}
	return &Solution{
		Status:    ModelStatusOptimal,
		RowValues: make([]float64, len(rowLower)),
		Objective: offset,
	}
}

// SolveOption configures the solver behavior.
type SolveOption func(*solveConfig)

type solveConfig struct {
	tolerance *float64
	logger    *slog.Logger
}

func (c *solveConfig) apply(s *Solver) error {
	if c.tolerance != nil {
		if err := s.SetTolerance(*c.tolerance); err != nil {
			return err
		}
	}
	if c.logger != nil {
		s.SetLogger(c.logger)
	}
	return nil
}

// WithTolerance sets the simplex tolerance. Zero selects DefaultTolerance.
func WithTolerance(tol float64) SolveOption {
	return func(c *solveConfig) {
		c.tolerance = &tol
	}
}

// WithLogger routes solve diagnostics to logger at debug level.
func WithLogger(logger *slog.Logger) SolveOption {
	return func(c *solveConfig) {
		c.logger = logger
	}
}
